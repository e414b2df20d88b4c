package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cvnest.backend/internal/domain/repositories"
	"cvnest.backend/pkg/logger"
)

// VerificationExpiryJob sweeps expired one-time codes out of the store.
// Hygiene only: Consume checks expiry itself, so correctness never depends
// on this job running.
type VerificationExpiryJob struct {
	repo     repositories.VerificationRepository
	interval time.Duration
	stop     chan struct{}
}

func NewVerificationExpiryJob(repo repositories.VerificationRepository, interval time.Duration) *VerificationExpiryJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &VerificationExpiryJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *VerificationExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting verification code expiry job",
		zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Verification expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Verification expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *VerificationExpiryJob) Stop() {
	close(j.stop)
}

func (j *VerificationExpiryJob) sweep(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "Failed to sweep expired verification codes", zap.Error(err))
		return
	}
	if deleted > 0 {
		logger.Debug(ctx, "Swept expired verification codes", zap.Int64("count", deleted))
	}
}
