package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"cvnest.backend/internal/domain/entities"
	domainErrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/domain/repositories"
	"cvnest.backend/internal/infrastructure/ai"
)

const enhanceSystemPrompt = "You are a professional CV writer. Rewrite the given resume section so it is concise, achievement oriented and free of filler. Keep the factual content, return only the rewritten text."

// ResumeUsecase covers CV document CRUD and the AI rewrite helper.
// Every operation checks that the resume belongs to the calling user.
type ResumeUsecase struct {
	resumeRepo repositories.ResumeRepository
	completer  ai.Completer
}

// NewResumeUsecase creates a new resume usecase
func NewResumeUsecase(resumeRepo repositories.ResumeRepository, completer ai.Completer) *ResumeUsecase {
	return &ResumeUsecase{resumeRepo: resumeRepo, completer: completer}
}

// Create stores a new resume for the user
func (u *ResumeUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateResumeInput) (*entities.Resume, error) {
	resume := &entities.Resume{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    input.Title,
		Template: input.Template,
		Content:  input.Content,
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// Get returns one resume owned by the user
func (u *ResumeUsecase) Get(ctx context.Context, userID, resumeID uuid.UUID) (*entities.Resume, error) {
	resume, err := u.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume.UserID != userID {
		return nil, domainErrors.ErrForbidden
	}
	return resume, nil
}

// List returns all resumes owned by the user
func (u *ResumeUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Resume, error) {
	return u.resumeRepo.ListByUser(ctx, userID)
}

// Update applies partial changes to a resume owned by the user
func (u *ResumeUsecase) Update(ctx context.Context, userID, resumeID uuid.UUID, input *entities.UpdateResumeInput) (*entities.Resume, error) {
	resume, err := u.Get(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		resume.Title = input.Title
	}
	if input.Template != "" {
		resume.Template = input.Template
	}
	if input.Content != "" {
		resume.Content = input.Content
	}

	if err := u.resumeRepo.Update(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// Delete removes a resume owned by the user
func (u *ResumeUsecase) Delete(ctx context.Context, userID, resumeID uuid.UUID) error {
	if _, err := u.Get(ctx, userID, resumeID); err != nil {
		return err
	}
	return u.resumeRepo.Delete(ctx, resumeID)
}

// Enhance sends one resume section to the completion service and returns the
// rewritten text. The resume itself is not modified, the client decides what
// to keep.
func (u *ResumeUsecase) Enhance(ctx context.Context, userID, resumeID uuid.UUID, input *entities.EnhanceResumeInput) (*entities.EnhanceResumeResult, error) {
	if _, err := u.Get(ctx, userID, resumeID); err != nil {
		return nil, err
	}

	prompt := "Section: " + input.Section + "\n\n" + input.Text
	if input.Tone != "" {
		prompt += "\n\nDesired tone: " + input.Tone
	}

	rewritten, err := u.completer.Complete(ctx, enhanceSystemPrompt, []ai.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	return &entities.EnhanceResumeResult{
		Section: input.Section,
		Text:    strings.TrimSpace(rewritten),
	}, nil
}
