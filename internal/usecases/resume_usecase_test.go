package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"cvnest.backend/internal/domain/entities"
	domainErrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/infrastructure/ai"
)

func TestResumeCreate(t *testing.T) {
	userID := uuid.New()
	var created *entities.Resume
	repo := &stubResumeRepo{
		createFn: func(ctx context.Context, resume *entities.Resume) error {
			created = resume
			return nil
		},
	}
	uc := NewResumeUsecase(repo, &stubCompleter{})

	resume, err := uc.Create(context.Background(), userID, &entities.CreateResumeInput{
		Title:    "Backend Engineer CV",
		Template: "modern",
		Content:  `{"sections":[]}`,
	})
	require.NoError(t, err)
	require.Equal(t, userID, resume.UserID)
	require.Equal(t, created, resume)
}

func TestResumeGetOwnership(t *testing.T) {
	owner := uuid.New()
	resume := &entities.Resume{ID: uuid.New(), UserID: owner, Title: "CV"}
	repo := &stubResumeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.Resume, error) {
			return resume, nil
		},
	}
	uc := NewResumeUsecase(repo, &stubCompleter{})

	got, err := uc.Get(context.Background(), owner, resume.ID)
	require.NoError(t, err)
	require.Equal(t, resume, got)

	_, err = uc.Get(context.Background(), uuid.New(), resume.ID)
	require.ErrorIs(t, err, domainErrors.ErrForbidden)
}

func TestResumeUpdatePartial(t *testing.T) {
	owner := uuid.New()
	resume := &entities.Resume{ID: uuid.New(), UserID: owner, Title: "Old", Template: "classic", Content: "{}"}
	repo := &stubResumeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.Resume, error) {
			return resume, nil
		},
	}
	uc := NewResumeUsecase(repo, &stubCompleter{})

	updated, err := uc.Update(context.Background(), owner, resume.ID, &entities.UpdateResumeInput{Title: "New"})
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)
	require.Equal(t, "classic", updated.Template)
}

func TestResumeDeleteForeign(t *testing.T) {
	resume := &entities.Resume{ID: uuid.New(), UserID: uuid.New()}
	deleted := false
	repo := &stubResumeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.Resume, error) {
			return resume, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	uc := NewResumeUsecase(repo, &stubCompleter{})

	err := uc.Delete(context.Background(), uuid.New(), resume.ID)
	require.ErrorIs(t, err, domainErrors.ErrForbidden)
	require.False(t, deleted)
}

func TestResumeEnhance(t *testing.T) {
	owner := uuid.New()
	resume := &entities.Resume{ID: uuid.New(), UserID: owner}
	repo := &stubResumeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.Resume, error) {
			return resume, nil
		},
	}
	completer := &stubCompleter{
		completeFn: func(ctx context.Context, system string, messages []ai.Message) (string, error) {
			require.NotEmpty(t, system)
			require.Len(t, messages, 1)
			require.Contains(t, messages[0].Content, "managed a team")
			return "  Led a team of five engineers.  ", nil
		},
	}
	uc := NewResumeUsecase(repo, completer)

	result, err := uc.Enhance(context.Background(), owner, resume.ID, &entities.EnhanceResumeInput{
		Section: "experience",
		Text:    "managed a team",
	})
	require.NoError(t, err)
	require.Equal(t, "experience", result.Section)
	require.Equal(t, "Led a team of five engineers.", result.Text)
}
