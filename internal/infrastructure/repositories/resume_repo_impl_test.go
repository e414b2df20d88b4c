package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
)

func TestResumeCRUD(t *testing.T) {
	db := newTestDB(t)
	createResumeTable(t, db)
	repo := NewResumeRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	r1 := &entities.Resume{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "Backend Engineer CV",
		Template: "modern",
		Content:  `{"sections":[]}`,
	}
	require.NoError(t, repo.Create(ctx, r1))

	got, err := repo.GetByID(ctx, r1.ID)
	require.NoError(t, err)
	require.Equal(t, "Backend Engineer CV", got.Title)

	r1.Title = "Senior Backend Engineer CV"
	require.NoError(t, repo.Update(ctx, r1))

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Senior Backend Engineer CV", list[0].Title)

	require.NoError(t, repo.Delete(ctx, r1.ID))
	_, err = repo.GetByID(ctx, r1.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, uuid.New()), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, &entities.Resume{ID: uuid.New()}), domainerrors.ErrNotFound)
}
