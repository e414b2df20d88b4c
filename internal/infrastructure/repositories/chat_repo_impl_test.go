package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
)

func TestChatThreadAndMessages(t *testing.T) {
	db := newTestDB(t)
	createChatTables(t, db)
	repo := NewChatRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	thread := &entities.ChatThread{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "Improve my summary",
	}
	require.NoError(t, repo.CreateThread(ctx, thread))

	got, err := repo.GetThread(ctx, thread.ID)
	require.NoError(t, err)
	require.Equal(t, "Improve my summary", got.Title)

	require.NoError(t, repo.AppendMessage(ctx, &entities.ChatMessage{
		ID:       uuid.New(),
		ThreadID: thread.ID,
		Role:     entities.ChatRoleUser,
		Content:  "Rewrite my CV summary",
	}))
	require.NoError(t, repo.AppendMessage(ctx, &entities.ChatMessage{
		ID:       uuid.New(),
		ThreadID: thread.ID,
		Role:     entities.ChatRoleAssistant,
		Content:  "Here is a tighter version...",
	}))

	msgs, err := repo.ListMessages(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, entities.ChatRoleUser, msgs[0].Role)
	require.Equal(t, entities.ChatRoleAssistant, msgs[1].Role)

	threads, err := repo.ListThreads(ctx, userID)
	require.NoError(t, err)
	require.Len(t, threads, 1)

	require.NoError(t, repo.DeleteThread(ctx, thread.ID))
	_, err = repo.GetThread(ctx, thread.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.DeleteThread(ctx, uuid.New()), domainerrors.ErrNotFound)
}
