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

const chatSystemPrompt = "You are a career assistant for a CV building platform. Help the user with resume writing, job search strategy and interview preparation. Answer in the language the user writes in."

// ChatUsecase runs assistant conversations. Each reply round trips through
// the completion service with the full thread history as context.
type ChatUsecase struct {
	chatRepo  repositories.ChatRepository
	completer ai.Completer
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(chatRepo repositories.ChatRepository, completer ai.Completer) *ChatUsecase {
	return &ChatUsecase{chatRepo: chatRepo, completer: completer}
}

// CreateThread opens a thread with the first user message and returns the
// thread together with the assistant's reply.
func (u *ChatUsecase) CreateThread(ctx context.Context, userID uuid.UUID, input *entities.CreateThreadInput) (*entities.ChatThread, *entities.ChatMessage, error) {
	title := input.Title
	if title == "" {
		title = threadTitle(input.Content)
	}

	thread := &entities.ChatThread{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
	}
	if err := u.chatRepo.CreateThread(ctx, thread); err != nil {
		return nil, nil, err
	}

	reply, err := u.postMessage(ctx, thread, input.Content)
	if err != nil {
		return nil, nil, err
	}
	return thread, reply, nil
}

// ListThreads returns the caller's threads
func (u *ChatUsecase) ListThreads(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error) {
	return u.chatRepo.ListThreads(ctx, userID)
}

// GetMessages returns the full history of a thread owned by the caller
func (u *ChatUsecase) GetMessages(ctx context.Context, userID, threadID uuid.UUID) ([]*entities.ChatMessage, error) {
	thread, err := u.ownedThread(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}
	return u.chatRepo.ListMessages(ctx, thread.ID)
}

// PostMessage appends a user message to a thread and returns the reply
func (u *ChatUsecase) PostMessage(ctx context.Context, userID, threadID uuid.UUID, input *entities.PostMessageInput) (*entities.ChatMessage, error) {
	thread, err := u.ownedThread(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}
	return u.postMessage(ctx, thread, input.Content)
}

// DeleteThread removes a thread owned by the caller
func (u *ChatUsecase) DeleteThread(ctx context.Context, userID, threadID uuid.UUID) error {
	thread, err := u.ownedThread(ctx, userID, threadID)
	if err != nil {
		return err
	}
	return u.chatRepo.DeleteThread(ctx, thread.ID)
}

func (u *ChatUsecase) ownedThread(ctx context.Context, userID, threadID uuid.UUID) (*entities.ChatThread, error) {
	thread, err := u.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread.UserID != userID {
		return nil, domainErrors.ErrForbidden
	}
	return thread, nil
}

func (u *ChatUsecase) postMessage(ctx context.Context, thread *entities.ChatThread, content string) (*entities.ChatMessage, error) {
	userMsg := &entities.ChatMessage{
		ID:       uuid.New(),
		ThreadID: thread.ID,
		Role:     entities.ChatRoleUser,
		Content:  content,
	}
	if err := u.chatRepo.AppendMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := u.chatRepo.ListMessages(ctx, thread.ID)
	if err != nil {
		return nil, err
	}
	messages := make([]ai.Message, 0, len(history))
	for _, m := range history {
		messages = append(messages, ai.Message{Role: string(m.Role), Content: m.Content})
	}

	replyText, err := u.completer.Complete(ctx, chatSystemPrompt, messages)
	if err != nil {
		return nil, err
	}

	reply := &entities.ChatMessage{
		ID:       uuid.New(),
		ThreadID: thread.ID,
		Role:     entities.ChatRoleAssistant,
		Content:  strings.TrimSpace(replyText),
	}
	if err := u.chatRepo.AppendMessage(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func threadTitle(content string) string {
	title := strings.TrimSpace(content)
	if idx := strings.IndexByte(title, '\n'); idx > 0 {
		title = title[:idx]
	}
	runes := []rune(title)
	if len(runes) > 60 {
		title = string(runes[:60])
	}
	if title == "" {
		title = "New conversation"
	}
	return title
}
