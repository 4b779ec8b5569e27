package contract

import (
	"context"

	"afaq-chatbot-be/internal/entity"
)

// ConversationRepository owns all Chat and Message persistence. Messages are
// append-only; their surrogate id defines the session-global replay order.
type ConversationRepository interface {
	// AppendMessage persists one immutable turn and fills in the assigned id.
	AppendMessage(ctx context.Context, message *entity.Message) error
	// GetChatHistory returns the turns of one chat in append order. An
	// unknown chat yields an empty slice, not an error.
	GetChatHistory(ctx context.Context, sessionId, chatId string) ([]*entity.Message, error)
	// GetSessionHistory returns every turn of the session across all chats,
	// in one global append order.
	GetSessionHistory(ctx context.Context, sessionId string) ([]*entity.Message, error)

	// CreateChat inserts the chat row. A concurrent insert of the same
	// chat_id is absorbed (insert-or-ignore), so first-message races on a
	// fresh id cannot fail.
	CreateChat(ctx context.Context, chat *entity.Chat) error
	// FindChat returns nil, nil when the chat does not exist for the session.
	FindChat(ctx context.Context, sessionId, chatId string) (*entity.Chat, error)
	// ListChats returns the session's chats, most recently created first.
	ListChats(ctx context.Context, sessionId string) ([]*entity.Chat, error)
	// RenameChat updates the title; renaming an unknown chat is a no-op.
	RenameChat(ctx context.Context, chatId, title string) error

	// DeleteChat removes the chat row and its messages. Idempotent.
	DeleteChat(ctx context.Context, sessionId, chatId string) error
	// ClearSession removes every chat and message of the session. Idempotent.
	ClearSession(ctx context.Context, sessionId string) error
}
