package repository

import (
	"context"

	"vendora/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	// ListByUserID returns the user's conversations ordered by updatedAt
	// descending. limit -1 means no limit.
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)
	Update(ctx context.Context, conversation *entity.Conversation) error

	// AppendMessage stores the message and, in the same transaction, updates
	// the parent conversation's lastMessage snapshot, updatedAt and the
	// receiver's unread counter. Either all of it lands or none of it does.
	AppendMessage(ctx context.Context, message *entity.Message) error

	// ListMessages returns up to limit messages in storage order, newest
	// first. Callers wanting chronological order reverse the page.
	ListMessages(ctx context.Context, conversationID string, limit int) ([]*entity.Message, error)

	// MarkConversationRead flips isRead on every unread message addressed to
	// userID and zeroes the user's unread counter as one batch. Calling it
	// with nothing unread is a no-op.
	MarkConversationRead(ctx context.Context, conversationID, userID string) error
}
