package port

import (
	"context"

	"lexconnect/internal/domain"
)

// ConversationRepository persists message threads and their entries.
type ConversationRepository interface {
	Create(ctx context.Context, c *domain.Conversation) error
	List(ctx context.Context) ([]domain.Conversation, error)
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	Update(ctx context.Context, c *domain.Conversation) error
	ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
}
