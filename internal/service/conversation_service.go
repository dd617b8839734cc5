package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
	"lexconnect/internal/viewstate"
)

// SendMessageInput is the DTO for posting a message to a thread.
type SendMessageInput struct {
	Content string `json:"content" binding:"required"`
}

// ConversationService defines the messaging contract. Threads are
// scoped to their two named parties; managers and admins see all.
type ConversationService interface {
	List(ctx context.Context, ident *domain.Identity, search string) ([]domain.Conversation, error)
	GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Conversation, error)
	ListMessages(ctx context.Context, ident *domain.Identity, conversationID string) ([]domain.Message, error)
	SendMessage(ctx context.Context, ident *domain.Identity, conversationID string, input SendMessageInput) (*domain.Message, error)
	MarkRead(ctx context.Context, ident *domain.Identity, conversationID string) (*domain.Conversation, error)
}

type conversationService struct {
	repo port.ConversationRepository
}

// NewConversationService creates a new ConversationService implementation.
func NewConversationService(repo port.ConversationRepository) ConversationService {
	return &conversationService{repo: repo}
}

func (s *conversationService) List(ctx context.Context, ident *domain.Identity, search string) ([]domain.Conversation, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo(all, ident, viewstate.ConversationAccessors)
	return viewstate.Apply(visible, viewstate.SearchText(search,
		func(c domain.Conversation) string { return c.ClientName },
		func(c domain.Conversation) string { return c.AttorneyName },
		func(c domain.Conversation) string { return c.LastPreview },
	)), nil
}

func (s *conversationService) GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Conversation, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo([]domain.Conversation{*c}, ident, viewstate.ConversationAccessors)
	if len(visible) == 0 {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *conversationService) ListMessages(ctx context.Context, ident *domain.Identity, conversationID string) ([]domain.Message, error) {
	if _, err := s.GetByID(ctx, ident, conversationID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, conversationID)
}

func (s *conversationService) SendMessage(ctx context.Context, ident *domain.Identity, conversationID string, input SendMessageInput) (*domain.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content is required", domain.ErrValidation)
	}

	conv, err := s.GetByID(ctx, ident, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		SenderID:       ident.ID,
		SenderName:     ident.Name,
		Content:        content,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	// The thread header mirrors the newest message. Unread counts the
	// messages the other party has not opened yet.
	conv.LastPreview = content
	conv.LastTimestamp = msg.Timestamp
	conv.UnreadCount++
	if err := s.repo.Update(ctx, conv); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *conversationService) MarkRead(ctx context.Context, ident *domain.Identity, conversationID string) (*domain.Conversation, error) {
	conv, err := s.GetByID(ctx, ident, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.UnreadCount == 0 {
		return conv, nil
	}
	conv.UnreadCount = 0
	if err := s.repo.Update(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}
