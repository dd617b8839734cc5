package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

type conversationRepo struct {
	db *sqlx.DB
}

// NewConversationRepo creates a new SQLite-backed ConversationRepository.
func NewConversationRepo(db *sqlx.DB) port.ConversationRepository {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.LastTimestamp.IsZero() {
		conv.LastTimestamp = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversations (id, client_name, attorney_name, last_preview, last_timestamp, unread_count, avatar_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		conv.ID, conv.ClientName, conv.AttorneyName, conv.LastPreview,
		conv.LastTimestamp, conv.UnreadCount, conv.AvatarURL)
	if err != nil {
		return fmt.Errorf("conversationRepo.Create: %w", err)
	}
	return nil
}

func (r *conversationRepo) List(ctx context.Context) ([]domain.Conversation, error) {
	var convs []domain.Conversation
	err := r.db.SelectContext(ctx, &convs, "SELECT * FROM conversations ORDER BY last_timestamp DESC")
	if err != nil {
		return nil, fmt.Errorf("conversationRepo.List: %w", err)
	}
	return convs, nil
}

func (r *conversationRepo) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.GetContext(ctx, &c, "SELECT * FROM conversations WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("conversationRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *conversationRepo) Update(ctx context.Context, c *domain.Conversation) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE conversations SET client_name = ?, attorney_name = ?, last_preview = ?,
		   last_timestamp = ?, unread_count = ?, avatar_url = ?
		 WHERE id = ?`,
		c.ClientName, c.AttorneyName, c.LastPreview, c.LastTimestamp,
		c.UnreadCount, c.AvatarURL, c.ID)
	if err != nil {
		return fmt.Errorf("conversationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *conversationRepo) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.SelectContext(ctx, &msgs,
		"SELECT * FROM messages WHERE conversation_id = ? ORDER BY timestamp, id", conversationID)
	if err != nil {
		return nil, fmt.Errorf("conversationRepo.ListMessages: %w", err)
	}
	return msgs, nil
}

func (r *conversationRepo) CreateMessage(ctx context.Context, m *domain.Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, conversation_id, sender_id, sender_name, content, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ConversationID, m.SenderID, m.SenderName, m.Content, m.Timestamp)
	if err != nil {
		return fmt.Errorf("conversationRepo.CreateMessage: %w", err)
	}
	return nil
}
