package port

import (
	"context"

	"lexconnect/internal/domain"
)

// DocumentRepository persists document signing metadata.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
	List(ctx context.Context) ([]domain.Document, error)
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
}
