package port

import (
	"context"

	"lexconnect/internal/domain"
)

// CaseRepository persists legal matters. Cases are never deleted; there
// is deliberately no Delete method.
type CaseRepository interface {
	List(ctx context.Context) ([]domain.Case, error)
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	Upsert(ctx context.Context, c *domain.Case) error
}
