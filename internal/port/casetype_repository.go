package port

import (
	"context"

	"lexconnect/internal/domain"
)

// CaseTypeRepository persists the admin-managed case subtype taxonomy.
type CaseTypeRepository interface {
	ListSubtypes(ctx context.Context) ([]domain.CaseSubtype, error)
	ListSubtypesByBase(ctx context.Context, baseType domain.CaseBaseType) ([]domain.CaseSubtype, error)
	CreateSubtype(ctx context.Context, s *domain.CaseSubtype) error
}
