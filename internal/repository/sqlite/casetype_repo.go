package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

type caseTypeRepo struct {
	db *sqlx.DB
}

// NewCaseTypeRepo creates a new SQLite-backed CaseTypeRepository.
func NewCaseTypeRepo(db *sqlx.DB) port.CaseTypeRepository {
	return &caseTypeRepo{db: db}
}

func (r *caseTypeRepo) ListSubtypes(ctx context.Context) ([]domain.CaseSubtype, error) {
	var subtypes []domain.CaseSubtype
	err := r.db.SelectContext(ctx, &subtypes, "SELECT * FROM case_subtypes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("caseTypeRepo.ListSubtypes: %w", err)
	}
	return subtypes, nil
}

func (r *caseTypeRepo) ListSubtypesByBase(ctx context.Context, baseType domain.CaseBaseType) ([]domain.CaseSubtype, error) {
	var subtypes []domain.CaseSubtype
	err := r.db.SelectContext(ctx, &subtypes,
		"SELECT * FROM case_subtypes WHERE base_type = ? ORDER BY id", baseType)
	if err != nil {
		return nil, fmt.Errorf("caseTypeRepo.ListSubtypesByBase: %w", err)
	}
	return subtypes, nil
}

func (r *caseTypeRepo) CreateSubtype(ctx context.Context, s *domain.CaseSubtype) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO case_subtypes (id, base_type, name, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.BaseType, s.Name, s.Description, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("caseTypeRepo.CreateSubtype: %w", err)
	}
	return nil
}
