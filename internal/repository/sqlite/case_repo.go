package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

type caseRepo struct {
	db *sqlx.DB
}

// NewCaseRepo creates a new SQLite-backed CaseRepository.
func NewCaseRepo(db *sqlx.DB) port.CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) List(ctx context.Context) ([]domain.Case, error) {
	var cases []domain.Case
	err := r.db.SelectContext(ctx, &cases, "SELECT * FROM cases ORDER BY last_update DESC")
	if err != nil {
		return nil, fmt.Errorf("caseRepo.List: %w", err)
	}
	return cases, nil
}

func (r *caseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	var c domain.Case
	err := r.db.GetContext(ctx, &c, "SELECT * FROM cases WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("caseRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *caseRepo) Upsert(ctx context.Context, c *domain.Case) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cases (id, case_number, client_name, base_type, subtype, state, last_update, description, attorney_name)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   case_number = excluded.case_number,
		   client_name = excluded.client_name,
		   base_type = excluded.base_type,
		   subtype = excluded.subtype,
		   state = excluded.state,
		   last_update = excluded.last_update,
		   description = excluded.description,
		   attorney_name = excluded.attorney_name`,
		c.ID, c.CaseNumber, c.ClientName, c.BaseType, c.Subtype,
		c.State, c.LastUpdate, c.Description, c.AttorneyName)
	if err != nil {
		return fmt.Errorf("caseRepo.Upsert: %w", err)
	}
	return nil
}
