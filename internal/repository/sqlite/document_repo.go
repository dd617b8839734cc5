package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new SQLite-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, d *domain.Document) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, name, case_id, status, uploaded_date, version)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.CaseID, d.Status, d.UploadedDate, d.Version)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) List(ctx context.Context) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs, "SELECT * FROM documents ORDER BY uploaded_date DESC, id")
	if err != nil {
		return nil, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	var d domain.Document
	err := r.db.GetContext(ctx, &d, "SELECT * FROM documents WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &d, nil
}

func (r *documentRepo) Update(ctx context.Context, d *domain.Document) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE documents SET name = ?, case_id = ?, status = ?, uploaded_date = ?, version = ?
		 WHERE id = ?`,
		d.Name, d.CaseID, d.Status, d.UploadedDate, d.Version, d.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
