package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

type appointmentRepo struct {
	db *sqlx.DB
}

// NewAppointmentRepo creates a new SQLite-backed AppointmentRepository.
func NewAppointmentRepo(db *sqlx.DB) port.AppointmentRepository {
	return &appointmentRepo{db: db}
}

// appointmentRow carries the participants list as a JSON text column.
type appointmentRow struct {
	domain.Appointment
	ParticipantsJSON string `db:"participants"`
}

func (row *appointmentRow) toDomain() (domain.Appointment, error) {
	a := row.Appointment
	if err := json.Unmarshal([]byte(row.ParticipantsJSON), &a.Participants); err != nil {
		return domain.Appointment{}, fmt.Errorf("decoding participants for %s: %w", a.ID, err)
	}
	return a, nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]domain.Appointment, error) {
	var rows []appointmentRow
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM appointments ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("appointmentRepo.List: %w", err)
	}
	apps := make([]domain.Appointment, 0, len(rows))
	for i := range rows {
		a, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("appointmentRepo.List: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var row appointmentRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM appointments WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("appointmentRepo.GetByID: %w", err)
	}
	a, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("appointmentRepo.GetByID: %w", err)
	}
	return &a, nil
}

func (r *appointmentRepo) Upsert(ctx context.Context, a *domain.Appointment) error {
	participants, err := json.Marshal(a.Participants)
	if err != nil {
		return fmt.Errorf("appointmentRepo.Upsert encode participants: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO appointments (id, title, kind, date, time, participants, status, case_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   title = excluded.title,
		   kind = excluded.kind,
		   date = excluded.date,
		   time = excluded.time,
		   participants = excluded.participants,
		   status = excluded.status,
		   case_id = excluded.case_id`,
		a.ID, a.Title, a.Kind, a.Date, a.Time, string(participants), a.Status, a.CaseID)
	if err != nil {
		return fmt.Errorf("appointmentRepo.Upsert: %w", err)
	}
	return nil
}
