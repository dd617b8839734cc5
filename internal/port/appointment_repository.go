package port

import (
	"context"

	"lexconnect/internal/domain"
)

// AppointmentRepository persists consultations. Upsert replaces the
// single record matching the appointment's ID, inserting when unseen.
type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Upsert(ctx context.Context, a *domain.Appointment) error
}
