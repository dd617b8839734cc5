package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
	"lexconnect/internal/viewstate"
)

// AppointmentFilter is the secondary filter state of the appointments
// listing. Tab selects the upcoming or past projection.
type AppointmentFilter struct {
	Tab    string `form:"tab"`
	Kind   string `form:"kind"`
	Search string `form:"q"`
}

// AppointmentTabCounts are the tab badges of the appointments page.
// They are counted before the tab's own projection, so switching tabs
// never changes them.
type AppointmentTabCounts struct {
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

// AppointmentListResult is the appointments listing plus tab badges.
type AppointmentListResult struct {
	Appointments []domain.Appointment `json:"appointments"`
	Counts       AppointmentTabCounts `json:"counts"`
}

// UpsertAppointmentInput is the DTO for scheduling or rescheduling a
// consultation. An empty ID inserts; a known ID replaces that record.
type UpsertAppointmentInput struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title" binding:"required"`
	Kind         domain.AppointmentKind `json:"kind" binding:"required"`
	Date         string                 `json:"date" binding:"required"`
	Time         string                 `json:"time"`
	Participants []string               `json:"participants" binding:"required,min=1"`
	CaseID       string                 `json:"case_id"`
}

// AppointmentService defines the consultation scheduling contract.
type AppointmentService interface {
	List(ctx context.Context, ident *domain.Identity, filter AppointmentFilter) (*AppointmentListResult, error)
	OnDate(ctx context.Context, ident *domain.Identity, date string) ([]domain.Appointment, error)
	GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Appointment, error)
	Upsert(ctx context.Context, ident *domain.Identity, input UpsertAppointmentInput) (*domain.Appointment, error)
	Cancel(ctx context.Context, ident *domain.Identity, id string) (*domain.Appointment, error)
	Complete(ctx context.Context, ident *domain.Identity, id string) (*domain.Appointment, error)
}

type appointmentService struct {
	repo     port.AppointmentRepository
	userRepo port.UserRepository
}

// NewAppointmentService creates a new AppointmentService implementation.
func NewAppointmentService(repo port.AppointmentRepository, userRepo port.UserRepository) AppointmentService {
	return &appointmentService{repo: repo, userRepo: userRepo}
}

func today() string {
	return time.Now().Format(domain.DateLayout)
}

func (s *appointmentService) List(ctx context.Context, ident *domain.Identity, filter AppointmentFilter) (*AppointmentListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo(all, ident, viewstate.AppointmentAccessors)

	pred := viewstate.And(
		viewstate.Equals(filter.Kind, func(a domain.Appointment) string { return string(a.Kind) }),
		viewstate.SearchText(filter.Search,
			func(a domain.Appointment) string { return a.Title },
		),
	)
	filtered := viewstate.Apply(visible, pred)

	now := today()
	counts := AppointmentTabCounts{
		Upcoming: len(viewstate.Upcoming(filtered, now)),
		Past:     len(viewstate.Past(filtered, now)),
	}

	var items []domain.Appointment
	switch filter.Tab {
	case "past":
		items = viewstate.Past(filtered, now)
	default:
		items = viewstate.Upcoming(filtered, now)
	}

	return &AppointmentListResult{Appointments: items, Counts: counts}, nil
}

func (s *appointmentService) OnDate(ctx context.Context, ident *domain.Identity, date string) ([]domain.Appointment, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, date)
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo(all, ident, viewstate.AppointmentAccessors)
	return viewstate.OnDate(visible, date), nil
}

func (s *appointmentService) GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	visible := viewstate.VisibleTo([]domain.Appointment{*a}, ident, viewstate.AppointmentAccessors)
	if len(visible) == 0 {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *appointmentService) Upsert(ctx context.Context, ident *domain.Identity, input UpsertAppointmentInput) (*domain.Appointment, error) {
	if !domain.ValidAppointmentKinds[input.Kind] {
		return nil, fmt.Errorf("%w: unknown appointment kind %q", domain.ErrValidation, input.Kind)
	}
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, input.Date)
	}

	// Written consultations have no meeting slot.
	apptTime := input.Time
	if input.Kind == domain.KindWrittenConsultation {
		apptTime = "N/A"
	} else if apptTime == "" {
		return nil, fmt.Errorf("%w: time is required for %s appointments", domain.ErrValidation, input.Kind)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(users))
	for _, u := range users {
		known[u.Name] = true
	}
	for _, p := range input.Participants {
		if !known[p] {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownParticipant, p)
		}
	}

	a := &domain.Appointment{
		ID:           input.ID,
		Title:        input.Title,
		Kind:         input.Kind,
		Date:         input.Date,
		Time:         apptTime,
		Participants: input.Participants,
		Status:       domain.AppointmentScheduled,
		CaseID:       input.CaseID,
	}

	if a.ID != "" {
		existing, err := s.GetByID(ctx, ident, a.ID)
		if err != nil {
			return nil, err
		}
		// Rescheduling reopens a completed or cancelled slot only via an
		// explicit new record; the status of the stored one is kept.
		a.Status = existing.Status
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	if err := s.repo.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *appointmentService) Cancel(ctx context.Context, ident *domain.Identity, id string) (*domain.Appointment, error) {
	return s.transition(ctx, ident, id, domain.AppointmentCancelled)
}

func (s *appointmentService) Complete(ctx context.Context, ident *domain.Identity, id string) (*domain.Appointment, error) {
	return s.transition(ctx, ident, id, domain.AppointmentCompleted)
}

// transition moves a scheduled appointment to a terminal status. Acting
// on an already completed or cancelled appointment is rejected and the
// stored status stays unchanged.
func (s *appointmentService) transition(ctx context.Context, ident *domain.Identity, id string, to domain.AppointmentStatus) (*domain.Appointment, error) {
	a, err := s.GetByID(ctx, ident, id)
	if err != nil {
		return nil, err
	}
	if a.Status != domain.AppointmentScheduled {
		return nil, fmt.Errorf("%w: appointment is %s", domain.ErrPreconditionFailed, a.Status)
	}

	a.Status = to
	if err := s.repo.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
