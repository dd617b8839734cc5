package service

import (
	"context"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
	"lexconnect/internal/viewstate"
)

// DashboardSummary is the landing page view model: counters plus the
// next few scheduled appointments, all scoped to the caller.
type DashboardSummary struct {
	OpenCases            int                  `json:"open_cases"`
	ClosedCases          int                  `json:"closed_cases"`
	PendingDocuments     int                  `json:"pending_documents"`
	UnreadMessages       int                  `json:"unread_messages"`
	UpcomingAppointments []domain.Appointment `json:"upcoming_appointments"`
}

// DashboardService assembles the landing page summary.
type DashboardService interface {
	Summary(ctx context.Context, ident *domain.Identity) (*DashboardSummary, error)
}

type dashboardService struct {
	caseRepo        port.CaseRepository
	appointmentRepo port.AppointmentRepository
	documentRepo    port.DocumentRepository
	convRepo        port.ConversationRepository
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(
	caseRepo port.CaseRepository,
	appointmentRepo port.AppointmentRepository,
	documentRepo port.DocumentRepository,
	convRepo port.ConversationRepository,
) DashboardService {
	return &dashboardService{
		caseRepo:        caseRepo,
		appointmentRepo: appointmentRepo,
		documentRepo:    documentRepo,
		convRepo:        convRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context, ident *domain.Identity) (*DashboardSummary, error) {
	cases, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visibleCases := viewstate.VisibleTo(cases, ident, viewstate.CaseAccessors)

	apps, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visibleApps := viewstate.VisibleTo(apps, ident, viewstate.AppointmentAccessors)

	docs, err := s.documentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	caseIDs := make(map[string]bool, len(visibleCases))
	for _, c := range visibleCases {
		caseIDs[c.ID] = true
	}

	convs, err := s.convRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visibleConvs := viewstate.VisibleTo(convs, ident, viewstate.ConversationAccessors)

	summary := &DashboardSummary{
		OpenCases: viewstate.Count(visibleCases, func(c domain.Case) bool {
			return c.State == domain.CaseOpen
		}),
		ClosedCases: viewstate.Count(visibleCases, func(c domain.Case) bool {
			return c.State == domain.CaseClosed
		}),
		PendingDocuments: viewstate.Count(docs, func(d domain.Document) bool {
			return caseIDs[d.CaseID] && d.Status == domain.DocumentAwaitingSignature
		}),
		UpcomingAppointments: viewstate.NextUpcoming(visibleApps, today(), viewstate.DashboardUpcomingLimit),
	}
	for _, c := range visibleConvs {
		summary.UnreadMessages += c.UnreadCount
	}
	return summary, nil
}
