package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lexconnect/internal/domain"
	"lexconnect/internal/service"
	"lexconnect/mocks"
)

func relDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}

func clientIdent(name string) *domain.Identity {
	return &domain.Identity{ID: "USR001", Name: name, Role: domain.RoleClient}
}

func demoAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "APP001", Title: "Audiencia preliminar", Kind: domain.KindInPerson, Date: relDate(7), Time: "10:00", Participants: []string{"Juan Pérez", "Juana García"}, Status: domain.AppointmentScheduled},
		{ID: "APP002", Title: "Revisión de expediente", Kind: domain.KindVideoConference, Date: relDate(3), Time: "16:30", Participants: []string{"Juan Pérez", "Carlos Fernández"}, Status: domain.AppointmentScheduled},
		{ID: "APP003", Title: "Primera consulta", Kind: domain.KindInPerson, Date: relDate(-10), Time: "09:00", Participants: []string{"Roberto Sanz", "Juana García"}, Status: domain.AppointmentCompleted},
		{ID: "APP005", Title: "Seguimiento", Kind: domain.KindVideoConference, Date: relDate(-2), Time: "12:00", Participants: []string{"Juan Pérez", "Carlos Fernández"}, Status: domain.AppointmentCancelled},
	}
}

func TestAppointmentService_List_ScopesAndSplitsTabs(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	repo.On("List", mock.Anything).Return(demoAppointments(), nil)

	result, err := svc.List(context.Background(), clientIdent("Juan Pérez"), service.AppointmentFilter{})

	assert.NoError(t, err)
	// Juan participates in APP001, APP002 and APP005; only the two
	// scheduled future ones are upcoming, earliest first.
	assert.Len(t, result.Appointments, 2)
	assert.Equal(t, "APP002", result.Appointments[0].ID)
	assert.Equal(t, "APP001", result.Appointments[1].ID)
	assert.Equal(t, 2, result.Counts.Upcoming)
	assert.Equal(t, 1, result.Counts.Past)
}

func TestAppointmentService_List_TabCountsUnchangedBySelectedTab(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	repo.On("List", mock.Anything).Return(demoAppointments(), nil)

	upcoming, err := svc.List(context.Background(), clientIdent("Juan Pérez"), service.AppointmentFilter{Tab: "upcoming"})
	assert.NoError(t, err)
	past, err := svc.List(context.Background(), clientIdent("Juan Pérez"), service.AppointmentFilter{Tab: "past"})
	assert.NoError(t, err)

	assert.Equal(t, upcoming.Counts, past.Counts)
	assert.Len(t, past.Appointments, 1)
	assert.Equal(t, "APP005", past.Appointments[0].ID)
}

func TestAppointmentService_List_NilIdentitySeesNothing(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	repo.On("List", mock.Anything).Return(demoAppointments(), nil)

	result, err := svc.List(context.Background(), nil, service.AppointmentFilter{})

	assert.NoError(t, err)
	assert.Empty(t, result.Appointments)
	assert.Equal(t, 0, result.Counts.Upcoming)
	assert.Equal(t, 0, result.Counts.Past)
}

func TestAppointmentService_Upsert_InsertsNew(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	userRepo.On("List", mock.Anything).Return([]domain.User{
		{Name: "Juan Pérez"}, {Name: "Juana García"},
	}, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil)

	a, err := svc.Upsert(context.Background(), clientIdent("Juan Pérez"), service.UpsertAppointmentInput{
		Title:        "Nueva cita",
		Kind:         domain.KindInPerson,
		Date:         relDate(4),
		Time:         "11:00",
		Participants: []string{"Juan Pérez", "Juana García"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.AppointmentScheduled, a.Status)
	repo.AssertExpectations(t)
}

func TestAppointmentService_Upsert_ReplacesExisting(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	stored := demoAppointments()[0]
	userRepo.On("List", mock.Anything).Return([]domain.User{
		{Name: "Juan Pérez"}, {Name: "Juana García"},
	}, nil)
	repo.On("GetByID", mock.Anything, "APP001").Return(&stored, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil)

	a, err := svc.Upsert(context.Background(), clientIdent("Juan Pérez"), service.UpsertAppointmentInput{
		ID:           "APP001",
		Title:        "Audiencia preliminar (nueva fecha)",
		Kind:         domain.KindInPerson,
		Date:         relDate(9),
		Time:         "12:00",
		Participants: []string{"Juan Pérez", "Juana García"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "APP001", a.ID)
	assert.Equal(t, relDate(9), a.Date)
	repo.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestAppointmentService_Upsert_UnknownParticipant(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	userRepo.On("List", mock.Anything).Return([]domain.User{{Name: "Juan Pérez"}}, nil)

	_, err := svc.Upsert(context.Background(), clientIdent("Juan Pérez"), service.UpsertAppointmentInput{
		Title:        "Cita",
		Kind:         domain.KindInPerson,
		Date:         relDate(4),
		Time:         "11:00",
		Participants: []string{"Juan Pérez", "Fantasma"},
	})

	assert.ErrorIs(t, err, domain.ErrUnknownParticipant)
	repo.AssertNotCalled(t, "Upsert")
}

func TestAppointmentService_Upsert_WrittenConsultationTime(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	userRepo.On("List", mock.Anything).Return([]domain.User{{Name: "Juan Pérez"}}, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil)

	a, err := svc.Upsert(context.Background(), clientIdent("Juan Pérez"), service.UpsertAppointmentInput{
		Title:        "Consulta escrita",
		Kind:         domain.KindWrittenConsultation,
		Date:         relDate(6),
		Time:         "10:00",
		Participants: []string{"Juan Pérez"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "N/A", a.Time)
}

func TestAppointmentService_Cancel_Scheduled(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	stored := demoAppointments()[0]
	repo.On("GetByID", mock.Anything, "APP001").Return(&stored, nil)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil)

	a, err := svc.Cancel(context.Background(), clientIdent("Juan Pérez"), "APP001")

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentCancelled, a.Status)
}

func TestAppointmentService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	stored := demoAppointments()[3] // cancelled
	repo.On("GetByID", mock.Anything, "APP005").Return(&stored, nil)

	_, err := svc.Cancel(context.Background(), clientIdent("Juan Pérez"), "APP005")

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	// The stored status is untouched.
	assert.Equal(t, domain.AppointmentCancelled, stored.Status)
	repo.AssertNotCalled(t, "Upsert")
}

func TestAppointmentService_Complete_AlreadyCompleted(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	stored := demoAppointments()[2] // completed
	repo.On("GetByID", mock.Anything, "APP003").Return(&stored, nil)

	_, err := svc.Complete(context.Background(), &domain.Identity{Name: "Roberto Sanz", Role: domain.RoleClient}, "APP003")

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	repo.AssertNotCalled(t, "Upsert")
}

func TestAppointmentService_GetByID_OutsideScopeReadsNotFound(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAppointmentService(repo, userRepo)

	stored := demoAppointments()[2] // Roberto's appointment
	repo.On("GetByID", mock.Anything, "APP003").Return(&stored, nil)

	_, err := svc.GetByID(context.Background(), clientIdent("Juan Pérez"), "APP003")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
