package viewstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lexconnect/internal/domain"
	"lexconnect/internal/viewstate"
)

var scopeCases = []domain.Case{
	{ID: "CASO001", ClientName: "Juan Pérez", AttorneyName: "Juana García"},
	{ID: "CASO002", ClientName: "Roberto Sanz", AttorneyName: "Miguel Torres"},
	{ID: "CASO003", ClientName: "Juan Pérez", AttorneyName: "Juana García"},
	{ID: "CASO004", ClientName: "Carlos Fernández", AttorneyName: "Juana García"},
}

func TestVisibleTo_ClientSeesOnlyOwnCases(t *testing.T) {
	ident := &domain.Identity{Name: "Juan Pérez", Role: domain.RoleClient}

	got := viewstate.VisibleTo(scopeCases, ident, viewstate.CaseAccessors)

	assert.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "Juan Pérez", c.ClientName)
	}
}

func TestVisibleTo_AttorneySeesAssignedCases(t *testing.T) {
	ident := &domain.Identity{Name: "Juana García", Role: domain.RoleAttorney}

	got := viewstate.VisibleTo(scopeCases, ident, viewstate.CaseAccessors)

	assert.Len(t, got, 3)
	for _, c := range got {
		assert.Equal(t, "Juana García", c.AttorneyName)
	}
}

func TestVisibleTo_ManagerAndAdminSeeEverything(t *testing.T) {
	for _, role := range []domain.UserRole{domain.RoleManager, domain.RoleAdmin} {
		ident := &domain.Identity{Name: "Gerente User", Role: role}
		got := viewstate.VisibleTo(scopeCases, ident, viewstate.CaseAccessors)
		assert.Len(t, got, len(scopeCases), "role %s", role)
	}
}

func TestVisibleTo_NilIdentityIsFailClosed(t *testing.T) {
	got := viewstate.VisibleTo(scopeCases, nil, viewstate.CaseAccessors)
	assert.Empty(t, got)
}

func TestVisibleTo_ParticipantScoping(t *testing.T) {
	apps := []domain.Appointment{
		{ID: "APP001", Participants: []string{"Juan Pérez", "Juana García"}},
		{ID: "APP002", Participants: []string{"Roberto Sanz", "Miguel Torres"}},
		{ID: "APP003", Participants: []string{"Carlos Fernández", "Juana García"}},
	}

	client := &domain.Identity{Name: "Juan Pérez", Role: domain.RoleClient}
	got := viewstate.VisibleTo(apps, client, viewstate.AppointmentAccessors)
	assert.Len(t, got, 1)
	assert.Equal(t, "APP001", got[0].ID)

	attorney := &domain.Identity{Name: "Juana García", Role: domain.RoleAttorney}
	got = viewstate.VisibleTo(apps, attorney, viewstate.AppointmentAccessors)
	assert.Len(t, got, 2)
}

func TestVisibleTo_DoesNotMutateInput(t *testing.T) {
	ident := &domain.Identity{Name: "Admin User", Role: domain.RoleAdmin}
	got := viewstate.VisibleTo(scopeCases, ident, viewstate.CaseAccessors)

	got[0].ClientName = "changed"
	assert.Equal(t, "Juan Pérez", scopeCases[0].ClientName)
}
