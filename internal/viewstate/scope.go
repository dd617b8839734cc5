// Package viewstate implements the role-scoped filtering and derived
// view-model logic shared by the dashboard, appointments, documents,
// messages and admin listings. Every page used to re-derive this on its
// own; it lives here once, generic over the record kind.
//
// All functions are pure: they never mutate their inputs and always
// return fresh slices.
package viewstate

import (
	"lexconnect/internal/domain"
)

// Accessors describes how a record kind exposes the identity-bearing
// fields used for role scoping. Any accessor may be nil when the record
// kind has no such field.
type Accessors[T any] struct {
	ClientName   func(T) string
	AttorneyName func(T) string
	Participants func(T) []string
}

// VisibleTo returns the subset of records visible to the identity.
// Clients see records bearing their own name as client or participant;
// attorneys see records they are assigned to or participate in;
// managers and admins see everything. A nil identity sees nothing
// (fail-closed: the logged-out dashboard is empty).
func VisibleTo[T any](records []T, ident *domain.Identity, acc Accessors[T]) []T {
	out := make([]T, 0, len(records))
	if ident == nil {
		return out
	}
	if ident.Role.SeesEverything() {
		return append(out, records...)
	}

	var field func(T) string
	switch ident.Role {
	case domain.RoleClient:
		field = acc.ClientName
	case domain.RoleAttorney:
		field = acc.AttorneyName
	default:
		return out
	}

	for _, r := range records {
		if field != nil && field(r) == ident.Name {
			out = append(out, r)
			continue
		}
		if acc.Participants != nil {
			for _, p := range acc.Participants(r) {
				if p == ident.Name {
					out = append(out, r)
					break
				}
			}
		}
	}
	return out
}

// CaseAccessors scopes cases by client and assigned attorney.
var CaseAccessors = Accessors[domain.Case]{
	ClientName:   func(c domain.Case) string { return c.ClientName },
	AttorneyName: func(c domain.Case) string { return c.AttorneyName },
}

// AppointmentAccessors scopes appointments by participant list.
var AppointmentAccessors = Accessors[domain.Appointment]{
	Participants: func(a domain.Appointment) []string { return a.Participants },
}

// ConversationAccessors scopes conversations by the two named parties.
var ConversationAccessors = Accessors[domain.Conversation]{
	ClientName:   func(c domain.Conversation) string { return c.ClientName },
	AttorneyName: func(c domain.Conversation) string { return c.AttorneyName },
}
