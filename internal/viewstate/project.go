package viewstate

import (
	"sort"

	"lexconnect/internal/domain"
)

// SortDir orders a projection ascending or descending.
type SortDir int

const (
	Asc SortDir = iota
	Desc
)

// DashboardUpcomingLimit caps the dashboard's "next appointments" card.
const DashboardUpcomingLimit = 3

// SortByDate returns a copy of records stably sorted by a date-only key
// in domain.DateLayout format (lexicographic order is chronological).
func SortByDate[T any](records []T, date func(T) string, dir SortDir) []T {
	out := append(make([]T, 0, len(records)), records...)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return date(out[i]) > date(out[j])
		}
		return date(out[i]) < date(out[j])
	})
	return out
}

// Head returns at most n leading records.
func Head[T any](records []T, n int) []T {
	if n < 0 || n >= len(records) {
		return append(make([]T, 0, len(records)), records...)
	}
	return append(make([]T, 0, n), records[:n]...)
}

// Count reports how many records satisfy pred. Tab badges are counted on
// the subset before the active tab's own filter, so switching tabs never
// changes the other tabs' numbers.
func Count[T any](records []T, pred Predicate[T]) int {
	n := 0
	for _, r := range records {
		if pred == nil || pred(r) {
			n++
		}
	}
	return n
}

// Upcoming projects the scheduled appointments on or after today
// (date-only comparison), earliest first.
func Upcoming(apps []domain.Appointment, today string) []domain.Appointment {
	sub := Apply(apps, func(a domain.Appointment) bool {
		return a.Status == domain.AppointmentScheduled && a.Date >= today
	})
	return SortByDate(sub, func(a domain.Appointment) string { return a.Date }, Asc)
}

// Past projects everything that is not upcoming, meaning appointments
// before today or no longer scheduled, most recent first.
func Past(apps []domain.Appointment, today string) []domain.Appointment {
	sub := Apply(apps, func(a domain.Appointment) bool {
		return a.Date < today || a.Status != domain.AppointmentScheduled
	})
	return SortByDate(sub, func(a domain.Appointment) string { return a.Date }, Desc)
}

// NextUpcoming is the dashboard projection: the first n upcoming
// appointments after ascending date sort.
func NextUpcoming(apps []domain.Appointment, today string, n int) []domain.Appointment {
	return Head(Upcoming(apps, today), n)
}

// OnDate projects the scheduled appointments for one calendar day.
func OnDate(apps []domain.Appointment, date string) []domain.Appointment {
	return Apply(apps, func(a domain.Appointment) bool {
		return a.Status == domain.AppointmentScheduled && a.Date == date
	})
}
