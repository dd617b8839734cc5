package viewstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lexconnect/internal/domain"
	"lexconnect/internal/viewstate"
)

const today = "2025-01-02"

func scheduled(id, date string) domain.Appointment {
	return domain.Appointment{ID: id, Date: date, Status: domain.AppointmentScheduled}
}

func TestSortByDate_Ascending(t *testing.T) {
	apps := []domain.Appointment{
		scheduled("A", "2025-01-05"),
		scheduled("B", "2025-01-01"),
		scheduled("C", "2025-01-03"),
	}

	got := viewstate.SortByDate(apps, func(a domain.Appointment) string { return a.Date }, viewstate.Asc)

	dates := []string{got[0].Date, got[1].Date, got[2].Date}
	assert.Equal(t, []string{"2025-01-01", "2025-01-03", "2025-01-05"}, dates)
	// input untouched
	assert.Equal(t, "2025-01-05", apps[0].Date)
}

func TestUpcoming_DateOnScopeBoundaryIsIncluded(t *testing.T) {
	apps := []domain.Appointment{
		scheduled("A", today),
		scheduled("B", "2025-01-01"),
		{ID: "C", Date: "2025-01-09", Status: domain.AppointmentCancelled},
	}

	got := viewstate.Upcoming(apps, today)

	assert.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ID)
}

func TestPast_NotScheduledOrBeforeToday_MostRecentFirst(t *testing.T) {
	apps := []domain.Appointment{
		scheduled("A", "2024-12-20"),
		{ID: "B", Date: "2025-01-09", Status: domain.AppointmentCancelled},
		scheduled("C", "2024-12-30"),
		scheduled("D", "2025-01-08"),
	}

	got := viewstate.Past(apps, today)

	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"B", "C", "A"}, ids)
}

func TestNextUpcoming_CapsDashboardToThreeEarliest(t *testing.T) {
	apps := []domain.Appointment{
		scheduled("A", "2025-01-20"),
		scheduled("B", "2025-01-04"),
		scheduled("C", "2025-01-15"),
		scheduled("D", "2025-01-03"),
		scheduled("E", "2025-01-10"),
	}

	got := viewstate.NextUpcoming(apps, today, viewstate.DashboardUpcomingLimit)

	assert.Len(t, got, 3)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"D", "B", "E"}, ids)
}

func TestHead_ShortInputReturnedWhole(t *testing.T) {
	apps := []domain.Appointment{scheduled("A", "2025-01-04"), scheduled("B", "2025-01-05")}
	assert.Len(t, viewstate.Head(apps, 3), 2)
	assert.Len(t, viewstate.Head(apps, 0), 0)
}

func TestCount_IndependentOfActiveTabFilter(t *testing.T) {
	docs := []domain.Document{
		{ID: "1", Status: domain.DocumentAwaitingSignature},
		{ID: "2", Status: domain.DocumentSigned},
		{ID: "3", Status: domain.DocumentSigned},
		{ID: "4", Status: domain.DocumentRequiresReview},
	}
	awaiting := func(d domain.Document) bool { return d.Status == domain.DocumentAwaitingSignature }
	signed := func(d domain.Document) bool { return d.Status == domain.DocumentSigned }

	// Counting happens on the full filtered subset, never on another
	// tab's projection.
	assert.Equal(t, 1, viewstate.Count(docs, awaiting))
	assert.Equal(t, 2, viewstate.Count(docs, signed))
	assert.Equal(t, 4, viewstate.Count(docs, nil))
}

func TestOnDate_ScheduledForCalendarDay(t *testing.T) {
	apps := []domain.Appointment{
		scheduled("A", "2025-01-04"),
		{ID: "B", Date: "2025-01-04", Status: domain.AppointmentCancelled},
		scheduled("C", "2025-01-05"),
	}
	got := viewstate.OnDate(apps, "2025-01-04")
	assert.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ID)
}
