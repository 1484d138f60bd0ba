package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"geotrip/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func uintPtr(v uint) *uint { return &v }

func TestBookedAdults(t *testing.T) {
	bookings := []models.Booking{
		{Adults: 2, Children: 3},
		{Adults: 4, Children: 1},
	}

	// Children do not count against capacity.
	assert.Equal(t, 6, BookedAdults(bookings))
	assert.Equal(t, 0, BookedAdults(nil))
}

func TestRemainingForPackage(t *testing.T) {
	pkg := models.Package{MaxPeople: 10}

	assert.Equal(t, 10, RemainingForPackage(pkg, nil))
	assert.Equal(t, 4, RemainingForPackage(pkg, []models.Booking{{Adults: 2}, {Adults: 4}}))
}

func TestRemainingForPackageCanGoNegative(t *testing.T) {
	pkg := models.Package{MaxPeople: 5}
	bookings := []models.Booking{{Adults: 4}, {Adults: 3}}

	assert.Equal(t, -2, RemainingForPackage(pkg, bookings))
}

func TestBookingsForDateMatchesByForeignKey(t *testing.T) {
	date := models.PackageDate{ID: 7, StartDate: day(2026, time.June, 1)}
	bookings := []models.Booking{
		{ID: 1, PackageDateID: uintPtr(7), Adults: 2},
		{ID: 2, PackageDateID: uintPtr(8), Adults: 3},
	}

	matched := BookingsForDate(date, bookings)
	assert.Len(t, matched, 1)
	assert.Equal(t, uint(1), matched[0].ID)
}

func TestBookingsForDateFallsBackToCalendarDay(t *testing.T) {
	date := models.PackageDate{ID: 7, StartDate: day(2026, time.June, 1)}
	bookings := []models.Booking{
		// Legacy row without the occurrence key, same calendar day at a
		// different hour.
		{ID: 1, StartDate: timePtr(time.Date(2026, time.June, 1, 15, 30, 0, 0, time.UTC)), Adults: 2},
		{ID: 2, StartDate: timePtr(day(2026, time.June, 2)), Adults: 3},
		// The key wins over the calendar day when both are present.
		{ID: 3, PackageDateID: uintPtr(9), StartDate: timePtr(day(2026, time.June, 1)), Adults: 1},
	}

	matched := BookingsForDate(date, bookings)
	assert.Len(t, matched, 1)
	assert.Equal(t, uint(1), matched[0].ID)
}

func TestRemainingForDateIsolatedPerOccurrence(t *testing.T) {
	d1 := models.PackageDate{ID: 1, StartDate: day(2026, time.July, 10), MaxPeople: 5}
	d2 := models.PackageDate{ID: 2, StartDate: day(2026, time.July, 20), MaxPeople: 5}
	bookings := []models.Booking{
		{PackageDateID: uintPtr(1), Adults: 3},
	}

	// Three seats taken on the first departure do not affect the second.
	assert.Equal(t, 2, RemainingForDate(d1, bookings))
	assert.Equal(t, 5, RemainingForDate(d2, bookings))
}

func TestDateAvailabilitiesReport(t *testing.T) {
	dates := []models.PackageDate{
		{ID: 1, StartDate: day(2026, time.July, 10), MaxPeople: 5},
		{ID: 2, StartDate: day(2026, time.July, 20), MaxPeople: 8},
	}
	bookings := []models.Booking{
		{PackageDateID: uintPtr(1), Adults: 3},
		{PackageDateID: uintPtr(2), Adults: 8},
	}

	report := DateAvailabilities(dates, bookings)
	assert.Len(t, report, 2)
	assert.Equal(t, 3, report[0].Booked)
	assert.Equal(t, 2, report[0].Remaining)
	assert.Equal(t, 8, report[1].Booked)
	assert.Equal(t, 0, report[1].Remaining)
}

func TestDateAvailabilitiesEmptyMeansNoDatesSet(t *testing.T) {
	// A bus tour with zero occurrences yields an empty report, which is a
	// different state from every occurrence being full.
	report := DateAvailabilities(nil, []models.Booking{{Adults: 2}})
	assert.Empty(t, report)
}
