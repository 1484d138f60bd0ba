package services

import (
	"time"

	"geotrip/models"
)

// Availability computation for packages and bus-tour date occurrences.
// Remaining counts are plain numbers: zero or negative both mean the
// package/occurrence is full (overbooking can drive it negative), and the
// caller decides the unavailability threshold. "No dates set" on a bus tour
// is a distinct state from "full" and is represented by an empty
// DateAvailability list.

// DateAvailability is the seat report for one date occurrence.
type DateAvailability struct {
	Date      models.PackageDate
	Booked    int
	Remaining int
}

// BookedAdults sums the adult head count over bookings. Children are not
// counted against capacity, matching how occupancy was tracked historically.
func BookedAdults(bookings []models.Booking) int {
	total := 0
	for i := range bookings {
		total += bookings[i].Adults
	}
	return total
}

// RemainingForPackage computes remaining capacity for a regular (non-bus)
// package from its package-level MaxPeople.
func RemainingForPackage(pkg models.Package, bookings []models.Booking) int {
	return pkg.MaxPeople - BookedAdults(bookings)
}

// BookingsForDate selects the bookings that belong to one date occurrence.
// Rows carrying the explicit occurrence foreign key are matched by it; rows
// created before the key existed fall back to calendar-day equality between
// the booking start date and the occurrence start date.
func BookingsForDate(date models.PackageDate, bookings []models.Booking) []models.Booking {
	matched := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		if b.PackageDateID != nil {
			if *b.PackageDateID == date.ID {
				matched = append(matched, b)
			}
			continue
		}
		if b.StartDate != nil && sameCalendarDay(*b.StartDate, date.StartDate) {
			matched = append(matched, b)
		}
	}
	return matched
}

// RemainingForDate computes remaining capacity for one date occurrence of a
// bus tour. Bookings for other occurrences of the same package do not
// affect the result.
func RemainingForDate(date models.PackageDate, bookings []models.Booking) int {
	return date.MaxPeople - BookedAdults(BookingsForDate(date, bookings))
}

// DateAvailabilities builds the per-occurrence seat report for a bus tour.
// An empty result means the package has no departure dates set and cannot
// be booked, which is not the same as being full.
func DateAvailabilities(dates []models.PackageDate, bookings []models.Booking) []DateAvailability {
	report := make([]DateAvailability, 0, len(dates))
	for i := range dates {
		booked := BookedAdults(BookingsForDate(dates[i], bookings))
		report = append(report, DateAvailability{
			Date:      dates[i],
			Booked:    booked,
			Remaining: dates[i].MaxPeople - booked,
		})
	}
	return report
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
