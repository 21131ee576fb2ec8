// Package service contains the business logic for the MyRides API.
// The grouping engine lives here, along with the rides orchestration that
// feeds it. No HTTP and no SQL; services depend on small interfaces.
package service

import (
	"github.com/antmarasia/MyRides/internal/domain"
	"github.com/antmarasia/MyRides/internal/localtime"
)

// GroupSections partitions an ordered trip list into contiguous day-based
// sections. Trips are assumed pre-sorted by start time; no sorting happens
// here, and each trip is only ever compared to the one before it.
//
// "Same day" means identical year-month-day of the trip's localized payment
// start, each trip judged under its own zone. A section's StartTime/EndTime
// track the last trip merged into it, and EstimatedEarnings is the sum over
// its members. Total function: never errors, never drops or reorders a trip.
func GroupSections(trips []domain.Trip) []domain.RideSection {
	sections := make([]domain.RideSection, 0, len(trips))
	if len(trips) == 0 {
		return sections
	}

	first := trips[0]
	var (
		lastDay  = first.PaymentStartsAtLocal()
		endTime  = first.PaymentEndsAtLocal()
		earnings int
		count    int
		members  []domain.Trip
	)

	for i, trip := range trips {
		day := trip.PaymentStartsAtLocal()
		if localtime.SameDay(lastDay, day) {
			count++
			earnings += trip.EstimatedEarnings
			lastDay = day
			endTime = trip.PaymentEndsAtLocal()
			members = append(members, trip)
		} else {
			sections = append(sections, domain.RideSection{
				Count:             count,
				StartTime:         lastDay,
				EndTime:           endTime,
				EstimatedEarnings: earnings,
				Trips:             members,
			})
			count = 1
			earnings = trip.EstimatedEarnings
			lastDay = day
			endTime = trip.PaymentEndsAtLocal()
			members = []domain.Trip{trip}
		}

		if i == len(trips)-1 {
			sections = append(sections, domain.RideSection{
				Count:             count,
				StartTime:         lastDay,
				EndTime:           endTime,
				EstimatedEarnings: earnings,
				Trips:             members,
			})
		}
	}

	return sections
}
