package domain

import "time"

// RideSection is a contiguous run of trips sharing the same local calendar
// day, as judged by each trip's localized payment start. Sections are built
// once per grouping pass and never updated incrementally.
//
// StartTime and EndTime carry the localized start/end of the last trip
// merged into the section, not the first. That mirrors the accumulator the
// list UI was built against; renderers only use the wall-clock digits.
type RideSection struct {
	Count             int       `json:"count"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	EstimatedEarnings int       `json:"estimated_earnings"`
	Trips             []Trip    `json:"trips"`
}
