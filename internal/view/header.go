package view

import (
	"time"

	"github.com/antmarasia/MyRides/internal/domain"
	"github.com/antmarasia/MyRides/internal/localtime"
)

// HeaderModel is the per-day section header of the rides list.
//
// Day is rendered in the injected display zone while the clock strings use
// the first trip's zone. The asymmetry is inherited from the UI this feed
// was built for; see DESIGN.md before changing it.
type HeaderModel struct {
	Day               string `json:"day"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	EstimatedEarnings string `json:"estimated_earnings"`
}

// NewHeaderModel derives the section header display model.
// dayZone is the zone the weekday+date string is rendered in; pass
// time.Local for the process default.
func NewHeaderModel(section domain.RideSection, dayZone *time.Location) HeaderModel {
	tzName := ""
	if len(section.Trips) > 0 {
		tzName = section.Trips[0].TimeZoneName
	}
	return HeaderModel{
		Day:               localtime.FormatDay(section.StartTime, dayZone),
		StartTime:         localtime.FormatClock(section.StartTime, tzName),
		EndTime:           localtime.FormatClock(section.EndTime, tzName),
		EstimatedEarnings: formatCurrency(section.EstimatedEarnings),
	}
}
