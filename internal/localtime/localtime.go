// Package localtime holds the timezone helpers the rides list is built on.
// The upstream feed delivers every timestamp as a UTC-suffixed instant plus
// a separate IANA zone name; these helpers turn that pair into values usable
// for same-day comparison and for the short display strings the UI shows.
package localtime

import "time"

// Localize reinterprets the wall-clock components of t as if they had been
// recorded in the zone named by tzName, discarding t's original offset.
//
// This is deliberately lossy and non-invertible: the absolute instant shifts
// by the zone offset. Downstream code only ever uses the result for
// calendar-day comparison and for carrying section boundary times, where the
// wall-clock digits are what matter.
func Localize(t time.Time, tzName string) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), location(tzName))
}

// FormatClock renders t converted into the named zone as a compact
// twelve-hour clock string: "6:15p", "11:15a". No leading zero on the hour,
// no space before the single-letter suffix.
func FormatClock(t time.Time, tzName string) string {
	lt := t.In(location(tzName))
	suffix := "a"
	if lt.Hour() >= 12 {
		suffix = "p"
	}
	return lt.Format("3:04") + suffix
}

// FormatDay renders t in loc as a short weekday+date string, e.g. "Wed 1/17".
// The zone is explicit so callers can inject the display zone; pass
// time.Local for the process default.
func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon 1/2")
}

// SameDay reports whether a and b carry the same year-month-day, each judged
// in its own location. Combined with Localize this compares the wall-clock
// calendar date of two instants, each under its own trip zone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// location resolves an IANA zone name, falling back silently to the process
// default for empty or unrecognized names. The upstream feed is the only
// source of zone names and a bad one should never take the list down.
func location(tzName string) *time.Location {
	if tzName == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.Local
	}
	return loc
}
