package localtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antmarasia/MyRides/internal/localtime"
)

func TestLocalize_KeepsWallClock(t *testing.T) {
	instant := time.Date(2024, 1, 15, 18, 15, 0, 0, time.UTC)

	got := localtime.Localize(instant, "America/Denver")

	// The wall-clock digits are carried over unchanged; only the zone moves.
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 15, got.Minute())
	assert.Equal(t, "America/Denver", got.Location().String())
}

func TestLocalize_ShiftsAbsoluteInstant(t *testing.T) {
	instant := time.Date(2024, 1, 15, 18, 15, 0, 0, time.UTC)

	got := localtime.Localize(instant, "America/Denver")

	// 18:15 reinterpreted in a UTC-7 zone is seven hours later in absolute
	// terms. Lossy on purpose; see the Localize doc comment.
	assert.Equal(t, 7*time.Hour, got.Sub(instant))
}

func TestLocalize_UnknownZoneFallsBack(t *testing.T) {
	instant := time.Date(2024, 1, 15, 18, 15, 0, 0, time.UTC)

	got := localtime.Localize(instant, "Not/AZone")

	assert.Same(t, time.Local, got.Location())
}

func TestFormatClock_DenverAfternoon(t *testing.T) {
	// 18:15 UTC is 11:15 in Denver under the January -7 offset.
	instant := time.Date(2024, 1, 15, 18, 15, 0, 0, time.UTC)

	assert.Equal(t, "11:15a", localtime.FormatClock(instant, "America/Denver"))
}

func TestFormatClock_EveningSuffix(t *testing.T) {
	instant := time.Date(2023, 11, 16, 18, 15, 0, 0, time.UTC)

	assert.Equal(t, "6:15p", localtime.FormatClock(instant, "UTC"))
}

func TestFormatClock_NoonAndMidnight(t *testing.T) {
	noon := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 1, 15, 0, 5, 0, 0, time.UTC)

	assert.Equal(t, "12:00p", localtime.FormatClock(noon, "UTC"))
	assert.Equal(t, "12:05a", localtime.FormatClock(midnight, "UTC"))
}

func TestFormatClock_Idempotent(t *testing.T) {
	// Pure function: repeated calls with the same inputs agree.
	instant := time.Date(2024, 1, 15, 18, 15, 0, 0, time.UTC)

	first := localtime.FormatClock(instant, "America/Denver")
	second := localtime.FormatClock(instant, "America/Denver")

	assert.Equal(t, first, second)
}

func TestFormatDay(t *testing.T) {
	// 2024-01-17 was a Wednesday.
	instant := time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "Wed 1/17", localtime.FormatDay(instant, time.UTC))
}

func TestFormatDay_UsesGivenZone(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	// 02:00 UTC on the 17th is still the evening of the 16th in Denver.
	instant := time.Date(2024, 1, 17, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "Tue 1/16", localtime.FormatDay(instant, denver))
}

func TestSameDay(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	morning := time.Date(2024, 1, 15, 9, 0, 0, 0, denver)
	evening := time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 1, 16, 0, 1, 0, 0, denver)

	// Each value is judged on its own wall clock, not on absolute instants.
	assert.True(t, localtime.SameDay(morning, evening))
	assert.False(t, localtime.SameDay(morning, nextDay))
}
