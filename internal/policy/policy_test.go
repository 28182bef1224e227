package policy

import (
	"testing"
	"time"

	"mini-rules/internal/capability"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	require.NoError(t, err)
	return ts
}

func newPolicy(t *testing.T, now time.Time) *Policy {
	t.Helper()
	p, err := New(capability.NewFixedClock(now), DefaultOpeningHours, ChristmasDiscount, zerolog.Nop())
	require.NoError(t, err)
	return p
}

func TestPolicy_IsOnline(t *testing.T) {
	tests := []struct {
		name     string
		now      string
		expected bool
	}{
		{name: "before opening", now: "2024-01-01 07:59", expected: false},
		{name: "at opening", now: "2024-01-01 08:00", expected: true},
		{name: "midday", now: "2024-01-01 12:30", expected: true},
		{name: "just before closing", now: "2024-01-01 19:59", expected: true},
		{name: "at closing", now: "2024-01-01 20:00", expected: false},
		{name: "after closing", now: "2024-01-01 20:01", expected: false},
		{name: "midnight", now: "2024-01-01 00:00", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPolicy(t, at(t, tt.now))
			assert.Equal(t, tt.expected, p.IsOnline())
		})
	}
}

func TestPolicy_State(t *testing.T) {
	assert.Equal(t, StateOpen, newPolicy(t, at(t, "2024-01-01 08:00")).State())
	assert.Equal(t, StateClosed, newPolicy(t, at(t, "2024-01-01 07:59")).State())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "closed", StateClosed.String())
}

func TestPolicy_Discount(t *testing.T) {
	tests := []struct {
		name     string
		now      string
		expected float64
	}{
		{name: "start of Christmas day", now: "2024-12-25 00:01", expected: 0.2},
		{name: "end of Christmas day", now: "2024-12-25 23:59", expected: 0.2},
		{name: "day after Christmas", now: "2024-12-26 00:01", expected: 0},
		{name: "Christmas eve", now: "2024-12-24 23:59", expected: 0},
		{name: "25th of another month", now: "2024-11-25 12:00", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPolicy(t, at(t, tt.now))
			assert.Equal(t, tt.expected, p.Discount())
		})
	}
}

func TestPolicy_UsesInstantLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 23:30 UTC on Dec 24th is already Christmas morning in Tokyo.
	now := time.Date(2024, 12, 24, 23, 30, 0, 0, time.UTC).In(tokyo)

	p := newPolicy(t, now)

	assert.Equal(t, 0.2, p.Discount())
	assert.True(t, p.IsOnline())
}

func TestNew_Validation(t *testing.T) {
	clock := capability.NewFixedClock(time.Now())

	tests := []struct {
		name     string
		clock    capability.Clock
		hours    OpeningHours
		seasonal SeasonalDiscount
		errorMsg string
	}{
		{name: "nil clock", hours: DefaultOpeningHours, seasonal: ChristmasDiscount, errorMsg: "clock is required"},
		{name: "open after close", clock: clock, hours: OpeningHours{Open: 20, Close: 8}, seasonal: ChristmasDiscount, errorMsg: "invalid opening hours"},
		{name: "close past midnight", clock: clock, hours: OpeningHours{Open: 8, Close: 25}, seasonal: ChristmasDiscount, errorMsg: "invalid opening hours"},
		{name: "invalid month", clock: clock, hours: DefaultOpeningHours, seasonal: SeasonalDiscount{Month: 13, Day: 1, Rate: 0.1}, errorMsg: "invalid seasonal month"},
		{name: "invalid day", clock: clock, hours: DefaultOpeningHours, seasonal: SeasonalDiscount{Month: time.February, Day: 30, Rate: 0.1}, errorMsg: "invalid seasonal day"},
		{name: "rate too high", clock: clock, hours: DefaultOpeningHours, seasonal: SeasonalDiscount{Month: time.July, Day: 4, Rate: 1}, errorMsg: "seasonal rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.clock, tt.hours, tt.seasonal, zerolog.Nop())
			require.Error(t, err)
			assert.Nil(t, p)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSeasonalDiscount_LeapDay(t *testing.T) {
	leap := SeasonalDiscount{Month: time.February, Day: 29, Rate: 0.1}
	require.NoError(t, leap.Validate())

	assert.Equal(t, 0.1, leap.RateAt(time.Date(2028, 2, 29, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.0, leap.RateAt(time.Date(2027, 3, 1, 10, 0, 0, 0, time.UTC)))
}
