// Package policy evaluates time-dependent store rules against an injected clock.
package policy

import (
	"fmt"
	"time"

	"mini-rules/internal/capability"

	"github.com/rs/zerolog"
)

// StoreState is the open/closed state of the store.
type StoreState int

const (
	StateClosed StoreState = iota
	StateOpen
)

func (s StoreState) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// OpeningHours is the daily window [Open, Close) in whole hours.
type OpeningHours struct {
	Open  int
	Close int
}

// DefaultOpeningHours are 08:00 inclusive to 20:00 exclusive.
var DefaultOpeningHours = OpeningHours{Open: 8, Close: 20}

// Validate checks 0 <= Open < Close <= 24.
func (h OpeningHours) Validate() error {
	if h.Open < 0 || h.Close > 24 || h.Open >= h.Close {
		return fmt.Errorf("invalid opening hours %d-%d", h.Open, h.Close)
	}
	return nil
}

// State returns the store state at t, using t's own location.
func (h OpeningHours) State(t time.Time) StoreState {
	hour := t.Hour()
	if hour >= h.Open && hour < h.Close {
		return StateOpen
	}
	return StateClosed
}

// SeasonalDiscount grants Rate on one calendar day every year.
type SeasonalDiscount struct {
	Month time.Month
	Day   int
	Rate  float64
}

// ChristmasDiscount is 20% off on December 25th.
var ChristmasDiscount = SeasonalDiscount{Month: time.December, Day: 25, Rate: 0.2}

// Validate checks that the date exists and the rate is in [0, 1).
func (d SeasonalDiscount) Validate() error {
	if d.Month < time.January || d.Month > time.December {
		return fmt.Errorf("invalid seasonal month %d", d.Month)
	}
	// 2024 is a leap year so February 29th is accepted.
	probe := time.Date(2024, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	if d.Day < 1 || probe.Month() != d.Month {
		return fmt.Errorf("invalid seasonal day %d for %s", d.Day, d.Month)
	}
	if d.Rate < 0 || d.Rate >= 1 {
		return fmt.Errorf("seasonal rate must be in [0, 1), got %v", d.Rate)
	}
	return nil
}

// RateAt returns Rate when t falls on the discount day and 0 otherwise.
func (d SeasonalDiscount) RateAt(t time.Time) float64 {
	if t.Month() == d.Month && t.Day() == d.Day {
		return d.Rate
	}
	return 0
}

// Policy answers store questions for the instant supplied by its clock.
type Policy struct {
	clock    capability.Clock
	hours    OpeningHours
	seasonal SeasonalDiscount
	logger   zerolog.Logger
}

// New creates a policy. The clock is referenced, not owned.
func New(clock capability.Clock, hours OpeningHours, seasonal SeasonalDiscount, logger zerolog.Logger) (*Policy, error) {
	if clock == nil {
		return nil, fmt.Errorf("policy clock is required")
	}
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	if err := seasonal.Validate(); err != nil {
		return nil, err
	}

	return &Policy{
		clock:    clock,
		hours:    hours,
		seasonal: seasonal,
		logger:   logger.With().Str("component", "store-policy").Logger(),
	}, nil
}

// State returns the current store state.
func (p *Policy) State() StoreState {
	now := p.clock.Now()
	state := p.hours.State(now)
	p.logger.Debug().
		Time("now", now).
		Stringer("state", state).
		Msg("store state evaluated")
	return state
}

// IsOnline reports whether the store is open now.
func (p *Policy) IsOnline() bool {
	return p.State() == StateOpen
}

// Discount returns today's seasonal discount rate.
func (p *Policy) Discount() float64 {
	now := p.clock.Now()
	rate := p.seasonal.RateAt(now)
	p.logger.Debug().
		Time("now", now).
		Float64("rate", rate).
		Msg("seasonal discount evaluated")
	return rate
}
