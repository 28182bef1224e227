package rules

import (
	"regexp"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LengthBounds is an inclusive [Min, Max] length range.
type LengthBounds struct {
	Min int
	Max int
}

// DefaultUsernameBounds are the username length limits used for sign-up.
var DefaultUsernameBounds = LengthBounds{Min: 5, Max: 15}

// IsPriceInRange reports whether min <= price <= max.
func IsPriceInRange(price, min, max float64) bool {
	return price >= min && price <= max
}

// IsValidUsername reports whether value is a string whose length in runes is within bounds.
// Non-string values are never valid.
func IsValidUsername(value any, bounds LengthBounds) bool {
	s, ok := AsString(value)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= bounds.Min && n <= bounds.Max
}

// IsValidEmail reports whether s has the shape local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// Max returns the greater of a and b, or a when they are equal.
func Max(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
