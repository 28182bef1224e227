package rules

import (
	"fmt"
	"unicode/utf8"
)

// Record is a loosely typed input record keyed by field name.
// Values usually come straight from a decoder and have not been type checked.
type Record map[string]any

// Rule is a named predicate plus the message reported when it fails.
type Rule struct {
	Field   string
	Message string
	Check   func(value any) bool
}

// Validate applies every rule to record and returns either Success(record)
// or a Failure listing the violated rules in declaration order.
//
// Rules that share a field run in order and stop at the first failure for
// that field, so a type check declared first shields the value checks after
// it. Rules for other fields are always evaluated.
func Validate(record Record, rules []Rule) Result {
	var violations []Violation
	failed := make(map[string]bool)

	for _, rule := range rules {
		if failed[rule.Field] {
			continue
		}
		if rule.Check == nil {
			panic(fmt.Sprintf("rules: rule for field %q has no check", rule.Field))
		}
		if !rule.Check(record[rule.Field]) {
			failed[rule.Field] = true
			violations = append(violations, Violation{
				Field:   rule.Field,
				Message: rule.Message,
			})
		}
	}

	if len(violations) > 0 {
		return Failure(violations...)
	}
	return Success(record)
}

// IsString fails unless the value is a string.
func IsString(field, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(value any) bool {
			_, ok := AsString(value)
			return ok
		},
	}
}

// IsNumber fails unless the value is a finite number.
func IsNumber(field, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(value any) bool {
			_, ok := AsNumber(value)
			return ok
		},
	}
}

// LengthBetween checks a string length in runes against inclusive bounds.
// Non-string values fail.
func LengthBetween(field, message string, min, max int) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(value any) bool {
			s, ok := AsString(value)
			if !ok {
				return false
			}
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
	}
}

// AtLeast checks a number against an inclusive lower bound.
// Non-numeric values fail.
func AtLeast(field, message string, min float64) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(value any) bool {
			n, ok := AsNumber(value)
			return ok && n >= min
		},
	}
}

// MatchesEmail checks that a string looks like an email address.
func MatchesEmail(field, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(value any) bool {
			s, ok := AsString(value)
			return ok && IsValidEmail(s)
		},
	}
}
