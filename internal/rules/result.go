package rules

import (
	"errors"
	"fmt"
	"strings"
)

// SuccessMessage is the text form of a successful Result.
const SuccessMessage = "Validation successful"

// Violation is a single failed rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is either a success carrying the accepted value or a failure
// carrying a non-empty, ordered list of violations.
type Result struct {
	value      any
	violations []Violation
}

// Success returns an accepted result.
func Success(value any) Result {
	return Result{value: value}
}

// Failure returns a rejected result. It panics when called without violations.
func Failure(violations ...Violation) Result {
	if len(violations) == 0 {
		panic("rules: failure requires at least one violation")
	}
	return Result{violations: append([]Violation(nil), violations...)}
}

// OK reports whether the result is a success.
func (r Result) OK() bool {
	return len(r.violations) == 0
}

// Value returns the accepted value, or nil for a failure.
func (r Result) Value() any {
	return r.value
}

// Violations returns a copy of the violations in rule declaration order.
func (r Result) Violations() []Violation {
	return append([]Violation(nil), r.violations...)
}

// Messages returns the violation messages in rule declaration order.
func (r Result) Messages() []string {
	messages := make([]string, len(r.violations))
	for i, v := range r.violations {
		messages[i] = v.Message
	}
	return messages
}

// Err returns nil for a success and ValidationErrors for a failure.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return ValidationErrors(r.Violations())
}

func (r Result) String() string {
	if r.OK() {
		return SuccessMessage
	}
	return strings.Join(r.Messages(), ", ")
}

// ValidationErrors is the error form of a failed Result.
type ValidationErrors []Violation

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, v := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any violation belongs to field.
func (ve ValidationErrors) Has(field string) bool {
	for _, v := range ve {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, v := range ve {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing fields in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range ve {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
