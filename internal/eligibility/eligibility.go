// Package eligibility answers age-based eligibility questions against a
// static table of minimum ages per jurisdiction.
package eligibility

import (
	"fmt"
	"os"
	"strings"

	"mini-rules/internal/model"

	"gopkg.in/yaml.v3"
)

// Table maps a jurisdiction code to its minimum driving age.
type Table map[string]int

// DefaultTable returns the built-in minimum driving ages.
func DefaultTable() Table {
	return Table{
		"US": 16,
		"UK": 17,
	}
}

// Validate checks that every entry has a code and a positive minimum age.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("eligibility table is empty")
	}
	for code, age := range t {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("eligibility table has an empty jurisdiction code")
		}
		if age <= 0 {
			return fmt.Errorf("jurisdiction %s: minimum age must be positive, got %d", code, age)
		}
	}
	return nil
}

// MinimumAge returns the minimum age for jurisdiction.
// Unknown jurisdictions yield model.ErrInvalidCountryCode.
func (t Table) MinimumAge(jurisdiction string) (int, error) {
	age, ok := t[jurisdiction]
	if !ok {
		return 0, model.ErrInvalidCountryCode
	}
	return age, nil
}

// CanDrive reports whether age meets the jurisdiction's minimum, inclusive.
// An unknown jurisdiction is an error, never a false answer.
func (t Table) CanDrive(age int, jurisdiction string) (bool, error) {
	min, err := t.MinimumAge(jurisdiction)
	if err != nil {
		return false, err
	}
	return age >= min, nil
}

// CanDrive checks age against the built-in table.
func CanDrive(age int, jurisdiction string) (bool, error) {
	return DefaultTable().CanDrive(age, jurisdiction)
}

// Parse decodes a YAML mapping of jurisdiction code to minimum age, e.g.
//
//	US: 16
//	UK: 17
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse eligibility table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads a YAML eligibility table from path.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read eligibility table %s: %w", path, err)
	}
	return Parse(data)
}
