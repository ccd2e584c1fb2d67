// Package validate checks generated theme files for structural and
// color-syntax problems. Findings are collected as data, never raised;
// one broken file does not stop validation of the rest.
package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/coop-app/themekit/internal/hexcolor"
	"github.com/coop-app/themekit/internal/theme"
)

// Violation kinds.
const (
	KindMissingField  = "missing_field"
	KindInvalidColor  = "invalid_color"
	KindMalformedFile = "malformed_file"
)

// Violation is a single validation finding.
type Violation struct {
	Kind  string
	Field string
	Value string
}

func (v Violation) String() string {
	switch v.Kind {
	case KindMissingField:
		return fmt.Sprintf("Missing required field: %s", v.Field)
	case KindInvalidColor:
		return fmt.Sprintf("Invalid hex color in %s: %s", v.Field, v.Value)
	default:
		return v.Value
	}
}

// Colors validates one role table. Every required role must be present
// and every value present, required or not, must be a syntactically
// valid hex color.
func Colors(colors map[string]string) []Violation {
	var violations []Violation

	for _, role := range theme.Roles() {
		if _, ok := colors[role]; !ok {
			violations = append(violations, Violation{Kind: KindMissingField, Field: role})
		}
	}

	fields := make([]string, 0, len(colors))
	for field := range colors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if value := colors[field]; !hexcolor.Valid(value) {
			violations = append(violations, Violation{Kind: KindInvalidColor, Field: field, Value: value})
		}
	}

	return violations
}

// Result is the outcome of validating one serialized theme family.
type Result struct {
	Valid  bool
	ID     string
	Name   string
	Errors []string
}

// familyEnvelope mirrors the theme.Family wire shape loosely enough to
// detect missing top-level fields.
type familyEnvelope struct {
	ID    *string           `json:"id"`
	Name  *string           `json:"name"`
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

// Family validates one serialized theme family. Missing top-level
// fields fail fast: nested color validation is skipped so the report
// stays focused on the structural problem.
func Family(raw []byte) Result {
	var envelope familyEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Result{Errors: []string{fmt.Sprintf("Invalid JSON: %v", err)}}
	}

	var errs []string
	if envelope.ID == nil {
		errs = append(errs, "Missing required top-level field: id")
	}
	if envelope.Name == nil {
		errs = append(errs, "Missing required top-level field: name")
	}
	if envelope.Light == nil {
		errs = append(errs, "Missing required top-level field: light")
	}
	if envelope.Dark == nil {
		errs = append(errs, "Missing required top-level field: dark")
	}
	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	for _, violation := range Colors(envelope.Light) {
		errs = append(errs, "Light theme: "+violation.String())
	}
	for _, violation := range Colors(envelope.Dark) {
		errs = append(errs, "Dark theme: "+violation.String())
	}

	return Result{
		Valid:  len(errs) == 0,
		ID:     *envelope.ID,
		Name:   *envelope.Name,
		Errors: errs,
	}
}

// File validates one theme file on disk. Read and parse failures are
// reported in the result, not returned, so a broken file never aborts
// the batch.
func File(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("Error reading file: %v", err)}}
	}
	return Family(data)
}
