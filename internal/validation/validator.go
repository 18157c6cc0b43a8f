package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/best-life-api/internal/prediction"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors joins several validation errors into one error value
type Errors []ValidationError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Error())
	}
	return strings.Join(parts, "; ")
}

// ParseID parses an unsigned base-10 path segment. Signs and whitespace
// are rejected.
func ParseID(field, raw string) (int64, *ValidationError) {
	if raw == "" {
		return 0, &ValidationError{Field: field, Message: "is required"}
	}
	if !IsInteger(raw) {
		return 0, &ValidationError{Field: field, Message: "must be an integer", Value: raw}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "out of range", Value: raw}
	}
	return id, nil
}

// IsInteger reports whether raw is made of ASCII digits only
func IsInteger(raw string) bool {
	if raw == "" {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// ParsePredictInput parses the four /predict path segments as floats.
// Every bad segment is reported, not only the first.
func ParsePredictInput(education, health, safety, environment string) (prediction.Input, error) {
	var errs Errors
	parse := func(field, raw string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			errs = append(errs, ValidationError{Field: field, Message: "must be a number", Value: raw})
			return 0
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, ValidationError{Field: field, Message: "must be finite", Value: raw})
			return 0
		}
		return v
	}

	in := prediction.Input{
		Education:   parse("education", education),
		Health:      parse("health", health),
		Safety:      parse("safety", safety),
		Environment: parse("environment", environment),
	}
	if len(errs) > 0 {
		return prediction.Input{}, errs
	}
	return in, nil
}
