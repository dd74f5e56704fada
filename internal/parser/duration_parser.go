package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/balkashynov/circuit/internal/models"
)

// ParseDuration converts human input into whole seconds
// Supported formats:
// - plain number, seconds (e.g., "45", "12.7")
// - seconds suffix (e.g., "45s")
// - minutes suffix (e.g., "1.5m", "0.5m")
// Fractions are truncated toward zero.
func ParseDuration(input string) (int, error) {
	value, err := parseSeconds(input, "duration")
	if err != nil {
		return 0, err
	}
	if math.Trunc(value) <= 0 {
		return 0, &models.ValidationError{Field: "duration", Reason: "must be positive"}
	}
	return int(value), nil
}

// parseSeconds returns the untruncated number of seconds in input
func parseSeconds(input, field string) (float64, error) {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == "" {
		return 0, &models.ValidationError{Field: field, Reason: "empty input"}
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(raw, "m"):
		raw = strings.TrimSuffix(raw, "m")
		multiplier = 60
	case strings.HasSuffix(raw, "s"):
		raw = strings.TrimSuffix(raw, "s")
	}

	value, err := parseNumber(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: field, Reason: "not a number"}
	}

	value *= multiplier
	if math.Trunc(value) > models.MaxPhaseSeconds {
		return 0, &models.ValidationError{Field: field, Reason: "too large"}
	}
	return value, nil
}

// parseNumber parses a finite float
func parseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &models.ValidationError{Field: "duration", Reason: "not a number"}
	}
	return value, nil
}

// ParseSets parses a set count, which must be an integer >= 1
func ParseSets(input string) (int, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return 0, &models.ValidationError{Field: "sets", Reason: "empty input"}
	}

	sets, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: "sets", Reason: "not a whole number"}
	}
	if sets < 1 {
		return 0, &models.ValidationError{Field: "sets", Reason: "must be at least 1"}
	}
	if sets > models.MaxSets {
		return 0, &models.ValidationError{Field: "sets", Reason: fmt.Sprintf("must be at most %d", models.MaxSets)}
	}

	return sets, nil
}

// ParseRest parses a rest duration. Unlike work, rest may truncate to
// zero ("0", "0.4s", "0m"); negative values are rejected.
func ParseRest(input string) (int, error) {
	value, err := parseSeconds(input, "rest")
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, &models.ValidationError{Field: "rest", Reason: "must not be negative"}
	}
	return int(value), nil
}

// FormatClock formats seconds as MM:SS, or HH:MM:SS past an hour
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatDuration formats seconds compactly for listings, e.g. "45s", "1m30s"
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	minutes := seconds / 60
	secs := seconds % 60
	switch {
	case minutes == 0:
		return fmt.Sprintf("%ds", secs)
	case secs == 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%dm%ds", minutes, secs)
	}
}
