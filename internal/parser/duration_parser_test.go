package parser

import (
	"errors"
	"testing"

	"github.com/balkashynov/circuit/internal/models"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"45", 45},
		{"45s", 45},
		{"1.5m", 90},
		{"0.5m", 30},
		{"  2M ", 120},
		{"12.9", 12},
		{"12.9s", 12},
		{"1 m", 60},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	tests := []struct {
		input      string
		wantReason string
	}{
		{"", "empty input"},
		{"   ", "empty input"},
		{"abc", "not a number"},
		{"m", "not a number"},
		{"s", "not a number"},
		{"1.5h", "not a number"},
		{"nan", "not a number"},
		{"inf", "not a number"},
		{"0", "must be positive"},
		{"0s", "must be positive"},
		{"0.5", "must be positive"},
		{"0.001m", "must be positive"},
		{"-10", "must be positive"},
		{"-1m", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseDuration(%q) err = %v, want ValidationError", tt.input, err)
			}
			if verr.Reason != tt.wantReason {
				t.Fatalf("reason = %q, want %q", verr.Reason, tt.wantReason)
			}
		})
	}
}

func TestParseDuration_LongValues(t *testing.T) {
	tests := map[string]int{
		"90000":   90000,
		"1500m":   90000,
		"100000m": 6000000,
	}
	for input, want := range tests {
		if got, err := ParseDuration(input); err != nil || got != want {
			t.Fatalf("ParseDuration(%q) = %d, %v; want %d", input, got, err, want)
		}
	}
}

func TestParseDuration_TooLarge(t *testing.T) {
	for _, input := range []string{"1e300", "99999999999m", "3000000000s"} {
		_, err := ParseDuration(input)
		var verr *models.ValidationError
		if !errors.As(err, &verr) || verr.Reason != "too large" {
			t.Fatalf("ParseDuration(%q) err = %v, want too large", input, err)
		}
	}
}

func TestParseSets(t *testing.T) {
	if got, err := ParseSets(" 3 "); err != nil || got != 3 {
		t.Fatalf("ParseSets(3) = %d, %v", got, err)
	}
	if got, err := ParseSets("1000"); err != nil || got != models.MaxSets {
		t.Fatalf("ParseSets(1000) = %d, %v", got, err)
	}
	for _, input := range []string{"", "0", "-2", "1.5", "x", "1001", "4611686018427387904"} {
		if _, err := ParseSets(input); err == nil {
			t.Fatalf("ParseSets(%q) should fail", input)
		}
	}
}

func TestParseRest(t *testing.T) {
	for _, input := range []string{"0", "0s", "0m", " 0 ", "0.0", "00", "0.4s", "0.001m"} {
		got, err := ParseRest(input)
		if err != nil || got != 0 {
			t.Fatalf("ParseRest(%q) = %d, %v; want 0", input, got, err)
		}
	}
	if got, err := ParseRest("15s"); err != nil || got != 15 {
		t.Fatalf("ParseRest(15s) = %d, %v", got, err)
	}

	if got, err := ParseRest("12.9"); err != nil || got != 12 {
		t.Fatalf("ParseRest(12.9) = %d, %v", got, err)
	}
	for _, input := range []string{"-5", "-0.4s", ""} {
		if _, err := ParseRest(input); err == nil {
			t.Fatalf("ParseRest(%q) should fail", input)
		}
	}

	_, err := ParseRest("soon")
	var verr *models.ValidationError
	if !errors.As(err, &verr) || verr.Field != "rest" {
		t.Fatalf("ParseRest(soon) err = %v, want rest ValidationError", err)
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		-3:   "00:00",
		0:    "00:00",
		5:    "00:05",
		90:   "01:30",
		3725: "01:02:05",
	}
	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:   "0s",
		45:  "45s",
		60:  "1m",
		90:  "1m30s",
		600: "10m",
	}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}
