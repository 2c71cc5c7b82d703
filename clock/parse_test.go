// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTime24(t *testing.T) {
	tests := []struct {
		input string
		want  Time
	}{
		{"00:00", Time{0, 0, 0}},
		{"9:05", Time{9, 5, 0}},
		{"09:05", Time{9, 5, 0}},
		{"13:15:42", Time{13, 15, 42}},
		{"23:59:59", Time{23, 59, 59}},
		{"  07:30  ", Time{7, 30, 0}}, // whitespace ignored
	}

	for _, tc := range tests {
		got, err := ParseTime24(tc.input)
		if err != nil {
			t.Errorf("ParseTime24(%q) returned error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseTime24(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseTime24_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"25:00",
		"12:60",
		"12:00:60",
		"12",
		"12:3",
		"noon",
		"12:00 PM",
		"-1:00",
	}

	for _, input := range inputs {
		_, err := ParseTime24(input)
		if err == nil {
			t.Errorf("ParseTime24(%q) should have failed", input)
			continue
		}
		var ife *InvalidFormatError
		if !errors.As(err, &ife) {
			t.Errorf("ParseTime24(%q) error = %T, want *InvalidFormatError", input, err)
		}
	}
}

func TestParseTime12(t *testing.T) {
	tests := []struct {
		input string
		want  Time
	}{
		{"12:00 AM", Time{0, 0, 0}},  // midnight
		{"12:00 PM", Time{12, 0, 0}}, // noon
		{"1:05 AM", Time{1, 5, 0}},
		{"11:59 PM", Time{23, 59, 0}},
		{"1:15 PM", Time{13, 15, 0}},
		{"1:15:42 PM", Time{13, 15, 42}},
	}

	for _, tc := range tests {
		got, err := ParseTime12(tc.input)
		if err != nil {
			t.Errorf("ParseTime12(%q) returned error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseTime12(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseTime12_Invalid(t *testing.T) {
	inputs := []string{
		"0:30 AM",   // hour 0 not valid in 12-hour notation
		"13:00 PM",  // hour 13 not valid
		"12:60 AM",  // minute out of range
		"12:00",     // missing meridiem
		"12:00 am",  // lowercase not accepted
		"12:00  PM", // double space
	}

	for _, input := range inputs {
		if _, err := ParseTime12(input); err == nil {
			t.Errorf("ParseTime12(%q) should have failed", input)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  Date
	}{
		{"2024-03-10", Date{2024, 3, 10}},
		{"2024-02-29", Date{2024, 2, 29}}, // leap year
		{"2024-12-31", Date{2024, 12, 31}},
	}

	for _, tc := range tests {
		got, err := ParseDate(tc.input)
		if err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseDate(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []string{
		"2024-13-01", // month out of range
		"2024-04-31", // April has 30 days
		"2023-02-29", // not a leap year
		"2100-02-29", // century rule
		"03/10/2024",
		"2024-3-10", // month must be two digits
		"",
	}

	for _, input := range inputs {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) should have failed", input)
		}
	}
}

func TestInvalidFormatErrorContext(t *testing.T) {
	_, err := ParseTime24("12:60")
	var ife *InvalidFormatError
	if !errors.As(err, &ife) {
		t.Fatalf("expected *InvalidFormatError, got %T", err)
	}
	if ife.Field != "minute" {
		t.Errorf("expected field 'minute', got %q", ife.Field)
	}
	if ife.Value != "60" {
		t.Errorf("expected value '60', got %q", ife.Value)
	}
}
