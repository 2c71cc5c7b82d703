// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import "testing"

func TestFormatTime12_Boundaries(t *testing.T) {
	tests := []struct {
		in   Time
		want string
	}{
		{Time{0, 0, 0}, "12:00 AM"},
		{Time{1, 5, 0}, "1:05 AM"},
		{Time{11, 59, 0}, "11:59 AM"},
		{Time{12, 0, 0}, "12:00 PM"},
		{Time{13, 15, 0}, "1:15 PM"},
		{Time{23, 59, 0}, "11:59 PM"},
		{Time{18, 30, 15}, "6:30:15 PM"},
	}

	for _, tc := range tests {
		if got := FormatTime12(tc.in); got != tc.want {
			t.Errorf("FormatTime12(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTime24(t *testing.T) {
	tests := []struct {
		in   Time
		want string
	}{
		{Time{0, 0, 0}, "00:00:00"},
		{Time{9, 5, 3}, "09:05:03"},
		{Time{23, 59, 59}, "23:59:59"},
	}

	for _, tc := range tests {
		if got := FormatTime24(tc.in); got != tc.want {
			t.Errorf("FormatTime24(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(Date{2024, 3, 9}); got != "2024-03-09" {
		t.Errorf("FormatDate = %q, want 2024-03-09", got)
	}
}

// Every valid Time must survive a format/parse round trip in both notations.
func TestRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 1, 30, 59} {
			for _, second := range []int{0, 1, 59} {
				orig := Time{Hour: hour, Minute: minute, Second: second}

				got24, err := ParseTime24(FormatTime24(orig))
				if err != nil {
					t.Fatalf("ParseTime24(FormatTime24(%v)) failed: %v", orig, err)
				}
				if got24 != orig {
					t.Errorf("24-hour round trip: %v -> %v", orig, got24)
				}

				got12, err := ParseTime12(FormatTime12(orig))
				if err != nil {
					t.Fatalf("ParseTime12(FormatTime12(%v)) failed: %v", orig, err)
				}
				if got12 != orig {
					t.Errorf("12-hour round trip: %v -> %v", orig, got12)
				}
			}
		}
	}
}
