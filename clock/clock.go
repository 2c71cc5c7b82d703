// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import "fmt"

// Time is a wall-clock reading with no date or zone attached.
// Construct through NewTime or the parse functions so the range
// invariants always hold.
type Time struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// Date is a calendar date with no time or zone attached.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-last day of month
}

// Moment is a date plus a wall-clock time, not yet anchored to a zone.
type Moment struct {
	Date Date
	Time Time
}

// NewTime validates the field ranges and returns a Time.
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, &InvalidFormatError{Field: "hour", Value: fmt.Sprintf("%d", hour), Expected: "0-23"}
	}
	if minute < 0 || minute > 59 {
		return Time{}, &InvalidFormatError{Field: "minute", Value: fmt.Sprintf("%d", minute), Expected: "0-59"}
	}
	if second < 0 || second > 59 {
		return Time{}, &InvalidFormatError{Field: "second", Value: fmt.Sprintf("%d", second), Expected: "0-59"}
	}
	return Time{Hour: hour, Minute: minute, Second: second}, nil
}

// NewDate validates the field ranges, including month length and leap
// years, and returns a Date.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, &InvalidFormatError{Field: "month", Value: fmt.Sprintf("%d", month), Expected: "1-12"}
	}
	last := daysInMonth(year, month)
	if day < 1 || day > last {
		return Date{}, &InvalidFormatError{
			Field:    "day",
			Value:    fmt.Sprintf("%d", day),
			Expected: fmt.Sprintf("1-%d for %04d-%02d", last, year, month),
		}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default: // February
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}
