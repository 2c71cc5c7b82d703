// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	pattern24   = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	pattern12   = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))? (AM|PM)$`)
	patternDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// ParseTime24 parses a 24-hour clock string: "H:MM", "HH:MM" or
// "HH:MM:SS". Seconds default to 0. Surrounding whitespace is ignored.
func ParseTime24(s string) (Time, error) {
	s = strings.TrimSpace(s)
	m := pattern24.FindStringSubmatch(s)
	if m == nil {
		return Time{}, &InvalidFormatError{Field: "time", Value: s, Expected: "HH:MM or HH:MM:SS (24-hour)"}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	return NewTime(hour, minute, second)
}

// ParseTime12 parses a 12-hour clock string: "H:MM AM", "HH:MM PM",
// with optional seconds ("H:MM:SS AM"). Hour must be 1-12; "12:xx AM"
// is midnight, "12:xx PM" is noon. Surrounding whitespace is ignored.
func ParseTime12(s string) (Time, error) {
	s = strings.TrimSpace(s)
	m := pattern12.FindStringSubmatch(s)
	if m == nil {
		return Time{}, &InvalidFormatError{Field: "time", Value: s, Expected: "H:MM AM or H:MM PM (12-hour)"}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	if hour < 1 || hour > 12 {
		return Time{}, &InvalidFormatError{Field: "hour", Value: m[1], Expected: "1-12"}
	}

	// 12 AM is hour 0, 12 PM stays 12, everything else shifts by the meridiem.
	switch {
	case m[4] == "AM" && hour == 12:
		hour = 0
	case m[4] == "PM" && hour != 12:
		hour += 12
	}
	return NewTime(hour, minute, second)
}

// ParseDate parses a "YYYY-MM-DD" string, rejecting impossible dates
// such as day 31 in a 30-day month.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	m := patternDate.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &InvalidFormatError{Field: "date", Value: s, Expected: "YYYY-MM-DD"}
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return NewDate(year, month, day)
}
