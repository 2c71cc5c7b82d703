// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import "fmt"

// FormatTime24 renders a Time as "HH:MM:SS", zero-padded.
func FormatTime24(t Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// FormatTime12 renders a Time in 12-hour notation with an AM/PM suffix:
// "h:MM AM", hour without leading zero. Seconds appear only when
// nonzero ("h:MM:SS PM"), so ParseTime12 inverts this exactly. Total
// over all valid Times - no failure path.
func FormatTime12(t Time) string {
	hour := t.Hour
	period := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		hour -= 12
		period = "PM"
	}

	if t.Second != 0 {
		return fmt.Sprintf("%d:%02d:%02d %s", hour, t.Minute, t.Second, period)
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, period)
}

// FormatDate renders a Date as "YYYY-MM-DD".
func FormatDate(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
