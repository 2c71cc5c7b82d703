// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package clock parses and renders wall-clock values.

Everything here is pure and zone-unaware: a Time is a reading off a
clock face, a Date is a calendar date, and a Moment pairs the two. None
of them mean anything as an absolute point in time until the zone
package anchors them.

# Parsing

	t, err := clock.ParseTime24("13:15")     // seconds optional
	t, err := clock.ParseTime12("1:15 PM")   // 12 AM = midnight, 12 PM = noon
	d, err := clock.ParseDate("2024-03-10")

Failures are *InvalidFormatError values naming the offending field and
the expected shape.

# Formatting

	clock.FormatTime24(t) // "13:15:00"
	clock.FormatTime12(t) // "1:15 PM"

FormatTime12 and ParseTime12 are exact inverses over all valid Times.
*/
package clock
