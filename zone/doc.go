// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package zone resolves civil times against a fixed set of named zones
and converts between them.

# Supported Zones

Four abbreviations, matched case-sensitively: EST, CST, PST, UTC.
Legacy long-form names (US/Eastern, US/Central, US/Pacific) are
accepted and normalized to the abbreviations. Nothing else is valid.

	reg, err := zone.NewRegistry() // loads tzdata rules once, at startup
	id, err := reg.Normalize("US/Eastern") // zone.Eastern

# Resolution

Resolve classifies a civil moment under a zone's rules as unique,
ambiguous or nonexistent:

  - unique: one offset regime applies; the matching instant is returned.
  - ambiguous (fall-back fold): two instants qualify; the later one -
    the reading under the post-transition standard offset - is chosen,
    always. Ambiguity is never an error.
  - nonexistent (spring-forward gap): no instant qualifies; Resolve
    fails with *NonexistentTimeError naming the gap boundaries and
    never shifts the time.

# Conversion

	conv := zone.NewConverter(reg)
	res, err := conv.Convert("13:15:00", "2024-07-04", "EST", "PST")

Omitting the date resolves against today's date as observed in the
source zone, which matters near local midnight.
*/
package zone
