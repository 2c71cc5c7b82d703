// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zone

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/simply-time/clock"
)

// UnknownError reports a zone identifier outside the supported set.
// Allowed carries the accepted abbreviations for display.
type UnknownError struct {
	Input   string
	Allowed []string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown or unsupported timezone: %s. Allowed: %s",
		e.Input, strings.Join(e.Allowed, ", "))
}

// ConfigurationError reports that the platform zone database lacks the
// rule set for a supported zone. This is a service misconfiguration,
// not a caller mistake, and is never retried.
type ConfigurationError struct {
	Zone ID
	Name string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("zone configuration error for %s (%s): %v", e.Zone, e.Name, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NonexistentTimeError reports a civil time that falls inside a DST
// spring-forward gap and therefore denotes no instant. GapStart and
// GapEnd are the wall-clock boundaries of the skipped interval.
type NonexistentTimeError struct {
	Moment   clock.Moment
	GapStart clock.Time
	GapEnd   clock.Time
}

func (e *NonexistentTimeError) Error() string {
	return fmt.Sprintf("nonexistent local time %s on %s: clocks jump from %s to %s",
		clock.FormatTime24(e.Moment.Time), clock.FormatDate(e.Moment.Date),
		clock.FormatTime24(e.GapStart), clock.FormatTime24(e.GapEnd))
}
