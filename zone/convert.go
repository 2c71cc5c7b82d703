// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zone

import (
	"time"

	"github.com/danielhkuo/simply-time/clock"
)

// Converter orchestrates the registry, parser and resolver for a
// single conversion. It is stateless apart from the shared read-only
// registry and safe for concurrent use.
type Converter struct {
	reg *Registry
	now func() time.Time // injectable for tests
}

func NewConverter(reg *Registry) *Converter {
	return &Converter{reg: reg, now: time.Now}
}

// Result is a fully populated conversion outcome. Convert never
// returns a partial Result.
type Result struct {
	FromZone  ID
	Source    clock.Moment
	ToZone    ID
	Target    clock.Moment
	TargetDST bool
}

// Current is a zone's current civil time reading.
type Current struct {
	Zone   ID
	Moment clock.Moment
	DST    bool
	Offset int // seconds east of UTC
}

// Convert turns a 24-hour civil time string in one zone into the
// equivalent civil time in another. dateStr may be empty, in which
// case the moment resolves against today's date as observed in the
// source zone. Failures from normalization, parsing and resolution
// propagate unchanged.
func (c *Converter) Convert(timeStr, dateStr, from, to string) (Result, error) {
	fromID, err := c.reg.Normalize(from)
	if err != nil {
		return Result{}, err
	}
	toID, err := c.reg.Normalize(to)
	if err != nil {
		return Result{}, err
	}
	fromLoc, err := c.reg.Rules(fromID)
	if err != nil {
		return Result{}, err
	}
	toLoc, err := c.reg.Rules(toID)
	if err != nil {
		return Result{}, err
	}

	ct, err := clock.ParseTime24(timeStr)
	if err != nil {
		return Result{}, err
	}

	var date clock.Date
	if dateStr != "" {
		date, err = clock.ParseDate(dateStr)
		if err != nil {
			return Result{}, err
		}
	} else {
		// "Today" is zone-dependent near local midnight, so take the
		// current date as the source zone observes it.
		now := c.now().In(fromLoc)
		date = clock.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	}

	source := clock.Moment{Date: date, Time: ct}
	resolved, err := Resolve(fromLoc, source)
	if err != nil {
		return Result{}, err
	}

	target := resolved.Instant.In(toLoc)
	return Result{
		FromZone: fromID,
		Source:   source,
		ToZone:   toID,
		Target:   momentOf(target),
		// DST per the target zone's rules at the resolved instant.
		TargetDST: target.IsDST(),
	}, nil
}

// CurrentTime reports the current civil time in the given zone.
func (c *Converter) CurrentTime(zone string) (Current, error) {
	id, err := c.reg.Normalize(zone)
	if err != nil {
		return Current{}, err
	}
	loc, err := c.reg.Rules(id)
	if err != nil {
		return Current{}, err
	}

	now := c.now().In(loc)
	_, offset := now.Zone()
	return Current{
		Zone:   id,
		Moment: momentOf(now),
		DST:    now.IsDST(),
		Offset: offset,
	}, nil
}

func momentOf(t time.Time) clock.Moment {
	return clock.Moment{
		Date: clock.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
		Time: clock.Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()},
	}
}
