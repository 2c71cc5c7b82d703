// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zone

import (
	"time"

	"github.com/danielhkuo/simply-time/clock"
)

// ResolvedInstant is an absolute point in time together with the UTC
// offset and daylight-saving flag that applied when it was derived
// from a civil moment in a specific zone.
type ResolvedInstant struct {
	Instant time.Time
	Offset  int // seconds east of UTC
	DST     bool
}

// probeWindow brackets any DST transition adjacent to a civil moment.
// Real-world offsets stay well inside +/-15h, so 30h on each side is
// enough to observe both regimes around a transition.
const probeWindow = 30 * time.Hour

// Resolve anchors a civil moment to an absolute instant under the
// given zone rules.
//
// A moment inside a fall-back fold denotes two instants; Resolve
// deterministically picks the later one, the reading under the
// post-transition (standard) offset. A moment inside a spring-forward
// gap denotes no instant and fails with *NonexistentTimeError carrying
// the gap boundaries; the time is never silently shifted.
func Resolve(loc *time.Location, m clock.Moment) (ResolvedInstant, error) {
	// Interpret the civil fields as if UTC, then test each offset
	// regime in effect near that moment: the candidate instant for
	// offset o is u-o, and it is valid iff rendering it back in loc
	// reproduces the civil fields.
	u := time.Date(m.Date.Year, time.Month(m.Date.Month), m.Date.Day,
		m.Time.Hour, m.Time.Minute, m.Time.Second, 0, time.UTC)

	var best ResolvedInstant
	matched := 0
	for _, off := range candidateOffsets(loc, u) {
		cand := u.Add(-time.Duration(off) * time.Second)
		local := cand.In(loc)
		if !sameCivil(local, m) {
			continue
		}
		matched++
		// Fold policy: keep the later of the matching instants.
		if matched == 1 || cand.After(best.Instant) {
			best = ResolvedInstant{Instant: cand, Offset: off, DST: local.IsDST()}
		}
	}

	if matched == 0 {
		start, end := gapBounds(loc, u)
		return ResolvedInstant{}, &NonexistentTimeError{Moment: m, GapStart: start, GapEnd: end}
	}
	return best, nil
}

// candidateOffsets returns the distinct UTC offsets in effect around
// the given instant, at most two for any real zone.
func candidateOffsets(loc *time.Location, u time.Time) []int {
	offsets := make([]int, 0, 2)
	for _, probe := range []time.Time{u.Add(-probeWindow), u, u.Add(probeWindow)} {
		_, off := probe.In(loc).Zone()
		seen := false
		for _, o := range offsets {
			if o == off {
				seen = true
				break
			}
		}
		if !seen {
			offsets = append(offsets, off)
		}
	}
	return offsets
}

func sameCivil(t time.Time, m clock.Moment) bool {
	return t.Year() == m.Date.Year &&
		int(t.Month()) == m.Date.Month &&
		t.Day() == m.Date.Day &&
		t.Hour() == m.Time.Hour &&
		t.Minute() == m.Time.Minute &&
		t.Second() == m.Time.Second
}

// gapBounds locates the transition that skipped the civil moment and
// returns the wall-clock boundaries of the skipped interval: the
// moment the clocks read when they jumped, and the moment they jumped
// to.
func gapBounds(loc *time.Location, u time.Time) (start, end clock.Time) {
	lo := u.Add(-probeWindow)
	hi := u.Add(probeWindow)
	_, offBefore := lo.In(loc).Zone()
	_, offAfter := hi.In(loc).Zone()
	if offBefore == offAfter {
		// No transition in the window; cannot happen for a moment
		// that failed to resolve under a real zone.
		return clock.Time{}, clock.Time{}
	}

	// Binary search for the first instant under the new offset.
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		if _, off := mid.In(loc).Zone(); off == offBefore {
			lo = mid
		} else {
			hi = mid
		}
	}

	wall := func(instant time.Time, offset int) clock.Time {
		t := instant.Add(time.Duration(offset) * time.Second).UTC()
		return clock.Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
	}
	return wall(hi, offBefore), wall(hi, offAfter)
}
