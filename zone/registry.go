// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zone

import (
	"fmt"
	"time"
)

// ID identifies one of the supported zones by its user-facing
// abbreviation. Only values produced by Registry.Normalize are valid.
type ID string

const (
	UTC     ID = "UTC"
	Eastern ID = "EST"
	Central ID = "CST"
	Pacific ID = "PST"
)

// ianaNames maps each ID to the tzdata rule set it resolves against.
var ianaNames = map[ID]string{
	Eastern: "US/Eastern",
	Central: "US/Central",
	Pacific: "US/Pacific",
	UTC:     "UTC",
}

// Registry validates and normalizes zone identifiers and holds the
// rule data for the supported zones. Rules are loaded once at
// construction and never mutated, so a single Registry is safe to
// share across concurrent requests.
type Registry struct {
	ids     []ID
	aliases map[string]ID
	rules   map[ID]*time.Location
}

// NewRegistry loads rule data for every supported zone. A missing rule
// set in the platform zone database is a *ConfigurationError; nothing
// is retried, the process should not start.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		ids:     []ID{Eastern, Central, Pacific, UTC},
		aliases: make(map[string]ID, len(ianaNames)),
		rules:   make(map[ID]*time.Location, len(ianaNames)),
	}

	for id, name := range ianaNames {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, &ConfigurationError{Zone: id, Name: name, Err: err}
		}
		r.rules[id] = loc
		// Legacy long-form names are accepted as input aliases.
		r.aliases[name] = id
	}
	return r, nil
}

// Normalize accepts one of the four abbreviations (case-sensitive) or
// a legacy long-form alias and returns the canonical ID. Anything else
// fails with *UnknownError listing the accepted abbreviations.
func (r *Registry) Normalize(s string) (ID, error) {
	for _, id := range r.ids {
		if s == string(id) {
			return id, nil
		}
	}
	if id, ok := r.aliases[s]; ok {
		return id, nil
	}
	return "", &UnknownError{Input: s, Allowed: r.Abbreviations()}
}

// Rules returns the rule data for an ID previously validated by
// Normalize. It fails only if the ID never passed through Normalize,
// which is a programming error, reported as *ConfigurationError.
func (r *Registry) Rules(id ID) (*time.Location, error) {
	loc, ok := r.rules[id]
	if !ok {
		return nil, &ConfigurationError{Zone: id, Name: string(id), Err: fmt.Errorf("no rules loaded")}
	}
	return loc, nil
}

// Abbreviations lists the supported zone abbreviations in display order.
func (r *Registry) Abbreviations() []string {
	out := make([]string, len(r.ids))
	for i, id := range r.ids {
		out[i] = string(id)
	}
	return out
}
