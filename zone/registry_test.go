// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zone

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	tests := []struct {
		input string
		want  ID
	}{
		{"EST", Eastern},
		{"CST", Central},
		{"PST", Pacific},
		{"UTC", UTC},
		{"US/Eastern", Eastern},
		{"US/Central", Central},
		{"US/Pacific", Pacific},
	}

	for _, tc := range tests {
		got, err := reg.Normalize(tc.input)
		if err != nil {
			t.Errorf("Normalize(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Unknown(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	for _, input := range []string{"MARS", "est", "America/New_York", "", "GMT"} {
		_, err := reg.Normalize(input)
		if err == nil {
			t.Errorf("Normalize(%q) should have failed", input)
			continue
		}
		var uz *UnknownError
		if !errors.As(err, &uz) {
			t.Errorf("Normalize(%q) error = %T, want *UnknownError", input, err)
			continue
		}
		if uz.Input != input {
			t.Errorf("UnknownError.Input = %q, want %q", uz.Input, input)
		}
		if diff := cmp.Diff([]string{"EST", "CST", "PST", "UTC"}, uz.Allowed); diff != "" {
			t.Errorf("UnknownError.Allowed mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRules_NeverFailsAfterNormalize(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	for _, input := range reg.Abbreviations() {
		id, err := reg.Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", input, err)
		}
		loc, err := reg.Rules(id)
		if err != nil {
			t.Errorf("Rules(%q) failed: %v", id, err)
		}
		if loc == nil {
			t.Errorf("Rules(%q) returned nil location", id)
		}
	}
}

func TestRules_UnvalidatedID(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	_, err = reg.Rules(ID("MARS"))
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Errorf("Rules with unvalidated ID: error = %T, want *ConfigurationError", err)
	}
}
