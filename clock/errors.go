// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clock

import "fmt"

// InvalidFormatError reports a malformed or out-of-range time or date
// input. Field names the offending component and Expected describes the
// accepted pattern or range, so callers can render a precise message
// without re-parsing the input.
type InvalidFormatError struct {
	Field    string
	Value    string
	Expected string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Field, e.Value, e.Expected)
}
