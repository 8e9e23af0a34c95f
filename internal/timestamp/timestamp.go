// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package timestamp converts between human-readable playback timestamps
// and integer seconds. Two textual forms are accepted: unit words as the
// chapters panel prints them ("1 hr 2 min 3 sec") and colon-delimited
// clock time ("12:34", "1:02:03").
package timestamp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/booknotes/pkg/types"
)

// unitSeconds maps the unit words the panel uses to their length in
// seconds. Singular and plural spellings both appear in copied text.
var unitSeconds = map[string]int{
	"hr":   3600,
	"hrs":  3600,
	"min":  60,
	"mins": 60,
	"sec":  1,
	"secs": 1,
}

// Parse converts a timestamp token to total elapsed seconds. It returns
// an error wrapping types.ErrBadTimestamp when the token matches neither
// accepted form or contains a negative or non-numeric field.
func Parse(token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", types.ErrBadTimestamp)
	}
	if strings.Contains(token, ":") {
		return parseClock(token)
	}
	// A bare integer is the one-group clock form (SS).
	if n, err := parseField(token); err == nil {
		return n, nil
	}
	return parseUnits(token)
}

// parseClock handles the colon form: SS, MM:SS, or HH:MM:SS, each group
// a non-negative integer of fixed or variable width.
func parseClock(token string) (int, error) {
	groups := strings.Split(token, ":")
	if len(groups) > 3 {
		return 0, fmt.Errorf("%w: %q has %d colon groups", types.ErrBadTimestamp, token, len(groups))
	}

	total := 0
	for _, g := range groups {
		n, err := parseField(g)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", types.ErrBadTimestamp, token)
		}
		total = total*60 + n
	}
	return total, nil
}

// parseUnits handles the unit-word form: whitespace-separated pairs of
// integer and unit word in descending unit order, any subset of units
// present ("2 min" alone is valid).
func parseUnits(token string) (int, error) {
	fields := strings.Fields(token)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrBadTimestamp, token)
	}

	total := 0
	prevUnit := 0
	for i := 0; i < len(fields); i += 2 {
		n, err := parseField(fields[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", types.ErrBadTimestamp, token)
		}
		unit, ok := unitSeconds[strings.ToLower(fields[i+1])]
		if !ok {
			return 0, fmt.Errorf("%w: %q has unknown unit %q", types.ErrBadTimestamp, token, fields[i+1])
		}
		if prevUnit != 0 && unit >= prevUnit {
			return 0, fmt.Errorf("%w: %q units out of order", types.ErrBadTimestamp, token)
		}
		prevUnit = unit
		total += n * unit
	}
	return total, nil
}

// parseField parses one non-negative integer field. strconv.Atoi alone
// would admit "+1" and "-0"; copied timestamps contain digits only.
func parseField(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}

// Format renders seconds as H:MM:SS with a non-padded hour and
// zero-padded minutes and seconds. A zero hour is kept ("0:10:50") so
// timestamps line up column-wise in the rendered list.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
