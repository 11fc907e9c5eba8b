// Package view derives display state from raw API payloads: timestamp
// normalization, prediction editability, match status classification,
// round grouping, ranking sorting, and the per-round prediction matrix.
//
// Every function here is pure. The clock is always passed in as an
// argument so the same inputs always produce the same outputs.
package view

import (
	"fmt"
	"strings"
	"time"
)

// DefaultWindow is the rolling window applied to the available-matches
// view: matches further out than this are hidden.
const DefaultWindow = 8 * 24 * time.Hour

// NormalizeUTC pins a server timestamp to UTC. The API emits naive
// ISO timestamps without a zone suffix; without the "Z" every consumer
// would interpret them in its own local zone. Idempotent.
func NormalizeUTC(s string) string {
	if strings.HasSuffix(s, "Z") {
		return s
	}
	return s + "Z"
}

// ParseServerTime parses a server timestamp into a UTC instant,
// normalizing naive values first.
func ParseServerTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, NormalizeUTC(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse server time %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Editable reports whether a prediction for a match starting at kickoff
// may still be changed. Strict inequality: a match starting exactly now
// is already locked.
func Editable(kickoff, now time.Time) bool {
	return kickoff.After(now)
}

// WithinWindow reports whether a match falls inside the rolling window
// shown on the available-matches view (kickoff <= now + window).
func WithinWindow(kickoff, now time.Time, window time.Duration) bool {
	return !kickoff.After(now.Add(window))
}
