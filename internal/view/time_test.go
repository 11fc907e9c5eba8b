package view

import (
	"testing"
	"time"
)

func TestNormalizeUTC(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-03-01T18:00:00", "2025-03-01T18:00:00Z"},
		{"2025-03-01T18:00:00Z", "2025-03-01T18:00:00Z"}, // idempotent
	}
	for _, c := range cases {
		if got := NormalizeUTC(c.in); got != c.want {
			t.Errorf("NormalizeUTC(%q) = %q, want %q", c.in, got, c.want)
		}
		// Normalizing twice must never stack suffixes.
		if got := NormalizeUTC(NormalizeUTC(c.in)); got != c.want {
			t.Errorf("double NormalizeUTC(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseServerTimeNaiveIsUTC(t *testing.T) {
	got, err := ParseServerTime("2025-03-01T18:00:00")
	if err != nil {
		t.Fatalf("ParseServerTime: %v", err)
	}
	want := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseServerTimeInvalid(t *testing.T) {
	if _, err := ParseServerTime("not a date"); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

func TestEditableBoundary(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	if !Editable(now.Add(time.Second), now) {
		t.Error("future kickoff must be editable")
	}
	if Editable(now, now) {
		t.Error("kickoff exactly now must not be editable")
	}
	if Editable(now.Add(-time.Second), now) {
		t.Error("past kickoff must not be editable")
	}
}

func TestWithinWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	if !WithinWindow(now.Add(7*24*time.Hour), now, DefaultWindow) {
		t.Error("match inside the window should be shown")
	}
	if !WithinWindow(now.Add(DefaultWindow), now, DefaultWindow) {
		t.Error("match exactly at the window edge should be shown")
	}
	if WithinWindow(now.Add(DefaultWindow+time.Minute), now, DefaultWindow) {
		t.Error("match past the window should be hidden")
	}
}
