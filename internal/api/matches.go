package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/quiniela-app/quiniela-go/internal/view"
)

// AvailableMatches lists matches the user can still predict, optionally
// scoped to one competition (0 = all). The server already excludes
// started matches and ones the user has predicted; the rolling display
// window is applied client-side via FilterWindow.
func (c *Client) AvailableMatches(ctx context.Context, competitionID int) ([]Match, error) {
	path := "/available-matches/"
	if competitionID != 0 {
		path += strconv.Itoa(competitionID)
	}
	var matches []Match
	if err := c.doAuthed(ctx, http.MethodGet, path, nil, nil, &matches); err != nil {
		return nil, fmt.Errorf("fetch available matches: %w", err)
	}
	return matches, nil
}

// FilterWindow keeps matches whose kickoff falls inside the rolling
// window. Rows with unparseable dates are dropped rather than failing
// the whole view.
func FilterWindow(matches []Match, now time.Time, window time.Duration) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		kickoff, err := m.Kickoff()
		if err != nil {
			continue
		}
		if view.WithinWindow(kickoff, now, window) {
			out = append(out, m)
		}
	}
	return out
}
