package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Ranking fetches the ranking table, optionally scoped to one competition
// (0 = global). Rows carry per-round subtotals plus the server-assigned
// position; the client only re-sorts locally.
func (c *Client) Ranking(ctx context.Context, competitionID int) (RankingResponse, error) {
	path := "/ranking/"
	if competitionID != 0 {
		path += strconv.Itoa(competitionID)
	}
	var resp RankingResponse
	if err := c.doAuthed(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return RankingResponse{}, fmt.Errorf("fetch ranking: %w", err)
	}
	return resp, nil
}

// RoundMatrix fetches one round's matches plus every ranked user's
// predictions for them, optionally scoped to one competition.
func (c *Client) RoundMatrix(ctx context.Context, competitionID int, round string) (MatrixResponse, error) {
	query := url.Values{}
	if competitionID != 0 {
		query.Set("competition", strconv.Itoa(competitionID))
	}
	path := "/matrix/" + url.PathEscape(round)
	var resp MatrixResponse
	if err := c.doAuthed(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return MatrixResponse{}, fmt.Errorf("fetch matrix for %q: %w", round, err)
	}
	return resp, nil
}
