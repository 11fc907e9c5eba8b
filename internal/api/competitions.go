package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// NewCompetition is the creation payload. Leagues define which matches
// the pool scores.
type NewCompetition struct {
	Name     string   `json:"name"`
	IsPublic bool     `json:"is_public"`
	Leagues  []League `json:"leagues"`
}

// competitionWire absorbs the two spellings the API uses for the join
// code: "invite_code" in the stats listing, "code" everywhere else.
type competitionWire struct {
	Competition
	Code string `json:"code"`
}

func (w competitionWire) normalized() Competition {
	comp := w.Competition
	if comp.InviteCode == "" {
		comp.InviteCode = w.Code
	}
	return comp
}

// CreateCompetition creates a competition; the caller becomes its creator
// and first member. Private competitions come back with an invite code.
func (c *Client) CreateCompetition(ctx context.Context, nc NewCompetition) (Competition, error) {
	var wire competitionWire
	if err := c.doAuthed(ctx, http.MethodPost, "/competitions/", nil, nc, &wire); err != nil {
		return Competition{}, fmt.Errorf("create competition %q: %w", nc.Name, err)
	}
	return wire.normalized(), nil
}

// JoinCompetition joins via invite code (private) or listed code (public).
func (c *Client) JoinCompetition(ctx context.Context, code string) error {
	path := "/competitions/join/" + url.PathEscape(code)
	if err := c.doAuthed(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return fmt.Errorf("join competition: %w", err)
	}
	return nil
}

// DeleteCompetition removes a competition. The server rejects callers who
// are not its creator.
func (c *Client) DeleteCompetition(ctx context.Context, id int) error {
	path := "/competitions/" + strconv.Itoa(id)
	if err := c.doAuthed(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete competition %d: %w", id, err)
	}
	return nil
}

// MyCompetitions lists the caller's competitions with per-member stats:
// member count, the caller's points and rank, and the invite code for
// private pools.
func (c *Client) MyCompetitions(ctx context.Context) ([]Competition, error) {
	var comps []Competition
	if err := c.doAuthed(ctx, http.MethodGet, "/my-competitions-with-stats", nil, nil, &comps); err != nil {
		return nil, fmt.Errorf("fetch competitions: %w", err)
	}
	return comps, nil
}

// PublicCompetitions lists open-join competitions.
func (c *Client) PublicCompetitions(ctx context.Context) ([]Competition, error) {
	var wires []competitionWire
	if err := c.do(ctx, http.MethodGet, "/competitions/public", nil, nil, nil, &wires); err != nil {
		return nil, fmt.Errorf("fetch public competitions: %w", err)
	}
	comps := make([]Competition, len(wires))
	for i, w := range wires {
		comps[i] = w.normalized()
	}
	return comps, nil
}

// Leagues lists every league/season attached to any competition, used
// when creating a new pool.
func (c *Client) Leagues(ctx context.Context) ([]League, error) {
	var leagues []League
	if err := c.do(ctx, http.MethodGet, "/competitions/leagues", nil, nil, nil, &leagues); err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}
	return leagues, nil
}
