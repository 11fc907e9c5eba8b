package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/quiniela-app/quiniela-go/internal/view"
)

// MyPredictions lists the caller's predictions, optionally scoped to one
// competition (0 = all).
func (c *Client) MyPredictions(ctx context.Context, competitionID int) ([]Prediction, error) {
	path := "/my-predictions/"
	if competitionID != 0 {
		path += strconv.Itoa(competitionID)
	}
	var preds []Prediction
	if err := c.doAuthed(ctx, http.MethodGet, path, nil, nil, &preds); err != nil {
		return nil, fmt.Errorf("fetch predictions: %w", err)
	}
	return preds, nil
}

// CreatePrediction submits a new forecast for a match.
func (c *Client) CreatePrediction(ctx context.Context, matchID, predHome, predAway int) (Prediction, error) {
	body := map[string]int{
		"match_id":  matchID,
		"pred_home": predHome,
		"pred_away": predAway,
	}
	var p Prediction
	if err := c.doAuthed(ctx, http.MethodPost, "/predictions/", nil, body, &p); err != nil {
		return Prediction{}, fmt.Errorf("create prediction for match %d: %w", matchID, err)
	}
	return p, nil
}

// UpdatePrediction changes an existing forecast. The server enforces the
// kickoff cutoff too, but callers should check Editable first so the user
// gets the guard locally instead of a rejected write.
func (c *Client) UpdatePrediction(ctx context.Context, predictionID, predHome, predAway int) error {
	body := map[string]int{
		"pred_home": predHome,
		"pred_away": predAway,
	}
	path := "/predictions/" + strconv.Itoa(predictionID)
	if err := c.doAuthed(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("update prediction %d: %w", predictionID, err)
	}
	return nil
}

// FilterPending keeps predictions whose match has not kicked off: the
// editable set. Rows with unparseable dates are dropped.
func FilterPending(preds []Prediction, now time.Time) []Prediction {
	out := make([]Prediction, 0, len(preds))
	for _, p := range preds {
		kickoff, err := p.Kickoff()
		if err != nil {
			continue
		}
		if view.Editable(kickoff, now) {
			out = append(out, p)
		}
	}
	return out
}
