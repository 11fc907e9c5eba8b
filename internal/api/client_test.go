package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 600, nil), srv
}

func TestLoginInstallsSession(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("username") != "ana@example.com" {
			t.Errorf("username = %q", r.PostForm.Get("username"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok123", "token_type": "bearer", "user_id": 7,
		})
	}))

	s, err := c.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if s.Token != "tok123" || s.UserID != 7 {
		t.Errorf("session = %+v", s)
	}
	if c.Session() != s {
		t.Error("session not installed on client")
	}
}

func TestAuthedCallCarriesBearer(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(Profile{UserID: 7, Name: "ana"})
	}))
	c.SetSession(Session{Token: "tok123", UserID: 7})

	p, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if p.Name != "ana" {
		t.Errorf("profile = %+v", p)
	}
}

func TestNoSessionFailsFast(t *testing.T) {
	called := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	_, err := c.Me(context.Background())
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("err = %v, want ErrNoSession", err)
	}
	if called {
		t.Error("request must not reach the server without a session")
	}
}

func TestUnauthorizedClearsSessionAndFiresHookOnce(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	c.SetSession(Session{Token: "expired", UserID: 7})

	hookCalls := 0
	c.OnUnauthorized(func() { hookCalls++ })

	_, err := c.Me(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if c.Session().Token != "" {
		t.Error("session must be cleared after a 401")
	}
	if hookCalls != 1 {
		t.Errorf("hook calls = %d, want 1", hookCalls)
	}
}

func TestStatusErrorCarriesDetail(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Ya hiciste un pronóstico para este partido"})
	}))
	c.SetSession(Session{Token: "tok"})

	_, err := c.CreatePrediction(context.Background(), 1, 2, 1)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusBadRequest || se.Detail == "" {
		t.Errorf("status error = %+v", se)
	}
}

func TestAvailableMatchesCompetitionPath(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]Match{})
	}))
	c.SetSession(Session{Token: "tok"})

	if _, err := c.AvailableMatches(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/available-matches/" {
		t.Errorf("path = %q", gotPath)
	}
	if _, err := c.AvailableMatches(context.Background(), 42); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/available-matches/42" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestFilterWindowDropsFarMatches(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	matches := []Match{
		{MatchID: 1, MatchDate: "2025-03-02T18:00:00"},
		{MatchID: 2, MatchDate: "2025-03-20T18:00:00"}, // beyond the window
		{MatchID: 3, MatchDate: "garbage"},
	}
	got := FilterWindow(matches, now, 8*24*time.Hour)
	if len(got) != 1 || got[0].MatchID != 1 {
		t.Errorf("filtered = %+v", got)
	}
}

// A prediction is pending while its match awaits kickoff, then drops out
// of the editable set the moment the kickoff passes.
func TestFilterPendingLifecycle(t *testing.T) {
	pred := Prediction{PredictionID: 1, MatchID: 1, MatchDate: "2025-03-01T18:00:00", PredHome: 2, PredAway: 1}

	before := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	if got := FilterPending([]Prediction{pred}, before); len(got) != 1 {
		t.Error("prediction should be pending before kickoff")
	}

	atKickoff := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	if got := FilterPending([]Prediction{pred}, atKickoff); len(got) != 0 {
		t.Error("prediction must leave the editable set at kickoff")
	}

	after := atKickoff.Add(time.Hour)
	if got := FilterPending([]Prediction{pred}, after); len(got) != 0 {
		t.Error("prediction must stay read-only after kickoff")
	}
}
