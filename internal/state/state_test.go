package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { sq.Close() })
	return map[string]Store{
		"sqlite": sq,
		"memory": NewMemoryStore(),
	}
}

func TestSessionRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := s.Session(); ok {
				t.Fatal("fresh store should have no session")
			}
			if err := s.SaveSession(Session{Token: "tok", UserID: 7}); err != nil {
				t.Fatal(err)
			}
			got, ok := s.Session()
			if !ok || got.Token != "tok" || got.UserID != 7 {
				t.Errorf("session = %+v, %v", got, ok)
			}

			// Saving again replaces wholesale.
			if err := s.SaveSession(Session{Token: "tok2", UserID: 8}); err != nil {
				t.Fatal(err)
			}
			got, _ = s.Session()
			if got.Token != "tok2" || got.UserID != 8 {
				t.Errorf("replaced session = %+v", got)
			}

			if err := s.ClearSession(); err != nil {
				t.Fatal(err)
			}
			if _, ok := s.Session(); ok {
				t.Error("session should be gone after clear")
			}
		})
	}
}

func TestPrefRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := s.Pref(PrefSelectedCompetition); ok {
				t.Fatal("unset pref should miss")
			}
			if err := s.SetPref(PrefSelectedCompetition, "42"); err != nil {
				t.Fatal(err)
			}
			if v, ok := s.Pref(PrefSelectedCompetition); !ok || v != "42" {
				t.Errorf("pref = %q, %v", v, ok)
			}
			if err := s.SetPref(PrefSelectedCompetition, "7"); err != nil {
				t.Fatal(err)
			}
			if v, _ := s.Pref(PrefSelectedCompetition); v != "7" {
				t.Errorf("updated pref = %q", v)
			}
			if err := s.DeletePref(PrefSelectedCompetition); err != nil {
				t.Fatal(err)
			}
			if _, ok := s.Pref(PrefSelectedCompetition); ok {
				t.Error("deleted pref should miss")
			}
		})
	}
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatal(err)
	}

	info, err := InspectToken(signed)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if info.UserID != 42 {
		t.Errorf("user id = %d, want 42", info.UserID)
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Errorf("expiry = %v, want %v", info.ExpiresAt, exp)
	}
	if info.Expired(time.Now()) {
		t.Error("token should not be expired yet")
	}
	if !info.Expired(exp.Add(time.Minute)) {
		t.Error("token should be expired after its exp claim")
	}
}

func TestInspectTokenNoExpiry(t *testing.T) {
	// The server issues non-expiring tokens; Expired must never fire.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	signed, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	info, err := InspectToken(signed)
	if err != nil {
		t.Fatal(err)
	}
	if info.Expired(time.Now().Add(24 * 365 * time.Hour)) {
		t.Error("token without exp claim must never expire")
	}
}

func TestInspectTokenGarbage(t *testing.T) {
	if _, err := InspectToken("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}
