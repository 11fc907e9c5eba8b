package cli

import "testing"

func TestParseLeagueArgs(t *testing.T) {
	leagues, err := parseLeagueArgs([]string{"262:2026", "39:2025"})
	if err != nil {
		t.Fatalf("parseLeagueArgs: %v", err)
	}
	if len(leagues) != 2 {
		t.Fatalf("got %d leagues, want 2", len(leagues))
	}
	if leagues[0].LeagueID != 262 || leagues[0].LeagueSeason != 2026 {
		t.Errorf("first league = %+v", leagues[0])
	}

	for _, bad := range []string{"262", "x:2026", "262:x", ""} {
		if _, err := parseLeagueArgs([]string{bad}); err == nil {
			t.Errorf("parseLeagueArgs(%q) accepted invalid input", bad)
		}
	}
}
