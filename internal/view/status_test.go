package view

import "testing"

func TestClassify(t *testing.T) {
	elapsed := 37
	cases := []struct {
		code    string
		elapsed *int
		want    Status
		minutes int
	}{
		{"NS", nil, StatusNotStarted, 0},
		{"FT", nil, StatusFinished, 0},
		{"AET", nil, StatusFinished, 0},
		{"PEN", nil, StatusFinished, 0},
		{"1H", &elapsed, StatusLive, 37},
		{"HT", nil, StatusLive, 0}, // elapsed missing defaults to 0
		{"2H", &elapsed, StatusLive, 37},
		{"ET", nil, StatusLive, 0},
	}
	for _, c := range cases {
		got := Classify(c.code, c.elapsed)
		if got.Status != c.want {
			t.Errorf("Classify(%q).Status = %v, want %v", c.code, got.Status, c.want)
		}
		if got.Elapsed != c.minutes {
			t.Errorf("Classify(%q).Elapsed = %d, want %d", c.code, got.Elapsed, c.minutes)
		}
	}
}

func TestClassifyStrictRejectsUnknownCode(t *testing.T) {
	if _, err := ClassifyStrict("WTF", nil); err == nil {
		t.Error("unknown code must be rejected, not silently classified")
	}
	if _, err := ClassifyStrict("SUSP", nil); err != nil {
		t.Errorf("SUSP is a documented live code: %v", err)
	}
}

func TestMatchStateLabel(t *testing.T) {
	if got := (MatchState{Status: StatusLive, Elapsed: 72}).Label(); got != "En vivo 72'" {
		t.Errorf("live label = %q", got)
	}
	if got := (MatchState{Status: StatusNotStarted}).Label(); got != "Por comenzar" {
		t.Errorf("not-started label = %q", got)
	}
	if got := (MatchState{Status: StatusFinished}).Label(); got != "Finalizado" {
		t.Errorf("finished label = %q", got)
	}
}
