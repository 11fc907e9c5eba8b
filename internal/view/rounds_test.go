package view

import (
	"testing"
	"time"
)

func kickoff(h int) time.Time {
	return time.Date(2025, 3, 1, h, 0, 0, 0, time.UTC)
}

func notStarted(round string, h, idx int) GroupItem {
	return GroupItem{Round: round, Kickoff: kickoff(h), State: MatchState{Status: StatusNotStarted}, Index: idx}
}

func liveItem(round string, h, idx int) GroupItem {
	return GroupItem{Round: round, Kickoff: kickoff(h), State: MatchState{Status: StatusLive}, Index: idx}
}

func labels(buckets []RoundBucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.Label
	}
	return out
}

func TestGroupRoundsDescendingByRoundNumber(t *testing.T) {
	buckets := GroupRounds([]GroupItem{
		notStarted("Round 3", 10, 0),
		notStarted("Round 1", 11, 1),
		notStarted("Round 2", 12, 2),
	})
	want := []string{"Round 3", "Round 2", "Round 1"}
	got := labels(buckets)
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGroupRoundsLiveBucketLeads(t *testing.T) {
	buckets := GroupRounds([]GroupItem{
		notStarted("Round 9", 10, 0),
		liveItem("Round 2", 15, 1),
		liveItem("Round 1", 13, 2),
	})
	if buckets[0].Label != LiveRoundLabel {
		t.Fatalf("first bucket = %q, want %q", buckets[0].Label, LiveRoundLabel)
	}
	// Live matches sort by ascending kickoff regardless of round label.
	if buckets[0].Items[0].Index != 2 || buckets[0].Items[1].Index != 1 {
		t.Errorf("live bucket order = %d,%d, want 2,1",
			buckets[0].Items[0].Index, buckets[0].Items[1].Index)
	}
	if buckets[1].Label != "Round 9" {
		t.Errorf("second bucket = %q, want Round 9", buckets[1].Label)
	}
}

func TestGroupRoundsNoLiveMatchesNoLiveBucket(t *testing.T) {
	buckets := GroupRounds([]GroupItem{notStarted("Round 1", 10, 0)})
	for _, b := range buckets {
		if b.Label == LiveRoundLabel {
			t.Error("empty live bucket must be omitted")
		}
	}
}

func TestGroupRoundsMissingLabelSentinel(t *testing.T) {
	buckets := GroupRounds([]GroupItem{
		notStarted("", 10, 0),
		notStarted("Round 4", 11, 1),
	})
	want := []string{"Round 4", NoRoundLabel}
	got := labels(buckets)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGroupRoundsUnnumberedLabelsAfterNumbered(t *testing.T) {
	buckets := GroupRounds([]GroupItem{
		notStarted("Apertura", 10, 0),
		notStarted("Clausura", 11, 1),
		notStarted("Round 1", 12, 2),
	})
	want := []string{"Round 1", "Clausura", "Apertura"} // alphabetical, descending
	got := labels(buckets)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGroupRoundsItemsAscendingByKickoff(t *testing.T) {
	buckets := GroupRounds([]GroupItem{
		notStarted("Round 1", 20, 0),
		notStarted("Round 1", 9, 1),
		notStarted("Round 1", 15, 2),
	})
	got := buckets[0].Items
	if got[0].Index != 1 || got[1].Index != 2 || got[2].Index != 0 {
		t.Errorf("in-round order = %d,%d,%d, want 1,2,0", got[0].Index, got[1].Index, got[2].Index)
	}
}
