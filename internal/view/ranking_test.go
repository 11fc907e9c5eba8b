package view

import "testing"

func TestSortRankingStableOnTies(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, TotalPoints: 10},
		{UserID: 2, TotalPoints: 20},
		{UserID: 3, TotalPoints: 10},
	}
	got := SortRanking(rows, SortState{Key: SortByTotal, Descending: true})
	// Users 1 and 3 tie on 10; 1 came first in the input so it must stay
	// ahead of 3.
	want := []int{2, 1, 3}
	for i := range want {
		if got[i].UserID != want[i] {
			t.Errorf("position %d = user %d, want %d", i, got[i].UserID, want[i])
		}
	}
}

func TestSortRankingByRoundMissingIsZero(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, Rounds: map[string]int{"Round 2": 4}},
		{UserID: 2, Rounds: map[string]int{}}, // never scored in Round 2
		{UserID: 3, Rounds: map[string]int{"Round 2": 7}},
	}
	got := SortRanking(rows, SortState{Key: "Round 2", Descending: true})
	want := []int{3, 1, 2}
	for i := range want {
		if got[i].UserID != want[i] {
			t.Errorf("position %d = user %d, want %d", i, got[i].UserID, want[i])
		}
	}
}

func TestSortRankingAscending(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, TotalPoints: 10},
		{UserID: 2, TotalPoints: 5},
	}
	got := SortRanking(rows, SortState{Key: SortByTotal, Descending: false})
	if got[0].UserID != 2 {
		t.Errorf("ascending sort should put user 2 first, got %d", got[0].UserID)
	}
}

func TestSortRankingDoesNotMutateInput(t *testing.T) {
	rows := []RankingRow{
		{UserID: 1, TotalPoints: 1},
		{UserID: 2, TotalPoints: 9},
	}
	_ = SortRanking(rows, DefaultSort())
	if rows[0].UserID != 1 {
		t.Error("input slice was reordered")
	}
}

func TestNextSort(t *testing.T) {
	cur := DefaultSort()
	if cur.Key != SortByTotal || !cur.Descending {
		t.Fatalf("default sort = %+v", cur)
	}

	// Clicking the current column flips direction.
	flipped := NextSort(cur, SortByTotal)
	if flipped.Descending {
		t.Error("clicking the active column should flip to ascending")
	}
	// Clicking a new column resets to descending.
	next := NextSort(flipped, "Round 5")
	if next.Key != "Round 5" || !next.Descending {
		t.Errorf("new column sort = %+v, want Round 5 descending", next)
	}
}
