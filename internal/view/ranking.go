package view

import "sort"

// SortByTotal selects the aggregate column instead of a round column.
const SortByTotal = "total_points"

// RankingRow is one user's aggregate line in a ranking table. Position is
// assigned server-side (including tie breaks); the client only re-orders
// its local copy for display.
type RankingRow struct {
	UserID      int            `json:"user_id"`
	Name        string         `json:"name"`
	TotalPoints int            `json:"total_points"`
	Rounds      map[string]int `json:"rounds"`
	Position    int            `json:"position"`
}

// pointsFor returns the row's value for a sort key; rounds the user never
// scored in count as 0.
func (r RankingRow) pointsFor(key string) int {
	if key == SortByTotal {
		return r.TotalPoints
	}
	return r.Rounds[key]
}

// SortState is the current table ordering: which column, which direction.
type SortState struct {
	Key        string
	Descending bool
}

// DefaultSort is the initial framing: who is winning overall.
func DefaultSort() SortState {
	return SortState{Key: SortByTotal, Descending: true}
}

// NextSort returns the ordering after clicking a column header: clicking
// the current column flips direction, a new column starts descending.
func NextSort(cur SortState, clicked string) SortState {
	if clicked == cur.Key {
		return SortState{Key: cur.Key, Descending: !cur.Descending}
	}
	return SortState{Key: clicked, Descending: true}
}

// SortRanking returns a new slice ordered by the sort state. The sort is
// stable: rows with equal keys keep their input order, which matters early
// in a tournament when most rows tie on 0.
func SortRanking(rows []RankingRow, s SortState) []RankingRow {
	out := make([]RankingRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].pointsFor(s.Key), out[j].pointsFor(s.Key)
		if s.Descending {
			return a > b
		}
		return a < b
	})
	return out
}
