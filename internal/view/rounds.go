package view

import (
	"regexp"
	"sort"
	"time"
)

// Bucket labels for the two synthetic rounds.
const (
	LiveRoundLabel = "En vivo"
	NoRoundLabel   = "Sin ronda"
)

// GroupItem carries the fields round grouping needs from a match row.
// Index points back at the caller's source slice.
type GroupItem struct {
	Round   string // raw league_round, "" when the feed omitted it
	Kickoff time.Time
	State   MatchState
	Index   int
}

// RoundBucket is one rendered round section: a label plus its matches in
// display order.
type RoundBucket struct {
	Label string
	Items []GroupItem
}

// GroupRounds partitions matches into round buckets in display order:
//
//  1. Live matches form a single leading "En vivo" bucket regardless of
//     their round label, sorted by ascending kickoff.
//  2. Everything else is bucketed by round label ("Sin ronda" when the
//     label is missing), items sorted by ascending kickoff.
//  3. Buckets are ordered by the last integer in their label, descending,
//     so the most recent round comes first. Labels without a number sort
//     after all numbered ones, in descending alphabetical order.
func GroupRounds(items []GroupItem) []RoundBucket {
	var live []GroupItem
	byRound := make(map[string][]GroupItem)
	var labels []string

	for _, it := range items {
		if it.State.Status == StatusLive {
			live = append(live, it)
			continue
		}
		label := it.Round
		if label == "" {
			label = NoRoundLabel
		}
		if _, seen := byRound[label]; !seen {
			labels = append(labels, label)
		}
		byRound[label] = append(byRound[label], it)
	}

	sortByKickoff(live)
	for _, items := range byRound {
		sortByKickoff(items)
	}

	sort.Slice(labels, func(i, j int) bool {
		return roundLess(labels[j], labels[i]) // descending
	})

	buckets := make([]RoundBucket, 0, len(labels)+1)
	if len(live) > 0 {
		buckets = append(buckets, RoundBucket{Label: LiveRoundLabel, Items: live})
	}
	for _, label := range labels {
		buckets = append(buckets, RoundBucket{Label: label, Items: byRound[label]})
	}
	return buckets
}

func sortByKickoff(items []GroupItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Kickoff.Before(items[j].Kickoff)
	})
}

var roundNumberRe = regexp.MustCompile(`\d+`)

// roundNumber extracts the last integer in a round label ("Round 12" → 12).
func roundNumber(label string) (int, bool) {
	nums := roundNumberRe.FindAllString(label, -1)
	if len(nums) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range nums[len(nums)-1] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// roundLess is the ascending order over round labels: unnumbered labels
// first (alphabetically), then numbered labels by their number. The
// grouping iterates this in reverse so numbered rounds lead, newest first.
func roundLess(a, b string) bool {
	na, okA := roundNumber(a)
	nb, okB := roundNumber(b)
	switch {
	case okA && okB:
		if na != nb {
			return na < nb
		}
		return a < b
	case okA:
		return false
	case okB:
		return true
	default:
		return a < b
	}
}
