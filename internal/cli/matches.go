package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/cache"
	"github.com/quiniela-app/quiniela-go/internal/refresh"
	"github.com/quiniela-app/quiniela-go/internal/state"
	"github.com/quiniela-app/quiniela-go/internal/view"
)

func matchesCmd(app **App) *cobra.Command {
	var competition int
	var toggleRound string
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List upcoming and live matches grouped by round",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			scope := a.CompetitionScope(competition, cmd.Flags().Changed("competition"))

			if toggleRound != "" {
				if err := toggleCollapsed(a, toggleRound); err != nil {
					return err
				}
			}

			matches, err := fetchMatches(cmd.Context(), a, scope)
			if err != nil {
				return err
			}
			preds, err := fetchPredictions(cmd.Context(), a, scope)
			if err != nil {
				return err
			}

			picks := make(map[int]api.Prediction, len(preds))
			for _, p := range preds {
				picks[p.MatchID] = p
			}

			renderMatchBuckets(a.Out, matches, groupMatches(matches), picks, collapsedRounds(a))
			if len(matches) == 0 {
				fmt.Fprintln(a.Out, "No hay partidos en la ventana actual.")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&competition, "competition", 0, "Competition id to scope by (0 = all)")
	cmd.Flags().StringVar(&toggleRound, "toggle-round", "", "Collapse or expand a round section by label")
	return cmd
}

// collapsedRounds reads the persisted set of collapsed round labels.
func collapsedRounds(a *App) map[string]bool {
	v, ok := a.Store.Pref(state.PrefCollapsedRounds)
	if !ok || v == "" {
		return nil
	}
	set := make(map[string]bool)
	for _, label := range strings.Split(v, "\x1f") {
		set[label] = true
	}
	return set
}

// toggleCollapsed flips one round label in the persisted set. Labels are
// joined with a unit separator since they contain spaces and digits freely.
func toggleCollapsed(a *App, label string) error {
	set := collapsedRounds(a)
	if set == nil {
		set = make(map[string]bool)
	}
	if set[label] {
		delete(set, label)
	} else {
		set[label] = true
	}
	if len(set) == 0 {
		return a.Store.DeletePref(state.PrefCollapsedRounds)
	}
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return a.Store.SetPref(state.PrefCollapsedRounds, strings.Join(labels, "\x1f"))
}

// groupMatches builds the round buckets for a match slice. Rows whose date
// the server garbled are dropped rather than shown at a bogus position.
func groupMatches(matches []api.Match) []view.RoundBucket {
	items := make([]view.GroupItem, 0, len(matches))
	for i, m := range matches {
		kickoff, err := m.Kickoff()
		if err != nil {
			continue
		}
		items = append(items, view.GroupItem{
			Round:   m.LeagueRound,
			Kickoff: kickoff,
			State:   m.State(),
			Index:   i,
		})
	}
	return view.GroupRounds(items)
}

// --------------------------------------------------------------------------
// Refresh-layer fetch helpers shared by matches, predictions and watch
// --------------------------------------------------------------------------

func matchesKey(scope int) refresh.Key {
	return refresh.Key{Resource: "matches", Params: scopeParams(scope)}
}

func predictionsKey(scope int) refresh.Key {
	return refresh.Key{Resource: "predictions", Params: scopeParams(scope)}
}

func rankingKey(scope int) refresh.Key {
	return refresh.Key{Resource: "ranking", Params: scopeParams(scope)}
}

func fetchMatches(ctx context.Context, a *App, scope int) ([]api.Match, error) {
	key := matchesKey(scope)
	a.Refresher.Select(key.Resource, key.Params)
	v, err := a.Refresher.Fetch(ctx, key, cache.TTLMatches, func(ctx context.Context) (any, error) {
		ms, err := a.Client.AvailableMatches(ctx, scope)
		if err != nil {
			return nil, err
		}
		return api.FilterWindow(ms, time.Now(), view.DefaultWindow), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]api.Match), nil
}

func fetchPredictions(ctx context.Context, a *App, scope int) ([]api.Prediction, error) {
	key := predictionsKey(scope)
	a.Refresher.Select(key.Resource, key.Params)
	v, err := a.Refresher.Fetch(ctx, key, cache.TTLMatches, func(ctx context.Context) (any, error) {
		return a.Client.MyPredictions(ctx, scope)
	})
	if err != nil {
		return nil, err
	}
	return v.([]api.Prediction), nil
}

func fetchRanking(ctx context.Context, a *App, scope int) (api.RankingResponse, error) {
	key := rankingKey(scope)
	a.Refresher.Select(key.Resource, key.Params)
	v, err := a.Refresher.Fetch(ctx, key, cache.TTLRanking, func(ctx context.Context) (any, error) {
		return a.Client.Ranking(ctx, scope)
	})
	if err != nil {
		return api.RankingResponse{}, err
	}
	return v.(api.RankingResponse), nil
}
