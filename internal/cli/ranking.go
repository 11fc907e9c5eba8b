package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/view"
)

func rankingCmd(app **App) *cobra.Command {
	var competition int
	var sortKey string
	var ascending bool
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the standings, optionally re-sorted by a round column",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			scope := a.CompetitionScope(competition, cmd.Flags().Changed("competition"))

			resp, err := fetchRanking(cmd.Context(), a, scope)
			if err != nil {
				return err
			}
			if len(resp.Ranking) == 0 {
				fmt.Fprintln(a.Out, "La tabla está vacía.")
				return nil
			}

			s := view.DefaultSort()
			if cmd.Flags().Changed("sort") {
				if sortKey != view.SortByTotal && !containsRound(resp.Rounds, sortKey) {
					return fmt.Errorf("unknown sort column %q, use %q or one of the active rounds", sortKey, view.SortByTotal)
				}
				s = view.SortState{Key: sortKey, Descending: true}
			}
			if ascending {
				s.Descending = false
			}

			renderRanking(a.Out, resp.Rounds, view.SortRanking(resp.Ranking, s), s)
			return nil
		},
	}
	cmd.Flags().IntVar(&competition, "competition", 0, "Competition id to scope by (0 = all)")
	cmd.Flags().StringVar(&sortKey, "sort", view.SortByTotal, "Column to sort by: total_points or a round label")
	cmd.Flags().BoolVar(&ascending, "asc", false, "Sort ascending instead of descending")
	return cmd
}

func containsRound(rounds []string, label string) bool {
	for _, r := range rounds {
		if r == label {
			return true
		}
	}
	return false
}
