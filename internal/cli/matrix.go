package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/cache"
	"github.com/quiniela-app/quiniela-go/internal/refresh"
	"github.com/quiniela-app/quiniela-go/internal/view"
)

func matrixCmd(app **App) *cobra.Command {
	var competition int
	cmd := &cobra.Command{
		Use:   "matrix [round]",
		Short: "Show everyone's picks for a round, side by side",
		Long:  "Shows the round grid: one row per ranked user, one column per match. Picks for matches that have not started stay hidden. Without an argument the most recent round is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			scope := a.CompetitionScope(competition, cmd.Flags().Changed("competition"))
			ctx := cmd.Context()

			var round string
			if len(args) == 1 {
				round = args[0]
			} else {
				resp, err := fetchRanking(ctx, a, scope)
				if err != nil {
					return err
				}
				if len(resp.Rounds) == 0 {
					return fmt.Errorf("no active rounds, pass a round label explicitly")
				}
				round = resp.Rounds[len(resp.Rounds)-1]
			}

			resp, err := fetchMatrix(ctx, a, scope, round)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "%s\n\n", resp.Round)
			renderMatrix(a.Out, buildRoundMatrix(resp))
			return nil
		},
	}
	cmd.Flags().IntVar(&competition, "competition", 0, "Competition id to scope by (0 = all)")
	return cmd
}

func matrixKey(scope int, round string) refresh.Key {
	return refresh.Key{Resource: "matrix", Params: scopeParams(scope) + "&round=" + round}
}

func fetchMatrix(ctx context.Context, a *App, scope int, round string) (api.MatrixResponse, error) {
	key := matrixKey(scope, round)
	a.Refresher.Select(key.Resource, key.Params)
	v, err := a.Refresher.Fetch(ctx, key, cache.TTLMatrix, func(ctx context.Context) (any, error) {
		return a.Client.RoundMatrix(ctx, scope, round)
	})
	if err != nil {
		return api.MatrixResponse{}, err
	}
	return v.(api.MatrixResponse), nil
}

// buildRoundMatrix maps the wire payload onto the view types and builds
// the grid.
func buildRoundMatrix(resp api.MatrixResponse) view.Matrix {
	matches := make([]view.MatrixMatch, len(resp.Matches))
	for i, m := range resp.Matches {
		matches[i] = view.MatrixMatch{
			MatchID:  m.MatchID,
			HomeTeam: m.HomeTeam,
			AwayTeam: m.AwayTeam,
			State:    m.State(),
		}
	}
	users := make([]view.MatrixUser, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = view.MatrixUser{UserID: u.UserID, Name: u.Name}
	}
	preds := make([]view.MatrixPrediction, len(resp.Predictions))
	for i, p := range resp.Predictions {
		preds[i] = view.MatrixPrediction{
			UserID:   p.UserID,
			MatchID:  p.MatchID,
			PredHome: p.PredHome,
			PredAway: p.PredAway,
			Points:   p.Points,
		}
	}
	return view.BuildMatrix(matches, users, preds)
}
