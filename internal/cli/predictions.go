package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/view"
)

func predictionsCmd(app **App) *cobra.Command {
	var competition int
	var pending bool
	cmd := &cobra.Command{
		Use:   "predictions",
		Short: "List your predictions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			scope := a.CompetitionScope(competition, cmd.Flags().Changed("competition"))

			preds, err := fetchPredictions(cmd.Context(), a, scope)
			if err != nil {
				return err
			}
			now := time.Now()
			if pending {
				preds = api.FilterPending(preds, now)
			}
			if len(preds) == 0 {
				fmt.Fprintln(a.Out, "No tienes predicciones.")
				return nil
			}
			renderPredictions(a.Out, preds, now)
			return nil
		},
	}
	cmd.Flags().IntVar(&competition, "competition", 0, "Competition id to scope by (0 = all)")
	cmd.Flags().BoolVar(&pending, "pending", false, "Only predictions whose match has not started")
	return cmd
}

func predictCmd(app **App) *cobra.Command {
	var competition int
	cmd := &cobra.Command{
		Use:   "predict <match-id> <home> <away>",
		Short: "Submit or update a score prediction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			matchID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid match id %q", args[0])
			}
			predHome, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid home score %q", args[1])
			}
			predAway, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid away score %q", args[2])
			}
			if predHome < 0 || predAway < 0 {
				return fmt.Errorf("scores must be non-negative")
			}

			scope := a.CompetitionScope(competition, cmd.Flags().Changed("competition"))
			ctx := cmd.Context()

			// Client-side editability guard. The server enforces the same
			// cutoff; checking here gives an honest error instead of a 400.
			matches, err := fetchMatches(ctx, a, scope)
			if err != nil {
				return err
			}
			for _, m := range matches {
				if m.MatchID != matchID {
					continue
				}
				kickoff, err := m.Kickoff()
				if err != nil {
					break
				}
				if !view.Editable(kickoff, time.Now()) {
					return fmt.Errorf("el partido %s - %s ya comenzó, la predicción está cerrada", m.HomeTeam, m.AwayTeam)
				}
				break
			}

			preds, err := fetchPredictions(ctx, a, scope)
			if err != nil {
				return err
			}
			var existing *api.Prediction
			for i := range preds {
				if preds[i].MatchID == matchID {
					existing = &preds[i]
					break
				}
			}

			if existing != nil {
				if err := a.Client.UpdatePrediction(ctx, existing.PredictionID, predHome, predAway); err != nil {
					return err
				}
				fmt.Fprintf(a.Out, "Predicción actualizada: %d-%d.\n", predHome, predAway)
			} else {
				if _, err := a.Client.CreatePrediction(ctx, matchID, predHome, predAway); err != nil {
					return err
				}
				fmt.Fprintf(a.Out, "Predicción guardada: %d-%d.\n", predHome, predAway)
			}

			// The mutation invalidates every view derived from predictions.
			a.Refresher.Invalidate(predictionsKey(scope))
			a.Refresher.Invalidate(matchesKey(scope))
			a.Refresher.Invalidate(rankingKey(scope))
			return nil
		},
	}
	cmd.Flags().IntVar(&competition, "competition", 0, "Competition id to scope by (0 = all)")
	return cmd
}
