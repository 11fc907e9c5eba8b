package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/cache"
	"github.com/quiniela-app/quiniela-go/internal/refresh"
	"github.com/quiniela-app/quiniela-go/internal/view"
)

func watchCmd(app **App) *cobra.Command {
	var competition int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll matches and standings, re-rendering on every refresh",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			scope := a.CompetitionScope(competition, cmd.Flags().Changed("competition"))
			ctx := cmd.Context()

			fmt.Fprintf(a.Out, "Actualizando cada %s. Ctrl-C para salir.\n\n", a.Cfg.PollInterval)

			// One render lock so the two pollers never interleave output.
			var mu sync.Mutex

			matchesPoller := refresh.NewPoller(a.Cfg.PollInterval, a.Refresher, a.Logger)
			rankingPoller := refresh.NewPoller(a.Cfg.PollInterval, a.Refresher, a.Logger)

			var wg sync.WaitGroup
			wg.Add(2)

			mKey := matchesKey(scope)
			a.Refresher.Select(mKey.Resource, mKey.Params)
			go func() {
				defer wg.Done()
				matchesPoller.Run(ctx, mKey, cache.TTLMatches, func(ctx context.Context) (any, error) {
					ms, err := a.Client.AvailableMatches(ctx, scope)
					if err != nil {
						return nil, err
					}
					return api.FilterWindow(ms, time.Now(), view.DefaultWindow), nil
				}, func(v any, err error) {
					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						fmt.Fprintf(a.Out, "[%s] error al actualizar partidos: %v\n", time.Now().Format("15:04:05"), err)
						return
					}
					matches := v.([]api.Match)
					for _, m := range matches {
						if _, serr := view.ClassifyStrict(m.StatusShort, m.Elapsed); serr != nil {
							a.Logger.Warn("Unknown match status from server", "match_id", m.MatchID, "status", m.StatusShort)
						}
					}
					fmt.Fprintf(a.Out, "[%s] Partidos\n", time.Now().Format("15:04:05"))
					renderMatchBuckets(a.Out, matches, groupMatches(matches), nil, nil)
					fmt.Fprintln(a.Out)
				})
			}()

			rKey := rankingKey(scope)
			a.Refresher.Select(rKey.Resource, rKey.Params)
			go func() {
				defer wg.Done()
				rankingPoller.Run(ctx, rKey, cache.TTLRanking, func(ctx context.Context) (any, error) {
					return a.Client.Ranking(ctx, scope)
				}, func(v any, err error) {
					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						fmt.Fprintf(a.Out, "[%s] error al actualizar la tabla: %v\n", time.Now().Format("15:04:05"), err)
						return
					}
					resp := v.(api.RankingResponse)
					fmt.Fprintf(a.Out, "[%s] Tabla\n", time.Now().Format("15:04:05"))
					s := view.DefaultSort()
					renderRanking(a.Out, resp.Rounds, view.SortRanking(resp.Ranking, s), s)
					fmt.Fprintln(a.Out)
				})
			}()

			wg.Wait()
			return nil
		},
	}
	cmd.Flags().IntVar(&competition, "competition", 0, "Competition id to scope by (0 = all)")
	return cmd
}
