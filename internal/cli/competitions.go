package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/state"
)

func competitionsCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "competitions",
		Short: "Manage your prediction pools",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listCompetitions(cmd, *app)
		},
	}
	cmd.AddCommand(
		competitionsListCmd(app),
		competitionsCreateCmd(app),
		competitionsJoinCmd(app),
		competitionsDeleteCmd(app),
		competitionsPublicCmd(app),
		competitionsLeaguesCmd(app),
		competitionsSelectCmd(app),
	)
	return cmd
}

func listCompetitions(cmd *cobra.Command, a *App) error {
	comps, err := a.Client.MyCompetitions(cmd.Context())
	if err != nil {
		return err
	}
	if len(comps) == 0 {
		fmt.Fprintln(a.Out, "No participas en ninguna competencia. Crea una con `quiniela competitions create`.")
		return nil
	}
	renderCompetitions(a.Out, comps, a.CompetitionScope(0, false))
	return nil
}

func competitionsListCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the competitions you belong to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listCompetitions(cmd, *app)
		},
	}
}

func competitionsCreateCmd(app **App) *cobra.Command {
	var name string
	var public bool
	var leagues []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a competition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			parsed, err := parseLeagueArgs(leagues)
			if err != nil {
				return err
			}
			comp, err := a.Client.CreateCompetition(cmd.Context(), api.NewCompetition{
				Name:     name,
				IsPublic: public,
				Leagues:  parsed,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "Competencia %q creada (id %d).\n", comp.Name, comp.ID)
			if !comp.IsPublic {
				fmt.Fprintf(a.Out, "Código de invitación: %s\n", comp.InviteCode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Competition name")
	cmd.Flags().BoolVar(&public, "public", false, "Open the competition to anyone")
	cmd.Flags().StringSliceVar(&leagues, "league", nil, "League to include as id:season, e.g. 262:2026 (repeatable)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("league")
	return cmd
}

// parseLeagueArgs parses repeated id:season flag values.
func parseLeagueArgs(args []string) ([]api.League, error) {
	leagues := make([]api.League, 0, len(args))
	for _, arg := range args {
		id, season, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid league %q, expected id:season", arg)
		}
		leagueID, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("invalid league id in %q", arg)
		}
		leagueSeason, err := strconv.Atoi(season)
		if err != nil {
			return nil, fmt.Errorf("invalid league season in %q", arg)
		}
		leagues = append(leagues, api.League{LeagueID: leagueID, LeagueSeason: leagueSeason})
	}
	return leagues, nil
}

func competitionsJoinCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "join <invite-code>",
		Short: "Join a private competition by invite code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			if err := a.Client.JoinCompetition(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Te uniste a la competencia.")
			return nil
		},
	}
}

func competitionsDeleteCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a competition you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid competition id %q", args[0])
			}
			if err := a.Client.DeleteCompetition(cmd.Context(), id); err != nil {
				return err
			}
			// Drop a now-dangling selection.
			if a.CompetitionScope(0, false) == id {
				_ = a.Store.DeletePref(state.PrefSelectedCompetition)
			}
			fmt.Fprintln(a.Out, "Competencia eliminada.")
			return nil
		},
	}
}

func competitionsPublicCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "public",
		Short: "Browse public competitions open to anyone",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			comps, err := a.Client.PublicCompetitions(cmd.Context())
			if err != nil {
				return err
			}
			if len(comps) == 0 {
				fmt.Fprintln(a.Out, "No hay competencias públicas.")
				return nil
			}
			renderPublicCompetitions(a.Out, comps)
			return nil
		},
	}
}

func competitionsLeaguesCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List the leagues available for new competitions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			leagues, err := a.Client.Leagues(cmd.Context())
			if err != nil {
				return err
			}
			renderLeagues(a.Out, leagues)
			return nil
		},
	}
}

func competitionsSelectCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Set the default competition scope (0 clears it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid competition id %q", args[0])
			}
			a.CompetitionScope(id, true)
			if id == 0 {
				fmt.Fprintln(a.Out, "Ahora se muestran todas las competencias.")
			} else {
				fmt.Fprintf(a.Out, "Competencia %d seleccionada.\n", id)
			}
			return nil
		},
	}
}
