package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/config"
)

// NewRootCmd builds the quiniela command tree. The App is constructed
// lazily in the persistent pre-run so `quiniela --help` works without
// configuration.
func NewRootCmd(logger *slog.Logger) *cobra.Command {
	var app *App

	root := &cobra.Command{
		Use:           "quiniela",
		Short:         "Quiniela prediction pool client",
		Long:          "Client for the quiniela API: submit score predictions, follow rankings, and run competitions with friends.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app, err = NewApp(cfg, logger, cmd.OutOrStdout())
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app != nil {
				app.Close()
			}
		},
	}

	root.AddCommand(loginCmd(&app))
	root.AddCommand(logoutCmd(&app))
	root.AddCommand(registerCmd(&app))
	root.AddCommand(profileCmd(&app))
	root.AddCommand(resetPasswordCmd(&app))
	root.AddCommand(matchesCmd(&app))
	root.AddCommand(predictCmd(&app))
	root.AddCommand(predictionsCmd(&app))
	root.AddCommand(rankingCmd(&app))
	root.AddCommand(matrixCmd(&app))
	root.AddCommand(competitionsCmd(&app))
	root.AddCommand(watchCmd(&app))
	root.AddCommand(notifyCmd(&app))
	root.AddCommand(adminCmd(&app))

	return root
}
