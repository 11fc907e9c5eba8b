package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func adminCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator commands guarded by shared secrets",
	}
	cmd.AddCommand(adminResetLinkCmd(app))
	cmd.AddCommand(adminUpdateMatchesCmd(app))
	return cmd
}

func adminResetLinkCmd(app **App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "reset-link",
		Short: "Generate a password-reset link for any account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			if a.Cfg.ResetSecret == "" {
				return fmt.Errorf("QUINIELA_RESET_SECRET must be set for admin reset links")
			}
			link, err := a.Client.GenerateResetLink(cmd.Context(), email, a.Cfg.ResetSecret)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "Enlace de restablecimiento para %s: %s\n", email, link)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.MarkFlagRequired("email")
	return cmd
}

func adminUpdateMatchesCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "update-matches",
		Short: "Trigger a server-side refresh of match data and scoring",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			if a.Cfg.UpdateSecret == "" {
				return fmt.Errorf("QUINIELA_UPDATE_SECRET must be set to trigger match updates")
			}
			if err := a.Client.TriggerMatchUpdate(cmd.Context(), a.Cfg.UpdateSecret); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Actualización de partidos lanzada.")
			return nil
		},
	}
}
