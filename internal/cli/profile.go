package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/state"
)

func profileCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and update the account profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			p, err := a.Client.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "Nombre:  %s\n", p.Name)
			fmt.Fprintf(a.Out, "Correo:  %s\n", p.Email)
			fmt.Fprintf(a.Out, "Alta:    %s\n", p.CreatedAt)
			fmt.Fprintf(a.Out, "Puntos:  %d\n", p.TotalPoints)

			if info, err := state.InspectToken(a.Client.Session().Token); err == nil && !info.ExpiresAt.IsZero() {
				if info.Expired(time.Now()) {
					fmt.Fprintln(a.Out, "Aviso: el token expiró, vuelve a iniciar sesión.")
				} else {
					fmt.Fprintf(a.Out, "Token válido hasta %s\n", info.ExpiresAt.Format(time.RFC3339))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(updateNameCmd(app))
	cmd.AddCommand(updateEmailCmd(app))
	cmd.AddCommand(resetLinkCmd(app))
	return cmd
}

func updateNameCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "update-name <name>",
		Short: "Change the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			if err := a.Client.UpdateName(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Nombre actualizado.")
			return nil
		},
	}
}

func updateEmailCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "update-email <email>",
		Short: "Change the account email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			if err := a.Client.UpdateEmail(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Correo actualizado.")
			return nil
		},
	}
}

func resetLinkCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-link",
		Short: "Generate a password-reset link for this account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			link, err := a.Client.UserResetLink(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "Enlace de restablecimiento: %s\n", link)
			return nil
		},
	}
}

func resetPasswordCmd(app **App) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "reset-password <token>",
		Short: "Set a new password using a reset link token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			if err := a.Client.ResetPassword(cmd.Context(), args[0], password); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Contraseña actualizada.")
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "New password")
	cmd.MarkFlagRequired("password")
	return cmd
}
