package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/state"
)

// --------------------------------------------------------------------------
// login / logout / register
// --------------------------------------------------------------------------

func loginCmd(app **App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			sess, err := a.Client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.Store.SaveSession(state.Session{Token: sess.Token, UserID: sess.UserID}); err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "Sesión iniciada (usuario %d).\n", sess.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			a.Client.ClearSession()
			if err := a.Store.ClearSession(); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Sesión cerrada.")
			return nil
		},
	}
}

func registerCmd(app **App) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			if err := a.Client.Register(cmd.Context(), name, email, password); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Cuenta creada. Inicia sesión con `quiniela login`.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}
