package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiniela-app/quiniela-go/internal/push"
)

func notifyCmd(app **App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Subscribe to push notifications and receive them in the terminal",
		Long:  "Starts a local delivery endpoint, registers it with the server as a push subscription, and prints every notification until interrupted. Set QUINIELA_PUSH_URL when the receiver sits behind a tunnel or reverse proxy.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			ctx := cmd.Context()

			receiver := push.NewReceiver(&push.TerminalNotifier{Out: a.Out}, a.Logger)

			base := a.Cfg.PushPublicURL
			if base == "" {
				base = "http://" + a.Cfg.PushListenAddr
			}
			sub, _, err := push.NewSubscription(base + receiver.Path())
			if err != nil {
				return err
			}
			if err := a.Client.Subscribe(ctx, sub); err != nil {
				return err
			}

			fmt.Fprintf(a.Out, "Suscripción registrada en %s. Esperando notificaciones, Ctrl-C para salir.\n", sub.Endpoint)
			return receiver.Serve(ctx, a.Cfg.PushListenAddr)
		},
	}
	return cmd
}
