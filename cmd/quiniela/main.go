// Command quiniela is the terminal client for the quiniela prediction
// pool: submit score predictions, follow the standings, and run
// competitions with friends.
//
// Usage:
//
//	quiniela login --email you@example.com --password secret
//	quiniela matches
//	quiniela predict 1042 2 1
//	quiniela ranking --sort "Jornada 3"
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/cli"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	level := slog.LevelWarn
	if os.Getenv("QUINIELA_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	root := cli.NewRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, api.ErrNoSession) || errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Error: necesitas iniciar sesión (`quiniela login`).")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
