// Package cli implements the quiniela command tree. Commands are thin:
// they resolve selection state, call the API client through the refresh
// layer, and hand payloads to the pure view functions for rendering.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/quiniela-app/quiniela-go/internal/api"
	"github.com/quiniela-app/quiniela-go/internal/cache"
	"github.com/quiniela-app/quiniela-go/internal/config"
	"github.com/quiniela-app/quiniela-go/internal/refresh"
	"github.com/quiniela-app/quiniela-go/internal/state"
)

// App bundles the dependencies shared by every command.
type App struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Client    *api.Client
	Store     state.Store
	Refresher *refresh.Refresher
	Out       io.Writer
}

// NewApp wires the client stack: local store, API client with the saved
// session restored, and the refresh layer.
func NewApp(cfg *config.Config, logger *slog.Logger, out io.Writer) (*App, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.StatePath), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	store, err := state.NewSQLiteStore(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestsPerMinute, logger)
	if sess, ok := store.Session(); ok {
		client.SetSession(api.Session{Token: sess.Token, UserID: sess.UserID})
	}

	app := &App{
		Cfg:       cfg,
		Logger:    logger,
		Client:    client,
		Store:     store,
		Refresher: refresh.New(cache.New(cfg.CacheEnabled), logger),
		Out:       out,
	}

	// A rejected token anywhere logs the user out globally.
	client.OnUnauthorized(func() {
		if err := store.ClearSession(); err != nil {
			logger.Error("Failed to clear stored session", "error", err)
		}
		fmt.Fprintln(out, "Tu sesión expiró. Inicia sesión de nuevo con `quiniela login`.")
	})

	return app, nil
}

// Close releases the local store.
func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		a.Logger.Error("Failed to close state store", "error", err)
	}
}

// CompetitionScope resolves which competition a view is scoped to:
// an explicit flag wins and is remembered; otherwise the persisted
// selection applies; zero means "all competitions".
func (a *App) CompetitionScope(flagValue int, flagSet bool) int {
	if flagSet {
		if flagValue == 0 {
			_ = a.Store.DeletePref(state.PrefSelectedCompetition)
		} else {
			_ = a.Store.SetPref(state.PrefSelectedCompetition, strconv.Itoa(flagValue))
		}
		return flagValue
	}
	if v, ok := a.Store.Pref(state.PrefSelectedCompetition); ok {
		if id, err := strconv.Atoi(v); err == nil {
			return id
		}
	}
	return 0
}

// scopeParams encodes a competition scope as refresh params.
func scopeParams(competitionID int) string {
	return "competition=" + strconv.Itoa(competitionID)
}
