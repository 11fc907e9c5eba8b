package push

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Notification is the push payload: what the server sends when a round
// closes or results land.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier displays a delivered notification.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// TerminalNotifier writes notifications to a writer (the CLI's stdout).
type TerminalNotifier struct {
	Out io.Writer
}

func (t *TerminalNotifier) Notify(_ context.Context, n Notification) error {
	_, err := fmt.Fprintf(t.Out, "\n🔔 %s\n   %s\n", n.Title, n.Body)
	return err
}

// Receiver is the HTTP endpoint push deliveries land on. Its public URL
// is what gets registered as the subscription endpoint.
type Receiver struct {
	id       string
	notifier Notifier
	logger   *slog.Logger
}

// NewReceiver creates a receiver delivering to notifier. Each receiver
// gets a unique id so its endpoint path cannot be guessed.
func NewReceiver(notifier Notifier, logger *slog.Logger) *Receiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Receiver{
		id:       uuid.NewString(),
		notifier: notifier,
		logger:   logger,
	}
}

// Path is the delivery path for this receiver.
func (rc *Receiver) Path() string {
	return "/push/" + rc.id
}

// Router builds the receiver's HTTP surface.
func (rc *Receiver) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	r.Post("/push/{receiverID}", rc.handleDelivery)

	return r
}

func (rc *Receiver) handleDelivery(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "receiverID") != rc.id {
		http.Error(w, "unknown receiver", http.StatusNotFound)
		return
	}

	var n Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		rc.logger.Warn("Undecodable push payload", "error", err)
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	if err := rc.notifier.Notify(r.Context(), n); err != nil {
		rc.logger.Error("Notify failed", "title", n.Title, "error", err)
		http.Error(w, "notify failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Serve runs the receiver on addr until ctx is cancelled.
func (rc *Receiver) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      rc.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		rc.logger.Info("Push receiver listening", "addr", addr, "path", rc.Path())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("push receiver: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("push receiver shutdown: %w", err)
	}
	return nil
}
