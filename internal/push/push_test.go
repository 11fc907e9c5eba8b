package push

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewSubscriptionKeyMaterial(t *testing.T) {
	sub, priv, err := NewSubscription("https://push.example/ep")
	if err != nil {
		t.Fatalf("new subscription: %v", err)
	}
	if priv == nil {
		t.Fatal("missing private key")
	}
	if sub.Endpoint != "https://push.example/ep" {
		t.Errorf("endpoint = %q", sub.Endpoint)
	}

	p256dh, err := base64.RawURLEncoding.DecodeString(sub.P256dhKey)
	if err != nil {
		t.Fatalf("p256dh not base64url: %v", err)
	}
	// Uncompressed P-256 point: 0x04 || X || Y.
	if len(p256dh) != 65 || p256dh[0] != 0x04 {
		t.Errorf("p256dh key length %d, first byte %#x", len(p256dh), p256dh[0])
	}

	auth, err := base64.RawURLEncoding.DecodeString(sub.AuthKey)
	if err != nil {
		t.Fatalf("auth not base64url: %v", err)
	}
	if len(auth) != 16 {
		t.Errorf("auth secret length %d, want 16", len(auth))
	}
}

func TestNewSubscriptionKeysAreUnique(t *testing.T) {
	a, _, _ := NewSubscription("https://push.example/ep")
	b, _, _ := NewSubscription("https://push.example/ep")
	if a.P256dhKey == b.P256dhKey || a.AuthKey == b.AuthKey {
		t.Error("subscriptions must not share key material")
	}
}

type captureNotifier struct {
	got []Notification
}

func (c *captureNotifier) Notify(_ context.Context, n Notification) error {
	c.got = append(c.got, n)
	return nil
}

func TestReceiverDeliversNotification(t *testing.T) {
	notifier := &captureNotifier{}
	rc := NewReceiver(notifier, nil)
	srv := httptest.NewServer(rc.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+rc.Path(), "application/json",
		strings.NewReader(`{"title":"Resultados","body":"Ronda 12 cerrada"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(notifier.got) != 1 || notifier.got[0].Title != "Resultados" {
		t.Errorf("delivered = %+v", notifier.got)
	}
}

func TestReceiverRejectsWrongID(t *testing.T) {
	rc := NewReceiver(&captureNotifier{}, nil)
	srv := httptest.NewServer(rc.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/push/not-the-id", "application/json",
		strings.NewReader(`{"title":"x","body":"y"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestReceiverRejectsBadPayload(t *testing.T) {
	rc := NewReceiver(&captureNotifier{}, nil)
	srv := httptest.NewServer(rc.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+rc.Path(), "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &TerminalNotifier{Out: &buf}
	if err := n.Notify(context.Background(), Notification{Title: "T", Body: "B"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "T") || !strings.Contains(out, "B") {
		t.Errorf("output = %q", out)
	}
}
