// Package push is the client's side of web-push: generating subscription
// key material to register with the server, and a small HTTP receiver
// that turns delivered payloads into user-visible notifications.
package push

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/quiniela-app/quiniela-go/internal/api"
)

// NewSubscription generates fresh subscription material for endpoint: a
// P-256 keypair (the p256dh key is the uncompressed public point) and a
// 16-byte auth secret, both base64url-encoded the way push services
// expect. The private key stays with the receiver; only public material
// is registered.
func NewSubscription(endpoint string) (api.PushSubscription, *ecdh.PrivateKey, error) {
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return api.PushSubscription{}, nil, fmt.Errorf("generate p256 key: %w", err)
	}

	auth := make([]byte, 16)
	if _, err := rand.Read(auth); err != nil {
		return api.PushSubscription{}, nil, fmt.Errorf("generate auth secret: %w", err)
	}

	sub := api.PushSubscription{
		Endpoint:  endpoint,
		P256dhKey: base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		AuthKey:   base64.RawURLEncoding.EncodeToString(auth),
	}
	return sub, priv, nil
}
