package api

import (
	"context"
	"fmt"
	"net/http"
)

// Subscribe registers (or refreshes) a push subscription for the
// authenticated user. The server upserts on (user, endpoint).
func (c *Client) Subscribe(ctx context.Context, sub PushSubscription) error {
	if err := c.doAuthed(ctx, http.MethodPost, "/subscribe", nil, sub, nil); err != nil {
		return fmt.Errorf("register push subscription: %w", err)
	}
	return nil
}
