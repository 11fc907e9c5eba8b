package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// loginResponse is the credential exchange payload.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
}

// Login exchanges credentials for a bearer token and installs the
// resulting session on the client.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp loginResponse
	if err := c.doForm(ctx, "/login", form, &resp); err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	s := Session{Token: resp.AccessToken, UserID: resp.UserID}
	c.SetSession(s)
	return s, nil
}

// Register creates a new account. Does not log in.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users/", nil, nil, body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Me returns the authenticated user's profile, including total points.
func (c *Client) Me(ctx context.Context) (Profile, error) {
	var p Profile
	if err := c.doAuthed(ctx, http.MethodGet, "/me", nil, nil, &p); err != nil {
		return Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return p, nil
}

// UpdateName changes the account's display name.
func (c *Client) UpdateName(ctx context.Context, name string) error {
	body := map[string]string{"name": name}
	if err := c.doAuthed(ctx, http.MethodPut, "/update-name/", nil, body, nil); err != nil {
		return fmt.Errorf("update name: %w", err)
	}
	return nil
}

// UpdateEmail changes the account's email address.
func (c *Client) UpdateEmail(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := c.doAuthed(ctx, http.MethodPut, "/update-email/", nil, body, nil); err != nil {
		return fmt.Errorf("update email: %w", err)
	}
	return nil
}

type resetLinkResponse struct {
	ResetLink string `json:"reset_link"`
}

// UserResetLink generates a password-reset link for the authenticated
// user's own account.
func (c *Client) UserResetLink(ctx context.Context) (string, error) {
	var resp resetLinkResponse
	if err := c.doAuthed(ctx, http.MethodPost, "/user-reset-link/", nil, struct{}{}, &resp); err != nil {
		return "", fmt.Errorf("generate reset link: %w", err)
	}
	return resp.ResetLink, nil
}

// GenerateResetLink generates a reset link for any account. Admin-gated:
// the server checks the shared secret in the X-Reset-Token header.
func (c *Client) GenerateResetLink(ctx context.Context, email, resetSecret string) (string, error) {
	query := url.Values{}
	query.Set("email", email)
	headers := map[string]string{"X-Reset-Token": resetSecret}

	var resp resetLinkResponse
	if err := c.do(ctx, http.MethodPost, "/generate-reset-link/", query, headers, nil, &resp); err != nil {
		return "", fmt.Errorf("generate reset link for %s: %w", email, err)
	}
	return resp.ResetLink, nil
}

// ResetPassword consumes a reset token to set a new password. No auth:
// the token is the credential.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	if err := c.do(ctx, http.MethodPost, "/reset-password/"+url.PathEscape(token), nil, nil, body, nil); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

// TriggerMatchUpdate asks the server to refresh fixtures from its
// upstream provider. Gated by the X-Update-Token shared secret.
func (c *Client) TriggerMatchUpdate(ctx context.Context, updateSecret string) error {
	headers := map[string]string{"X-Update-Token": updateSecret}
	if err := c.do(ctx, http.MethodPost, "/update-matches", nil, headers, nil, nil); err != nil {
		return fmt.Errorf("trigger match update: %w", err)
	}
	return nil
}
