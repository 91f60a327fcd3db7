// ABOUTME: Authentication operations: login and logout
// ABOUTME: Login persists the issued token; logout clears the session store

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Login authenticates against the backend and persists the issued
// token. A 2xx response without a token counts as a rejected login and
// leaves the store untouched.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login failed: %w", ErrUnauthorized)
	}

	if err := c.store.Set(resp.Token); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &resp, nil
}

// Logout discards the local session. There is no backend call and no
// failure mode worth surfacing: a missing token is already logged out.
func (c *Client) Logout() {
	if err := c.store.Clear(); err != nil {
		c.log.Error().Err(err).Msg("failed to clear session on logout")
	}
}
