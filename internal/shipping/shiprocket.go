// Package shipping authenticates against the shipping carrier's API. The
// gateway only maintains the auth token; label and shipment operations live
// elsewhere.
package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/velmora/storefront-gateway/internal/apperr"
)

const defaultAuthURL = "https://apiv2.shiprocket.in/v1/external/auth/login"

// Carrier tokens are valid for ten days; refresh a day early.
const tokenTTL = 9 * 24 * time.Hour

type Client struct {
	httpClient *http.Client
	authURL    string
	email      string
	password   string

	group singleflight.Group

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func New(email, password string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		authURL:    defaultAuthURL,
		email:      email,
		password:   password,
	}
}

// Token returns the cached auth token, refreshing it when absent or past
// expiry. Concurrent callers racing on an expired token share one refresh.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, expiresAt := c.token, c.expiresAt
	c.mu.RUnlock()

	if token != "" && time.Now().Before(expiresAt) {
		return token, nil
	}

	v, err, _ := c.group.Do("token", func() (any, error) {
		// Re-check under the flight: the winner may have refreshed already.
		c.mu.RLock()
		token, expiresAt := c.token, c.expiresAt
		c.mu.RUnlock()
		if token != "" && time.Now().Before(expiresAt) {
			return token, nil
		}
		// The refresh is shared by every waiter, so it must not die with
		// the winning caller's deadline; the HTTP client timeout bounds it.
		return c.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) refresh(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.UpstreamFailure, "shipping auth request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.New(apperr.UpstreamFailure,
			fmt.Sprintf("shipping auth returned status %d", resp.StatusCode))
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperr.Wrap(apperr.UpstreamFailure, "shipping auth response malformed", err)
	}
	if payload.Token == "" {
		return "", apperr.New(apperr.UpstreamFailure, "shipping auth returned empty token")
	}

	c.mu.Lock()
	c.token = payload.Token
	c.expiresAt = time.Now().Add(tokenTTL)
	c.mu.Unlock()

	return payload.Token, nil
}
