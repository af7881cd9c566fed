// Package gateway implements the client side of the marketplace auth API
// over HTTP. The server is an external collaborator; everything here
// translates the wire contract into domain values and errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
	"github.com/agrimercato/marketplace-client/internal/core/ports"
)

const defaultRequestTimeout = 15 * time.Second

// maxBodyBytes caps response reads; auth payloads are small.
const maxBodyBytes = 1 << 20

// HTTPGateway talks to the marketplace auth endpoints.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// New returns an HTTPGateway rooted at baseURL (e.g.
// "http://localhost:8000/api/v1"). A nil client gets a default with a
// request timeout.
func New(baseURL string, client *http.Client) *HTTPGateway {
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        *domain.User `json:"user"`
}

type languageRequest struct {
	Language domain.Language `json:"language"`
}

// Login implements ports.AuthGateway. Any non-2xx response maps to
// domain.ErrInvalidCredentials.
func (g *HTTPGateway) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	resp, err := g.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp.Body)
		return nil, domain.ErrInvalidCredentials
	}

	var body loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("login: decode response: %w", err)
	}
	if body.AccessToken == "" || body.User == nil {
		return nil, fmt.Errorf("login: malformed response: %w", domain.ErrInvalidCredentials)
	}

	return &ports.LoginResult{
		AccessToken: body.AccessToken,
		TokenType:   body.TokenType,
		ExpiresIn:   body.ExpiresIn,
		User:        body.User,
	}, nil
}

// CurrentUser implements ports.AuthGateway. Any non-2xx response maps to
// domain.ErrTokenInvalid.
func (g *HTTPGateway) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	resp, err := g.do(ctx, http.MethodGet, "/auth/me", token, nil)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp.Body)
		return nil, domain.ErrTokenInvalid
	}

	var user domain.User
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&user); err != nil {
		return nil, fmt.Errorf("current user: decode response: %w", err)
	}
	return &user, nil
}

// UpdateLanguage implements ports.AuthGateway.
func (g *HTTPGateway) UpdateLanguage(ctx context.Context, token string, lang domain.Language) error {
	resp, err := g.do(ctx, http.MethodPut, "/auth/language", token, languageRequest{Language: lang})
	if err != nil {
		return fmt.Errorf("update language: %w", err)
	}
	defer resp.Body.Close()
	drain(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("update language: %w", domain.ErrTokenInvalid)
	default:
		return fmt.Errorf("update language: unexpected status %d", resp.StatusCode)
	}
}

// do builds and executes one request. A non-empty token is attached as a
// bearer credential.
func (g *HTTPGateway) do(ctx context.Context, method, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	return resp, nil
}

// drain consumes a response body so the connection can be reused.
func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, maxBodyBytes))
}
