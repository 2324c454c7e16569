package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mbelyaev/eventmap-client/internal/client/models"
)

// maxErrorPayloadBytes caps how much of an error response body is read when
// extracting a displayable message.
const maxErrorPayloadBytes = 4 << 10

// HTTPClient talks JSON over HTTP to the authentication service.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://127.0.0.1:3333". The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

func (c *HTTPClient) Authenticate(ctx context.Context, email string, password string) (*models.User, string, error) {
	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: transport-level failure.
		return nil, "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", c.authError(resp)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.User == nil {
		return nil, "", fmt.Errorf("decode login response: missing user")
	}

	return lr.User, lr.AccessToken, nil
}

// authError converts an error response into a *AuthError. The payload is only
// promoted to a displayable message when it is a plain JSON string or an
// object with a string "message" field; any other shape leaves Message empty
// so the caller falls back to a generic text.
func (c *HTTPClient) authError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorPayloadBytes))

	ae := &AuthError{StatusCode: resp.StatusCode}

	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		ae.Message = asString
		return ae
	}

	var asObject struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &asObject); err == nil {
		ae.Message = asObject.Message
	}
	return ae
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
