package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelyaev/eventmap-client/internal/common"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthenticate_Success(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "user@example.com", req.Email)
		require.Equal(t, "secret1", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"1","name":"Ada","email":"user@example.com"},"accessToken":"tok-123"}`))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	user, token, err := c.Authenticate(context.Background(), "user@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "tok-123", token)
}

func TestAuthenticate_StructuredError_StringPayload(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`"Invalid credentials"`))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), "a@b.com", "secret1")
	require.Error(t, err)

	var ae *AuthError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Invalid credentials", ae.Message)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_StructuredError_MessageObject(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Account locked"}`))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), "a@b.com", "secret1")

	var ae *AuthError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Account locked", ae.Message)
}

func TestAuthenticate_StructuredError_UndisplayablePayload(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[1,2,3]`))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), "a@b.com", "secret1")

	var ae *AuthError
	require.ErrorAs(t, err, &ae)
	assert.Empty(t, ae.Message)
	assert.Contains(t, ae.Error(), "400")
}

func TestAuthenticate_TransportError_Unavailable(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // connection refused from now on

	c := NewHTTPClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), "a@b.com", "secret1")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestAuthenticate_MalformedSuccessBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":`))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), "a@b.com", "secret1")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnavailable)
}

func TestAuthenticate_MissingUserInResponse(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"tok"}`))
	})

	c := NewHTTPClient(srv.URL, time.Second)
	_, _, err := c.Authenticate(context.Background(), "a@b.com", "secret1")
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	c := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, c.Ping(context.Background()))

	srv.Close()
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestClose_IsIdempotent(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:0", time.Second)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
