package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/stockdash/internal/domain"
	"github.com/bnema/stockdash/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginPostsCredentialsAsJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"username": "alice", "password": "pw"}, body)

		_, _ = fmt.Fprint(w, `{"authToken":"t1","refreshToken":"r1","userId":7}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, server.Client())
	require.NoError(t, err)

	grant, err := client.Login(context.Background(), domain.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, ports.TokenGrant{AuthToken: "t1", RefreshToken: "r1", UserID: "7"}, grant)
}

func TestLoginAcceptsBackendSnakeCaseTokens(t *testing.T) {
	t.Parallel()

	accessToken := signedToken(t, jwt.MapClaims{"sub": float64(42), "fresh": true})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"access_token":%q,"refresh_token":"r-2"}`, accessToken)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, server.Client())
	require.NoError(t, err)

	grant, err := client.Login(context.Background(), domain.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, accessToken, grant.AuthToken)
	assert.Equal(t, "r-2", grant.RefreshToken)
	assert.Equal(t, domain.UserID("42"), grant.UserID)
}

func TestLoginReturnsAuthenticationFailedOnNonSuccess(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusBadRequest, http.StatusInternalServerError} {
		status := status
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = fmt.Fprint(w, `{"message":"Authorization failed"}`)
			}))
			defer server.Close()

			client, err := NewClient(server.URL, server.Client())
			require.NoError(t, err)

			_, err = client.Login(context.Background(), domain.Credentials{Username: "alice", Password: "pw"})
			require.ErrorIs(t, err, domain.ErrAuthenticationFailed)
			assert.Equal(t, "authentication failed", err.Error())
		})
	}
}

func TestLoginRejectsSuccessWithoutToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "no token", body: `{"userId":7}`},
		{name: "not json", body: `<html>ok</html>`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, tc.body)
			}))
			defer server.Close()

			client, err := NewClient(server.URL, server.Client())
			require.NoError(t, err)

			_, err = client.Login(context.Background(), domain.Credentials{Username: "alice", Password: "pw"})
			require.ErrorIs(t, err, domain.ErrInvalidLoginResponse)
		})
	}
}

func TestLoginWrapsTransportErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClient(baseURL, nil)
	require.NoError(t, err)

	_, err = client.Login(context.Background(), domain.Credentials{Username: "alice", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAuthenticationFailed)
	assert.ErrorContains(t, err, "perform request")
}

func TestSubjectFromToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.UserID("u-1"), subjectFromToken(signedToken(t, jwt.MapClaims{"sub": "u-1"})))
	assert.Equal(t, domain.UserID("7"), subjectFromToken(signedToken(t, jwt.MapClaims{"sub": float64(7)})))
	assert.Equal(t, domain.UserID(""), subjectFromToken(signedToken(t, jwt.MapClaims{"fresh": true})))
	assert.Equal(t, domain.UserID(""), subjectFromToken("token"))
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{name: "empty", baseURL: " ", wantErr: "base url is required"},
		{name: "scheme", baseURL: "ftp://localhost:5000", wantErr: "http or https"},
		{name: "host", baseURL: "http://", wantErr: "host is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewClient(tc.baseURL, nil)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-test-secret-test-sec"))
	require.NoError(t, err)
	return token
}
