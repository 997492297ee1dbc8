package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"yatai/config"
	domainerrors "yatai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientWith(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Line: &config.LineConfig{
			ChannelID:  "1234567890",
			VerifyURL:  server.URL + "/oauth2/v2.1/verify",
			ProfileURL: server.URL + "/v2/profile",
		},
	}

	return NewClient(cfg).(*Client)
}

func TestClient_VerifyIDToken_Success(t *testing.T) {
	client := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "valid-id-token", r.Form.Get("id_token"))
		assert.Equal(t, "1234567890", r.Form.Get("client_id"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":     "U1234567890abcdef",
			"name":    "Takoyaki Taro",
			"picture": "https://profile.line-scdn.net/abc",
			"aud":     "1234567890",
		})
	})

	token, err := client.VerifyIDToken(context.Background(), "valid-id-token")
	require.NoError(t, err)
	assert.Equal(t, "U1234567890abcdef", token.LineUserID)
	assert.Equal(t, "Takoyaki Taro", token.DisplayName)
	assert.Equal(t, "https://profile.line-scdn.net/abc", token.PictureURL)
}

func TestClient_VerifyIDToken_InvalidToken(t *testing.T) {
	client := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_request",
			"error_description": "Invalid IdToken.",
		})
	})

	token, err := client.VerifyIDToken(context.Background(), "expired-token")
	require.Error(t, err)
	assert.Nil(t, token)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)
}

func TestClient_VerifyIDToken_WrongChannel(t *testing.T) {
	client := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub": "U1234567890abcdef",
			"aud": "9999999999",
		})
	})

	token, err := client.VerifyIDToken(context.Background(), "foreign-token")
	require.Error(t, err)
	assert.Nil(t, token)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)
}

func TestClient_VerifyIDToken_PlatformDown(t *testing.T) {
	client := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	token, err := client.VerifyIDToken(context.Background(), "any-token")
	require.Error(t, err)
	assert.Nil(t, token)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}

func TestClient_GetProfile_Success(t *testing.T) {
	client := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"userId":        "U1234567890abcdef",
			"displayName":   "Takoyaki Taro",
			"pictureUrl":    "https://profile.line-scdn.net/abc",
			"statusMessage": "Open for business",
		})
	})

	profile, err := client.GetProfile(context.Background(), "access-token")
	require.NoError(t, err)
	assert.Equal(t, "U1234567890abcdef", profile.LineUserID)
	assert.Equal(t, "Open for business", profile.StatusMessage)
}

func TestClient_GetProfile_Unauthorized(t *testing.T) {
	client := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	profile, err := client.GetProfile(context.Background(), "revoked-token")
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)
}
