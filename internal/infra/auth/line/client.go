// Package line implements the IdentityProvider contract against the LINE
// platform APIs used by LIFF mini-apps.
package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yatai/config"
	domainerrors "yatai/internal/domain/errors"
	"yatai/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	lineVerifyURL  = "https://api.line.me/oauth2/v2.1/verify"
	lineProfileURL = "https://api.line.me/v2/profile"

	requestTimeout = 10 * time.Second
)

// Client verifies LIFF-issued ID tokens and fetches LINE profiles.
type Client struct {
	channelID  string
	verifyURL  string
	profileURL string
	httpClient *http.Client
}

// NewClient creates a new LINE platform client. The endpoint URLs can be
// overridden through configuration for testing against a stub server.
func NewClient(cfg *config.Config) service.IdentityProvider {
	verifyURL := lineVerifyURL
	profileURL := lineProfileURL
	var channelID string
	if cfg.Line != nil {
		channelID = cfg.Line.ChannelID
		if cfg.Line.VerifyURL != "" {
			verifyURL = cfg.Line.VerifyURL
		}
		if cfg.Line.ProfileURL != "" {
			profileURL = cfg.Line.ProfileURL
		}
	}

	return &Client{
		channelID:  channelID,
		verifyURL:  verifyURL,
		profileURL: profileURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// VerifyIDToken checks an ID token against the LINE verify endpoint and
// returns its claims. LINE answers 400 for invalid, expired or wrong-channel
// tokens; anything else non-200 is treated as the platform being unavailable.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityToken, error) {
	data := url.Values{}
	data.Set("id_token", idToken)
	data.Set("client_id", c.channelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create verify request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewServiceUnavailableError("LINE platform", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest:
		return nil, domainerrors.ErrIdentityTokenInvalid
	default:
		body, _ := io.ReadAll(resp.Body)

		return nil, domainerrors.NewServiceUnavailableError("LINE platform",
			errors.Errorf("verify endpoint answered status %d: %s", resp.StatusCode, string(body)))
	}

	var claims struct {
		Sub     string `json:"sub"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
		Aud     string `json:"aud"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, errors.Wrap(err, "failed to decode verify response")
	}

	if claims.Sub == "" {
		return nil, domainerrors.ErrIdentityTokenInvalid
	}
	if c.channelID != "" && claims.Aud != c.channelID {
		// Token was issued for some other channel.
		return nil, domainerrors.ErrIdentityTokenInvalid
	}

	return &service.IdentityToken{
		LineUserID:  claims.Sub,
		DisplayName: claims.Name,
		PictureURL:  claims.Picture,
	}, nil
}

// GetProfile fetches the display profile for a LINE access token.
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*service.IdentityProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewServiceUnavailableError("LINE platform", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domainerrors.ErrIdentityTokenInvalid
	default:
		body, _ := io.ReadAll(resp.Body)

		return nil, domainerrors.NewServiceUnavailableError("LINE platform",
			errors.Errorf("profile endpoint answered status %d: %s", resp.StatusCode, string(body)))
	}

	var profile struct {
		UserID        string `json:"userId"`
		DisplayName   string `json:"displayName"`
		PictureURL    string `json:"pictureUrl"`
		StatusMessage string `json:"statusMessage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile response")
	}

	return &service.IdentityProfile{
		LineUserID:    profile.UserID,
		DisplayName:   profile.DisplayName,
		PictureURL:    profile.PictureURL,
		StatusMessage: profile.StatusMessage,
	}, nil
}
