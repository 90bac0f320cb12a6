// Package bullhorn talks to the Bullhorn REST API: OAuth login plus
// per-candidate profile updates.
package bullhorn

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AuthConfig carries the OAuth credentials for the Bullhorn access point.
type AuthConfig struct {
	AuthURL      string
	RestURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

// Session holds the REST entry point returned by /login. Every data call
// is addressed to RestURL and carries the BhRestToken.
type Session struct {
	BhRestToken string `json:"BhRestToken"`
	RestURL     string `json:"restUrl"`
}

// Authenticator performs the three-step Bullhorn login: authorize (code),
// token exchange, REST login. It retains the refresh token for token
// renewal within one process lifetime.
type Authenticator struct {
	config        AuthConfig
	httpClient    *http.Client
	refreshToken  string
	refreshExpiry time.Time
}

// NewAuthenticator creates an authenticator with a sane request timeout.
func NewAuthenticator(config AuthConfig) *Authenticator {
	return &Authenticator{
		config:     config,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Login runs the full authorize → token → REST login sequence.
func (a *Authenticator) Login(ctx context.Context) (*Session, error) {
	code, err := a.AttainAuthCode(ctx)
	if err != nil {
		return nil, err
	}
	token, err := a.AccessToken(ctx, code)
	if err != nil {
		return nil, err
	}
	return a.APILogin(ctx, token)
}

// AttainAuthCode requests the authorization endpoint and extracts the
// code parameter from the redirect URL it lands on.
func (a *Authenticator) AttainAuthCode(ctx context.Context) (string, error) {
	params := url.Values{
		"client_id":     {a.config.ClientID},
		"response_type": {"code"},
		"username":      {a.config.Username},
		"password":      {a.config.Password},
		"action":        {"Login"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.config.AuthURL+"/authorize?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("authorize request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("authorize request returned status %d", resp.StatusCode)
	}

	// The final URL after redirects carries the code in its query.
	query := resp.Request.URL.Query()
	code := query.Get("code")
	if code == "" {
		return "", fmt.Errorf("authorization code not present in redirect query %q", resp.Request.URL.RawQuery)
	}
	log.Printf("[BullhornAuth] Retrieved authorization code")
	return code, nil
}

// AccessToken exchanges an authorization code (or, when code is empty,
// the retained refresh token) for an access token.
func (a *Authenticator) AccessToken(ctx context.Context, authCode string) (string, error) {
	params := url.Values{
		"client_id":     {a.config.ClientID},
		"client_secret": {a.config.ClientSecret},
	}
	switch {
	case authCode != "":
		params.Set("code", authCode)
		params.Set("grant_type", "authorization_code")
	case a.refreshToken != "":
		params.Set("refresh_token", a.refreshToken)
		params.Set("grant_type", "refresh_token")
	default:
		return "", fmt.Errorf("either an authorization code or a refresh token is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.config.AuthURL+"/token?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	a.refreshToken = body.RefreshToken
	if body.ExpiresIn > 0 {
		a.refreshExpiry = time.Now().UTC().Add(time.Duration(body.ExpiresIn) * time.Second)
	}
	log.Printf("[BullhornAuth] Retrieved access token")
	return body.AccessToken, nil
}

// APILogin logs into the REST API and returns the session used for
// subsequent data calls.
func (a *Authenticator) APILogin(ctx context.Context, accessToken string) (*Session, error) {
	params := url.Values{
		"version":      {"*"},
		"access_token": {accessToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(a.config.RestURL, "/")+"/login?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("REST login failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("REST login returned status %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode REST login response: %w", err)
	}
	if session.BhRestToken == "" || session.RestURL == "" {
		return nil, fmt.Errorf("REST login response missing BhRestToken or restUrl")
	}
	log.Printf("[BullhornAuth] Logged into REST API")
	return &session, nil
}
