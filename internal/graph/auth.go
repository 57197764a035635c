// Package graph talks to Microsoft Graph: device-code authentication and
// the small slice of the OneNote API the importer needs.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/izebair/Rezepte/internal/common"
)

// Scopes requested during authentication. offline_access yields a refresh
// token so subsequent runs don't prompt again.
var Scopes = []string{"User.Read", "Notes.ReadWrite", "offline_access"}

// AuthConfig holds what the device-code flow needs.
type AuthConfig struct {
	ClientID  string
	TenantID  string
	Authority string // optional override, tenant alias or full URL
	TokenFile string
}

func (c AuthConfig) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID: c.ClientID,
		Endpoint: c.endpoint(),
		Scopes:   Scopes,
	}
}

// endpoint resolves the Azure AD endpoint. An authority override may be a
// tenant alias like "consumers" or a full base URL.
func (c AuthConfig) endpoint() oauth2.Endpoint {
	authority := strings.TrimSpace(c.Authority)
	if authority == "" {
		return microsoft.AzureADEndpoint(c.TenantID)
	}
	if strings.HasPrefix(authority, "https://") || strings.HasPrefix(authority, "http://") {
		base := strings.TrimRight(authority, "/")
		return oauth2.Endpoint{
			AuthURL:       base + "/oauth2/v2.0/authorize",
			TokenURL:      base + "/oauth2/v2.0/token",
			DeviceAuthURL: base + "/oauth2/v2.0/devicecode",
		}
	}
	return microsoft.AzureADEndpoint(authority)
}

// AuthenticateDeviceCode runs the device-code flow. The user code and
// verification URL are printed via prompt; pass nil to log them instead.
func AuthenticateDeviceCode(ctx context.Context, config AuthConfig, prompt func(userCode, verificationURL string)) (*oauth2.Token, error) {
	oauthConfig := config.oauthConfig()

	resp, err := oauthConfig.DeviceAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start device authorization: %w", err)
	}

	if prompt != nil {
		prompt(resp.UserCode, resp.VerificationURI)
	} else {
		slog.Info("Device authentication required", "code", resp.UserCode, "url", resp.VerificationURI)
	}

	token, err := oauthConfig.DeviceAccessToken(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("device authorization was not completed: %w", err)
	}

	if config.TokenFile != "" {
		if err := saveToken(config.TokenFile, token); err != nil {
			slog.Warn("Failed to save token to file", "error", err, "file", config.TokenFile)
		} else {
			slog.Info("Token saved", "file", config.TokenFile)
		}
	}

	return token, nil
}

// LoadToken loads a previously saved token.
func LoadToken(tokenFile string) (*oauth2.Token, error) {
	f, err := os.Open(tokenFile) // #nosec G304
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)
	return token, err
}

// saveToken writes a token to file, creating the directory if needed.
func saveToken(path string, token *oauth2.Token) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return nil
}

// HTTPClient returns an authenticated HTTP client backed by the saved
// token, refreshing and re-saving it as needed. Returns ErrAuthRequired
// when no usable token exists.
func HTTPClient(ctx context.Context, config AuthConfig) (*http.Client, error) {
	token, err := LoadToken(config.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("%w: no saved token at %s", common.ErrAuthRequired, config.TokenFile)
	}

	oauthConfig := config.oauthConfig()
	source := oauth2.ReuseTokenSource(token, &savingTokenSource{
		inner: oauthConfig.TokenSource(ctx, token),
		file:  config.TokenFile,
	})

	return oauth2.NewClient(ctx, source), nil
}

// savingTokenSource persists refreshed tokens so the refresh token rotation
// some tenants enforce doesn't log the user out.
type savingTokenSource struct {
	inner oauth2.TokenSource
	file  string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.inner.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh failed: %v", common.ErrAuthRequired, err)
	}
	if s.file != "" {
		if err := saveToken(s.file, token); err != nil {
			slog.Warn("Failed to save refreshed token", "error", err)
		}
	}
	return token, nil
}

// TokenStatus reports whether a saved token exists and is still valid.
func TokenStatus(tokenFile string) (exists, valid bool) {
	token, err := LoadToken(tokenFile)
	if err != nil {
		return false, false
	}
	return true, token.Valid()
}
