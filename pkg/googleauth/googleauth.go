// Package googleauth turns a Google credentials file into a token source.
// Service account keys are used directly; OAuth desktop credentials need the
// token written by scripts/gcal-auth.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var ErrUnsupportedCredentials = errors.New("googleauth: unsupported credentials format")

// TokenSourceFromFile reads credentialsPath and calls TokenSourceFromJSON.
func TokenSourceFromFile(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("googleauth: read credentials: %w", err)
	}
	return TokenSourceFromJSON(ctx, data, tokenPath, scopes...)
}

// TokenSourceFromJSON accepts a service account key or OAuth "installed"
// credentials. tokenPath is only read for the latter.
func TokenSourceFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, scopes ...string) (oauth2.TokenSource, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, scopes...); err == nil {
		return jwtCfg.TokenSource(ctx), nil
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}

	tok, err := ReadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return oauthCfg.TokenSource(ctx, tok), nil
}

// ReadToken loads an OAuth token saved as JSON.
func ReadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("googleauth: OAuth credentials need a token at %q (run scripts/gcal-auth): %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("googleauth: parse token: %w", err)
	}
	return &tok, nil
}
