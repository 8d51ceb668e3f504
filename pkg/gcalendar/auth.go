package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// TokenPath returns where the OAuth token for credentialsPath is stored.
func TokenPath(credentialsPath string) string {
	return filepath.Join(filepath.Dir(credentialsPath), tokenFile)
}

// Authorizer runs the one-time consent flow for OAuth Desktop App credentials.
type Authorizer struct {
	config *oauth2.Config
}

// NewAuthorizer parses installed-app credentials JSON.
func NewAuthorizer(credentialsJSON []byte) (*Authorizer, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w (expected an OAuth Desktop App credentials file)", err)
	}
	return &Authorizer{config: cfg}, nil
}

// AuthCodeURL is the consent page the user opens in a browser.
func (a *Authorizer) AuthCodeURL(state string) string {
	return a.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted authorization code for a token and saves it at tokenPath.
func (a *Authorizer) Exchange(ctx context.Context, code, tokenPath string) error {
	tok, err := a.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", tokenPath, err)
	}
	return nil
}
