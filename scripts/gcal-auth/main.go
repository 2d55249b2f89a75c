// Command gcal-auth authorizes Google Calendar and read-only Gmail access
// for OAuth desktop credentials and writes the token the API reads from
// google_calendar.token_path. Run it once, locally.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json] [token.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"

	"productivity-calendar/pkg/log"
)

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Encoding: log.EncodingConsole})

	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := "token.json"
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope, gmail.GmailReadonlyScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials: %v (is %q an OAuth desktop app file?)", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the calendar's Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Restart the API to enable Google Calendar sync and the Gmail scan.\n", tokenPath)
}
