// Command outlook-auth authorizes read access to an Outlook calendar and
// writes the token the API reads from outlook.token_path. Run it once,
// locally, with the Azure AD app registration in the environment.
//
// Usage:
//
//	OUTLOOK_CLIENT_ID=... OUTLOOK_CLIENT_SECRET=... go run ./scripts/outlook-auth [token.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"productivity-calendar/pkg/log"
	"productivity-calendar/pkg/outlook"
)

const redirectURL = "http://localhost"

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Encoding: log.EncodingConsole})

	tokenPath := "outlook-token.json"
	if len(os.Args) > 1 {
		tokenPath = os.Args[1]
	}

	clientID := os.Getenv("OUTLOOK_CLIENT_ID")
	if clientID == "" {
		logger.Fatal(ctx, "OUTLOOK_CLIENT_ID is required")
	}
	config := outlook.OAuthConfig(os.Getenv("OUTLOOK_TENANT_ID"), clientID, os.Getenv("OUTLOOK_CLIENT_SECRET"), redirectURL)

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the calendar's Microsoft account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the code parameter from the redirect URL and press Enter: ")

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

	fmt.Printf("\nToken saved to %s. Restart the API to enable Outlook sync.\n", tokenPath)
}
