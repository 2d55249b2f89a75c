package outlook_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"productivity-calendar/pkg/outlook"
)

func TestListEvents(t *testing.T) {
	var base string
	var gotQuery, gotPrefer string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/me/calendarView" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("page") == "2" {
			w.Write([]byte(`{"value": [
				{"id": "o3", "subject": "Office hours", "start": {"dateTime": "2024-05-03T14:00:00", "timeZone": "UTC"}, "end": {"dateTime": "2024-05-03T15:00:00", "timeZone": "UTC"}}
			]}`))
			return
		}
		gotQuery = r.URL.RawQuery
		gotPrefer = r.Header.Get("Prefer")
		w.Write([]byte(`{
			"@odata.nextLink": "` + base + `/me/calendarView?page=2",
			"value": [
				{"id": "o1", "subject": "Team sync", "bodyPreview": "weekly", "location": {"displayName": "Room 4"},
				 "start": {"dateTime": "2024-05-02T09:00:00.0000000", "timeZone": "UTC"}, "end": {"dateTime": "2024-05-02T09:30:00.0000000", "timeZone": "UTC"}},
				{"id": "gone", "isCancelled": true, "start": {"dateTime": "2024-05-02T10:00:00", "timeZone": "UTC"}, "end": {"dateTime": "2024-05-02T11:00:00", "timeZone": "UTC"}},
				{"id": "bad", "start": {"dateTime": "not a time"}, "end": {"dateTime": "2024-05-02T11:00:00"}},
				{"id": "o2", "subject": "Lab", "start": {"dateTime": "2024-05-02T10:00:00", "timeZone": "Asia/Tokyo"}, "end": {"dateTime": "2024-05-02T12:00:00", "timeZone": "Asia/Tokyo"}}
			]
		}`))
	}))
	defer ts.Close()
	base = ts.URL

	client, err := outlook.New(context.Background(), outlook.Config{
		ClientID: "app",
		Token:    &oauth2.Token{AccessToken: "access", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)},
		BaseURL:  ts.URL,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	events, err := client.ListEvents(context.Background(), outlook.ListEventsRequest{TimeMin: from, TimeMax: from.AddDate(0, 0, 30)})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if gotPrefer != `outlook.timezone="UTC"` {
		t.Errorf("Prefer = %q", gotPrefer)
	}
	if gotQuery == "" {
		t.Error("first page not requested")
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(events), events)
	}

	if e := events[0]; e.ID != "o1" || e.Location != "Room 4" || e.Preview != "weekly" || !e.Start.Equal(time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("o1 = %+v", e)
	}
	if e := events[1]; e.ID != "o2" || !e.Start.Equal(time.Date(2024, 5, 2, 1, 0, 0, 0, time.UTC)) || e.Start.Location() != time.UTC {
		t.Errorf("o2 not converted to UTC: %+v", e)
	}
	if events[2].ID != "o3" {
		t.Errorf("next link not followed: %+v", events[2])
	}

	t.Run("max results", func(t *testing.T) {
		capped, err := client.ListEvents(context.Background(), outlook.ListEventsRequest{TimeMin: from, TimeMax: from.AddDate(0, 0, 1), MaxResults: 1})
		if err != nil {
			t.Fatalf("ListEvents: %v", err)
		}
		if len(capped) != 1 {
			t.Errorf("got %d events, want 1", len(capped))
		}
	})
}

func TestListEventsAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	client, _ := outlook.New(context.Background(), outlook.Config{BaseURL: ts.URL, HTTPClient: ts.Client()})
	if _, err := client.ListEvents(context.Background(), outlook.ListEventsRequest{}); err == nil {
		t.Error("expected error")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     outlook.Config
		wantErr bool
	}{
		{name: "missing client id", cfg: outlook.Config{Token: &oauth2.Token{}}, wantErr: true},
		{name: "missing token", cfg: outlook.Config{ClientID: "app"}, wantErr: true},
		{name: "oauth", cfg: outlook.Config{ClientID: "app", Token: &oauth2.Token{}}},
		{name: "http client", cfg: outlook.Config{HTTPClient: http.DefaultClient}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.cfg.BaseURL != outlook.DefaultBaseURL {
				t.Errorf("BaseURL = %q", tt.cfg.BaseURL)
			}
		})
	}
}

func TestReadToken(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "outlook-token.json")
	os.WriteFile(good, []byte(`{"access_token": "a", "refresh_token": "r", "token_type": "Bearer"}`), 0o600)

	tok, err := outlook.ReadToken(good)
	if err != nil || tok.RefreshToken != "r" {
		t.Fatalf("ReadToken = %+v, %v", tok, err)
	}
	if _, err := outlook.ReadToken(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected missing file error")
	}
}

func TestOAuthConfigUsesTenantEndpoint(t *testing.T) {
	cfg := outlook.OAuthConfig("", "app", "secret", "http://localhost")
	if cfg.Endpoint.TokenURL != "https://login.microsoftonline.com/common/oauth2/v2.0/token" {
		t.Errorf("token url = %q", cfg.Endpoint.TokenURL)
	}
}
