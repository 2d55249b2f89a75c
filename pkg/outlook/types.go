package outlook

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL  = "https://graph.microsoft.com/v1.0"
	DefaultTenantID = "common"

	// DefaultTimeout bounds a single page request.
	DefaultTimeout = 30 * time.Second

	pageSize = 100
)

// Scopes are requested by scripts/outlook-auth. offline_access yields the
// refresh token the client renews its access token with.
var Scopes = []string{"offline_access", "Calendars.Read"}

// Config holds Microsoft Graph client configuration.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// Token is the saved token. Its refresh token keeps the client alive.
	Token *oauth2.Token

	BaseURL string
	// HTTPClient, when set, is used as is and the OAuth fields are ignored.
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient != nil {
		return nil
	}
	if c.ClientID == "" {
		return fmt.Errorf("outlook: ClientID is required")
	}
	if c.Token == nil {
		return fmt.Errorf("outlook: Token is required (run scripts/outlook-auth)")
	}
	if c.TenantID == "" {
		c.TenantID = DefaultTenantID
	}
	return nil
}

// ListEventsRequest selects event instances overlapping [TimeMin, TimeMax).
type ListEventsRequest struct {
	TimeMin time.Time
	TimeMax time.Time
	// MaxResults caps the total across pages; zero means no cap.
	MaxResults int
}

// Event is a simplified Outlook calendar event. Times are UTC.
type Event struct {
	ID       string
	Subject  string
	Preview  string
	Location string
	Start    time.Time
	End      time.Time
	AllDay   bool
}

type graphEvents struct {
	Value    []graphEvent `json:"value"`
	NextLink string       `json:"@odata.nextLink"`
}

type graphEvent struct {
	ID          string        `json:"id"`
	Subject     string        `json:"subject"`
	BodyPreview string        `json:"bodyPreview"`
	IsAllDay    bool          `json:"isAllDay"`
	IsCancelled bool          `json:"isCancelled"`
	Location    graphLocation `json:"location"`
	Start       graphDateTime `json:"start"`
	End         graphDateTime `json:"end"`
}

type graphLocation struct {
	DisplayName string `json:"displayName"`
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}
