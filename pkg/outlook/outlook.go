package outlook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// graphLayout is the dateTime format Graph returns, without an offset.
const graphLayout = "2006-01-02T15:04:05.9999999"

type outlookImpl struct {
	baseURL    string
	httpClient *http.Client
}

func newOutlookImpl(ctx context.Context, cfg Config) *outlookImpl {
	hc := cfg.HTTPClient
	if hc == nil {
		oauthCfg := OAuthConfig(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, "")
		hc = &http.Client{
			Timeout: DefaultTimeout,
			Transport: &oauth2.Transport{
				Source: oauthCfg.TokenSource(ctx, cfg.Token),
				Base:   http.DefaultTransport,
			},
		}
	}
	return &outlookImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: hc,
	}
}

// OAuthConfig is the Azure AD app registration used for the delegated
// Calendars.Read grant.
func OAuthConfig(tenantID, clientID, clientSecret, redirectURL string) *oauth2.Config {
	if tenantID == "" {
		tenantID = DefaultTenantID
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     microsoft.AzureADEndpoint(tenantID),
		RedirectURL:  redirectURL,
		Scopes:       Scopes,
	}
}

// ReadToken loads the token written by scripts/outlook-auth.
func ReadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("outlook: read token %q (run scripts/outlook-auth): %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("outlook: parse token: %w", err)
	}
	return &tok, nil
}

// ListEvents expands recurring series through calendarView and skips
// cancelled instances.
func (o *outlookImpl) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	q := url.Values{}
	q.Set("startDateTime", req.TimeMin.UTC().Format(time.RFC3339))
	q.Set("endDateTime", req.TimeMax.UTC().Format(time.RFC3339))
	q.Set("$top", strconv.Itoa(pageSize))
	q.Set("$select", "id,subject,bodyPreview,isAllDay,isCancelled,location,start,end")
	next := o.baseURL + "/me/calendarView?" + q.Encode()

	var out []Event
	for next != "" {
		page, err := o.getPage(ctx, next)
		if err != nil {
			return nil, err
		}
		for _, ge := range page.Value {
			if ge.IsCancelled {
				continue
			}
			ev, ok := toEvent(ge)
			if !ok {
				continue
			}
			out = append(out, ev)
			if req.MaxResults > 0 && len(out) >= req.MaxResults {
				return out, nil
			}
		}
		next = page.NextLink
	}
	return out, nil
}

func (o *outlookImpl) getPage(ctx context.Context, pageURL string) (*graphEvents, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("outlook: failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Prefer", `outlook.timezone="UTC"`)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("outlook: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("outlook: API error %d: %s", resp.StatusCode, string(raw))
	}

	var page graphEvents
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("outlook: failed to decode response: %w", err)
	}
	return &page, nil
}

func toEvent(ge graphEvent) (Event, bool) {
	start, ok := parseDateTime(ge.Start)
	if !ok {
		return Event{}, false
	}
	end, ok := parseDateTime(ge.End)
	if !ok || !end.After(start) {
		return Event{}, false
	}
	return Event{
		ID:       ge.ID,
		Subject:  ge.Subject,
		Preview:  ge.BodyPreview,
		Location: ge.Location.DisplayName,
		Start:    start,
		End:      end,
		AllDay:   ge.IsAllDay,
	}, true
}

func parseDateTime(dt graphDateTime) (time.Time, bool) {
	if dt.DateTime == "" {
		return time.Time{}, false
	}
	loc := time.UTC
	if dt.TimeZone != "" && dt.TimeZone != "UTC" {
		if l, err := time.LoadLocation(dt.TimeZone); err == nil {
			loc = l
		}
	}
	t, err := time.ParseInLocation(graphLayout, dt.DateTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
