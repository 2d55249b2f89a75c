package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"productivity-calendar/pkg/googleauth"
)

const fetchConcurrency = 4

var errStopPaging = errors.New("stop paging")

// Client wraps the Gmail API service with read-only access.
type Client struct {
	service *gmailapi.Service
}

// NewClientFromCredentialsFile creates a Gmail client from the same
// credentials file the calendar client uses.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	ts, err := googleauth.TokenSourceFromFile(ctx, credentialsPath, tokenPath, gmailapi.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("gmail: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(ts))
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gmail: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListMessages returns the messages matching req.Query, newest first, with
// their bodies decoded.
func (c *Client) ListMessages(ctx context.Context, req ListRequest) ([]Message, error) {
	limit := req.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	var ids []string
	call := c.service.Users.Messages.List(UserID).Q(req.Query).MaxResults(int64(limit))
	err := call.Pages(ctx, func(page *gmailapi.ListMessagesResponse) error {
		for _, m := range page.Messages {
			ids = append(ids, m.Id)
			if len(ids) >= limit {
				return errStopPaging
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("gmail: list messages: %w", err)
	}

	out := make([]Message, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			msg, err := c.service.Users.Messages.Get(UserID, id).Format("full").Context(gctx).Do()
			if err != nil {
				return fmt.Errorf("gmail: get message %s: %w", id, err)
			}
			out[i] = toMessage(msg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func toMessage(m *gmailapi.Message) Message {
	out := Message{
		ID:      m.Id,
		Snippet: m.Snippet,
	}
	if m.InternalDate > 0 {
		out.Received = time.UnixMilli(m.InternalDate).UTC()
	}
	if m.Payload == nil {
		return out
	}
	for _, h := range m.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "subject":
			out.Subject = h.Value
		case "from":
			out.From = h.Value
		}
	}

	if body, ok := plainText(m.Payload); ok {
		out.Body = body
	} else if m.Payload.Body != nil {
		out.Body = decodeBody(m.Payload.Body.Data)
	}
	return out
}

// plainText walks the MIME tree depth first for a text/plain part.
func plainText(p *gmailapi.MessagePart) (string, bool) {
	if p == nil {
		return "", false
	}
	if p.MimeType == "text/plain" && p.Body != nil && p.Body.Data != "" {
		return decodeBody(p.Body.Data), true
	}
	for _, part := range p.Parts {
		if body, ok := plainText(part); ok {
			return body, true
		}
	}
	return "", false
}

// decodeBody accepts padded and unpadded base64url.
func decodeBody(data string) string {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(b)
}
