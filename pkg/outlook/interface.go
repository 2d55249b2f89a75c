package outlook

import "context"

// IOutlook reads a Microsoft 365 calendar through Microsoft Graph.
// Implementations are safe for concurrent use.
type IOutlook interface {
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

// New validates cfg and returns a client.
func New(ctx context.Context, cfg Config) (IOutlook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOutlookImpl(ctx, cfg), nil
}
