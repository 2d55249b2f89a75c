package gmail

import "time"

// UserID addresses the mailbox the credentials belong to.
const UserID = "me"

// ListRequest selects messages with Gmail search syntax, e.g.
// "subject:exam newer_than:7d".
type ListRequest struct {
	Query string
	// MaxResults caps the total across pages; zero means DefaultMaxResults.
	MaxResults int
}

// DefaultMaxResults applies when a ListRequest sets no cap.
const DefaultMaxResults = 50

// Message is the decoded subset of a Gmail message the scan reads.
type Message struct {
	ID       string
	Subject  string
	From     string
	Snippet  string
	Received time.Time
	// Body is the first text/plain part, or the top-level body.
	Body string
}
