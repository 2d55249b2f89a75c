package calendarsync

import (
	"time"

	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/model"
)

const (
	DefaultDaysAhead = 30
	MaxDaysAhead     = 365
	// MaxRemoteEvents caps a single sync.
	MaxRemoteEvents = 2500

	DefaultDaysBack = 7
	MaxDaysBack     = 90
	// MaxMessages caps a single Gmail scan.
	MaxMessages = 50
	// MailQuery is the Gmail search a scan runs; %d is the days_back window.
	MailQuery = "subject:(deadline OR interview OR exam OR assignment OR due) newer_than:%dd"
	// MailContext is the extractor context for message text.
	MailContext = "email"
)

// --- UseCase Inputs ---

// SyncInput selects the remote window [now, now+DaysAhead days].
// Zero DaysAhead means DefaultDaysAhead.
type SyncInput struct {
	DaysAhead int
}

// MailScanInput selects messages received in the last DaysBack days.
// Zero DaysBack means DefaultDaysBack.
type MailScanInput struct {
	DaysBack int
	// CreateTasks turns found deadlines into email tasks. Messages received
	// before the previous import are skipped so a rescan adds nothing twice.
	CreateTasks bool
}

// --- UseCase Outputs ---

type SyncOutput struct {
	Fetched   int
	Created   int
	Updated   int
	Unchanged int
	// Skipped counts remote events that could not be stored, e.g. zero length.
	Skipped int
}

type MailScanOutput struct {
	Fetched int
	Scanned int
	// Skipped counts messages already covered by an earlier import.
	Skipped      int
	TasksCreated int
	// Messages lists only the messages with at least one deadline.
	Messages []MailResult
}

// MailResult is what one message yielded.
type MailResult struct {
	MessageID string
	Subject   string
	From      string
	Received  time.Time
	Deadlines []extractor.Deadline
	Tasks     []model.Task
}
