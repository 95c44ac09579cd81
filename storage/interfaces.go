package storage

import (
	"context"

	"github.com/laborlink/matchcore/core"
)

// EventRepository provides access to the append-only session event log.
// Implementations must be thread-safe and support concurrent access.
// The log is produced by the event-logging collaborator; this core only
// appends (for ingestion tooling) and reads pages (for offline mining).
type EventRepository interface {
	// AddEvents appends one or more session events.
	// Events are validated at this boundary; an invalid event fails the
	// whole call. For events with ID=0, generates new IDs from sequence.
	// Returns the events with generated IDs populated.
	AddEvents(ctx context.Context, events ...*core.SessionEvent) ([]*core.SessionEvent, error)

	// GetEventsPage retrieves a page of events ordered by recency
	// (newest first). offset is the number of events to skip.
	// Returns fewer than limit events at the end of the log.
	GetEventsPage(ctx context.Context, offset, limit int) ([]*core.SessionEvent, error)

	// CountEvents returns the total number of stored events.
	CountEvents(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
