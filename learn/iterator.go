// Copyright 2026 Laborlink Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package learn

import (
	"context"
	"time"

	"github.com/laborlink/matchcore/batch"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/storage"
)

const (
	// DefaultPageSize is the default number of events to fetch per page.
	DefaultPageSize = 200
	// DefaultMaxEvents caps how far back into the log one extraction run reads.
	DefaultMaxEvents = 50000

	pageReadAttempts  = 3
	pageReadBaseDelay = 200 * time.Millisecond
)

// EventIterator walks the session event log in pages, newest first.
type EventIterator struct {
	repo      storage.EventRepository
	pageSize  int
	maxEvents int
}

// NewEventIterator creates an iterator over repo.
// pageSize and maxEvents fall back to defaults when not positive.
func NewEventIterator(repo storage.EventRepository, pageSize, maxEvents int) *EventIterator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}

	return &EventIterator{
		repo:      repo,
		pageSize:  pageSize,
		maxEvents: maxEvents,
	}
}

// ForEach calls fn for each page of events until the log is exhausted,
// the event cap is reached, or fn returns an error. Context cancellation
// is checked between pages. Page reads are retried with backoff since
// log I/O is the one slow, fallible step of the offline jobs.
func (it *EventIterator) ForEach(ctx context.Context, fn func([]*core.SessionEvent) error) error {
	offset := 0

	for offset < it.maxEvents {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		limit := it.pageSize
		if remaining := it.maxEvents - offset; remaining < limit {
			limit = remaining
		}

		var page []*core.SessionEvent
		err := batch.RetryWithBackoff(ctx, func() error {
			var err error
			page, err = it.repo.GetEventsPage(ctx, offset, limit)
			return err
		}, pageReadAttempts, pageReadBaseDelay)
		if err != nil {
			return err
		}

		if len(page) == 0 {
			return nil
		}

		if err := fn(page); err != nil {
			return err
		}

		if len(page) < limit {
			return nil
		}
		offset += len(page)
	}

	return nil
}
