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


package badger

import (
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/storage"
)

// EventRepository implements storage.EventRepository for BadgerDB.
type EventRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository.
func NewEventRepository(backend *Backend) (*EventRepository, error) {
	idSeq, err := backend.GetSequence(eventIDSeq)
	if err != nil {
		return nil, err
	}

	return &EventRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *EventRepository) Close() error {
	return r.idSeq.Release()
}

// AddEvents appends session events to the log. Every event is validated at
// this boundary; a single invalid event fails the whole call so callers
// never half-write a session.
func (r *EventRepository) AddEvents(ctx context.Context, events ...*core.SessionEvent) ([]*core.SessionEvent, error) {
	for _, event := range events {
		if err := core.ValidateSessionEvent(event); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, event := range events {
			if event.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				event.Id = core.ID(nextID)
			}

			if event.CreatedAt.IsZero() {
				event.CreatedAt = time.Now().UTC()
			}

			value, err := storage.MarshalSessionEvent(event)
			if err != nil {
				return err
			}
			if err := tx.Set(makeEventKey(event.Id), value); err != nil {
				return err
			}

			timeKey := makeEventTimeKey(event.CreatedAt, event.Id)
			if err := tx.Set(timeKey, storage.MarshalID(event.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return events, err
}

// GetEventsPage retrieves a page of events ordered by recency (newest
// first) by walking the time index in reverse.
func (r *EventRepository) GetEventsPage(ctx context.Context, offset, limit int) ([]*core.SessionEvent, error) {
	if offset < 0 || limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var events []*core.SessionEvent

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(eventTimePrefix + ":")

		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the largest possible index key so reverse iteration
		// starts at the newest event.
		seekKey := append(bytes.Clone(prefix), bytes.Repeat([]byte{0xFF}, 16)...)

		skipped := 0
		for iter.Seek(seekKey); iter.Valid() && len(events) < limit; iter.Next() {
			if skipped < offset {
				skipped++
				continue
			}

			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			event, err := r.readEvent(tx, id)
			if err != nil {
				return err
			}
			if event != nil {
				events = append(events, event)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountEvents returns the total number of stored events.
func (r *EventRepository) CountEvents(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(eventTimePrefix + ":")

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// readEvent loads one event by ID within a transaction.
// Returns nil when the record is absent (a dangling index entry).
func (r *EventRepository) readEvent(tx *badger.Txn, id core.ID) (*core.SessionEvent, error) {
	item, err := tx.Get(makeEventKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var event *core.SessionEvent
	err = item.Value(func(val []byte) error {
		var err error
		event, err = storage.UnmarshalSessionEvent(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}
