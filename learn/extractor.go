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


// Package learn mines accepted recommendations out of the session event
// log and turns audit mismatches into corrective examples. Both paths
// emit corpus artifacts picked up at the next process start; nothing here
// touches a live corpus.
package learn

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"unicode/utf8"

	"github.com/laborlink/matchcore/batch"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/route"
	"github.com/laborlink/matchcore/storage"
)

const (
	// DefaultMaxExamples caps how many learned examples one run emits.
	DefaultMaxExamples = 300
	// maxServicesPerExample bounds the services kept on one learned example.
	maxServicesPerExample = 2

	progressReportInterval = 500
)

// Config holds the configuration for a learning extraction run.
type Config struct {
	PageSize    int
	MaxEvents   int
	MaxExamples int
	// ProgressWriter receives progress output. nil disables reporting.
	ProgressWriter io.Writer
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		PageSize:    DefaultPageSize,
		MaxEvents:   DefaultMaxEvents,
		MaxExamples: DefaultMaxExamples,
	}
}

// Extractor mines learned examples from the session event log.
type Extractor struct {
	repo   storage.EventRepository
	config Config
	logger *slog.Logger
}

// NewExtractor creates an Extractor over repo.
func NewExtractor(repo storage.EventRepository, config Config) *Extractor {
	if config.MaxExamples <= 0 {
		config.MaxExamples = DefaultMaxExamples
	}

	return &Extractor{
		repo:   repo,
		config: config,
		logger: slog.Default().With("component", "learn.extractor"),
	}
}

// session accumulates the per-session view of the event walk.
type session struct {
	text     string
	audience core.Audience
	offered  map[string]bool
	selected string
	clicked  string
}

// Run walks the full event log and returns the aggregated learned
// examples, best first. Re-running over an unchanged log returns the
// same set with the same counts.
func (e *Extractor) Run(ctx context.Context) ([]core.Example, error) {
	total, err := e.repo.CountEvents(ctx)
	if err != nil {
		return nil, err
	}
	if total > e.config.MaxEvents && e.config.MaxEvents > 0 {
		total = e.config.MaxEvents
	}

	var tracker *batch.ProgressTracker
	if e.config.ProgressWriter != nil {
		tracker = batch.NewProgressTracker(e.config.ProgressWriter, total, progressReportInterval)
		tracker.Start()
	}

	sessions := make(map[string][]*core.SessionEvent)
	sessionOrder := []string{}

	iterator := NewEventIterator(e.repo, e.config.PageSize, e.config.MaxEvents)
	err = iterator.ForEach(ctx, func(page []*core.SessionEvent) error {
		for _, event := range page {
			if _, ok := sessions[event.SessionId]; !ok {
				sessionOrder = append(sessionOrder, event.SessionId)
			}
			sessions[event.SessionId] = append(sessions[event.SessionId], event)
		}
		if tracker != nil {
			tracker.Increment(len(page))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if tracker != nil {
		tracker.Finish()
	}

	aggregated := make(map[core.ID]*core.Example)
	for _, sessionId := range sessionOrder {
		example := e.mineSession(sessions[sessionId])
		if example == nil {
			continue
		}

		key := example.Key()
		if existing, ok := aggregated[key]; ok {
			existing.Count++
			if example.LastSeen.After(existing.LastSeen) {
				existing.LastSeen = example.LastSeen
			}
		} else {
			aggregated[key] = example
		}
	}

	examples := make([]core.Example, 0, len(aggregated))
	for _, example := range aggregated {
		examples = append(examples, *example)
	}

	sort.SliceStable(examples, func(a, b int) bool {
		if examples[a].Count != examples[b].Count {
			return examples[a].Count > examples[b].Count
		}
		if !examples[a].LastSeen.Equal(examples[b].LastSeen) {
			return examples[a].LastSeen.After(examples[b].LastSeen)
		}
		return examples[a].Text < examples[b].Text
	})

	if len(examples) > e.config.MaxExamples {
		examples = examples[:e.config.MaxExamples]
	}

	e.logger.Info("extraction complete",
		"sessions", len(sessions),
		"examples", len(examples))
	return examples, nil
}

// mineSession walks one session chronologically and returns a learned
// example when the session shows an accepted recommendation, nil
// otherwise.
func (e *Extractor) mineSession(events []*core.SessionEvent) *core.Example {
	sort.SliceStable(events, func(a, b int) bool {
		if !events[a].CreatedAt.Equal(events[b].CreatedAt) {
			return events[a].CreatedAt.Before(events[b].CreatedAt)
		}
		return events[a].Step < events[b].Step
	})

	state := session{offered: make(map[string]bool)}
	for _, event := range events {
		if state.audience == "" {
			state.audience = event.Audience
		}

		switch payload := event.Payload.(type) {
		case core.SituationSubmitted:
			if state.text == "" {
				state.text = payload.Text
			}
		case core.OptionsGenerated:
			for _, service := range payload.Services {
				state.offered[service] = true
			}
		case core.OptionSelected:
			if state.selected == "" {
				state.selected = payload.Service
			}
		case core.OptionClicked:
			if state.clicked == "" {
				state.clicked = payload.Service
			}
		}
	}
	lastSeen := events[len(events)-1].CreatedAt

	target := state.selected
	if target == "" {
		target = state.clicked
	}

	if utf8.RuneCountInString(state.text) < core.MinLearnedTextLen || target == "" {
		return nil
	}

	accepted := state.offered[target] ||
		(state.selected != "" && state.selected == state.clicked)
	if !accepted {
		return nil
	}

	services := []string{target}
	if state.clicked != "" && state.clicked != target && len(services) < maxServicesPerExample {
		services = append(services, state.clicked)
	}

	audience := state.audience
	if audience == "" {
		audience = route.GuessAudience(state.text)
	}

	return &core.Example{
		Text:       state.text,
		Audience:   audience,
		Category:   categoryForService(target),
		Services:   services,
		Provenance: core.ProvenanceLearned,
		Count:      1,
		LastSeen:   lastSeen,
	}
}
