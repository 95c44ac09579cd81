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


package core

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MinExampleTextLen is the minimum text length for seed and autofix examples.
	MinExampleTextLen = 4
	// MinLearnedTextLen is the minimum text length for learned examples.
	MinLearnedTextLen = 6
	// MinLearnedCount is the observation count below which a learned example
	// is not trusted.
	MinLearnedCount = 2
)

// ValidateExample validates an Example according to domain rules.
//
// Validation rules:
//   - Text length >= 4 runes (>= 6 for learned provenance)
//   - Services must be non-empty
//   - Audience, Category and Provenance must hold known values
//   - Learned examples must have Count >= 2
func ValidateExample(example *Example) error {
	if example == nil {
		return fmt.Errorf("%w: example is nil", ErrInvalidExample)
	}

	if err := ValidateAudience(example.Audience); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExample, err)
	}
	if err := ValidateCategory(example.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExample, err)
	}
	if err := ValidateProvenance(example.Provenance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExample, err)
	}

	minLen := MinExampleTextLen
	if example.Provenance == ProvenanceLearned {
		minLen = MinLearnedTextLen
	}
	if utf8.RuneCountInString(example.Text) < minLen {
		return fmt.Errorf("%w: %w (%d runes)", ErrInvalidExample, ErrTextTooShort, utf8.RuneCountInString(example.Text))
	}

	if len(example.Services) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidExample, ErrNoServices)
	}
	for _, service := range example.Services {
		if service == "" {
			return fmt.Errorf("%w: %w", ErrInvalidExample, ErrNoServices)
		}
	}

	if example.Provenance == ProvenanceLearned && example.Count < MinLearnedCount {
		return fmt.Errorf("%w: %w (count=%d)", ErrInvalidExample, ErrUntrustedCount, example.Count)
	}

	return nil
}

// ValidateServiceEntry validates a catalog entry.
//
// Validation rules:
//   - Name must not be empty
//   - Audience must hold a known value
func ValidateServiceEntry(entry *ServiceEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidServiceEntry)
	}
	if entry.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidServiceEntry)
	}
	if err := ValidateAudience(entry.Audience); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServiceEntry, err)
	}
	return nil
}

// ValidateSessionEvent validates a session event at the ingestion boundary.
// Events with a nil payload or an empty variant are rejected so downstream
// consumers can type-switch without guarding every field.
func ValidateSessionEvent(event *SessionEvent) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", ErrInvalidEvent)
	}
	if event.SessionId == "" {
		return fmt.Errorf("%w: session id cannot be empty", ErrInvalidEvent)
	}
	if event.Audience != "" {
		if err := ValidateAudience(event.Audience); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
		}
	}

	switch payload := event.Payload.(type) {
	case SituationSubmitted:
		if payload.Text == "" {
			return fmt.Errorf("%w: situation text cannot be empty", ErrInvalidEvent)
		}
	case OptionsGenerated:
		if len(payload.Services) == 0 {
			return fmt.Errorf("%w: generated options cannot be empty", ErrInvalidEvent)
		}
	case OptionSelected:
		if payload.Service == "" {
			return fmt.Errorf("%w: selected service cannot be empty", ErrInvalidEvent)
		}
	case OptionClicked:
		if payload.Service == "" {
			return fmt.Errorf("%w: clicked service cannot be empty", ErrInvalidEvent)
		}
	case nil:
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrMissingPayload)
	default:
		return fmt.Errorf("%w: unknown payload type %T", ErrInvalidEvent, payload)
	}

	return nil
}

// ValidateAudience validates that an Audience holds a known value.
func ValidateAudience(audience Audience) error {
	if audience != AudienceWorker && audience != AudienceEmployer {
		return fmt.Errorf("%w: %q", ErrInvalidAudience, audience)
	}
	return nil
}

// ValidateCategory validates that a Category holds a known value.
func ValidateCategory(category Category) error {
	for _, known := range Categories {
		if category == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
}

// ValidateProvenance validates that a Provenance holds a known value.
func ValidateProvenance(provenance Provenance) error {
	switch provenance {
	case ProvenanceSeed, ProvenanceLearned, ProvenanceMismatchAutofix:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidProvenance, provenance)
}
