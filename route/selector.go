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


// Package route picks the final recommended service for an input text.
// The override rule layer runs first; only when no rule fires does the
// catalog keyword scoring and mismatch-boost machinery engage.
package route

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/classify"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/corpus"
)

// Base keyword scoring per compacted-token hit against the input.
const (
	longTokenScore  = 2.2
	shortTokenScore = 1.2
	longTokenMinLen = 4
	keywordHitScore = 1.8
)

// Config holds the tunable scoring adjustments of the selector.
type Config struct {
	// SpecificSignalPenalty demotes the generic consultation service when
	// the input names a specific issue.
	SpecificSignalPenalty float64
	// AliasBoost rewards the canonical service of a cross-term alias pair.
	AliasBoost float64
	// MismatchBoost rewards services listed by a matching mismatch-derived
	// example, cumulatively per matching example.
	MismatchBoost float64
	// GenericDemotion is subtracted from the generic service in the second
	// pass when a specific service reached GenericDemotionFloor.
	GenericDemotion      float64
	GenericDemotionFloor float64
}

// DefaultConfig returns the tuned default adjustments.
func DefaultConfig() Config {
	return Config{
		SpecificSignalPenalty: 4,
		AliasBoost:            8,
		MismatchBoost:         8,
		GenericDemotion:       6,
		GenericDemotionFloor:  3,
	}
}

// specificSignals are domain terms that mark the input as naming a concrete
// issue, which demotes the generic catch-all consultation.
var specificSignals = []string{
	"체불", "임금", "월급", "퇴직금", "해고", "괴롭힘", "산재", "체당금", "대지급금",
}

// aliasBoost forces two synonymous terms to resolve to the same
// specialized service even when only one appears in the catalog keywords.
type aliasBoost struct {
	Terms   []string
	Service string
}

var aliasBoosts = []aliasBoost{
	{Terms: []string{"체당금", "대지급금"}, Service: catalog.ServiceAdvancePay},
	{Terms: []string{"갑질"}, Service: catalog.ServiceHarassmentReport},
}

// Selection is the selector's final answer.
type Selection struct {
	Audience core.Audience `json:"audience"`
	Service  string        `json:"service"`
	Score    float64       `json:"score"`
}

// Selector composes the override engine, catalog keyword scoring and
// mismatch-derived boosts into one service pick. It is a pure function of
// text + catalog + corpus snapshot and never mutates either.
type Selector struct {
	catalog *catalog.Catalog
	corpus  *corpus.Corpus
	config  Config
}

// NewSelector creates a Selector over the given catalog and corpus.
func NewSelector(cat *catalog.Catalog, c *corpus.Corpus, config Config) *Selector {
	return &Selector{catalog: cat, corpus: c, config: config}
}

// Pick picks one final service for the input text.
//
// Step order, first match wins:
//  1. override rules (score 99, bypasses everything below)
//  2. base keyword scoring over the audience subset
//  3. mismatch-derived example boosts
//  4. second-pass demotion of the generic service
func (s *Selector) Pick(text string) Selection {
	compacted := classify.Compact(text)
	audience := GuessAudience(text)

	if rule := matchOverride(compacted); rule != nil {
		name := rule.Service
		if entry := s.catalog.Find(rule.Service, audience); entry != nil {
			name = entry.Name
		}
		return Selection{Audience: audience, Service: name, Score: OverrideScore}
	}

	subset := s.catalog.ByAudience(audience)
	if len(subset) == 0 {
		return Selection{Audience: audience}
	}

	scores := make([]float64, len(subset))
	hasSignal := containsAny(compacted, specificSignals)

	for i := range subset {
		scores[i] = keywordScore(&subset[i], compacted)
		if subset[i].Name == catalog.GenericService && hasSignal {
			scores[i] -= s.config.SpecificSignalPenalty
		}
	}

	for _, alias := range aliasBoosts {
		if !containsAny(compacted, alias.Terms) {
			continue
		}
		for i := range subset {
			if subset[i].Name == alias.Service {
				scores[i] += s.config.AliasBoost
			}
		}
	}

	s.applyMismatchBoosts(text, subset, scores)

	order := rankDescending(scores)

	// Second pass: when the generic catch-all leads but a specific service
	// still scored reasonably, the specific one should win.
	if subset[order[0]].Name == catalog.GenericService {
		for _, idx := range order[1:] {
			if subset[idx].Name != catalog.GenericService && scores[idx] >= s.config.GenericDemotionFloor {
				scores[order[0]] -= s.config.GenericDemotion
				order = rankDescending(scores)
				break
			}
		}
	}

	top := order[0]
	if scores[top] <= 0 {
		return Selection{Audience: audience, Service: subset[0].Name, Score: 0}
	}
	return Selection{Audience: audience, Service: subset[top].Name, Score: scores[top]}
}

// applyMismatchBoosts adds the mismatch boost for every stored
// mismatch-derived example whose normalized text equals, contains, or is
// contained by the normalized input. Boosts are cumulative.
func (s *Selector) applyMismatchBoosts(text string, subset []core.ServiceEntry, scores []float64) {
	normalizedInput := classify.Normalize(text)
	if normalizedInput == "" {
		return
	}

	for _, example := range s.corpus.MismatchExamples() {
		normalizedExample := classify.Normalize(example.Text)
		if normalizedExample == "" {
			continue
		}
		if normalizedExample != normalizedInput &&
			!strings.Contains(normalizedInput, normalizedExample) &&
			!strings.Contains(normalizedExample, normalizedInput) {
			continue
		}
		for _, service := range example.Services {
			for i := range subset {
				if subset[i].Name == service {
					scores[i] += s.config.MismatchBoost
				}
			}
		}
	}
}

// keywordScore scores one catalog entry against the compacted input:
// every distinct token of the name, description and keywords that occurs
// in the input contributes by length, and each dedicated keyword hit adds
// a flat bonus on top.
func keywordScore(entry *core.ServiceEntry, compactedInput string) float64 {
	fields := entry.Name + " " + entry.Description + " " + strings.Join(entry.Keywords, " ")

	score := 0.0
	seen := make(map[string]bool)
	for _, token := range classify.Tokenize(fields) {
		if seen[token] {
			continue
		}
		seen[token] = true
		if !contains(compactedInput, token) {
			continue
		}
		if utf8.RuneCountInString(token) >= longTokenMinLen {
			score += longTokenScore
		} else {
			score += shortTokenScore
		}
	}

	for _, keyword := range entry.Keywords {
		if contains(compactedInput, classify.Compact(keyword)) {
			score += keywordHitScore
		}
	}
	return score
}

func containsAny(compactedInput string, terms []string) bool {
	for _, term := range terms {
		if contains(compactedInput, classify.Compact(term)) {
			return true
		}
	}
	return false
}

// rankDescending returns entry indices ordered by score descending.
// The sort is stable so catalog order breaks ties.
func rankDescending(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}
