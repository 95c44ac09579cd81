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


// Package classify scores free text against the labeled example corpus.
// The classifier is pure: for a fixed corpus and input it always returns
// the same result, and it never mutates the corpus.
package classify

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/corpus"
)

// Similarity weighting. Token overlap and short character grams carry most
// of the signal; trigrams guard against coincidental syllable overlap.
const (
	tokenWeight   = 0.35
	bigramWeight  = 0.35
	trigramWeight = 0.30

	// containmentBoost rewards mutual substring containment of the
	// compacted forms when the shorter side is at least 4 runes.
	containmentBoost  = 0.34
	containmentMinLen = 4

	// topCandidates caps how many examples vote.
	topCandidates = 12

	// rankDecayStep reduces a candidate's vote weight per rank position,
	// floored at half weight.
	rankDecayStep  = 0.08
	rankDecayFloor = 0.5
)

// Config holds the tunable thresholds of the classifier.
type Config struct {
	// CandidateFloor is the minimum similarity for an example to vote.
	CandidateFloor float64
	// ConfidenceGate is the minimum confidence required to emit audience
	// and category labels. Below it the classifier abstains.
	ConfidenceGate float64
}

// DefaultConfig returns the tuned default thresholds.
func DefaultConfig() Config {
	return Config{
		CandidateFloor: 0.08,
		ConfidenceGate: 0.18,
	}
}

// Result is the classifier's answer for one input.
// Audience and Category are empty when Confidence is below the gate: that
// is an explicit abstain, not a failure. ServiceScores carries whatever
// votes were accumulated either way.
type Result struct {
	Confidence    float64
	Audience      core.Audience
	Category      core.Category
	ServiceScores map[string]float64
}

// Classifier matches input text against an immutable corpus snapshot.
type Classifier struct {
	corpus *corpus.Corpus
	config Config

	// precomputed per-example features, index-aligned with corpus.Examples()
	features []exampleFeatures
}

type exampleFeatures struct {
	compact  string
	tokens   []string
	bigrams  []string
	trigrams []string
}

// New creates a Classifier over the given corpus. Example features are
// computed once here so request-time scoring allocates per input only.
func New(c *corpus.Corpus, config Config) *Classifier {
	examples := c.Examples()
	features := make([]exampleFeatures, len(examples))
	for i, example := range examples {
		compact := Compact(example.Text)
		features[i] = exampleFeatures{
			compact:  compact,
			tokens:   Tokenize(example.Text),
			bigrams:  Ngrams(compact, 2),
			trigrams: Ngrams(compact, 3),
		}
	}
	return &Classifier{corpus: c, config: config, features: features}
}

type candidate struct {
	index      int
	similarity float64
}

// Infer scores the input against every corpus example and aggregates the
// best matches by weighted vote. It never fails for well-formed string
// input; the worst case is a zero-confidence abstain.
func (c *Classifier) Infer(text string) Result {
	inputCompact := Compact(text)
	inputTokens := Tokenize(text)
	inputBigrams := Ngrams(inputCompact, 2)
	inputTrigrams := Ngrams(inputCompact, 3)

	var candidates []candidate
	for i := range c.features {
		similarity := c.similarity(inputCompact, inputTokens, inputBigrams, inputTrigrams, &c.features[i])
		if similarity >= c.config.CandidateFloor {
			candidates = append(candidates, candidate{index: i, similarity: similarity})
		}
	}

	// Stable sort keeps corpus order for equal scores, so ties resolve
	// the same way on every call.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].similarity > candidates[b].similarity
	})
	if len(candidates) > topCandidates {
		candidates = candidates[:topCandidates]
	}

	result := Result{ServiceScores: make(map[string]float64)}
	if len(candidates) == 0 {
		return result
	}

	confidence := candidates[0].similarity
	if confidence > 1 {
		confidence = 1
	}
	result.Confidence = confidence

	examples := c.corpus.Examples()
	audienceVotes := make(map[core.Audience]float64)
	categoryVotes := make(map[core.Category]float64)

	for rank, cand := range candidates {
		decay := 1 - rankDecayStep*float64(rank)
		if decay < rankDecayFloor {
			decay = rankDecayFloor
		}
		weight := cand.similarity * decay

		example := &examples[cand.index]
		audienceVotes[example.Audience] += weight
		categoryVotes[example.Category] += weight
		for _, service := range example.Services {
			result.ServiceScores[service] += weight
		}
	}

	if result.Confidence >= c.config.ConfidenceGate {
		result.Audience = majorityAudience(audienceVotes)
		result.Category = argmaxCategory(categoryVotes)
	}
	return result
}

func (c *Classifier) similarity(inputCompact string, inputTokens, inputBigrams, inputTrigrams []string, f *exampleFeatures) float64 {
	score := tokenWeight*jaccard(inputTokens, f.tokens) +
		bigramWeight*jaccard(inputBigrams, f.bigrams) +
		trigramWeight*jaccard(inputTrigrams, f.trigrams)

	if mutualContainment(inputCompact, f.compact) {
		score += containmentBoost
	}
	return score
}

// mutualContainment reports whether one compacted form contains the other
// and the shorter side is long enough to be meaningful.
func mutualContainment(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	shorter := a
	if utf8.RuneCountInString(b) < utf8.RuneCountInString(shorter) {
		shorter = b
	}
	if utf8.RuneCountInString(shorter) < containmentMinLen {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// majorityAudience picks the audience with the most vote weight.
// Ties favor the worker segment.
func majorityAudience(votes map[core.Audience]float64) core.Audience {
	if votes[core.AudienceEmployer] > votes[core.AudienceWorker] {
		return core.AudienceEmployer
	}
	return core.AudienceWorker
}

// argmaxCategory picks the category with the most vote weight, iterating
// the fixed category order so ties are deterministic.
func argmaxCategory(votes map[core.Category]float64) core.Category {
	best := core.CategoryOther
	bestVote := -1.0
	for _, category := range core.Categories {
		if vote, ok := votes[category]; ok && vote > bestVote {
			best = category
			bestVote = vote
		}
	}
	return best
}
