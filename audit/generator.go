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


// Package audit generates a synthetic question set from the catalog, runs
// it through the recommendation path, and reports how often the pick
// lines up with the question's core keyword.
package audit

import (
	"fmt"
	"strings"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/core"
)

const (
	// DefaultTargetVolume is the question count an audit run pads up to.
	DefaultTargetVolume = 1000

	maxKeywordsPerService = 4
)

// Question is one synthetic or curated audit input.
type Question struct {
	Text     string        `json:"text"`
	Audience core.Audience `json:"audience"`
	Source   string        `json:"source,omitempty"`
	URL      string        `json:"url,omitempty"`
}

// Generate builds the deterministic audit question set: catalog keywords
// crossed with audience templates, plus curated seed questions and
// fillers, deduplicated, then padded to target by cyclically appending
// suffix clauses to existing questions. No randomness anywhere, so two
// runs over the same catalog produce the identical set.
func Generate(cat *catalog.Catalog, target int) []Question {
	if target <= 0 {
		target = DefaultTargetVolume
	}

	var questions []Question
	for _, entry := range cat.All() {
		templates := workerTemplates
		if entry.Audience == core.AudienceEmployer {
			templates = employerTemplates
		}

		keywords := entry.Keywords
		if len(keywords) > maxKeywordsPerService {
			keywords = keywords[:maxKeywordsPerService]
		}

		for _, keyword := range keywords {
			for _, template := range templates {
				questions = append(questions, Question{
					Text:     fmt.Sprintf(template, keyword),
					Audience: entry.Audience,
				})
			}
		}
	}

	questions = append(questions, seedQuestions...)
	questions = append(questions, fillerQuestions...)

	unique := dedupe(questions)

	uniqueCount := len(unique)
	for i := uniqueCount; len(unique) < target; i++ {
		base := unique[i%uniqueCount]
		base.Text = base.Text + paddingSuffixes[i%len(paddingSuffixes)]
		unique = append(unique, base)
	}
	return unique
}

func dedupe(questions []Question) []Question {
	seen := make(map[string]bool, len(questions))
	unique := make([]Question, 0, len(questions))
	for _, question := range questions {
		key := strings.TrimSpace(question.Text)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, question)
	}
	return unique
}
