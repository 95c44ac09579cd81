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


package audit

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/classify"
	"github.com/laborlink/matchcore/route"
)

// Row is one scored audit question.
type Row struct {
	Question Question `json:"question"`
	Service  string   `json:"service"`
	Score    float64  `json:"score"`
	Keyword  string   `json:"keyword,omitempty"`
	Aligned  bool     `json:"aligned"`
}

// Harness runs the full question set through the selector and scores the
// alignment of every pick.
type Harness struct {
	selector *route.Selector
	catalog  *catalog.Catalog
	poolSize int
	logger   *slog.Logger

	keywords        []keywordPair
	compactUniverse map[string]bool
}

// keywordPair caches the compacted form of one universe keyword, in
// first-appearance catalog order.
type keywordPair struct {
	keyword   string
	compacted string
}

// NewHarness creates a Harness. poolSize <= 0 selects a CPU-derived
// default.
func NewHarness(selector *route.Selector, cat *catalog.Catalog, poolSize int) *Harness {
	if poolSize <= 0 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}

	universe := cat.KeywordUniverse()
	keywords := make([]keywordPair, 0, len(universe))
	compactUniverse := make(map[string]bool, len(universe))
	for _, keyword := range universe {
		compacted := classify.Compact(keyword)
		keywords = append(keywords, keywordPair{keyword: keyword, compacted: compacted})
		compactUniverse[compacted] = true
	}

	return &Harness{
		selector:        selector,
		catalog:         cat,
		poolSize:        poolSize,
		logger:          slog.Default().With("component", "audit.harness"),
		keywords:        keywords,
		compactUniverse: compactUniverse,
	}
}

// Run scores every question and builds the report. Rows are collected
// into their question's index slot, so the report ordering is independent
// of worker scheduling and two runs over a frozen catalog and corpus
// produce the identical report.
func (h *Harness) Run(ctx context.Context, questions []Question) (*Report, error) {
	pool, err := ants.NewPool(h.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	rows := make([]Row, len(questions))
	var wg sync.WaitGroup

	for i := range questions {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		i := i
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			rows[i] = h.score(questions[i])
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	report := h.buildReport(questions, rows)
	h.logger.Info("audit complete",
		"questions", report.QuestionCount,
		"aligned", report.AlignedCount,
		"rate", report.AlignedRate)
	return report, nil
}

// score runs one question through the selector and checks alignment.
func (h *Harness) score(question Question) Row {
	selection := h.selector.Pick(question.Text)
	keyword := h.coreKeyword(question.Text)

	return Row{
		Question: question,
		Service:  selection.Service,
		Score:    selection.Score,
		Keyword:  keyword,
		Aligned:  h.isAligned(keyword, selection.Service, selection.Score),
	}
}

// coreKeyword extracts the question's strongest routing signal: the
// longest non-stopword catalog keyword occurring in the compacted
// question, falling back to the secondary keyword list, else empty.
func (h *Harness) coreKeyword(text string) string {
	compacted := classify.Compact(text)

	best := ""
	bestLen := 0
	for _, pair := range h.keywords {
		if pair.compacted == "" || isStopword(pair.keyword) {
			continue
		}
		if !strings.Contains(compacted, pair.compacted) {
			continue
		}
		// Ties keep the first keyword in catalog order.
		if length := utf8.RuneCountInString(pair.compacted); length > bestLen {
			best = pair.keyword
			bestLen = length
		}
	}
	if best != "" {
		return best
	}

	for _, keyword := range fallbackKeywords {
		if strings.Contains(compacted, classify.Compact(keyword)) {
			return keyword
		}
	}
	return ""
}

// isAligned decides whether the picked service answers the keyword: the
// keyword occurs in the pick's catalog text, or the pair co-occurs in a
// semantic-alignment group, or no keyword was extractable and the pick
// still scored positive.
func (h *Harness) isAligned(keyword, service string, score float64) bool {
	if keyword == "" {
		return score > 0
	}

	compactKeyword := classify.Compact(keyword)
	for _, entry := range h.catalog.All() {
		if entry.Name != service {
			continue
		}
		entryText := classify.Compact(entry.Name + entry.Description + strings.Join(entry.Keywords, ""))
		if strings.Contains(entryText, compactKeyword) {
			return true
		}
	}

	for _, group := range alignmentGroups {
		if !containsString(group.Keywords, keyword) {
			continue
		}
		if containsString(group.Services, service) {
			return true
		}
	}
	return false
}

// buildReport assembles counts, the top mismatches and the
// missing-keyword frequency table.
func (h *Harness) buildReport(questions []Question, rows []Row) *Report {
	aligned := 0
	var mismatches []Row
	missing := make(map[string]int)

	for _, row := range rows {
		if row.Aligned {
			aligned++
		} else {
			mismatches = append(mismatches, row)
		}

		if row.Keyword == "" {
			continue
		}
		if !h.compactUniverse[classify.Compact(row.Keyword)] {
			missing[row.Keyword]++
		}
	}

	sort.SliceStable(mismatches, func(a, b int) bool {
		return mismatches[a].Score > mismatches[b].Score
	})
	if len(mismatches) > MismatchTopCount {
		mismatches = mismatches[:MismatchTopCount]
	}

	missingKeywords := make([]KeywordCount, 0, len(missing))
	for keyword, count := range missing {
		missingKeywords = append(missingKeywords, KeywordCount{Keyword: keyword, Count: count})
	}
	sort.SliceStable(missingKeywords, func(a, b int) bool {
		if missingKeywords[a].Count != missingKeywords[b].Count {
			return missingKeywords[a].Count > missingKeywords[b].Count
		}
		return missingKeywords[a].Keyword < missingKeywords[b].Keyword
	})

	rate := 0.0
	if len(questions) > 0 {
		rate = float64(aligned) / float64(len(questions)) * 100
	}

	return &Report{
		GeneratedAt:        time.Now().UTC(),
		QuestionCount:      len(questions),
		AlignedCount:       aligned,
		AlignedRate:        rate,
		MismatchTop:        mismatches,
		MissingKeywords:    missingKeywords,
		GeneratedQuestions: questions,
	}
}

func isStopword(keyword string) bool {
	return containsString(keywordStopwords, keyword)
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
