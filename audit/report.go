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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/laborlink/matchcore/core"
)

// MismatchTopCount is how many mismatched rows a report keeps.
const MismatchTopCount = 20

// KeywordCount is one row of the missing-keyword frequency table.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Report is the machine-readable outcome of one audit run.
type Report struct {
	GeneratedAt        time.Time      `json:"generated_at"`
	QuestionCount      int            `json:"question_count"`
	AlignedCount       int            `json:"aligned_count"`
	AlignedRate        float64        `json:"aligned_rate"`
	MismatchTop        []Row          `json:"mismatch_top20"`
	MissingKeywords    []KeywordCount `json:"missing_keywords"`
	GeneratedQuestions []Question     `json:"generated_questions"`
}

// Sources returns the distinct source attributions of the curated
// questions, in first-appearance order.
func (r *Report) Sources() []string {
	seen := make(map[string]bool)
	var sources []string
	for _, question := range r.GeneratedQuestions {
		if question.Source == "" || seen[question.Source] {
			continue
		}
		seen[question.Source] = true
		sources = append(sources, question.Source)
	}
	return sources
}

// WriteReport writes the report as indented JSON.
func WriteReport(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadReport reads a prior report. A missing file is a fatal
// configuration error: a re-audit without its baseline must abort, never
// proceed against a silently empty report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrMissingArtifact, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &report, nil
}

// WriteSummary writes the human-readable companion document.
func WriteSummary(w io.Writer, report *Report) error {
	fmt.Fprintf(w, "# 추천 정합성 감사 요약\n\n")
	fmt.Fprintf(w, "- 생성 시각: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "- 질문 수: %d\n", report.QuestionCount)
	fmt.Fprintf(w, "- 정합 건수: %d\n", report.AlignedCount)
	fmt.Fprintf(w, "- 정합률: %.1f%%\n\n", report.AlignedRate)

	fmt.Fprintf(w, "## 상위 불일치 (%d건)\n", len(report.MismatchTop))
	for _, row := range report.MismatchTop {
		fmt.Fprintf(w, "- [%s] %q → %s (%.1f점, 키워드: %s)\n",
			row.Question.Audience, row.Question.Text, row.Service, row.Score, row.Keyword)
	}

	fmt.Fprintf(w, "\n## 카탈로그 미포함 키워드\n")
	for _, entry := range report.MissingKeywords {
		fmt.Fprintf(w, "- %s: %d회\n", entry.Keyword, entry.Count)
	}

	if sources := report.Sources(); len(sources) > 0 {
		fmt.Fprintf(w, "\n## 출처\n")
		for _, source := range sources {
			fmt.Fprintf(w, "- %s\n", source)
		}
	}
	return nil
}
