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
	"log/slog"
	"strings"

	"github.com/laborlink/matchcore/audit"
	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/classify"
	"github.com/laborlink/matchcore/core"
)

// autofixRule maps coarse issue terms to the canonical service a
// mismatched question should have routed to. Deliberately coarser than
// the runtime override rules; this table only has to beat a pick that
// was already wrong.
type autofixRule struct {
	Terms   []string
	Service string
}

var autofixRules = []autofixRule{
	{Terms: []string{"임금", "월급", "체불"}, Service: catalog.ServiceWageClaim},
	{Terms: []string{"해고"}, Service: catalog.ServiceDismissalRemedy},
	{Terms: []string{"괴롭힘"}, Service: catalog.ServiceHarassmentReport},
	{Terms: []string{"산재"}, Service: catalog.ServiceAccidentClaim},
	{Terms: []string{"계약"}, Service: catalog.ServiceContractReview},
	{Terms: []string{"취업규칙"}, Service: catalog.ServiceWorkRules},
	{Terms: []string{"4대보험"}, Service: catalog.ServiceSocialInsurance},
}

// Autofix converts the report's top mismatches into corrective examples.
// A mismatch only yields an example when its keyword or question text
// resolves against the secondary mapping; duplicates by aggregation key
// are emitted once.
func Autofix(report *audit.Report) []core.Example {
	seen := make(map[core.ID]bool)
	var examples []core.Example

	for _, row := range report.MismatchTop {
		service := resolveAutofix(row.Keyword, row.Question.Text)
		if service == "" {
			continue
		}

		example := core.Example{
			Text:       row.Question.Text,
			Audience:   row.Question.Audience,
			Category:   categoryForService(service),
			Services:   []string{service},
			Provenance: core.ProvenanceMismatchAutofix,
		}

		key := example.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		examples = append(examples, example)
	}

	slog.Debug("autofix complete", "mismatches", len(report.MismatchTop), "examples", len(examples))
	return examples
}

// resolveAutofix matches the extracted keyword first and falls back to
// the full question text.
func resolveAutofix(keyword, text string) string {
	compactKeyword := classify.Compact(keyword)
	compactText := classify.Compact(text)

	for _, rule := range autofixRules {
		for _, term := range rule.Terms {
			compactTerm := classify.Compact(term)
			if compactKeyword != "" && strings.Contains(compactKeyword, compactTerm) {
				return rule.Service
			}
			if strings.Contains(compactText, compactTerm) {
				return rule.Service
			}
		}
	}
	return ""
}
