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


package route

import (
	"strings"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/classify"
)

// OverrideScore is the score assigned when an override rule fires.
// It is deliberately unreachable by statistical scoring.
const OverrideScore = 99

// OverrideRule maps trigger keywords to a canonical service. Rules are
// walked in order and the first hit wins, bypassing all scoring.
type OverrideRule struct {
	Keywords []string
	Service  string
}

// overrideRules is the ordered deterministic rule layer. Keep it short:
// every rule here silences the statistical path for its keywords.
var overrideRules = []OverrideRule{
	{Keywords: []string{"체당금", "대지급금"}, Service: catalog.ServiceAdvancePay},
	{Keywords: []string{"산재", "산업재해", "업무상 재해"}, Service: catalog.ServiceAccidentClaim},
	{Keywords: []string{"부당해고", "해고무효"}, Service: catalog.ServiceDismissalRemedy},
	{Keywords: []string{"취업규칙"}, Service: catalog.ServiceWorkRules},
}

// Overrides returns a copy of the override rules, in evaluation order.
func Overrides() []OverrideRule {
	out := make([]OverrideRule, len(overrideRules))
	copy(out, overrideRules)
	return out
}

// matchOverride returns the first rule with a compacted-substring hit
// against the compacted input, or nil.
func matchOverride(compactedInput string) *OverrideRule {
	for i := range overrideRules {
		for _, keyword := range overrideRules[i].Keywords {
			if contains(compactedInput, classify.Compact(keyword)) {
				return &overrideRules[i]
			}
		}
	}
	return nil
}

// contains is a guarded substring test; an empty needle never matches.
func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
