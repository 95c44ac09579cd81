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


package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/corpus"
)

func seedClassifier(t *testing.T) *Classifier {
	t.Helper()
	c := corpus.New(corpus.Seed())
	return New(c, DefaultConfig())
}

func TestInfer_WageArrearsScenario(t *testing.T) {
	classifier := seedClassifier(t)

	result := classifier.Infer("월급이 두 달째 밀렸고 대표가 다음 달에 준다고만 합니다.")

	assert.GreaterOrEqual(t, result.Confidence, 0.18)
	assert.Equal(t, core.AudienceWorker, result.Audience)
	assert.Equal(t, core.CategoryWageArrears, result.Category)

	require.Contains(t, result.ServiceScores, catalog.ServiceWageClaim)
	for service, score := range result.ServiceScores {
		assert.LessOrEqual(t, score, result.ServiceScores[catalog.ServiceWageClaim],
			"no service may outscore the wage claim for %q", service)
	}
}

func TestInfer_Deterministic(t *testing.T) {
	classifier := seedClassifier(t)
	input := "퇴직금을 아직 받지 못했습니다"

	first := classifier.Infer(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, classifier.Infer(input), "repeated calls must return identical results")
	}
}

func TestInfer_ConfidenceBounds(t *testing.T) {
	classifier := seedClassifier(t)

	inputs := []string{
		"월급이 두 달째 밀렸고 대표가 다음 달에 준다고만 합니다.",
		"퇴직금 문의",
		"출근길 사고를 당했어요",
		"완전히 무관한 입력",
	}
	for _, input := range inputs {
		result := classifier.Infer(input)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "input %q", input)
		assert.LessOrEqual(t, result.Confidence, 1.0, "input %q", input)

		labeled := result.Audience != "" || result.Category != ""
		if result.Confidence >= DefaultConfig().ConfidenceGate {
			assert.True(t, labeled, "labels required at or above the gate for %q", input)
		} else {
			assert.Empty(t, result.Audience, "abstain must leave audience empty for %q", input)
			assert.Empty(t, result.Category, "abstain must leave category empty for %q", input)
		}
	}
}

func TestInfer_Abstain(t *testing.T) {
	classifier := seedClassifier(t)

	result := classifier.Infer("zzz qqq xxx")

	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.Audience)
	assert.Empty(t, result.Category)
	assert.Empty(t, result.ServiceScores)
}

func TestInfer_IdenticalTextIsConfident(t *testing.T) {
	classifier := seedClassifier(t)

	// Exact seed text: full token and gram overlap plus containment boost,
	// clamped to the confidence ceiling.
	result := classifier.Infer("출근길 교통사고도 산재로 인정받을 수 있나요.")
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, core.CategoryIndustrialAccident, result.Category)
}

func TestInfer_EmployerMajority(t *testing.T) {
	classifier := seedClassifier(t)

	result := classifier.Infer("직원이 열 명을 넘어서 취업규칙을 새로 만들어야 합니다.")
	require.GreaterOrEqual(t, result.Confidence, 0.18)
	assert.Equal(t, core.AudienceEmployer, result.Audience)
}

func TestInfer_CorpusUntouched(t *testing.T) {
	c := corpus.New(corpus.Seed())
	classifier := New(c, DefaultConfig())

	before := len(c.Examples())
	classifier.Infer("월급이 밀렸어요")
	classifier.Infer("해고 통보를 받았습니다")

	assert.Equal(t, before, len(c.Examples()), "classification must never mutate the corpus")
}
