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


package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/core"
)

func TestLoadExamples_MissingFileIsFatal(t *testing.T) {
	_, err := LoadExamples(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMissingArtifact)
}

func TestLoadExamples_BrokenFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadExamples(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrMissingArtifact)
}

func TestLoadExamples_DropsInvalidRecords(t *testing.T) {
	examples := []core.Example{
		{
			Text:       "월급이 밀렸습니다",
			Audience:   core.AudienceWorker,
			Category:   core.CategoryWageArrears,
			Services:   []string{catalog.ServiceWageClaim},
			Provenance: core.ProvenanceSeed,
		},
		{
			Text:       "짧음", // below minimum length, dropped
			Audience:   core.AudienceWorker,
			Category:   core.CategoryOther,
			Services:   []string{catalog.ServiceGeneralConsult},
			Provenance: core.ProvenanceSeed,
		},
		{
			Text:       "서비스 목록이 비어 있음", // no services, dropped
			Audience:   core.AudienceWorker,
			Category:   core.CategoryOther,
			Provenance: core.ProvenanceSeed,
		},
	}

	path := filepath.Join(t.TempDir(), "examples.json")
	require.NoError(t, WriteExamples(path, examples))

	loaded, err := LoadExamples(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1, "invalid records are dropped, the rest load")
	assert.Equal(t, "월급이 밀렸습니다", loaded[0].Text)
}

func TestWriteExamples_RoundTrip(t *testing.T) {
	examples := []core.Example{
		{
			Text:       "회사가 폐업해서 체당금을 알아보고 있어요",
			Audience:   core.AudienceWorker,
			Category:   core.CategoryWageArrears,
			Services:   []string{catalog.ServiceAdvancePay},
			Provenance: core.ProvenanceMismatchAutofix,
		},
	}

	path := filepath.Join(t.TempDir(), "autofix.json")
	require.NoError(t, WriteExamples(path, examples))

	loaded, err := LoadExamples(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, examples[0].Text, loaded[0].Text)
	assert.Equal(t, core.ProvenanceMismatchAutofix, loaded[0].Provenance)
}

func TestLoad_SeedOnly(t *testing.T) {
	c, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, len(Seed()), c.Len())
}

func TestLoad_MergesArtifacts(t *testing.T) {
	dir := t.TempDir()

	learned := []core.Example{
		{
			Text:       "연장수당을 받지 못하고 있습니다",
			Audience:   core.AudienceWorker,
			Category:   core.CategoryWageArrears,
			Services:   []string{catalog.ServiceWageClaim},
			Provenance: core.ProvenanceLearned,
			Count:      4,
		},
	}
	autofix := []core.Example{
		{
			Text:       "회사 도산으로 체당금이 필요해요",
			Audience:   core.AudienceWorker,
			Category:   core.CategoryWageArrears,
			Services:   []string{catalog.ServiceAdvancePay},
			Provenance: core.ProvenanceMismatchAutofix,
		},
	}

	learnedPath := filepath.Join(dir, "learned.json")
	autofixPath := filepath.Join(dir, "autofix.json")
	require.NoError(t, WriteExamples(learnedPath, learned))
	require.NoError(t, WriteExamples(autofixPath, autofix))

	c, err := Load(LoadOptions{LearnedPath: learnedPath, AutofixPath: autofixPath})
	require.NoError(t, err)
	assert.Equal(t, len(Seed())+2, c.Len())
	require.Len(t, c.MismatchExamples(), 1)
	assert.Equal(t, catalog.ServiceAdvancePay, c.MismatchExamples()[0].Services[0])
}

func TestLoad_MissingArtifactIsFatal(t *testing.T) {
	_, err := Load(LoadOptions{LearnedPath: filepath.Join(t.TempDir(), "gone.json")})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMissingArtifact)
}
