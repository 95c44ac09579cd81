package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborlink/matchcore/core"
)

func TestDefault_PartitionsByAudience(t *testing.T) {
	cat := Default()

	worker := cat.ByAudience(core.AudienceWorker)
	employer := cat.ByAudience(core.AudienceEmployer)

	assert.NotEmpty(t, worker)
	assert.NotEmpty(t, employer)
	assert.Equal(t, len(cat.All()), len(worker)+len(employer))

	for _, entry := range worker {
		assert.Equal(t, core.AudienceWorker, entry.Audience)
	}
}

func TestDefault_BothAudiencesHaveGenericService(t *testing.T) {
	cat := Default()

	assert.NotNil(t, cat.Find(GenericService, core.AudienceWorker))
	assert.NotNil(t, cat.Find(GenericService, core.AudienceEmployer))
}

func TestFind_FallsBackToFullCatalog(t *testing.T) {
	cat := Default()

	// Worker-only service looked up with the employer audience resolves
	// against the full catalog.
	entry := cat.Find(ServiceWageClaim, core.AudienceEmployer)
	require.NotNil(t, entry)
	assert.Equal(t, core.AudienceWorker, entry.Audience)

	assert.Nil(t, cat.Find("존재하지 않는 서비스", core.AudienceWorker))
}

func TestKeywordUniverse_DedupedInOrder(t *testing.T) {
	cat := Default()
	universe := cat.KeywordUniverse()

	assert.NotEmpty(t, universe)
	seen := make(map[string]bool)
	for _, keyword := range universe {
		assert.False(t, seen[keyword], "duplicate keyword %q", keyword)
		seen[keyword] = true
	}
	// Names belong to the universe too.
	assert.Contains(t, universe, ServiceWageClaim)
	assert.Contains(t, universe, "체당금")

	// First-appearance order is stable across calls.
	assert.Equal(t, universe, cat.KeywordUniverse())
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "catalog.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMissingArtifact)
}

func TestLoad_DropsInvalidEntries(t *testing.T) {
	payload := `[
		{"name": "임금체불 진정 대리", "audience": "worker", "keywords": ["체불"]},
		{"name": "", "audience": "worker"},
		{"name": "급여 아웃소싱", "audience": "company"}
	]`
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.All(), 1, "entries failing validation are dropped")
}
