package matchcore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/corpus"
	"github.com/laborlink/matchcore/route"
)

func TestNewRouter_Defaults(t *testing.T) {
	router, err := NewRouter()
	require.NoError(t, err)

	assert.NotNil(t, router.Catalog())
	assert.Positive(t, router.Corpus().Len(), "seed corpus must not be empty")
}

func TestRouter_MatchWageArrears(t *testing.T) {
	router, err := NewRouter()
	require.NoError(t, err)

	result := router.Match("월급이 두 달째 밀렸고 대표가 다음 달에 준다고만 합니다.")

	assert.Equal(t, core.AudienceWorker, result.Audience)
	assert.Equal(t, core.CategoryWageArrears, result.Category)
	assert.Equal(t, catalog.ServiceWageClaim, result.TopService)
	assert.GreaterOrEqual(t, result.Confidence, 0.18)
	assert.NotEmpty(t, result.ServiceScores)
}

func TestRouter_MatchAbstainStillPicks(t *testing.T) {
	router, err := NewRouter()
	require.NoError(t, err)

	result := router.Match("zzz qqq xxx")

	assert.Empty(t, result.Audience, "abstain leaves the audience empty")
	assert.Empty(t, result.Category, "abstain leaves the category empty")
	assert.Zero(t, result.Confidence)
	assert.NotEmpty(t, result.TopService, "the selector always names a service")
}

func TestRouter_MatchDeterministic(t *testing.T) {
	router, err := NewRouter()
	require.NoError(t, err)

	text := "갑자기 해고 통보를 받았는데 어떻게 해야 하나요"
	first := router.Match(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, router.Match(text))
	}
}

func TestNewRouter_MissingArtifactIsFatal(t *testing.T) {
	_, err := NewRouter(WithLearnedExamples("/nonexistent/learned.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMissingArtifact)
}

func TestNewRouter_MergesLearnedArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learned.json")
	learned := []core.Example{{
		Text:       "급여 명세서 없이 월급이 줄었습니다",
		Audience:   core.AudienceWorker,
		Category:   core.CategoryWageArrears,
		Services:   []string{catalog.ServiceWageClaim},
		Provenance: core.ProvenanceLearned,
		Count:      3,
		LastSeen:   time.Now().UTC(),
	}}
	require.NoError(t, corpus.WriteExamples(path, learned))

	base, err := NewRouter()
	require.NoError(t, err)
	merged, err := NewRouter(WithLearnedExamples(path))
	require.NoError(t, err)

	assert.Equal(t, base.Corpus().Len()+1, merged.Corpus().Len())
}

func TestRouter_NewSelectorSharesSnapshot(t *testing.T) {
	router, err := NewRouter()
	require.NoError(t, err)

	selector := router.NewSelector(route.DefaultConfig())
	require.NotNil(t, selector)

	// The override path must behave identically to the router's own.
	assert.Equal(t, router.Pick("체당금 신청을 도와주세요"), selector.Pick("체당금 신청을 도와주세요"))
}
