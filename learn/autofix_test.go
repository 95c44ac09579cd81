package learn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborlink/matchcore/audit"
	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/core"
)

func mismatchRow(text, keyword string) audit.Row {
	return audit.Row{
		Question: audit.Question{Text: text, Audience: core.AudienceWorker},
		Service:  catalog.GenericService,
		Score:    3.0,
		Keyword:  keyword,
		Aligned:  false,
	}
}

func TestAutofix_ResolvesKeywordMismatches(t *testing.T) {
	report := &audit.Report{
		MismatchTop: []audit.Row{
			mismatchRow("월급 정산이 계속 미뤄지고 있어요", "월급"),
			mismatchRow("갑작스러운 해고 통보를 받았습니다", "해고"),
		},
	}

	examples := Autofix(report)
	require.Len(t, examples, 2)

	assert.Equal(t, catalog.ServiceWageClaim, examples[0].Services[0])
	assert.Equal(t, core.CategoryWageArrears, examples[0].Category)
	assert.Equal(t, core.ProvenanceMismatchAutofix, examples[0].Provenance)

	assert.Equal(t, catalog.ServiceDismissalRemedy, examples[1].Services[0])
	assert.Equal(t, core.CategoryDismissal, examples[1].Category)
}

func TestAutofix_FallsBackToQuestionText(t *testing.T) {
	// No extracted keyword, but the text itself names the issue.
	report := &audit.Report{
		MismatchTop: []audit.Row{
			mismatchRow("회사에서 4대보험 처리를 부탁받았어요", ""),
		},
	}

	examples := Autofix(report)
	require.Len(t, examples, 1)
	assert.Equal(t, catalog.ServiceSocialInsurance, examples[0].Services[0])
}

func TestAutofix_SkipsUnresolvable(t *testing.T) {
	report := &audit.Report{
		MismatchTop: []audit.Row{
			mismatchRow("연차 수당 계산이 궁금합니다", "연차"),
		},
	}

	assert.Empty(t, Autofix(report))
}

func TestAutofix_DedupesByKey(t *testing.T) {
	row := mismatchRow("월급 정산이 계속 미뤄지고 있어요", "월급")
	report := &audit.Report{MismatchTop: []audit.Row{row, row, row}}

	examples := Autofix(report)
	assert.Len(t, examples, 1, "identical mismatches emit one example")
}

func TestAutofix_ExamplesPassValidation(t *testing.T) {
	report := &audit.Report{
		MismatchTop: []audit.Row{
			mismatchRow("월급 정산이 계속 미뤄지고 있어요", "월급"),
			mismatchRow("괴롭힘 때문에 출근이 두렵습니다", "괴롭힘"),
		},
	}

	for _, example := range Autofix(report) {
		example := example
		require.NoError(t, core.ValidateExample(&example))
	}
}
