package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExample() Example {
	return Example{
		Text:       "월급이 밀렸어요",
		Audience:   AudienceWorker,
		Category:   CategoryWageArrears,
		Services:   []string{"임금체불 진정 대리"},
		Provenance: ProvenanceSeed,
	}
}

func TestValidateExample_Valid(t *testing.T) {
	example := validExample()
	require.NoError(t, ValidateExample(&example))
}

func TestValidateExample_Nil(t *testing.T) {
	err := ValidateExample(nil)
	assert.ErrorIs(t, err, ErrInvalidExample)
}

func TestValidateExample_TextTooShort(t *testing.T) {
	example := validExample()
	example.Text = "해고" // 2 runes, below the seed minimum of 4

	err := ValidateExample(&example)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidExample)
	assert.ErrorIs(t, err, ErrTextTooShort)
}

func TestValidateExample_LearnedNeedsLongerText(t *testing.T) {
	example := validExample()
	example.Provenance = ProvenanceLearned
	example.Count = 3
	example.Text = "월급체불임" // 5 runes: fine for seed, short for learned

	err := ValidateExample(&example)
	assert.ErrorIs(t, err, ErrTextTooShort)

	example.Text = "월급이 밀렸습니다"
	require.NoError(t, ValidateExample(&example))
}

func TestValidateExample_LearnedNeedsTrustedCount(t *testing.T) {
	example := validExample()
	example.Provenance = ProvenanceLearned
	example.Text = "월급이 밀렸습니다"
	example.Count = 1

	err := ValidateExample(&example)
	assert.ErrorIs(t, err, ErrUntrustedCount)

	example.Count = 2
	require.NoError(t, ValidateExample(&example))
}

func TestValidateExample_NoServices(t *testing.T) {
	example := validExample()
	example.Services = nil
	assert.ErrorIs(t, ValidateExample(&example), ErrNoServices)

	example.Services = []string{""}
	assert.ErrorIs(t, ValidateExample(&example), ErrNoServices)
}

func TestValidateExample_BadEnums(t *testing.T) {
	example := validExample()
	example.Audience = "manager"
	assert.ErrorIs(t, ValidateExample(&example), ErrInvalidAudience)

	example = validExample()
	example.Category = "salary"
	assert.ErrorIs(t, ValidateExample(&example), ErrInvalidCategory)

	example = validExample()
	example.Provenance = "manual"
	assert.ErrorIs(t, ValidateExample(&example), ErrInvalidProvenance)
}

func TestValidateServiceEntry(t *testing.T) {
	entry := ServiceEntry{Name: "임금체불 진정 대리", Audience: AudienceWorker}
	require.NoError(t, ValidateServiceEntry(&entry))

	entry.Name = ""
	assert.ErrorIs(t, ValidateServiceEntry(&entry), ErrInvalidServiceEntry)

	entry = ServiceEntry{Name: "급여 아웃소싱", Audience: "company"}
	assert.ErrorIs(t, ValidateServiceEntry(&entry), ErrInvalidAudience)

	assert.ErrorIs(t, ValidateServiceEntry(nil), ErrInvalidServiceEntry)
}

func TestValidateSessionEvent(t *testing.T) {
	event := &SessionEvent{
		SessionId: "session-0001",
		Step:      1,
		Audience:  AudienceWorker,
		Payload:   SituationSubmitted{Text: "월급이 밀렸어요"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, ValidateSessionEvent(event))

	event.Payload = OptionsGenerated{Services: []string{"임금체불 진정 대리"}}
	require.NoError(t, ValidateSessionEvent(event))

	event.Payload = OptionSelected{Service: "임금체불 진정 대리"}
	require.NoError(t, ValidateSessionEvent(event))

	event.Payload = OptionClicked{Service: "임금체불 진정 대리"}
	require.NoError(t, ValidateSessionEvent(event))
}

func TestValidateSessionEvent_Rejections(t *testing.T) {
	assert.ErrorIs(t, ValidateSessionEvent(nil), ErrInvalidEvent)

	event := &SessionEvent{SessionId: "", Payload: SituationSubmitted{Text: "텍스트"}}
	assert.ErrorIs(t, ValidateSessionEvent(event), ErrInvalidEvent)

	event = &SessionEvent{SessionId: "s1"}
	assert.ErrorIs(t, ValidateSessionEvent(event), ErrMissingPayload)

	event = &SessionEvent{SessionId: "s1", Payload: SituationSubmitted{}}
	assert.ErrorIs(t, ValidateSessionEvent(event), ErrInvalidEvent)

	event = &SessionEvent{SessionId: "s1", Payload: OptionsGenerated{}}
	assert.ErrorIs(t, ValidateSessionEvent(event), ErrInvalidEvent)

	event = &SessionEvent{SessionId: "s1", Payload: OptionSelected{}}
	assert.ErrorIs(t, ValidateSessionEvent(event), ErrInvalidEvent)

	event = &SessionEvent{SessionId: "s1", Audience: "guest", Payload: OptionClicked{Service: "상담"}}
	assert.ErrorIs(t, ValidateSessionEvent(event), ErrInvalidAudience)
}

func TestIDFromContent_Deterministic(t *testing.T) {
	a := IDFromContent("월급이 두 달째 밀렸어요")
	b := IDFromContent("월급이 두 달째 밀렸어요")
	c := IDFromContent("다른 내용")

	assert.Equal(t, a, b, "same content must produce the same ID")
	assert.NotEqual(t, a, c, "different content must produce different IDs")
}

func TestExampleKey_IgnoresSecondaryServices(t *testing.T) {
	a := validExample()
	b := validExample()
	b.Services = append(b.Services, "노무 종합 상담")

	assert.Equal(t, a.Key(), b.Key(), "aggregation key only uses the primary service")

	b.Services[0] = "대지급금 청구 대리"
	assert.NotEqual(t, a.Key(), b.Key())
}
