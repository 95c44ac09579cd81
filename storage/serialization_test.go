package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laborlink/matchcore/core"
)

func TestMarshalID_RoundTrip(t *testing.T) {
	for _, id := range []core.ID{0, 1, 255, 70000, 1<<63 - 1} {
		decoded, err := UnmarshalID(MarshalID(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestMarshalSessionEvent_RoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 8, 14, 9, 30, 0, 123456000, time.UTC)

	events := []*core.SessionEvent{
		{
			Id:        1,
			SessionId: "session-0001",
			Step:      1,
			Audience:  core.AudienceWorker,
			Payload:   core.SituationSubmitted{Text: "월급이 두 달째 밀렸어요"},
			CreatedAt: createdAt,
		},
		{
			Id:        2,
			SessionId: "session-0001",
			Step:      2,
			Audience:  core.AudienceWorker,
			Payload:   core.OptionsGenerated{Services: []string{"임금체불 진정 대리", "노무 종합 상담"}},
			CreatedAt: createdAt.Add(time.Second),
		},
		{
			Id:        3,
			SessionId: "session-0001",
			Step:      3,
			Audience:  core.AudienceWorker,
			Payload:   core.OptionSelected{Service: "임금체불 진정 대리"},
			CreatedAt: createdAt.Add(2 * time.Second),
		},
		{
			Id:        4,
			SessionId: "session-0001",
			Step:      4,
			Audience:  core.AudienceWorker,
			Payload:   core.OptionClicked{Service: "임금체불 진정 대리"},
			CreatedAt: createdAt.Add(3 * time.Second),
		},
	}

	for _, event := range events {
		data, err := MarshalSessionEvent(event)
		require.NoError(t, err)

		decoded, err := UnmarshalSessionEvent(data)
		require.NoError(t, err)
		assert.Equal(t, event, decoded, "event %d must survive the round trip", event.Id)
	}
}

func TestMarshalSessionEvent_MicrosecondPrecision(t *testing.T) {
	event := &core.SessionEvent{
		Id:        1,
		SessionId: "s1",
		Step:      1,
		Audience:  core.AudienceWorker,
		Payload:   core.SituationSubmitted{Text: "텍스트"},
		CreatedAt: time.Date(2026, 8, 14, 9, 30, 0, 123456789, time.UTC),
	}

	data, err := MarshalSessionEvent(event)
	require.NoError(t, err)
	decoded, err := UnmarshalSessionEvent(data)
	require.NoError(t, err)

	// Storage keeps microseconds; sub-microsecond precision is dropped.
	assert.Equal(t, event.CreatedAt.Truncate(time.Microsecond), decoded.CreatedAt)
}

func TestMarshalSessionEvent_UnknownPayload(t *testing.T) {
	event := &core.SessionEvent{Id: 1, SessionId: "s1", Payload: nil}

	_, err := MarshalSessionEvent(event)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestUnmarshalSessionEvent_Garbage(t *testing.T) {
	_, err := UnmarshalSessionEvent([]byte{0x07, 0xff})
	assert.Error(t, err)
}
