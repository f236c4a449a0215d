package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/casetrack/internal/cases"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		kind    string
		payload string
		want    Action
	}{
		{"START_GAME", `{"players":["Ada","Bo"],"settings":{"timerSecs":60,"session":"short"}}`,
			StartGame{Players: []string{"Ada", "Bo"}, Settings: Settings{TimerSecs: 60, Session: SessionShort}}},
		{"CHOOSE_DIFFICULTY", `{"difficulty":"full"}`, ChooseDifficulty{Difficulty: cases.DifficultyFull}},
		{"SUBMIT_ANSWER", `{"answer":750}`, SubmitAnswer{Answer: 750}},
		{"SUBMIT_ANSWER", `{"choice":2}`, SubmitAnswer{Choice: 2}},
		{"CHOOSE_FORK_PATH", `{"target":19}`, ChooseForkPath{Target: 19}},
		{"CHOOSE_EVENT_OPTION", `{"index":1}`, ChooseEventOption{Index: 1}},
		{"RESOLVE_EVENT", ``, ResolveEvent{}},
		{"START_TURN", `null`, StartTurn{}},
		{"USE_HINT", `{}`, UseHint{}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := DecodeAction(tt.kind, json.RawMessage(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAction_Errors(t *testing.T) {
	_, err := DecodeAction("FLIP_TABLE", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = DecodeAction("SUBMIT_ANSWER", json.RawMessage(`{"answer":"lots"}`))
	assert.Error(t, err)
}

func TestActionKindsAreDecodable(t *testing.T) {
	kinds := ActionKinds()
	assert.Len(t, kinds, 16)
	for _, k := range kinds {
		a, err := DecodeAction(k, nil)
		require.NoError(t, err, k)
		assert.Equal(t, k, a.Kind())
	}
}

func TestEnvelope(t *testing.T) {
	env, err := Encode(ChooseForkPath{Target: 22})
	require.NoError(t, err)
	assert.Equal(t, "CHOOSE_FORK_PATH", env.Type)

	b, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"CHOOSE_FORK_PATH","payload":{"target":22}}`, string(b))

	var back Envelope
	require.NoError(t, json.Unmarshal(b, &back))
	a, err := back.Decode()
	require.NoError(t, err)
	assert.Equal(t, ChooseForkPath{Target: 22}, a)

	bare, err := Encode(EndTurn{})
	require.NoError(t, err)
	assert.Nil(t, bare.Payload)
}
