package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncplab/chronicle/internal/ncp"
)

// mockLLM replays queued responses in order.
type mockLLM struct {
	Responses []string
	Err       error
	Prompts   []string
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", errors.New("no responses queued")
	}
	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return resp, nil
}

func TestLLMStrategyClassifyBeat(t *testing.T) {
	mock := &mockLLM{Responses: []string{
		`{"classification": "Melancholic", "confidence": 0.9, "explanation": "wistful imagery"}`,
	}}
	strategy := NewLLMStrategy(mock, nil)
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "Quiet house", Description: "The rooms stand empty"}

	label, rationale, err := strategy.ClassifyBeat(context.Background(), beat, "late chapter")
	require.NoError(t, err)
	assert.Equal(t, "Melancholic", label)
	assert.Equal(t, "wistful imagery", rationale)

	require.Len(t, mock.Prompts, 1)
	assert.Contains(t, mock.Prompts[0], "Quiet house")
	assert.Contains(t, mock.Prompts[0], "The rooms stand empty")
	assert.Contains(t, mock.Prompts[0], "late chapter")
	// The prompt enumerates the allowed tones.
	assert.Contains(t, mock.Prompts[0], "Melancholic")
	assert.Contains(t, mock.Prompts[0], "Peaceful")
}

func TestLLMStrategyToleratesFencedResponse(t *testing.T) {
	mock := &mockLLM{Responses: []string{
		"Here is the result:\n```json\n{\"classification\": \"Tense\", \"explanation\": \"standoff\"}\n```",
	}}
	strategy := NewLLMStrategy(mock, nil)

	label, _, err := strategy.ClassifyBeat(context.Background(), ncp.StoryBeat{Title: "Standoff"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Tense", label)
}

func TestLLMStrategyGenerateError(t *testing.T) {
	mock := &mockLLM{Err: errors.New("provider unavailable")}
	strategy := NewLLMStrategy(mock, nil)

	_, _, err := strategy.ClassifyBeat(context.Background(), ncp.StoryBeat{Title: "X"}, "")
	assert.Error(t, err)
}

func TestLLMStrategyUnparseableResponse(t *testing.T) {
	mock := &mockLLM{Responses: []string{"I cannot classify this beat."}}
	strategy := NewLLMStrategy(mock, nil)

	_, _, err := strategy.ClassifyBeat(context.Background(), ncp.StoryBeat{Title: "X"}, "")
	assert.Error(t, err)
}

func TestLLMStrategyEmptyClassification(t *testing.T) {
	mock := &mockLLM{Responses: []string{`{"classification": "", "explanation": "unsure"}`}}
	strategy := NewLLMStrategy(mock, nil)

	_, _, err := strategy.ClassifyBeat(context.Background(), ncp.StoryBeat{Title: "X"}, "")
	assert.Error(t, err)
}
