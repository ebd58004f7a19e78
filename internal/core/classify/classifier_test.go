package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ncplab/chronicle/internal/ncp"
)

type mockStrategy struct {
	Label     string
	Rationale string
	Err       error
	Calls     int
}

func (m *mockStrategy) ClassifyBeat(ctx context.Context, beat ncp.StoryBeat, hint string) (string, string, error) {
	m.Calls++
	return m.Label, m.Rationale, m.Err
}

func TestClassifyExistingWeight(t *testing.T) {
	c := New()
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "X", Description: "Y", EmotionalWeight: "Joyful"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Joyful", result.Classification)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, MethodExisting, result.Method)
}

func TestClassifyExistingWeightSkipsStrategy(t *testing.T) {
	strategy := &mockStrategy{Label: "Tense"}
	c := New(WithStrategy(strategy))
	beat := ncp.StoryBeat{StoryBeatID: "b1", EmotionalWeight: "Joyful"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Joyful", result.Classification)
	assert.Zero(t, strategy.Calls)
}

func TestClassifyRuleBasedDefault(t *testing.T) {
	c := New()
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "Inventory", Description: "Counting supplies"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Peaceful", result.Classification)
	assert.Equal(t, 0.3, result.Confidence)
	assert.Equal(t, MethodRuleBasedDefault, result.Method)
}

func TestClassifyRuleBasedCapsConfidence(t *testing.T) {
	c := New()
	// Three Fearful keywords: fear, terror, dread.
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "The Cellar", Description: "Fear and terror and dread fill the dark"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Fearful", result.Classification)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, MethodRuleBased, result.Method)
}

func TestClassifyRuleBasedPartialScore(t *testing.T) {
	c := New()
	// One Devastating keyword: grief.
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "After", Description: "Grief settles over the house"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Devastating", result.Classification)
	assert.InDelta(t, 1.0/3.0, result.Confidence, 1e-9)
	assert.Equal(t, MethodRuleBased, result.Method)
}

func TestClassifyTieBreaksByDeclarationOrder(t *testing.T) {
	c := New()
	// "uncertain" appears in both Tense and Conflicted; Tense is declared first.
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "Crossroads", Description: "An uncertain path"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Tense", result.Classification)
}

func TestClassifyStrategySuccess(t *testing.T) {
	strategy := &mockStrategy{Label: "Melancholic", Rationale: "wistful imagery"}
	c := New(WithStrategy(strategy))
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "Quiet grief", Description: "The house stands empty"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Melancholic", result.Classification)
	assert.Equal(t, 0.8, result.Confidence)
	assert.Equal(t, MethodLLM, result.Method)
	assert.Equal(t, 1, strategy.Calls)
}

func TestClassifyStrategyFailureFallsBack(t *testing.T) {
	strategy := &mockStrategy{Err: errors.New("provider unavailable")}
	c := New(WithStrategy(strategy))
	beat := ncp.StoryBeat{StoryBeatID: "b1", Title: "After", Description: "Grief settles over the house"}

	result := c.Classify(context.Background(), beat, "")
	assert.Equal(t, "Devastating", result.Classification)
	assert.Equal(t, MethodRuleBased, result.Method)
	assert.Equal(t, 1, strategy.Calls)
}

func TestClassifyCustomTaxonomy(t *testing.T) {
	taxonomy := Taxonomy{
		{Name: "Ominous", Keywords: []string{"shadow", "loom"}},
		{Name: "Serene", Keywords: []string{"meadow"}},
	}
	c := New(WithTaxonomy(taxonomy), WithFallback("Serene"))

	result := c.Classify(context.Background(), ncp.StoryBeat{Title: "Shadows loom"}, "")
	assert.Equal(t, "Ominous", result.Classification)

	result = c.Classify(context.Background(), ncp.StoryBeat{Title: "Nothing here"}, "")
	assert.Equal(t, "Serene", result.Classification)
	assert.Equal(t, MethodRuleBasedDefault, result.Method)
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	c := New()
	doc := &ncp.Document{
		Title: "Batch",
		StoryBeats: []ncp.StoryBeat{
			{StoryBeatID: "b1", Title: "Joy", Description: "They celebrate with delight", EmotionalWeight: "Joyful"},
			{StoryBeatID: "b2", Title: "After", Description: "Grief settles"},
			{StoryBeatID: "b3", Title: "Inventory", Description: "Counting supplies"},
		},
	}

	results := c.ClassifyAll(context.Background(), doc, "")
	assert.Len(t, results, 3)
	assert.Equal(t, "b1", results[0].StoryBeatID)
	assert.Equal(t, MethodExisting, results[0].Method)
	assert.Equal(t, "b2", results[1].StoryBeatID)
	assert.Equal(t, "Devastating", results[1].Classification)
	assert.Equal(t, "b3", results[2].StoryBeatID)
	assert.Equal(t, MethodRuleBasedDefault, results[2].Method)
}
