package classify

import (
	"context"
	"fmt"

	"github.com/ncplab/chronicle/internal/core/common"
	"github.com/ncplab/chronicle/internal/llm"
	"github.com/ncplab/chronicle/internal/ncp"
)

type llmClassification struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Explanation    string  `json:"explanation"`
}

// LLMStrategy classifies beats through a generation client. Errors from the
// client or unparseable responses surface as strategy errors, which the
// Classifier treats as "unavailable" and falls back on.
type LLMStrategy struct {
	LLM      llm.LLMClient
	Taxonomy Taxonomy
}

func NewLLMStrategy(client llm.LLMClient, taxonomy Taxonomy) *LLMStrategy {
	if len(taxonomy) == 0 {
		taxonomy = DefaultTaxonomy()
	}
	return &LLMStrategy{LLM: client, Taxonomy: taxonomy}
}

func (s *LLMStrategy) ClassifyBeat(ctx context.Context, beat ncp.StoryBeat, hint string) (string, string, error) {
	prompt := BuildPrompt(beat, hint, s.Taxonomy)

	response, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate classification: %w", err)
	}

	result, err := common.ParseJSON[llmClassification](response)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse classification result: %w", err)
	}
	if result.Classification == "" {
		return "", "", fmt.Errorf("empty classification in response")
	}
	return result.Classification, result.Explanation, nil
}
