// Package classify assigns an emotional tone to story beats. The rule-based
// keyword scorer is the mandatory dependency-free path; an external strategy
// (typically LLM-backed) can be injected and is skipped gracefully when it
// fails.
package classify

import (
	"context"
	"strings"

	"github.com/ncplab/chronicle/internal/ncp"
)

// Classification methods, reported in every result.
const (
	MethodExisting         = "existing"
	MethodLLM              = "llm"
	MethodRuleBased        = "rule_based"
	MethodRuleBasedDefault = "rule_based_default"
)

// Result is the outcome of classifying one beat.
type Result struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Method         string  `json:"method"`
}

// Strategy is the capability interface to an external classifier. It returns
// a tone label plus free-text rationale; an error means the strategy is
// unavailable and the caller falls back to rules.
type Strategy interface {
	ClassifyBeat(ctx context.Context, beat ncp.StoryBeat, hint string) (label string, rationale string, err error)
}

// Classifier scores beats against a taxonomy. Zero-value configuration uses
// the built-in ten tones and no external strategy.
type Classifier struct {
	taxonomy Taxonomy
	fallback string
	strategy Strategy
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithTaxonomy replaces the built-in categories.
func WithTaxonomy(t Taxonomy) Option {
	return func(c *Classifier) {
		if len(t) > 0 {
			c.taxonomy = t
		}
	}
}

// WithFallback replaces the zero-score default tone.
func WithFallback(tone string) Option {
	return func(c *Classifier) {
		if tone != "" {
			c.fallback = tone
		}
	}
}

// WithStrategy injects an external classification strategy.
func WithStrategy(s Strategy) Option {
	return func(c *Classifier) { c.strategy = s }
}

func New(opts ...Option) *Classifier {
	c := &Classifier{
		taxonomy: DefaultTaxonomy(),
		fallback: FallbackTone,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Taxonomy returns the classifier's category list.
func (c *Classifier) Taxonomy() Taxonomy { return c.taxonomy }

// Classify determines the emotional tone of a beat. Policy, in order: an
// authored emotional weight is returned verbatim; an available strategy is
// delegated to; otherwise the rule-based scorer decides.
func (c *Classifier) Classify(ctx context.Context, beat ncp.StoryBeat, hint string) Result {
	if beat.EmotionalWeight != "" {
		return Result{
			Classification: beat.EmotionalWeight,
			Confidence:     1.0,
			Method:         MethodExisting,
		}
	}

	if c.strategy != nil {
		label, _, err := c.strategy.ClassifyBeat(ctx, beat, hint)
		if err == nil && label != "" {
			return Result{
				Classification: label,
				Confidence:     0.8,
				Method:         MethodLLM,
			}
		}
	}

	return c.classifyRuleBased(beat)
}

// BeatResult pairs a beat id with its classification.
type BeatResult struct {
	StoryBeatID string `json:"storybeat_id"`
	Result
}

// ClassifyAll classifies every beat of a document in document order.
func (c *Classifier) ClassifyAll(ctx context.Context, doc *ncp.Document, hint string) []BeatResult {
	results := make([]BeatResult, 0, len(doc.StoryBeats))
	for _, beat := range doc.StoryBeats {
		results = append(results, BeatResult{
			StoryBeatID: beat.StoryBeatID,
			Result:      c.Classify(ctx, beat, hint),
		})
	}
	return results
}

// classifyRuleBased counts keyword occurrences per category in the beat's
// lowercased title and description. Highest score wins, ties broken by
// declaration order; confidence is score/3 capped at 1.0. With no matches at
// all the fallback tone is reported at 0.3.
func (c *Classifier) classifyRuleBased(beat ncp.StoryBeat) Result {
	text := strings.ToLower(beat.Title + " " + beat.Description)

	best := -1
	bestScore := 0
	for i, cat := range c.taxonomy {
		score := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return Result{
			Classification: c.fallback,
			Confidence:     0.3,
			Method:         MethodRuleBasedDefault,
		}
	}

	confidence := float64(bestScore) / 3.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	return Result{
		Classification: c.taxonomy[best].Name,
		Confidence:     confidence,
		Method:         MethodRuleBased,
	}
}
