// Package llm provides provider-agnostic text generation clients used by the
// optional LLM-backed classification strategy.
package llm

import "context"

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
