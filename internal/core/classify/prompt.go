package classify

import (
	"fmt"
	"strings"

	"github.com/ncplab/chronicle/internal/ncp"
)

// BuildPrompt formats the classification request sent to an external model.
// The response is expected to be a JSON object with "classification",
// "confidence" and "explanation" fields.
func BuildPrompt(beat ncp.StoryBeat, hint string, taxonomy Taxonomy) string {
	prompt := fmt.Sprintf(`Classify the emotional tone of this story beat.

Story Beat: %s
Description: %s

Available categories: %s

Analyze the emotional weight and tone of this beat. Consider:
1. The language and imagery used
2. The actions and events described
3. The overall mood conveyed

Respond with a JSON object:
{"classification": "<category>", "confidence": <0.0-1.0>, "explanation": "<brief explanation>"}`,
		beat.Title, beat.Description, strings.Join(taxonomy.Names(), ", "))

	if hint != "" {
		prompt = fmt.Sprintf("%s\n\nAdditional Context:\n%s\n", prompt, hint)
	}
	return prompt
}
