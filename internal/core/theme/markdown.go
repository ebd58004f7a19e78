package theme

import (
	"fmt"
	"strings"

	"github.com/ncplab/chronicle/internal/ncp"
)

func buildThematicMarkdown(perspective ncp.Perspective, beats []ncp.StoryBeat) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# Thematic Analysis: %s\n\n", perspective.Name)

	md.WriteString("## Thematic Lens\n\n")
	if perspective.Description != "" {
		fmt.Fprintf(&md, "%s\n\n", perspective.Description)
	}
	if perspective.Tension != "" {
		fmt.Fprintf(&md, "**Core Tension**: %s\n\n", perspective.Tension)
	}
	if perspective.ThematicQuestion != "" {
		fmt.Fprintf(&md, "**Thematic Question**: %s\n\n", perspective.ThematicQuestion)
	}

	md.WriteString("## How This Theme Manifests in the Narrative\n\n")
	if len(beats) > 0 {
		fmt.Fprintf(&md, "Found **%d** story beats that explore this theme:\n\n", len(beats))
		for i, beat := range beats {
			fmt.Fprintf(&md, "### %d. %s\n\n", i+1, beat.Title)
			fmt.Fprintf(&md, "%s\n\n", beat.Description)
			if beat.EmotionalWeight != "" {
				fmt.Fprintf(&md, "*Emotional resonance: %s*\n\n", beat.EmotionalWeight)
			}
			md.WriteString("**Thematic Relevance**: ")
			if perspective.Tension != "" {
				fmt.Fprintf(&md, "This beat explores the tension between %s through the choices and conflicts presented.\n\n", perspective.Tension)
			} else {
				md.WriteString("This beat resonates with the central thematic question.\n\n")
			}
		}
	} else {
		md.WriteString("*No story beats found that explicitly explore this theme. This could indicate an area for narrative development.*\n\n")
	}

	md.WriteString("## Thematic Synthesis\n\n")
	switch n := len(beats); {
	case n >= 5:
		fmt.Fprintf(&md, "This theme appears %d times throughout the narrative, indicating its significance to the overall story. ", n)
		md.WriteString("The frequency suggests this is a **major thematic pillar** of the narrative.\n\n")
	case n >= 3:
		fmt.Fprintf(&md, "This theme appears %d times throughout the narrative, indicating its significance to the overall story. ", n)
		md.WriteString("This theme receives **moderate exploration** in the story.\n\n")
	case n >= 1:
		fmt.Fprintf(&md, "This theme appears %d times throughout the narrative, indicating its significance to the overall story. ", n)
		md.WriteString("This theme is **lightly touched upon** and could be developed further.\n\n")
	default:
		md.WriteString("This theme does not appear explicitly in the current narrative beats. Consider whether this represents a missed opportunity for thematic depth.\n\n")
	}

	return md.String()
}
