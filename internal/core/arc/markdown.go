package arc

import (
	"fmt"
	"strings"

	"github.com/ncplab/chronicle/internal/ncp"
)

func buildArcMarkdown(player ncp.Player, beats []ncp.StoryBeat) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# Character Arc: %s\n\n", player.Name)

	md.WriteString("## Character Foundation\n\n")
	if player.Wound != "" {
		fmt.Fprintf(&md, "**Wound**: %s\n\n", player.Wound)
	}
	if player.Desire != "" {
		fmt.Fprintf(&md, "**Desire**: %s\n\n", player.Desire)
	}
	if player.Arc != "" {
		fmt.Fprintf(&md, "**Arc**: %s\n\n", player.Arc)
	}

	md.WriteString("## Journey\n\n")
	if len(beats) > 0 {
		for i, beat := range beats {
			fmt.Fprintf(&md, "### %d. %s\n\n", i+1, beat.Title)
			fmt.Fprintf(&md, "%s\n\n", beat.Description)
			if beat.EmotionalWeight != "" {
				fmt.Fprintf(&md, "*Emotional tone: %s*\n\n", beat.EmotionalWeight)
			}
			if len(beat.Moments) > 0 {
				md.WriteString("**Key Moments:**\n")
				for _, moment := range beat.Moments {
					fmt.Fprintf(&md, "- %s\n", moment.Description)
				}
				md.WriteString("\n")
			}
		}
	} else {
		md.WriteString("*No story beats found for this character.*\n\n")
	}

	md.WriteString("## Character Transformation\n\n")
	if player.Arc != "" {
		fmt.Fprintf(&md, "%s\n\n", player.Arc)
	} else {
		md.WriteString("*Character arc to be determined.*\n\n")
	}

	return md.String()
}
