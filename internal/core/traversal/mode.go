package traversal

import "fmt"

// Mode selects one of the closed set of traversal strategies.
type Mode string

const (
	ModePlayerJourney     Mode = "player_journey"
	ModeThematicTrace     Mode = "thematic_trace"
	ModeTemporalSequence  Mode = "temporal_sequence"
	ModeEmotionalArc      Mode = "emotional_arc"
	ModeConnectedElements Mode = "connected_elements"
)

// UnsupportedModeError reports a traversal mode outside the closed set.
type UnsupportedModeError struct {
	Mode string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported traversal mode: %q", e.Mode)
}

// ParseMode validates a mode identifier at the boundary. Unrecognized tags are
// rejected rather than silently falling back to a default.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePlayerJourney, ModeThematicTrace, ModeTemporalSequence, ModeEmotionalArc, ModeConnectedElements:
		return Mode(s), nil
	default:
		return "", &UnsupportedModeError{Mode: s}
	}
}
