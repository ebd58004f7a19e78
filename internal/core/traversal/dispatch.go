package traversal

import (
	"github.com/ncplab/chronicle/internal/ncp"
)

// Request is a traversal query addressed by mode tag. Only the parameters of
// the selected mode are consulted.
type Request struct {
	Mode            Mode     `json:"mode"`
	PlayerID        string   `json:"player_id,omitempty"`
	PerspectiveID   string   `json:"perspective_id,omitempty"`
	StoryBeatID     string   `json:"storybeat_id,omitempty"`
	EmotionalWeight string   `json:"emotional_weight,omitempty"`
	SearchTerms     []string `json:"search_terms,omitempty"`
}

// Result carries the outcome of a dispatched traversal. Beats is populated for
// the sequence-returning modes; Connections for connected_elements.
type Result struct {
	Mode        Mode            `json:"mode"`
	Beats       []ncp.StoryBeat `json:"beats,omitempty"`
	Connections *Connections    `json:"connections,omitempty"`
}

// Traverse dispatches a request to the matching engine method, matching
// exhaustively over the closed mode set. Unknown modes are rejected with
// UnsupportedModeError.
func (e *Engine) Traverse(doc *ncp.Document, req Request) (Result, error) {
	res := Result{Mode: req.Mode}
	switch req.Mode {
	case ModePlayerJourney:
		beats, err := e.PlayerJourney(doc, req.PlayerID, nil)
		if err != nil {
			return Result{}, err
		}
		res.Beats = beats
	case ModeThematicTrace:
		beats, err := e.ThematicTrace(doc, req.PerspectiveID, req.SearchTerms)
		if err != nil {
			return Result{}, err
		}
		res.Beats = beats
	case ModeTemporalSequence:
		res.Beats = e.TemporalSequence(doc)
	case ModeEmotionalArc:
		beats, err := e.EmotionalArc(doc, req.EmotionalWeight)
		if err != nil {
			return Result{}, err
		}
		res.Beats = beats
	case ModeConnectedElements:
		conn, err := e.ConnectedElements(doc, req.StoryBeatID)
		if err != nil {
			return Result{}, err
		}
		res.Connections = &conn
	default:
		return Result{}, &UnsupportedModeError{Mode: string(req.Mode)}
	}
	return res, nil
}
