// Package arc renders a character-arc summary: the ordered journey of one
// player through the narrative, as markdown.
package arc

import (
	"github.com/ncplab/chronicle/internal/core/pipeline"
	"github.com/ncplab/chronicle/internal/ncp"
)

// ErrorPlaceholder is returned in place of markdown when the pipeline ends in
// an errored state.
const ErrorPlaceholder = "Error generating arc"

// State accumulates across the arc pipeline. Stages return updated copies;
// nothing is mutated in place.
type State struct {
	Doc      *ncp.Document
	PlayerID string

	Player ncp.Player
	Beats  []ncp.StoryBeat

	Summary string
	Err     error
}

func (s State) withError(err error) State {
	s.Err = err
	return s
}

// Generator is the character-arc pipeline: gather the player's beats, then
// render the markdown summary.
type Generator struct {
	pipe *pipeline.Pipeline[State]
}

func NewGenerator() *Generator {
	g := &Generator{}
	g.pipe = pipeline.New("character_arc",
		pipeline.Stage[State]{Name: "gather_beats", Run: g.gatherBeats},
		pipeline.Stage[State]{Name: "generate_summary", Run: g.generateSummary},
	)
	return g
}

// Generate returns the arc summary for one player as markdown, or
// ErrorPlaceholder when the run failed.
func (g *Generator) Generate(doc *ncp.Document, playerID string) string {
	final := g.GenerateState(doc, playerID)
	if final.Err != nil || final.Summary == "" {
		return ErrorPlaceholder
	}
	return final.Summary
}

// GenerateState runs the pipeline and returns the full accumulated state, for
// callers that need the intermediate data. The Err field must be inspected.
func (g *Generator) GenerateState(doc *ncp.Document, playerID string) State {
	return g.pipe.Run(State{Doc: doc, PlayerID: playerID})
}

func (g *Generator) gatherBeats(s State) State {
	if s.Err != nil {
		return s
	}
	if s.Doc == nil {
		return s.withError(&ncp.MissingDataError{Entity: "document"})
	}
	if s.PlayerID == "" {
		return s.withError(&ncp.MissingDataError{Entity: "player"})
	}
	player, ok := s.Doc.Player(s.PlayerID)
	if !ok {
		return s.withError(&ncp.MissingDataError{Entity: "player", ID: s.PlayerID})
	}
	s.Player = player
	s.Beats = s.Doc.PlayerStoryBeats(s.PlayerID)
	return s
}

func (g *Generator) generateSummary(s State) State {
	if s.Err != nil {
		return s
	}
	s.Summary = buildArcMarkdown(s.Player, s.Beats)
	return s
}
