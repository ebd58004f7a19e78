// Package theme analyzes how a thematic tension is explored across a
// narrative and renders the result as markdown.
package theme

import (
	"github.com/ncplab/chronicle/internal/core/pipeline"
	"github.com/ncplab/chronicle/internal/core/traversal"
	"github.com/ncplab/chronicle/internal/ncp"
)

// ErrorPlaceholder is returned in place of markdown when the pipeline ends in
// an errored state.
const ErrorPlaceholder = "Error generating analysis"

// State accumulates across the thematic analysis pipeline.
type State struct {
	Doc           *ncp.Document
	PerspectiveID string

	// SearchTerms may be supplied by the caller; when empty they are derived
	// from the perspective.
	SearchTerms []string

	Perspective ncp.Perspective
	Beats       []ncp.StoryBeat
	BeatIDs     []string

	Analysis string
	Err      error
}

func (s State) withError(err error) State {
	s.Err = err
	return s
}

// Analyzer is the thematic analysis pipeline: derive search terms from the
// perspective, find matching beats, synthesize the markdown report.
type Analyzer struct {
	engine *traversal.Engine
	pipe   *pipeline.Pipeline[State]
}

func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithEngine(traversal.NewEngine())
}

// NewAnalyzerWithEngine shares a caller-configured traversal engine (custom
// stopwords, typically).
func NewAnalyzerWithEngine(engine *traversal.Engine) *Analyzer {
	a := &Analyzer{engine: engine}
	a.pipe = pipeline.New("thematic_analysis",
		pipeline.Stage[State]{Name: "generate_queries", Run: a.generateQueries},
		pipeline.Stage[State]{Name: "find_beats", Run: a.findBeats},
		pipeline.Stage[State]{Name: "synthesize", Run: a.synthesize},
	)
	return a
}

// Analyze returns the thematic analysis for one perspective as markdown, or
// ErrorPlaceholder when the run failed.
func (a *Analyzer) Analyze(doc *ncp.Document, perspectiveID string) string {
	final := a.AnalyzeState(State{Doc: doc, PerspectiveID: perspectiveID})
	if final.Err != nil || final.Analysis == "" {
		return ErrorPlaceholder
	}
	return final.Analysis
}

// AnalyzeState runs the pipeline from an initial state and returns the full
// accumulated result. Callers needing matched beat ids read them from here.
func (a *Analyzer) AnalyzeState(initial State) State {
	return a.pipe.Run(initial)
}

func (a *Analyzer) generateQueries(s State) State {
	if s.Err != nil {
		return s
	}
	if s.Doc == nil {
		return s.withError(&ncp.MissingDataError{Entity: "document"})
	}
	if s.PerspectiveID == "" {
		return s.withError(&ncp.MissingDataError{Entity: "perspective"})
	}
	perspective, ok := s.Doc.Perspective(s.PerspectiveID)
	if !ok {
		return s.withError(&ncp.MissingDataError{Entity: "perspective", ID: s.PerspectiveID})
	}
	s.Perspective = perspective
	if len(s.SearchTerms) == 0 {
		s.SearchTerms = a.engine.DeriveSearchTerms(perspective)
	}
	return s
}

func (a *Analyzer) findBeats(s State) State {
	if s.Err != nil {
		return s
	}
	beats, err := a.engine.ThematicTrace(s.Doc, s.PerspectiveID, s.SearchTerms)
	if err != nil {
		return s.withError(err)
	}
	s.Beats = beats
	ids := make([]string, len(beats))
	for i, b := range beats {
		ids[i] = b.StoryBeatID
	}
	s.BeatIDs = ids
	return s
}

func (a *Analyzer) synthesize(s State) State {
	if s.Err != nil {
		return s
	}
	s.Analysis = buildThematicMarkdown(s.Perspective, s.Beats)
	return s
}
