// Package traversal implements the query engine over a narrative document:
// five stateless traversal modes plus derived-term search for thematic tracing.
package traversal

import (
	"sort"
	"strings"

	"github.com/ncplab/chronicle/internal/ncp"
)

// DefaultStopwords are dropped when deriving search terms from a perspective's
// thematic question.
var DefaultStopwords = []string{
	"what", "how", "why", "when", "where", "who",
	"is", "are", "the", "a", "an", "does", "do",
}

// Engine answers structural and thematic queries over a document. All methods
// are pure: they never mutate the document and never fail on unknown ids,
// degrading to empty results instead. A missing required parameter (an empty
// player id, say) is an error; an id that simply does not resolve is not.
type Engine struct {
	stopwords map[string]struct{}
}

// NewEngine returns an engine with the default stopword set.
func NewEngine() *Engine {
	return NewEngineWithStopwords(DefaultStopwords)
}

// NewEngineWithStopwords allows a custom stopword set for term derivation.
func NewEngineWithStopwords(stopwords []string) *Engine {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Engine{stopwords: set}
}

// PlayerJourney returns the beats involving playerID in document order,
// optionally narrowed by a predicate. Unknown players yield an empty result.
func (e *Engine) PlayerJourney(doc *ncp.Document, playerID string, filter func(ncp.StoryBeat) bool) ([]ncp.StoryBeat, error) {
	if playerID == "" {
		return nil, &ncp.MissingDataError{Entity: "player"}
	}
	beats := doc.PlayerStoryBeats(playerID)
	if filter == nil {
		return beats, nil
	}
	var kept []ncp.StoryBeat
	for _, b := range beats {
		if filter(b) {
			kept = append(kept, b)
		}
	}
	return kept, nil
}

// ThematicTrace finds beats that resonate with a perspective. When terms is
// empty the search terms are derived from the perspective itself. An unknown
// perspective yields an empty result.
func (e *Engine) ThematicTrace(doc *ncp.Document, perspectiveID string, terms []string) ([]ncp.StoryBeat, error) {
	if perspectiveID == "" {
		return nil, &ncp.MissingDataError{Entity: "perspective"}
	}
	p, ok := doc.Perspective(perspectiveID)
	if !ok {
		return nil, nil
	}
	if len(terms) == 0 {
		terms = e.DeriveSearchTerms(p)
	}
	return searchBeats(doc, terms), nil
}

// DeriveSearchTerms builds the default term list for a perspective: the
// lowercased tokens of its description, the tokens of its thematic question
// minus stopwords, and the sides of its tension split on " vs " / " vs. ".
// Duplicates are removed preserving first occurrence.
func (e *Engine) DeriveSearchTerms(p ncp.Perspective) []string {
	var terms []string
	terms = append(terms, strings.Fields(strings.ToLower(p.Description))...)
	for _, w := range strings.Fields(strings.ToLower(p.ThematicQuestion)) {
		if _, stop := e.stopwords[w]; !stop {
			terms = append(terms, w)
		}
	}
	if p.Tension != "" {
		tension := strings.ReplaceAll(p.Tension, " vs ", " ")
		tension = strings.ReplaceAll(tension, " vs. ", " ")
		terms = append(terms, strings.Fields(strings.ToLower(tension))...)
	}
	return dedupe(terms)
}

// EmotionalArc returns the beats whose emotional weight matches exactly.
func (e *Engine) EmotionalArc(doc *ncp.Document, weight string) ([]ncp.StoryBeat, error) {
	if weight == "" {
		return nil, &ncp.MissingDataError{Entity: "emotional weight"}
	}
	return doc.StoryBeatsByEmotionalWeight(weight), nil
}

// TemporalSequence returns all beats stable-sorted by the integer "sequence"
// entry of their metadata. Beats without a sequence sort after sequenced ones;
// ties keep document order.
func (e *Engine) TemporalSequence(doc *ncp.Document) []ncp.StoryBeat {
	beats := make([]ncp.StoryBeat, len(doc.StoryBeats))
	copy(beats, doc.StoryBeats)
	sort.SliceStable(beats, func(i, j int) bool {
		si, oki := beatSequence(beats[i])
		sj, okj := beatSequence(beats[j])
		if oki != okj {
			return oki
		}
		return oki && si < sj
	})
	return beats
}

// Connections holds the entities reachable from one story beat.
type Connections struct {
	Players     []ncp.Player     `json:"players"`
	StoryPoints []ncp.StoryPoint `json:"storypoints"`
	Moments     []ncp.Moment     `json:"moments"`
}

// ConnectedElements resolves a beat's related players and story points to
// entities, dropping any dangling reference, and returns its embedded moments.
// An unknown beat id yields empty collections.
func (e *Engine) ConnectedElements(doc *ncp.Document, storybeatID string) (Connections, error) {
	if storybeatID == "" {
		return Connections{}, &ncp.MissingDataError{Entity: "storybeat"}
	}
	beat, ok := doc.StoryBeat(storybeatID)
	if !ok {
		return Connections{}, nil
	}
	var conn Connections
	for _, pid := range beat.RelatedPlayers {
		if p, ok := doc.Player(pid); ok {
			conn.Players = append(conn.Players, p)
		}
	}
	for _, spid := range beat.RelatedStoryPoints {
		if sp, ok := doc.StoryPoint(spid); ok {
			conn.StoryPoints = append(conn.StoryPoints, sp)
		}
	}
	conn.Moments = beat.Moments
	return conn, nil
}

func searchBeats(doc *ncp.Document, terms []string) []ncp.StoryBeat {
	var matches []ncp.StoryBeat
	seen := make(map[string]struct{})
	for _, beat := range doc.StoryBeats {
		if _, dup := seen[beat.StoryBeatID]; dup {
			continue
		}
		text := strings.ToLower(beat.Title + " " + beat.Description)
		for _, term := range terms {
			if term != "" && strings.Contains(text, strings.ToLower(term)) {
				matches = append(matches, beat)
				seen[beat.StoryBeatID] = struct{}{}
				break
			}
		}
	}
	return matches
}

func beatSequence(b ncp.StoryBeat) (float64, bool) {
	raw, ok := b.Metadata["sequence"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64: // JSON numbers decode to float64
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	var out []string
	for _, t := range terms {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
