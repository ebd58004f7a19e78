// Package ncp holds the Narrative Context Protocol data model: a validated,
// read-only snapshot of one story and its lookup accessors.
package ncp

// Moment is a fine-grained event embedded within a single story beat. It is
// owned by the beat that declares it and is not addressable document-wide.
type Moment struct {
	MomentID    string                 `json:"moment_id" jsonschema:"required"`
	Description string                 `json:"description" jsonschema:"required"`
	Timestamp   string                 `json:"timestamp,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// StoryPoint is a plot-structure marker (inciting incident, climax, ...)
// distinct from a beat.
type StoryPoint struct {
	StoryPointID   string                 `json:"storypoint_id" jsonschema:"required"`
	Title          string                 `json:"title" jsonschema:"required"`
	Description    string                 `json:"description" jsonschema:"required"`
	Type           string                 `json:"type,omitempty"`
	RelatedPlayers []string               `json:"related_players,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// StoryBeat is a discrete unit of narrative progression and the primary
// queryable event. Related players and story points are weak references by id;
// the referenced entities are not guaranteed to exist in the document.
type StoryBeat struct {
	StoryBeatID        string                 `json:"storybeat_id" jsonschema:"required"`
	Title              string                 `json:"title" jsonschema:"required"`
	Description        string                 `json:"description" jsonschema:"required"`
	EmotionalWeight    string                 `json:"emotional_weight,omitempty"`
	Moments            []Moment               `json:"moments,omitempty"`
	RelatedPlayers     []string               `json:"related_players,omitempty"`
	RelatedStoryPoints []string               `json:"related_storypoints,omitempty"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
}

// Player is a character or entity participating in story beats.
type Player struct {
	PlayerID string                 `json:"player_id" jsonschema:"required"`
	Name     string                 `json:"name" jsonschema:"required"`
	Wound    string                 `json:"wound,omitempty"`
	Desire   string                 `json:"desire,omitempty"`
	Arc      string                 `json:"arc,omitempty"`
	Role     string                 `json:"role,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Perspective is a thematic lens: a named tension and the question it explores.
type Perspective struct {
	PerspectiveID    string                 `json:"perspective_id" jsonschema:"required"`
	Name             string                 `json:"name" jsonschema:"required"`
	Description      string                 `json:"description" jsonschema:"required"`
	ThematicQuestion string                 `json:"thematic_question,omitempty"`
	Tension          string                 `json:"tension,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// Document is the complete structured representation of one narrative.
// It is constructed once by the loader and read-only afterwards; re-loading
// produces a new, independent document. IDs are unique within their own
// collection, but cross-references are deliberately not validated so that
// partially authored narratives remain loadable.
type Document struct {
	Title        string                 `json:"title" jsonschema:"required"`
	Author       string                 `json:"author,omitempty"`
	Version      string                 `json:"version,omitempty"`
	Players      []Player               `json:"players,omitempty"`
	Perspectives []Perspective          `json:"perspectives,omitempty"`
	StoryBeats   []StoryBeat            `json:"storybeats,omitempty"`
	StoryPoints  []StoryPoint           `json:"storypoints,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// Player returns the player with the given id. First match wins under document
// collection order; uniqueness is assumed, not enforced.
func (d *Document) Player(id string) (Player, bool) {
	for _, p := range d.Players {
		if p.PlayerID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Perspective returns the perspective with the given id.
func (d *Document) Perspective(id string) (Perspective, bool) {
	for _, p := range d.Perspectives {
		if p.PerspectiveID == id {
			return p, true
		}
	}
	return Perspective{}, false
}

// StoryBeat returns the story beat with the given id.
func (d *Document) StoryBeat(id string) (StoryBeat, bool) {
	for _, sb := range d.StoryBeats {
		if sb.StoryBeatID == id {
			return sb, true
		}
	}
	return StoryBeat{}, false
}

// StoryPoint returns the story point with the given id.
func (d *Document) StoryPoint(id string) (StoryPoint, bool) {
	for _, sp := range d.StoryPoints {
		if sp.StoryPointID == id {
			return sp, true
		}
	}
	return StoryPoint{}, false
}

// PlayerStoryBeats returns the beats whose related players include playerID,
// preserving document order. Linear scan; narrative documents are expected to
// stay in the tens-to-low-hundreds of beats.
func (d *Document) PlayerStoryBeats(playerID string) []StoryBeat {
	var beats []StoryBeat
	for _, sb := range d.StoryBeats {
		for _, pid := range sb.RelatedPlayers {
			if pid == playerID {
				beats = append(beats, sb)
				break
			}
		}
	}
	return beats
}

// StoryBeatsByEmotionalWeight returns the beats whose emotional weight matches
// exactly (case-sensitive), preserving document order.
func (d *Document) StoryBeatsByEmotionalWeight(weight string) []StoryBeat {
	var beats []StoryBeat
	for _, sb := range d.StoryBeats {
		if sb.EmotionalWeight == weight {
			beats = append(beats, sb)
		}
	}
	return beats
}
