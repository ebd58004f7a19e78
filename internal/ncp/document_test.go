package ncp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDocument() *Document {
	return &Document{
		Title: "The Long Winter",
		Players: []Player{
			{PlayerID: "p1", Name: "Mara", Wound: "Abandoned as a child", Desire: "Belonging", Arc: "Learns to trust"},
			{PlayerID: "p2", Name: "Iven"},
		},
		Perspectives: []Perspective{
			{PerspectiveID: "persp1", Name: "Trust", Description: "Trust and betrayal", Tension: "Safety vs Vulnerability"},
		},
		StoryBeats: []StoryBeat{
			{StoryBeatID: "b1", Title: "Arrival", Description: "Mara arrives at the outpost", RelatedPlayers: []string{"p1"}, EmotionalWeight: "Hopeful"},
			{StoryBeatID: "b2", Title: "The Storm", Description: "The storm traps everyone inside", RelatedPlayers: []string{"p1", "p2"}},
			{StoryBeatID: "b3", Title: "Departure", Description: "Iven leaves alone", RelatedPlayers: []string{"p2"}, EmotionalWeight: "Hopeful"},
		},
		StoryPoints: []StoryPoint{
			{StoryPointID: "sp1", Title: "Inciting Incident", Description: "The first snowfall", Type: "inciting_incident"},
		},
	}
}

func TestLookupAccessors(t *testing.T) {
	doc := testDocument()

	p, ok := doc.Player("p1")
	assert.True(t, ok)
	assert.Equal(t, "Mara", p.Name)

	_, ok = doc.Player("ghost")
	assert.False(t, ok)

	persp, ok := doc.Perspective("persp1")
	assert.True(t, ok)
	assert.Equal(t, "Trust", persp.Name)

	beat, ok := doc.StoryBeat("b2")
	assert.True(t, ok)
	assert.Equal(t, "The Storm", beat.Title)

	sp, ok := doc.StoryPoint("sp1")
	assert.True(t, ok)
	assert.Equal(t, "inciting_incident", sp.Type)

	_, ok = doc.StoryPoint("nope")
	assert.False(t, ok)
}

func TestLookupFirstMatchWins(t *testing.T) {
	doc := &Document{
		Title: "Dup",
		Players: []Player{
			{PlayerID: "p1", Name: "First"},
			{PlayerID: "p1", Name: "Second"},
		},
	}

	p, ok := doc.Player("p1")
	assert.True(t, ok)
	assert.Equal(t, "First", p.Name)
}

func TestPlayerStoryBeatsPreservesOrder(t *testing.T) {
	doc := testDocument()

	beats := doc.PlayerStoryBeats("p1")
	assert.Len(t, beats, 2)
	assert.Equal(t, "b1", beats[0].StoryBeatID)
	assert.Equal(t, "b2", beats[1].StoryBeatID)

	assert.Empty(t, doc.PlayerStoryBeats("ghost"))
}

func TestStoryBeatsByEmotionalWeightExactMatch(t *testing.T) {
	doc := testDocument()

	beats := doc.StoryBeatsByEmotionalWeight("Hopeful")
	assert.Len(t, beats, 2)
	assert.Equal(t, "b1", beats[0].StoryBeatID)
	assert.Equal(t, "b3", beats[1].StoryBeatID)

	// Case-sensitive
	assert.Empty(t, doc.StoryBeatsByEmotionalWeight("hopeful"))
}

func TestMissingDataError(t *testing.T) {
	err := &MissingDataError{Entity: "player", ID: "p9"}
	assert.Equal(t, "player not found: p9", err.Error())

	err = &MissingDataError{Entity: "player"}
	assert.Equal(t, "no player provided", err.Error())
}
