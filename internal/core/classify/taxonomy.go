package classify

// Category is one emotional tone with the lowercase keyword substrings that
// signal it in beat text.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is an ordered category list. Declaration order breaks scoring ties:
// the first-declared category wins.
type Taxonomy []Category

// FallbackTone is returned when no category keyword matches at all.
const FallbackTone = "Peaceful"

// DefaultTaxonomy returns the built-in ten-tone taxonomy.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{Name: "Devastating", Keywords: []string{"destroy", "loss", "death", "tragedy", "grief", "devastat"}},
		{Name: "Hopeful", Keywords: []string{"hope", "bright", "promise", "future", "optimis", "dream"}},
		{Name: "Tense", Keywords: []string{"tense", "anxious", "nervous", "edge", "suspense", "uncertain"}},
		{Name: "Joyful", Keywords: []string{"joy", "happy", "celebrate", "triumph", "delight", "elat"}},
		{Name: "Melancholic", Keywords: []string{"sad", "melanchol", "wistful", "longing", "regret", "sorrow"}},
		{Name: "Triumphant", Keywords: []string{"victory", "triumph", "succeed", "conquer", "win", "achieve"}},
		{Name: "Fearful", Keywords: []string{"fear", "terror", "dread", "frighten", "horror", "panic"}},
		{Name: "Peaceful", Keywords: []string{"peace", "calm", "serene", "tranquil", "quiet", "still"}},
		{Name: "Conflicted", Keywords: []string{"conflict", "torn", "struggle", "dilemma", "uncertain", "doubt"}},
		{Name: "Resigned", Keywords: []string{"resign", "accept", "inevitable", "surrender", "fate", "give up"}},
	}
}

// Names returns the category names in declaration order.
func (t Taxonomy) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}
