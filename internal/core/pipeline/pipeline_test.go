package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countState struct {
	Visited []string
	Err     error
}

func TestRunExecutesStagesInOrder(t *testing.T) {
	visit := func(name string) Stage[countState] {
		return Stage[countState]{Name: name, Run: func(s countState) countState {
			s.Visited = append(s.Visited, name)
			return s
		}}
	}

	p := New("test", visit("one"), visit("two"), visit("three"))
	final := p.Run(countState{})

	assert.Equal(t, []string{"one", "two", "three"}, final.Visited)
	assert.Equal(t, []string{"one", "two", "three"}, p.StageNames())
	assert.Equal(t, "test", p.Name())
}

func TestRunDoesNotShortCircuitOnError(t *testing.T) {
	failed := errors.New("stage failed")

	p := New("test",
		Stage[countState]{Name: "fail", Run: func(s countState) countState {
			s.Err = failed
			s.Visited = append(s.Visited, "fail")
			return s
		}},
		// A well-behaved later stage sees the error and passes through, but
		// the executor still invokes it.
		Stage[countState]{Name: "after", Run: func(s countState) countState {
			s.Visited = append(s.Visited, "after")
			if s.Err != nil {
				return s
			}
			s.Visited = append(s.Visited, "after-work")
			return s
		}},
	)

	final := p.Run(countState{})
	assert.Equal(t, []string{"fail", "after"}, final.Visited)
	assert.ErrorIs(t, final.Err, failed)
}

func TestRunReturnsUpdatedCopies(t *testing.T) {
	p := New("test", Stage[countState]{Name: "touch", Run: func(s countState) countState {
		s.Visited = append(s.Visited, "touch")
		return s
	}})

	initial := countState{}
	final := p.Run(initial)
	assert.Empty(t, initial.Visited)
	assert.Len(t, final.Visited, 1)
}
