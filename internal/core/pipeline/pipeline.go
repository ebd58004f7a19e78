// Package pipeline is a generic, ordered, synchronous stage chain over an
// accumulating state value.
package pipeline

// Stage is one named step. Run receives the state by value and returns an
// updated copy; it must never mutate shared data reachable from its input.
type Stage[S any] struct {
	Name string
	Run  func(S) S
}

// Pipeline executes its stages strictly in declaration order. It does not
// short-circuit when a stage records an error: every stage runs, and a stage
// handed an errored state is responsible for passing it through unchanged.
type Pipeline[S any] struct {
	name   string
	stages []Stage[S]
}

func New[S any](name string, stages ...Stage[S]) *Pipeline[S] {
	return &Pipeline[S]{name: name, stages: stages}
}

func (p *Pipeline[S]) Name() string { return p.name }

// StageNames returns the stage names in execution order.
func (p *Pipeline[S]) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.Name
	}
	return names
}

// Run feeds the state through every stage and returns the final value.
// Execution terminates after the last declared stage; there are no branches
// or loops.
func (p *Pipeline[S]) Run(state S) S {
	for _, st := range p.stages {
		state = st.Run(state)
	}
	return state
}
