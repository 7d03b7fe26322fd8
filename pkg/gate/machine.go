package gate

import (
	"context"
	"fmt"
	"sync"
)

// guard decides whether a transition may fire for a decision.
type guard func(d Decision) bool

// action runs a side effect during a transition. An error aborts the transition.
type action func(ctx context.Context, d Decision) error

type transition struct {
	to      State
	guard   guard
	actions []action
}

// machine is a single-event state machine. Transitions from the same state are
// tried in registration order; the first one whose guard passes wins.
type machine struct {
	mu          sync.Mutex
	state       State
	transitions map[State][]transition
}

func newMachine(initial State) *machine {
	return &machine{
		state:       initial,
		transitions: make(map[State][]transition),
	}
}

func (m *machine) add(from, to State, g guard, actions ...action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions[from] = append(m.transitions[from], transition{to: to, guard: g, actions: actions})
}

func (m *machine) current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// fire evaluates d against the transitions leaving the current state.
func (m *machine) fire(ctx context.Context, d Decision) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidates, ok := m.transitions[m.state]
	if !ok || len(candidates) == 0 {
		return fmt.Errorf("%w: state %q", ErrAlreadyDecided, m.state)
	}

	for _, t := range candidates {
		if t.guard != nil && !t.guard(d) {
			continue
		}
		for _, act := range t.actions {
			if err := act(ctx, d); err != nil {
				return fmt.Errorf("%s -> %s: %w", m.state, t.to, err)
			}
		}
		m.state = t.to
		return nil
	}

	return fmt.Errorf("%w: state %q", ErrNoTransition, m.state)
}
