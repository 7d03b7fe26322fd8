package gate

import (
	"github.com/gutendex/explorer/pkg/admission"
	"github.com/gutendex/explorer/pkg/useragent"
)

// State is a bootstrap state. A run starts Pending and ends Admitted or Rejected.
type State string

const (
	StatePending  State = "pending"
	StateAdmitted State = "admitted"
	StateRejected State = "rejected"
)

// Decision is the outcome of the browser gate for one user agent string.
type Decision struct {
	State    State
	Identity useragent.Identity
	// Err is the parse error when the user agent was not recognized.
	Err error
}

// Admitted reports whether the browser passed the gate.
func (d Decision) Admitted() bool { return d.State == StateAdmitted }

// Option configures a Gate.
type Option func(*Gate)

// WithParser sets the user agent parser. Nil is ignored.
func WithParser(p *useragent.Parser) Option {
	return func(g *Gate) {
		if p != nil {
			g.parser = p
		}
	}
}

// WithPolicy sets the admission policy.
func WithPolicy(p admission.Policy) Option {
	return func(g *Gate) { g.policy = p }
}

// Gate combines user agent parsing with an admission policy.
type Gate struct {
	parser *useragent.Parser
	policy admission.Policy
}

// New creates a Gate using the default parser and admission.Default().
func New(opts ...Option) *Gate {
	g := &Gate{
		parser: useragent.New(),
		policy: admission.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Decide parses ua and applies the policy. It has no side effects, so the same
// input always yields the same decision. An unrecognized user agent is rejected.
func (g *Gate) Decide(ua string) Decision {
	id, err := g.parser.Parse(ua)
	if err != nil {
		return Decision{State: StateRejected, Err: err}
	}
	if !g.policy.Admit(id) {
		return Decision{State: StateRejected, Identity: id}
	}
	return Decision{State: StateAdmitted, Identity: id}
}
