package gate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gutendex/explorer/pkg/logger"
)

// FallbackNotice is shown in place of the explorer for rejected browsers.
const FallbackNotice = "Please use the latest version of Firefox, Safari, or Chrome to view this page."

// Renderer applies the side effects of a decision to a page.
type Renderer interface {
	// ShowFallback replaces the explorer container's contents with notice.
	ShowFallback(ctx context.Context, notice string) error
	// Attach registers a follow-on module. It must not wait for the module to
	// become ready.
	Attach(ctx context.Context, m Module) error
}

// BootstrapOption configures a Bootstrapper.
type BootstrapOption func(*Bootstrapper)

// WithModules sets the follow-on modules attached on admission, in order.
func WithModules(mods ...Module) BootstrapOption {
	return func(b *Bootstrapper) {
		b.modules = append([]Module(nil), mods...)
	}
}

// WithLogger sets the logger used to record decisions. Nil is ignored.
func WithLogger(l *slog.Logger) BootstrapOption {
	return func(b *Bootstrapper) {
		if l != nil {
			b.logger = l
		}
	}
}

// Bootstrapper runs the gate once per page and applies the outcome through a
// Renderer: the fallback notice for rejected browsers, the follow-on modules for
// admitted ones.
type Bootstrapper struct {
	gate    *Gate
	modules []Module
	logger  *slog.Logger
}

// NewBootstrapper creates a Bootstrapper attaching DefaultModules unless
// configured otherwise. A nil gate means New().
func NewBootstrapper(g *Gate, opts ...BootstrapOption) *Bootstrapper {
	if g == nil {
		g = New()
	}
	b := &Bootstrapper{
		gate:    g,
		modules: DefaultModules(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Modules returns the follow-on modules in attachment order.
func (b *Bootstrapper) Modules() []Module {
	return append([]Module(nil), b.modules...)
}

// Run decides for ua and renders the result. The returned Decision is valid even
// when rendering fails.
func (b *Bootstrapper) Run(ctx context.Context, ua string, r Renderer) (Decision, error) {
	if r == nil {
		return Decision{State: StatePending}, ErrNilRenderer
	}

	d := b.gate.Decide(ua)

	m := newMachine(StatePending)
	m.add(StatePending, StateAdmitted, Decision.Admitted, b.attachModules(r))
	m.add(StatePending, StateRejected, nil, b.showFallback(r))

	if err := m.fire(ctx, d); err != nil {
		b.logger.ErrorContext(ctx, "browser gate rendering failed",
			logger.Browser(d.Identity),
			logger.Error(err),
		)
		return d, errors.Join(ErrRender, err)
	}

	b.logger.DebugContext(ctx, "browser gate decided",
		logger.Browser(d.Identity),
		logger.State(string(m.current())),
		logger.Error(d.Err),
	)
	return d, nil
}

func (b *Bootstrapper) attachModules(r Renderer) action {
	return func(ctx context.Context, _ Decision) error {
		for _, mod := range b.modules {
			if err := r.Attach(ctx, mod); err != nil {
				return err
			}
			b.logger.DebugContext(ctx, "module attached", logger.Module(mod.Name))
		}
		return nil
	}
}

func (b *Bootstrapper) showFallback(r Renderer) action {
	return func(ctx context.Context, _ Decision) error {
		return r.ShowFallback(ctx, FallbackNotice)
	}
}
