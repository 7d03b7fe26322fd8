package explorer

import "github.com/gutendex/explorer/pkg/gate"

// DefaultDatastarScript is the Datastar client bundle loaded for admitted browsers.
const DefaultDatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// Config holds page settings read from the environment.
type Config struct {
	ScriptPrefix   string `env:"EXPLORER_SCRIPT_PREFIX" envDefault:"/static/scripts/"`
	DatastarScript string `env:"EXPLORER_DATASTAR_SCRIPT" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"`
	Title          string `env:"EXPLORER_TITLE" envDefault:"Gutendex"`
}

func (c Config) withDefaults() Config {
	if c.ScriptPrefix == "" {
		c.ScriptPrefix = gate.ScriptPrefix
	}
	if c.DatastarScript == "" {
		c.DatastarScript = DefaultDatastarScript
	}
	if c.Title == "" {
		c.Title = "Gutendex"
	}
	return c
}

// Modules returns the follow-on modules under the configured prefix.
func (c Config) Modules() []gate.Module {
	return gate.Modules(c.withDefaults().ScriptPrefix, gate.ModuleGetResults, gate.ModuleIndex)
}
