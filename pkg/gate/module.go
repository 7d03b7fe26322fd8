package gate

// ScriptPrefix is the path prefix of follow-on module scripts.
const ScriptPrefix = "/static/scripts/"

// Follow-on modules of the API explorer. The index module wires the URL form and
// depends on the results module being attached first.
const (
	ModuleGetResults = "api-explorer/get-results"
	ModuleIndex      = "api-explorer/index"
)

// Module references a follow-on module by logical name.
type Module struct {
	Name   string
	Prefix string
}

// Path returns the module's script path: Prefix + Name + ".js".
func (m Module) Path() string { return m.Prefix + m.Name + ".js" }

// Modules builds module references sharing a prefix, keeping the given order.
func Modules(prefix string, names ...string) []Module {
	mods := make([]Module, 0, len(names))
	for _, name := range names {
		mods = append(mods, Module{Name: name, Prefix: prefix})
	}
	return mods
}

// DefaultModules returns the explorer's modules in attachment order.
func DefaultModules() []Module {
	return Modules(ScriptPrefix, ModuleGetResults, ModuleIndex)
}
