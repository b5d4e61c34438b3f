package highlight

import (
	"sync"

	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
)

// entry is one named member of a Group: either a concrete highlighter or,
// for "ref", a name resolved lazily against a Registry.
type entry struct {
	name string
	fn   Func
	ref  string // non-empty for a ref entry; fn is ignored
}

// Group runs its members in registration order within one highlight pass,
// each wrapped so a single member's error doesn't abort the rest.
// Grounded on HighlighterGroup / HierarchicalHighlighter in the original:
// group boundaries are exactly where a bad highlighter gets contained.
type Group struct {
	mu      sync.RWMutex
	entries []entry
}

// NewGroup creates an empty group.
func NewGroup() *Group { return &Group{} }

// Add appends a concrete named highlighter.
func (g *Group) Add(name string, fn Func) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = append(g.entries, entry{name: name, fn: fn})
}

// AddRef appends a by-name reference, resolved at every invocation rather
// than bound once. The registry argument is not used: the reference is
// resolved against the Registry passed to AsFunc, and skipped when that is
// nil. A ref to a name that doesn't exist (yet, or ever) is silently
// skipped — grounded on reference_factory catching group_not_found and
// doing nothing.
func (g *Group) AddRef(name string, registry *Registry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = append(g.entries, entry{name: name, ref: name})
	_ = registry
}

// Get returns the named member's Func, or nil if absent or a ref.
func (g *Group) Get(name string) Func {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.entries {
		if e.name == name && e.ref == "" {
			return e.fn
		}
	}
	return nil
}

// Remove deletes the named member, if present.
func (g *Group) Remove(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, e := range g.entries {
		if e.name == name {
			g.entries = append(g.entries[:i], g.entries[i+1:]...)
			return
		}
	}
}

// AsFunc returns a Func that runs every member in order against the same
// display buffer, ignoring (but not propagating) an individual member's
// error so that one bad highlighter never aborts the redraw.
func (g *Group) AsFunc(registry *Registry) Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		g.mu.RLock()
		entries := append([]entry(nil), g.entries...)
		g.mu.RUnlock()

		for _, e := range entries {
			fn := e.fn
			if e.ref != "" {
				if registry == nil {
					continue
				}
				fn = registry.Resolve(e.ref)
				if fn == nil {
					continue
				}
			}
			_ = fn(ctx, flags, db) // per-member errors are contained, not propagated
		}
		return nil
	}
}

// Registry is the process-wide map of highlighter name to Func that the
// ref highlighter resolves against. Grounded on DefinedHighlighters /
// HighlighterRegistry (a FunctionRegistry<HighlighterFactory> singleton) in
// the original; here it holds already-built Funcs rather than factories,
// since the factories in the Factories table are called once, directly.
type Registry struct {
	mu    sync.RWMutex
	named map[string]Func
}

// NewRegistry creates an empty named-highlighter registry.
func NewRegistry() *Registry { return &Registry{named: make(map[string]Func)} }

// Define registers fn under name, replacing any previous definition.
func (r *Registry) Define(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[name] = fn
}

// Resolve returns the Func registered under name, or nil if absent. A nil
// result is the normal "reference miss" case, not an error.
func (r *Registry) Resolve(name string) Func {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.named[name]
}

// Ref builds a Func that resolves name against registry on every
// invocation.
func Ref(registry *Registry, name string) Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		fn := registry.Resolve(name)
		if fn == nil {
			return nil
		}
		return fn(ctx, flags, db)
	}
}
