// Package editorctx provides the Context highlighters run against: the
// buffer being displayed, the active selections, the option accessor, and
// the register store (for the search highlighter's "/" register). Adapted
// from internal/dispatcher/execctx.Context, narrowed to the read-only
// surface the highlighting core needs.
package editorctx

import (
	"github.com/prismline/hlcore/internal/options"
	"github.com/prismline/hlcore/internal/register"
	"github.com/prismline/hlcore/internal/selection"
	"github.com/prismline/hlcore/internal/textbuf"
)

// Context bundles everything a highlighter needs to run.
type Context struct {
	buf        textbuf.Buffer
	selections *selection.Set
	options    *options.Accessor
	registers  *register.Store
}

// New creates a Context from its collaborators.
func New(buf textbuf.Buffer, sels *selection.Set, opts *options.Accessor, regs *register.Store) *Context {
	return &Context{buf: buf, selections: sels, options: opts, registers: regs}
}

// Buffer returns the buffer being displayed.
func (c *Context) Buffer() textbuf.Buffer { return c.buf }

// Selections returns the active selection set, or nil if none.
func (c *Context) Selections() *selection.Set { return c.selections }

// Options returns the option accessor for this context's scope.
func (c *Context) Options() *options.Accessor { return c.options }

// MainSelRegisterValue returns the content of register name, e.g. "/" for
// the last search pattern. Mirrors Context::main_sel_register_value in the
// original highlighters.cc, which highlight_search_factory calls to read
// the search register.
func (c *Context) MainSelRegisterValue(name rune) string {
	if c.registers == nil {
		return ""
	}
	return c.registers.Get(name)
}
