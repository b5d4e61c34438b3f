package highlight

import (
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/options"
	"github.com/prismline/hlcore/internal/register"
	"github.com/prismline/hlcore/internal/selection"
	"github.com/prismline/hlcore/internal/textbuf"
)

func newTestText(content string) *textbuf.Text {
	return textbuf.NewText(content)
}

func ctxWithSearch(ctx *editorctx.Context, pattern string) *editorctx.Context {
	regs := register.NewStore()
	regs.SetLastSearch(pattern)
	sels := selection.NewSet(selection.Range{})
	return editorctx.New(ctx.Buffer(), sels, ctx.Options(), regs)
}

func ctxWithOptions(buf *textbuf.Text, ropts *options.Registry) *editorctx.Context {
	accessor := options.NewAccessor(ropts)
	regs := register.NewStore()
	sels := selection.NewSet(selection.Range{})
	return editorctx.New(buf, sels, accessor, regs)
}
