// Command prismline is a minimal wiring demo for the display and
// highlighting core: it builds an in-memory buffer, lays it out as a
// display buffer of one atom per line, runs a small highlighter group over
// it, and prints the resulting atoms with their faces. Grounded on the
// overall shape of cmd/keystorm/main.go: plain flag parsing, stdlib error
// reporting to stderr, no framework.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prismline/hlcore/internal/coreface"
	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/highlight"
	"github.com/prismline/hlcore/internal/options"
	"github.com/prismline/hlcore/internal/register"
	"github.com/prismline/hlcore/internal/selection"
	"github.com/prismline/hlcore/internal/textbuf"
	"github.com/prismline/hlcore/internal/units"
)

func main() {
	pattern := flag.String("pattern", `TODO`, "regex to highlight")
	flag.Parse()

	content := "package main\n\nfunc main() {\n\t// TODO: fill this in\n\tprintln(\"hi\")\n}\n"
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "prismline: %v\n", err)
			os.Exit(1)
		}
		content = string(data)
	}

	buf := textbuf.NewText(content)
	regOpts := options.NewRegistry()
	regOpts.Register("tabstop", 4)
	accessor := options.NewAccessor(regOpts)
	regs := register.NewStore()
	sels := selection.NewSet(selection.Range{})
	ctx := editorctx.New(buf, sels, accessor, regs)

	db := buildDisplayBuffer(buf)

	group := highlight.NewGroup()
	fill, err := highlight.Fill("Default")
	if err != nil {
		fmt.Fprintf(os.Stderr, "prismline: %v\n", err)
		os.Exit(1)
	}
	group.Add("fill", fill)

	p, err := highlight.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prismline: %v\n", err)
		os.Exit(1)
	}
	highlight.Faces.Set("Todo", coreface.Face{FG: coreface.NamedColor("yellow"), Attrs: coreface.Bold})
	regex := highlight.NewRegexHighlighter(p, map[int]string{0: "Todo"})
	group.Add("todo", regex.Run)
	group.Add("linenumbers", highlight.ShowLineNumbers())

	fn := group.AsFunc(nil)
	if err := fn(ctx, highlight.Highlight, db); err != nil {
		fmt.Fprintf(os.Stderr, "prismline: %v\n", err)
		os.Exit(1)
	}

	for _, line := range db.Lines() {
		for _, atom := range line.Atoms() {
			fmt.Printf("[%s] %q\n", atom.Face.FG, atom.Content())
		}
		fmt.Println("--")
	}
}

func buildDisplayBuffer(buf *textbuf.Text) *display.Buffer {
	db := display.NewBuffer()
	var lines []*display.Line
	for i := units.LineCount(0); i < buf.LineCount(); i++ {
		lineText := buf.Line(i)
		end := units.ByteCoord{Line: i, Column: units.ByteCount(len(lineText))}
		if i+1 < buf.LineCount() {
			end = units.ByteCoord{Line: i + 1, Column: 0}
		}
		atom := display.NewBufferAtom(buf, units.ByteCoord{Line: i, Column: 0}, end)
		lines = append(lines, display.NewLine([]display.Atom{atom}))
	}
	db.SetLines(lines)
	return db
}
