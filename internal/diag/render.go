package diag

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/wave-lang/wavec/internal/text"
	"github.com/wave-lang/wavec/internal/vfs"
)

// Renderer prints diagnostics with source snippets. File handles resolve
// through the store the renderer was built with; an unresolvable handle is
// a producer bug and panics.
type Renderer struct {
	out   *termenv.Output
	store *vfs.Store
}

// NewRenderer builds a renderer writing to w. Output options control the
// color profile; pass termenv.WithProfile(termenv.Ascii) to strip styling.
func NewRenderer(w io.Writer, store *vfs.Store, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{
		out:   termenv.NewOutput(w, opts...),
		store: store,
	}
}

// EmitAll renders diags in order.
func (r *Renderer) EmitAll(diags []Diagnostic) {
	for _, d := range diags {
		r.Emit(d)
	}
}

// Emit renders one diagnostic: header, snippet with underlines, then the
// hint line if present.
func (r *Renderer) Emit(d Diagnostic) {
	path, ok := r.store.Filepath(d.Location.File)
	if !ok {
		panic(fmt.Sprintf("diag: unresolvable file id %d", d.Location.File))
	}
	content, ok := r.store.Filecontent(d.Location.File)
	if !ok {
		panic(fmt.Sprintf("diag: unresolvable file id %d", d.Location.File))
	}

	li := text.NewLineIndex([]byte(content))
	sp := d.Location.Clamp(li.SourceLen())

	startPt, err := li.OffsetToPoint(sp.Start)
	if err != nil {
		panic(fmt.Sprintf("diag: clamped span start out of range: %v", err))
	}
	endPt, err := li.OffsetToPoint(sp.End)
	if err != nil {
		panic(fmt.Sprintf("diag: clamped span end out of range: %v", err))
	}

	r.writeHeader(path, startPt, d)
	r.writeSnippet(li, startPt, endPt, d.Label)
	if d.Hint != "" {
		hint := r.out.String("Hint: " + d.Hint).Foreground(termenv.ANSIWhite).Underline()
		fmt.Fprintf(r.out, "%s\n", hint)
	}
}

func (r *Renderer) writeHeader(path string, start text.Point, d Diagnostic) {
	severity := "warning"
	color := termenv.ANSIMagenta
	if d.IsError {
		severity = "error"
		color = termenv.ANSIRed
	}
	header := fmt.Sprintf("%s:%d:%d: %s: %s", path, start.Line, start.Column, severity, d.Message)
	fmt.Fprintf(r.out, "%s\n", r.out.String(header).Foreground(color))
}

// writeSnippet prints every line covered by the span, each followed by an
// underline row. The first line's underline trails into the label,
// intermediate lines are fully underlined, and the last line's underline
// stops at the span end.
func (r *Renderer) writeSnippet(li *text.LineIndex, start, end text.Point, label string) {
	width := len(strconv.Itoa(end.Line))
	gutter := fmt.Sprintf(" %*s | ", width, "")

	for line := start.Line; line <= end.Line; line++ {
		content := li.LineContent(line)
		fmt.Fprintf(r.out, " %*d | %s\n", width, line, content)

		from := 1
		to := len(content)
		if line == start.Line {
			from = start.Column
		}
		if line == end.Line {
			to = end.Column - 1
		}
		carets := to - from + 1
		if carets < 1 {
			carets = 1
		}

		fmt.Fprintf(r.out, "%s%s%s", gutter, strings.Repeat(" ", from-1), strings.Repeat("^", carets))
		if line == start.Line && label != "" {
			fmt.Fprintf(r.out, " %s", label)
		}
		fmt.Fprintln(r.out)
	}
}

// EmitDiagnostics renders diags to standard error against the process-wide
// file store.
func EmitDiagnostics(diags []Diagnostic) {
	NewRenderer(os.Stderr, vfs.Default()).EmitAll(diags)
}
