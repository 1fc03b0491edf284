package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/madmann91/nosl/internal/diag"
)

// Renderer formats diagnostic records as caret-pointer source excerpts,
// the shape every entry point (cmd/noslc, tests wanting human-readable
// failure output) renders a diag.Sink's accumulated records through.
type Renderer struct {
	Style *Style
}

// NewRenderer returns a Renderer using style (nil means no coloring).
func NewRenderer(style *Style) *Renderer {
	if style == nil {
		style = NewStyle(false)
	}
	return &Renderer{Style: style}
}

// Render writes one formatted block per record to w: "file:line:col:
// severity: message", followed by the offending source line and a
// caret pointing at the column, when file/source are available.
func (r *Renderer) Render(w io.Writer, file, source string, records []diag.Record) {
	lines := strings.Split(source, "\n")
	for _, rec := range records {
		r.renderOne(w, file, lines, rec)
	}
}

func (r *Renderer) renderOne(w io.Writer, file string, lines []string, rec diag.Record) {
	label := rec.Severity.String()
	isError := rec.Severity == diag.Error
	isWarning := rec.Severity == diag.Warning
	fmt.Fprintf(w, "%s:%s: %s: %s\n",
		r.Style.bold(file), rec.Pos, r.Style.severity(label, isError, isWarning), rec.Message)

	lineIdx := rec.Pos.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return
	}
	srcLine := lines[lineIdx]
	fmt.Fprintf(w, "    %s\n", srcLine)

	col := rec.Pos.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(srcLine) {
		col = len(srcLine)
	}
	pad := make([]byte, col)
	for i, c := range []byte(srcLine)[:col] {
		if c == '\t' {
			pad[i] = '\t'
		} else {
			pad[i] = ' '
		}
	}
	fmt.Fprintf(w, "    %s%s\n", pad, r.Style.caret("^"))
}

// RenderSink is a convenience wrapper around Render for the common case
// of rendering everything a diag.DefaultSink accumulated.
func RenderSink(w io.Writer, sink *diag.DefaultSink) {
	r := NewRenderer(NewStyle(!sink.DisableColors))
	r.Render(w, sink.File, sink.Source, sink.Records())
}
