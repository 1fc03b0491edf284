// Package diag implements the diagnostic sink the checker and parser
// report through: a position-tagged, severity-tagged record type, a
// Sink interface the core depends on (so it never formats a message
// itself), and a default Sink that accumulates records, honoring
// limit/promotion flags and carrying the source and color setting that
// pkg/printer uses to render caret-pointer excerpts.
package diag

import (
	"fmt"

	"github.com/madmann91/nosl/internal/token"
)

// Severity classifies a diagnostic record.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "diagnostic"
	}
}

// Record is one emitted diagnostic: where, how severe, and what it says.
type Record struct {
	Severity Severity
	Pos      token.Position
	Message  string
}

// Sink is the abstract diagnostic surface the core depends on. It
// never knows about files, terminals, or color — only where a message
// belongs and how many of each kind have been seen. A warning promoted
// to error by WarnsAsErrors counts toward ErrorCount, not WarnCount.
type Sink interface {
	Error(pos token.Position, format string, args ...any)
	Warn(pos token.Position, format string, args ...any)
	Note(pos token.Position, format string, args ...any)

	ErrorCount() int
	WarnCount() int
}

// Limits bounds how many diagnostics of each kind a Sink accepts
// before silently dropping further ones of that kind. Per the core's
// contract, reaching a limit never aborts the walk — it only stops
// emission.
type Limits struct {
	MaxErrors int // clamped to at least 2 by NewDefault
	MaxWarns  int // 0 means unlimited
}

// DefaultSink accumulates records in memory and renders them through a
// Renderer (normally pkg/printer) on demand. It is the concrete Sink
// every entry point (cmd/noslc, tests) wires up.
type DefaultSink struct {
	Source string // full source text, for caret-pointer excerpts
	File   string

	DisableColors bool
	WarnsAsErrors bool
	Limits        Limits

	errorCount int
	warnCount  int
	records    []Record
}

// NewDefault builds a DefaultSink over the given source text and file
// name. limits.MaxErrors is clamped to at least 2, matching the
// command-line contract for --max-errors.
func NewDefault(file, source string, disableColors, warnsAsErrors bool, limits Limits) *DefaultSink {
	if limits.MaxErrors < 2 {
		limits.MaxErrors = 2
	}
	return &DefaultSink{
		Source:        source,
		File:          file,
		DisableColors: disableColors,
		WarnsAsErrors: warnsAsErrors,
		Limits:        limits,
	}
}

func (s *DefaultSink) Error(pos token.Position, format string, args ...any) {
	if s.Limits.MaxErrors > 0 && s.errorCount >= s.Limits.MaxErrors {
		return
	}
	s.errorCount++
	s.records = append(s.records, Record{Severity: Error, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (s *DefaultSink) Warn(pos token.Position, format string, args ...any) {
	if s.WarnsAsErrors {
		s.Error(pos, format, args...)
		return
	}
	if s.Limits.MaxWarns > 0 && s.warnCount >= s.Limits.MaxWarns {
		return
	}
	s.warnCount++
	s.records = append(s.records, Record{Severity: Warning, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (s *DefaultSink) Note(pos token.Position, format string, args ...any) {
	// Notes attach to the error or warning they follow and are never
	// limited or promoted on their own.
	s.records = append(s.records, Record{Severity: Note, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (s *DefaultSink) ErrorCount() int { return s.errorCount }
func (s *DefaultSink) WarnCount() int  { return s.warnCount }

// Records returns every accumulated diagnostic in emission order.
func (s *DefaultSink) Records() []Record { return s.records }

var _ Sink = (*DefaultSink)(nil)
