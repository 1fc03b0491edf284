package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madmann91/nosl/internal/token"
)

func pos(line int) token.Position { return token.Position{Line: line, Column: 1} }

func TestDefaultSinkCountsErrorsAndWarnings(t *testing.T) {
	s := NewDefault("f.nosl", "", false, false, Limits{})
	s.Error(pos(1), "bad thing")
	s.Warn(pos(2), "maybe bad")
	assert.Equal(t, 1, s.ErrorCount())
	assert.Equal(t, 1, s.WarnCount())
	require.Len(t, s.Records(), 2)
	assert.Equal(t, Error, s.Records()[0].Severity)
	assert.Equal(t, Warning, s.Records()[1].Severity)
}

func TestWarnsAsErrorsPromotesAndCountsAsError(t *testing.T) {
	s := NewDefault("f.nosl", "", false, true, Limits{})
	s.Warn(pos(1), "shadowed")
	assert.Equal(t, 1, s.ErrorCount())
	assert.Equal(t, 0, s.WarnCount())
	require.Len(t, s.Records(), 1)
	assert.Equal(t, Error, s.Records()[0].Severity)
}

func TestMaxErrorsClampedToAtLeastTwo(t *testing.T) {
	s := NewDefault("f.nosl", "", false, false, Limits{MaxErrors: 1})
	assert.Equal(t, 2, s.Limits.MaxErrors)
}

func TestMaxErrorsDropsBeyondLimit(t *testing.T) {
	s := NewDefault("f.nosl", "", false, false, Limits{MaxErrors: 2})
	s.Error(pos(1), "e1")
	s.Error(pos(2), "e2")
	s.Error(pos(3), "e3")
	assert.Equal(t, 2, s.ErrorCount())
	require.Len(t, s.Records(), 2)
}

func TestMaxWarnsDropsBeyondLimit(t *testing.T) {
	s := NewDefault("f.nosl", "", false, false, Limits{MaxWarns: 1})
	s.Warn(pos(1), "w1")
	s.Warn(pos(2), "w2")
	assert.Equal(t, 1, s.WarnCount())
}

func TestNoteIsNeverLimitedOrPromoted(t *testing.T) {
	s := NewDefault("f.nosl", "", false, true, Limits{})
	s.Note(pos(1), "previously declared here")
	assert.Equal(t, 0, s.ErrorCount())
	assert.Equal(t, 0, s.WarnCount())
	require.Len(t, s.Records(), 1)
	assert.Equal(t, Note, s.Records()[0].Severity)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "note", Note.String())
}
