package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madmann91/nosl/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New("test.nosl", src)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks := lexAll(t, "shader surface foo_bar2 color")
	require.Len(t, toks, 5)
	assert.Equal(t, token.SHADER, toks[0].Type)
	assert.Equal(t, token.SURFACE, toks[1].Type)
	assert.Equal(t, token.IDENT, toks[2].Type)
	assert.Equal(t, "foo_bar2", toks[2].Literal)
	assert.Equal(t, token.COLOR, toks[3].Type)
	assert.Equal(t, token.EOF, toks[4].Type)
}

func TestLexerLogicalAliases(t *testing.T) {
	toks := lexAll(t, "a and b or not c")
	got := typesOf(toks)
	want := []token.Type{token.IDENT, token.LOGIC_AND, token.IDENT, token.LOGIC_OR, token.NOT, token.IDENT, token.EOF}
	assert.Equal(t, want, got)
}

func TestLexerNewlinesAreTokens(t *testing.T) {
	toks := lexAll(t, "a\nb\n")
	got := typesOf(toks)
	want := []token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.NEWLINE, token.EOF}
	assert.Equal(t, want, got)
}

func TestLexerIntegerLiterals(t *testing.T) {
	toks := lexAll(t, "42 0x1F")
	require.Len(t, toks, 3)
	assert.Equal(t, token.INT, toks[0].Type)
	assert.EqualValues(t, 42, toks[0].IntValue)
	assert.Equal(t, token.INT, toks[1].Type)
	assert.EqualValues(t, 0x1F, toks[1].IntValue)
}

func TestLexerFloatLiterals(t *testing.T) {
	toks := lexAll(t, "1.5 1e10 .25 0x1p3")
	require.Len(t, toks, 5)
	for _, tt := range toks[:4] {
		assert.Equal(t, token.FLOAT, tt.Type)
	}
	assert.InDelta(t, 1.5, toks[0].FloatValue, 1e-9)
	assert.InDelta(t, 1e10, toks[1].FloatValue, 1)
	assert.InDelta(t, 0.25, toks[2].FloatValue, 1e-9)
}

func TestLexerStringLiteral(t *testing.T) {
	toks := lexAll(t, `"hello world"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := New("test.nosl", `"hello`)
	tok := l.Next()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	require.Len(t, l.Errors(), 1)
	assert.Equal(t, token.ErrUnterminatedString, l.Errors()[0].Kind)
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	l := New("test.nosl", "/* never closes")
	tok := l.Next()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	require.Len(t, l.Errors(), 1)
	assert.Equal(t, token.ErrUnterminatedComment, l.Errors()[0].Kind)
}

func TestLexerLineComment(t *testing.T) {
	toks := lexAll(t, "a // comment\nb")
	got := typesOf(toks)
	want := []token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.EOF}
	assert.Equal(t, want, got)
}

func TestLexerBlockComment(t *testing.T) {
	toks := lexAll(t, "a /* c1 \n c2 */ b")
	got := typesOf(toks)
	want := []token.Type{token.IDENT, token.IDENT, token.EOF}
	assert.Equal(t, want, got)
}

func TestLexerOperators(t *testing.T) {
	toks := lexAll(t, "+ - * / % == != <= >= << >> += ... [[ ]]")
	got := typesOf(toks)
	want := []token.Type{
		token.ADD, token.SUB, token.MUL, token.QUO, token.REM,
		token.EQ, token.NEQ, token.LE, token.GE, token.SHL, token.SHR,
		token.ADD_ASSIGN, token.ELLIPSIS, token.LMETA, token.RMETA, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLexerBOMStripped(t *testing.T) {
	src := "\xEF\xBB\xBFshader"
	toks := lexAll(t, src)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.SHADER, toks[0].Type)
	assert.Equal(t, 0, toks[0].Pos().Offset)
}

func TestLexerUnicodeIdentifierBytesRejected(t *testing.T) {
	l := New("test.nosl", "a \xFF b")
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			break
		}
	}
	require.NotEmpty(t, l.Errors())
}

func TestLexerPositionTracksLinesAndColumns(t *testing.T) {
	toks := lexAll(t, "ab\ncd")
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Pos().Line)
	assert.Equal(t, 1, toks[0].Pos().Column)
	assert.Equal(t, 2, toks[2].Pos().Line)
	assert.Equal(t, 1, toks[2].Pos().Column)
}

func TestLexerIllegalByte(t *testing.T) {
	toks := lexAll(t, "a ` b")
	require.Len(t, toks, 4)
	assert.Equal(t, token.ILLEGAL, toks[1].Type)
}
