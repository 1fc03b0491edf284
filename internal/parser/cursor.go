package parser

import (
	"github.com/madmann91/nosl/internal/lexer"
	"github.com/madmann91/nosl/internal/token"
)

// cursor buffers tokens pulled from a lexer so the parser can look
// arbitrarily far ahead (the cast-vs-parenthesised-expression
// disambiguation needs it) and backtrack via Mark/Reset without
// re-lexing. Newline tokens are filtered out here, at the
// preprocessor/lexer boundary, per the parser's abstract token feed.
type cursor struct {
	lex    *lexer.Lexer
	tokens []token.Token
	pos    int
}

func newCursor(lex *lexer.Lexer) *cursor {
	c := &cursor{lex: lex}
	c.fill(1)
	return c
}

// fill ensures at least n tokens are buffered from pos onward.
func (c *cursor) fill(n int) {
	for len(c.tokens)-c.pos < n {
		t := c.lex.Next()
		if t.Type == token.NEWLINE {
			continue
		}
		c.tokens = append(c.tokens, t)
		if t.Type == token.EOF {
			break
		}
	}
}

// Cur returns the current token.
func (c *cursor) Cur() token.Token {
	c.fill(1)
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos]
	}
	return c.tokens[len(c.tokens)-1]
}

// Peek returns the token n positions ahead of the current one; Peek(0) == Cur().
func (c *cursor) Peek(n int) token.Token {
	c.fill(n + 1)
	idx := c.pos + n
	if idx < len(c.tokens) {
		return c.tokens[idx]
	}
	return c.tokens[len(c.tokens)-1]
}

// Advance consumes the current token and returns it.
func (c *cursor) Advance() token.Token {
	t := c.Cur()
	if t.Type != token.EOF {
		c.pos++
	}
	return t
}

// Mark returns a position that Reset can later return to.
func (c *cursor) Mark() int { return c.pos }

// Reset rewinds the cursor to a previously marked position.
func (c *cursor) Reset(mark int) { c.pos = mark }
