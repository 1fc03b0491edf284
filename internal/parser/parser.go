// Package parser implements a Pratt parser that turns a nosl token
// stream into a program tree, reporting diagnostics through a diag.Sink
// rather than failing outright: every error produces an ast.ErrorNode
// and parsing resumes at the next plausible synchronisation point.
package parser

import (
	"fmt"

	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/diag"
	"github.com/madmann91/nosl/internal/lexer"
	"github.com/madmann91/nosl/internal/token"
)

// Precedence levels, loosest first, matching the binary-operator table:
// multiplicative binds tightest, the assignment family loosest (and is
// right-associative); the ternary conditional sits between assignment
// and logical-or.
const (
	precNone int = iota
	precAssign
	precTernary
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

var binaryPrec = map[token.Type]int{
	token.ASSIGN: precAssign, token.ADD_ASSIGN: precAssign, token.SUB_ASSIGN: precAssign,
	token.MUL_ASSIGN: precAssign, token.QUO_ASSIGN: precAssign, token.REM_ASSIGN: precAssign,
	token.AND_ASSIGN: precAssign, token.OR_ASSIGN: precAssign, token.XOR_ASSIGN: precAssign,
	token.SHL_ASSIGN: precAssign, token.SHR_ASSIGN: precAssign,

	token.LOGIC_OR:  precLogicalOr,
	token.LOGIC_AND: precLogicalAnd,
	token.OR:        precBitOr,
	token.XOR:       precBitXor,
	token.AND:       precBitAnd,

	token.EQ: precEquality, token.NEQ: precEquality,

	token.LT: precRelational, token.LE: precRelational,
	token.GT: precRelational, token.GE: precRelational,

	token.SHL: precShift, token.SHR: precShift,

	token.ADD: precAdditive, token.SUB: precAdditive,

	token.MUL: precMultiplicative, token.QUO: precMultiplicative, token.REM: precMultiplicative,
}

// rightAssoc marks operators that bind right-to-left: the assignment family.
var rightAssoc = map[token.Type]bool{
	token.ASSIGN: true, token.ADD_ASSIGN: true, token.SUB_ASSIGN: true,
	token.MUL_ASSIGN: true, token.QUO_ASSIGN: true, token.REM_ASSIGN: true,
	token.AND_ASSIGN: true, token.OR_ASSIGN: true, token.XOR_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
}

// primitiveTokens marks the type keyword tokens that name a primitive.
var primitiveTokens = map[token.Type]bool{
	token.BOOL: true, token.INT_TYPE: true, token.FLOAT_TYPE: true,
	token.COLOR: true, token.POINT: true, token.VECTOR: true, token.NORMAL: true,
	token.MATRIX: true, token.STRING_TYPE: true, token.VOID: true,
}

var shaderKindTokens = map[token.Type]bool{
	token.SHADER: true, token.SURFACE: true, token.DISPLACEMENT: true, token.VOLUME: true,
}

// Parser consumes a token stream from one lexer and produces a Program,
// reporting every diagnostic through sink as it goes.
type Parser struct {
	c    *cursor
	sink diag.Sink
}

// New builds a Parser over lex, reporting diagnostics to sink.
func New(lex *lexer.Lexer, sink diag.Sink) *Parser {
	return &Parser{c: newCursor(lex), sink: sink}
}

func (p *Parser) cur() token.Token     { return p.c.Cur() }
func (p *Parser) peek(n int) token.Token { return p.c.Peek(n) }
func (p *Parser) advance() token.Token { return p.c.Advance() }
func (p *Parser) at(tt token.Type) bool { return p.cur().Type == tt }

// expect consumes the current token if it matches tt, else reports a
// syntactic diagnostic and leaves the cursor in place.
func (p *Parser) expect(tt token.Type) (token.Token, bool) {
	if p.at(tt) {
		return p.advance(), true
	}
	t := p.cur()
	p.sink.Error(t.Pos(), "expected %s, got %s", tt, t.Type)
	return t, false
}

// errorNode reports a diagnostic at the current token, consumes it (the
// minimal synchronisation step spec.md's recovery contract calls for),
// and returns an ast.ErrorNode standing in for whatever was expected.
func (p *Parser) errorNode(format string, args ...any) *ast.ErrorNode {
	t := p.cur()
	msg := fmt.Sprintf(format, args...)
	p.sink.Error(t.Pos(), "%s", msg)
	p.advance()
	return &ast.ErrorNode{Tok: t, Message: msg}
}

// Parse consumes the entire token stream and returns the resulting
// program; every top-level form is dispatched by its leading token, and
// any token that starts none of them yields an error node before
// parsing resumes.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		prog.Decls = append(prog.Decls, p.parseTopLevelDecl())
	}
	return prog
}

// parseTopLevelDecl dispatches on the leading token: struct, a
// shader-kind keyword, or a type-like token starting a
// variable-or-function declaration. Anything else becomes an error node.
func (p *Parser) parseTopLevelDecl() ast.Decl {
	attrs := p.parseAttributes()

	switch {
	case p.at(token.STRUCT):
		return p.parseStructDecl()
	case shaderKindTokens[p.cur().Type]:
		return p.parseShaderDecl(attrs)
	case primitiveTokens[p.cur().Type] || p.at(token.CLOSURE) || p.at(token.IDENT):
		return p.parseVarOrFuncDecl(attrs)
	default:
		return p.errorNode("unexpected token %s at top level", p.cur().Type)
	}
}

// parseAttributes parses zero or more leading
// __attribute__((attr, attr(args), …)) blocks.
func (p *Parser) parseAttributes() ast.Attributes {
	var attrs ast.Attributes
	for p.at(token.ATTRIBUTE) {
		p.advance()
		if _, ok := p.expect(token.LPAREN); !ok {
			return attrs
		}
		if _, ok := p.expect(token.LPAREN); !ok {
			return attrs
		}
		for {
			nameTok, ok := p.expect(token.IDENT)
			if !ok {
				break
			}
			attr := &ast.Attribute{Tok: nameTok, Name: nameTok.Literal}
			if p.at(token.LPAREN) {
				p.advance()
				if !p.at(token.RPAREN) {
					for {
						attr.Args = append(attr.Args, p.parseExpr(precTernary))
						if p.at(token.COMMA) {
							p.advance()
							continue
						}
						break
					}
				}
				p.expect(token.RPAREN)
			}
			attrs = append(attrs, attr)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RPAREN)
		p.expect(token.RPAREN)
	}
	return attrs
}
