package parser

import (
	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/token"
)

var unaryPrefixOps = map[token.Type]string{
	token.NOT: "!", token.SUB: "-", token.INC: "++", token.DEC: "--",
}

// parseAssignExpr parses a full expression down to, and including, the
// assignment family — the level every statement-position expression is
// parsed at.
func (p *Parser) parseAssignExpr() ast.Expr {
	return p.parseExpr(precNone + 1)
}

// parseExpr is the Pratt entry point: parse a prefix expression, then
// keep folding in infix/postfix operators whose precedence is at least
// minPrec.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parsePrefix()
	return p.parseInfixChain(left, minPrec)
}

func (p *Parser) parseInfixChain(left ast.Expr, minPrec int) ast.Expr {
	for {
		t := p.cur()

		if t.Type == token.QUESTION && precTernary >= minPrec {
			left = p.parseTernary(left)
			continue
		}

		prec, ok := binaryPrec[t.Type]
		if !ok || prec < minPrec {
			return left
		}

		opTok := p.advance()
		nextMin := prec + 1
		if rightAssoc[opTok.Type] {
			nextMin = prec
		}
		right := p.parseExpr(nextMin)
		left = &ast.BinaryExpr{Tok: opTok, Left: left, Operator: opTok.Literal, Right: right}
	}
}

func (p *Parser) parseTernary(cond ast.Expr) ast.Expr {
	qTok := p.advance() // '?'
	then := p.parseExpr(precTernary)
	p.expect(token.COLON)
	elseExpr := p.parseExpr(precTernary)
	return &ast.TernaryExpr{Tok: qTok, Cond: cond, Then: then, Else: elseExpr}
}

// parsePrefix parses a unary-prefix-or-primary expression, then folds in
// any postfix operators (call, index, projection, postfix ++/--).
func (p *Parser) parsePrefix() ast.Expr {
	if op, ok := unaryPrefixOps[p.cur().Type]; ok {
		t := p.advance()
		operand := p.parsePrefix()
		return &ast.UnaryExpr{Tok: t, Operator: op, Operand: operand}
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.cur().Type {
		case token.DOT:
			dot := p.advance()
			nameTok, ok := p.expect(token.IDENT)
			if !ok {
				return &ast.ErrorNode{Tok: dot, Message: "expected field name after '.'"}
			}
			expr = &ast.ProjExpr{Tok: dot, Base: expr, Field: nameTok.Literal}
		case token.LBRACKET:
			lb := p.advance()
			idx := p.parseExpr(precNone + 1)
			p.expect(token.RBRACKET)
			expr = &ast.IndexExpr{Tok: lb, Base: expr, Index: idx}
		case token.LPAREN:
			lp := p.advance()
			var args []ast.Expr
			if !p.at(token.RPAREN) {
				for {
					args = append(args, p.parseExpr(precNone+1))
					if p.at(token.COMMA) {
						p.advance()
						continue
					}
					break
				}
			}
			p.expect(token.RPAREN)
			expr = &ast.CallExpr{Tok: lp, Callee: expr, Args: args}
		case token.INC, token.DEC:
			t := p.advance()
			expr = &ast.UnaryExpr{Tok: t, Operator: t.Literal, Operand: expr, Postfix: true}
		default:
			return expr
		}
	}
}

// parsePrimary parses literals, identifiers, constructor calls
// (primitive-type-name followed by '('), and parenthesised forms
// (grouped expression, comma-compound, or cast).
func (p *Parser) parsePrimary() ast.Expr {
	t := p.cur()
	switch t.Type {
	case token.INT:
		p.advance()
		return &ast.IntLiteral{Tok: t, Value: t.IntValue}
	case token.FLOAT:
		p.advance()
		return &ast.FloatLiteral{Tok: t, Value: t.FloatValue}
	case token.STRING:
		p.advance()
		val := t.Literal
		for p.at(token.STRING) { // adjacent string literals concatenate
			val += p.advance().Literal
		}
		return &ast.StringLiteral{Tok: t, Value: val}
	case token.TRUE:
		p.advance()
		return &ast.BoolLiteral{Tok: t, Value: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolLiteral{Tok: t, Value: false}
	case token.LBRACE:
		return p.parseBraceInit()
	case token.LPAREN:
		return p.parseParenOrCast()
	case token.IDENT:
		p.advance()
		return &ast.Ident{Tok: t, Name: t.Literal}
	case token.CLOSURE, token.COLOR, token.POINT, token.VECTOR, token.NORMAL,
		token.MATRIX, token.BOOL, token.INT_TYPE, token.FLOAT_TYPE, token.STRING_TYPE:
		// A primitive/closure type name followed by '(' is a constructor call.
		target := p.parseTypeExpr()
		if !p.at(token.LPAREN) {
			return p.errorNode("expected '(' to begin constructor call")
		}
		p.advance()
		var args []ast.Expr
		if !p.at(token.RPAREN) {
			for {
				args = append(args, p.parseExpr(precNone+1))
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RPAREN)
		return &ast.ConstructExpr{Tok: t, Target: target, Args: args}
	default:
		return p.errorNode("unexpected token %s in expression", t.Type)
	}
}

func (p *Parser) parseBraceInit() ast.Expr {
	lb := p.advance()
	var elems []ast.Expr
	if !p.at(token.RBRACE) {
		for {
			elems = append(elems, p.parseExpr(precNone+1))
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(token.RBRACE)
	return &ast.BraceInit{Tok: lb, Elems: elems}
}

// parseParenOrCast disambiguates `(type)` casts from parenthesised
// expressions by speculatively parsing a type and checking for the
// closing paren; any mismatch rewinds and falls back to a normal
// parenthesised (possibly comma-compound) expression.
func (p *Parser) parseParenOrCast() ast.Expr {
	lp := p.cur()
	if primitiveTokens[p.peek(1).Type] && p.peek(2).Type == token.RPAREN {
		mark := p.c.Mark()
		p.advance()
		target := p.parseTypeExpr()
		if p.at(token.RPAREN) {
			p.advance()
			operand := p.parsePrefix()
			return &ast.CastExpr{Tok: lp, Target: target, Operand: operand}
		}
		p.c.Reset(mark)
	}

	p.advance() // '('
	first := p.parseExpr(precNone + 1)
	if p.at(token.COMMA) {
		elems := []ast.Expr{first}
		for p.at(token.COMMA) {
			p.advance()
			elems = append(elems, p.parseExpr(precNone+1))
		}
		p.expect(token.RPAREN)
		return &ast.CompoundExpr{Tok: lp, Elems: elems}
	}
	p.expect(token.RPAREN)
	return &ast.ParenExpr{Tok: lp, Inner: first}
}
