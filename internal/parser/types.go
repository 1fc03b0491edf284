package parser

import (
	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

var primitiveTag = map[token.Type]typesys.PrimTag{
	token.BOOL: typesys.Bool, token.INT_TYPE: typesys.Int, token.FLOAT_TYPE: typesys.Float,
	token.COLOR: typesys.Color, token.POINT: typesys.Point, token.VECTOR: typesys.Vector,
	token.NORMAL: typesys.Normal, token.MATRIX: typesys.Matrix, token.STRING_TYPE: typesys.String,
	token.VOID: typesys.Void,
}

var shaderTag = map[token.Type]typesys.ShaderTag{
	token.SHADER: typesys.Shader_, token.SURFACE: typesys.Surface,
	token.DISPLACEMENT: typesys.Displacement, token.VOLUME: typesys.Volume,
}

// parseTypeExpr parses a base type (primitive, closure, shader-kind, or
// named/struct reference) followed by any number of array-dimension
// suffixes, e.g. "float[4][]".
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	var base ast.TypeExpr
	t := p.cur()

	switch {
	case p.at(token.CLOSURE):
		p.advance()
		if _, ok := p.expect(token.COLOR); !ok {
			return &ast.ErrorNode{Tok: t, Message: "expected 'color' after 'closure'"}
		}
		base = &ast.PrimitiveType{Tok: t, Prim: typesys.Color, IsClosure: true}
	case primitiveTokens[t.Type]:
		p.advance()
		base = &ast.PrimitiveType{Tok: t, Prim: primitiveTag[t.Type]}
	case shaderKindTokens[t.Type]:
		p.advance()
		base = &ast.ShaderKindType{Tok: t, Kind: shaderTag[t.Type]}
	case p.at(token.IDENT):
		p.advance()
		base = &ast.NamedType{Tok: t, Name: t.Literal}
	default:
		return p.errorNode("expected a type, got %s", t.Type)
	}

	for p.at(token.LBRACKET) {
		lb := p.advance()
		if p.at(token.RBRACKET) {
			p.advance()
			base = &ast.UnsizedArrayType{Tok: lb, Elem: base}
			continue
		}
		dim := p.parseExpr(precTernary)
		p.expect(token.RBRACKET)
		base = &ast.SizedArrayType{Tok: lb, Elem: base, Dim: dim}
	}
	return base
}
