package parser

import (
	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/token"
)

// parseStructDecl parses `struct Name { <type> <name>; … }`.
func (p *Parser) parseStructDecl() ast.Decl {
	t := p.advance() // 'struct'
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return &ast.ErrorNode{Tok: t, Message: "expected struct name"}
	}
	p.expect(token.LBRACE)

	decl := &ast.StructDecl{Tok: t, Name: nameTok.Literal}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		fieldType := p.parseTypeExpr()
		fieldNameTok, ok := p.expect(token.IDENT)
		if !ok {
			break
		}
		decl.Fields = append(decl.Fields, &ast.VarDecl{Tok: fieldNameTok, Name: fieldNameTok.Literal, Type: fieldType})
		p.expect(token.SEMICOLON)
	}
	p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)
	return decl
}

// parseShaderDecl parses `<shader-kind> name(params) [[ meta ]] block`.
func (p *Parser) parseShaderDecl(attrs ast.Attributes) ast.Decl {
	t := p.advance()
	kind := shaderTag[t.Type]
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return &ast.ErrorNode{Tok: t, Message: "expected shader name"}
	}
	decl := &ast.ShaderDecl{Tok: t, Kind: kind, Name: nameTok.Literal, Attrs: attrs}
	decl.Params = p.parseParams(true)
	if p.at(token.LMETA) {
		decl.Meta = p.parseMetaBlock()
	}
	decl.Body = p.parseBlock()
	return decl
}

// parseVarOrFuncDecl parses either a variable-group or a function
// declaration: both start with a type, then a name; a following '(' means
// function, otherwise variable group.
func (p *Parser) parseVarOrFuncDecl(attrs ast.Attributes) ast.Decl {
	typ := p.parseTypeExpr()
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return &ast.ErrorNode{Tok: p.cur(), Message: "expected a declaration name"}
	}

	if p.at(token.LPAREN) {
		return p.parseFunctionDecl(attrs, typ, nameTok)
	}
	return p.parseVarGroupDeclRest(attrs, typ, nameTok)
}

func (p *Parser) parseFunctionDecl(attrs ast.Attributes, retType ast.TypeExpr, nameTok token.Token) ast.Decl {
	decl := &ast.FunctionDecl{Tok: nameTok, RetType: retType, Name: nameTok.Literal, Attrs: attrs}
	decl.Params, decl.HasEllipsis = p.parseFuncParams()
	if p.at(token.SEMICOLON) {
		p.advance()
		return decl
	}
	decl.Body = p.parseBlock()
	return decl
}

// parseFuncParams parses `(` <param> (',' <param>)* [',' '...'] `)`.
func (p *Parser) parseFuncParams() ([]*ast.Param, bool) {
	p.expect(token.LPAREN)
	var params []*ast.Param
	hasEllipsis := false
	if !p.at(token.RPAREN) {
		for {
			if p.at(token.ELLIPSIS) {
				p.advance()
				hasEllipsis = true
				break
			}
			params = append(params, p.parseParam(false))
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(token.RPAREN)
	return params, hasEllipsis
}

// parseParams parses a shader's parameter list, where requireDefault
// forces every parameter to carry `= init`.
func (p *Parser) parseParams(requireDefault bool) []*ast.Param {
	p.expect(token.LPAREN)
	var params []*ast.Param
	if !p.at(token.RPAREN) {
		for {
			params = append(params, p.parseParam(requireDefault))
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseParam(requireDefault bool) *ast.Param {
	isOutput := false
	if p.at(token.OUTPUT) {
		p.advance()
		isOutput = true
	}
	typ := p.parseTypeExpr()
	nameTok, ok := p.expect(token.IDENT)
	param := &ast.Param{Tok: nameTok, Type: typ, IsOutput: isOutput}
	if ok {
		param.Name = nameTok.Literal
	}

	if p.at(token.LBRACKET) {
		lb := p.advance()
		if p.at(token.RBRACKET) {
			p.advance()
			param.Type = &ast.UnsizedArrayType{Tok: lb, Elem: param.Type}
		} else {
			dim := p.parseExpr(precTernary)
			p.expect(token.RBRACKET)
			param.Type = &ast.SizedArrayType{Tok: lb, Elem: param.Type, Dim: dim}
		}
	}

	if p.at(token.ASSIGN) {
		p.advance()
		param.Default = p.parseExpr(precNone + 1)
	} else if requireDefault {
		p.sink.Error(param.Pos(), "shader parameter %q requires a default initializer", param.Name)
	}

	if p.at(token.LMETA) {
		param.Meta = p.parseMetaBlock()
	}
	return param
}

// parseMetaBlock parses `[[ type name = value; … ]]`.
func (p *Parser) parseMetaBlock() []*ast.Metadatum {
	p.expect(token.LMETA)
	var meta []*ast.Metadatum
	for !p.at(token.RMETA) && !p.at(token.EOF) {
		typ := p.parseTypeExpr()
		nameTok, ok := p.expect(token.IDENT)
		if !ok {
			break
		}
		p.expect(token.ASSIGN)
		value := p.parseExpr(precNone + 1)
		meta = append(meta, &ast.Metadatum{Tok: nameTok, Type: typ, Name: nameTok.Literal, Value: value})
		if p.at(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RMETA)
	return meta
}

// parseVarGroupDecl parses a local variable-group declaration used as a
// statement: `<type> <var> (',' <var>)* ';'`.
func (p *Parser) parseVarGroupDecl(attrs ast.Attributes) ast.Stmt {
	typ := p.parseTypeExpr()
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return &ast.ErrorNode{Tok: p.cur(), Message: "expected a variable name"}
	}
	return p.parseVarGroupDeclRest(attrs, typ, nameTok)
}

func (p *Parser) parseVarGroupDeclRest(attrs ast.Attributes, typ ast.TypeExpr, firstName token.Token) *ast.VarGroupDecl {
	group := &ast.VarGroupDecl{Tok: firstName, Type: typ, Attrs: attrs}
	group.Vars = append(group.Vars, p.parseVarTail(typ, firstName))
	for p.at(token.COMMA) {
		p.advance()
		nameTok, ok := p.expect(token.IDENT)
		if !ok {
			break
		}
		group.Vars = append(group.Vars, p.parseVarTail(typ, nameTok))
	}
	p.expect(token.SEMICOLON)
	return group
}

// parseVarTail parses the optional `[dim]` and `= init` following one
// variable's name within a group.
func (p *Parser) parseVarTail(groupType ast.TypeExpr, nameTok token.Token) *ast.VarDecl {
	v := &ast.VarDecl{Tok: nameTok, Name: nameTok.Literal, Type: groupType}
	if p.at(token.LBRACKET) {
		lb := p.advance()
		if p.at(token.RBRACKET) {
			p.advance()
			v.Type = &ast.UnsizedArrayType{Tok: lb, Elem: groupType}
		} else {
			dim := p.parseExpr(precTernary)
			p.expect(token.RBRACKET)
			v.Type = &ast.SizedArrayType{Tok: lb, Elem: groupType, Dim: dim}
		}
	}
	if p.at(token.ASSIGN) {
		p.advance()
		v.Init = p.parseExpr(precNone + 1)
	}
	return v
}
