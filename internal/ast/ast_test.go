package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

func ident(name string) *Ident {
	return &Ident{Tok: token.Token{Type: token.IDENT, Literal: name}, Name: name}
}

func TestProgramStringJoinsDecls(t *testing.T) {
	fn := &FunctionDecl{
		Tok:     token.Token{Literal: "int"},
		RetType: &PrimitiveType{Prim: typesys.Int},
		Name:    "answer",
		Body:    &BlockStmt{Stmts: []Stmt{&ReturnStmt{Value: &IntLiteral{Value: 42, Tok: token.Token{Literal: "42"}}}}},
	}
	prog := &Program{Decls: []Decl{fn}}
	assert.Contains(t, prog.String(), "answer")
	assert.Equal(t, "int", prog.TokenLiteral())
}

func TestAttributesHasAndFind(t *testing.T) {
	attrs := Attributes{
		{Name: "builtin"},
		{Name: "constructor"},
	}
	assert.True(t, attrs.Has("builtin"))
	assert.True(t, attrs.Has("constructor"))
	assert.False(t, attrs.Has("nope"))
	assert.NotNil(t, attrs.Find("builtin"))
	assert.Nil(t, attrs.Find("missing"))
}

func TestAttributesOrderIndependent(t *testing.T) {
	a := Attributes{{Name: "constructor"}, {Name: "builtin"}}
	b := Attributes{{Name: "builtin"}, {Name: "constructor"}}
	assert.True(t, a.Has("builtin") && a.Has("constructor"))
	assert.True(t, b.Has("builtin") && b.Has("constructor"))
}

func TestFunctionDeclBuiltinAndConstructorAttr(t *testing.T) {
	f := &FunctionDecl{Attrs: Attributes{{Name: "builtin"}}}
	assert.True(t, f.IsBuiltin())
	assert.False(t, f.IsConstructorAttr())
}

func TestBinaryExprIsAssign(t *testing.T) {
	b := &BinaryExpr{Operator: "+="}
	assert.True(t, b.IsAssign())
	b2 := &BinaryExpr{Operator: "+"}
	assert.False(t, b2.IsAssign())
}

func TestErrorNodeSatisfiesAllThreeInterfaces(t *testing.T) {
	var _ Expr = (*ErrorNode)(nil)
	var _ Stmt = (*ErrorNode)(nil)
	var _ Decl = (*ErrorNode)(nil)

	e := &ErrorNode{Tok: token.Token{Literal: "?"}}
	assert.Equal(t, "<error>", e.String())
	assert.Nil(t, e.GetType())
}

func TestIdentGetSetType(t *testing.T) {
	tbl := typesys.NewTable()
	id := ident("x")
	id.SetType(tbl.GetPrim(typesys.Int))
	assert.Same(t, tbl.GetPrim(typesys.Int), id.GetType())
}

func TestVarGroupDeclIsBothDeclAndStmt(t *testing.T) {
	var _ Decl = (*VarGroupDecl)(nil)
	var _ Stmt = (*VarGroupDecl)(nil)
}
