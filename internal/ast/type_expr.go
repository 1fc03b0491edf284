package ast

import (
	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

// PrimitiveType is a primitive type keyword as written in source (`int`,
// `color`, …), optionally wrapped in `closure`.
type PrimitiveType struct {
	Tok       token.Token
	Prim      typesys.PrimTag
	IsClosure bool
	Resolved  *typesys.Type
}

func (p *PrimitiveType) typeExprNode()              {}
func (p *PrimitiveType) TokenLiteral() string       { return p.Tok.Literal }
func (p *PrimitiveType) Pos() token.Position        { return p.Tok.Pos() }
func (p *PrimitiveType) String() string {
	if p.IsClosure {
		return "closure " + p.Prim.String()
	}
	return p.Prim.String()
}
func (p *PrimitiveType) GetResolved() *typesys.Type  { return p.Resolved }
func (p *PrimitiveType) SetResolved(t *typesys.Type) { p.Resolved = t }

// ShaderKindType is a shader-kind keyword used as a type (`shader`,
// `surface`, `displacement`, `volume`).
type ShaderKindType struct {
	Tok      token.Token
	Kind     typesys.ShaderTag
	Resolved *typesys.Type
}

func (s *ShaderKindType) typeExprNode()              {}
func (s *ShaderKindType) TokenLiteral() string       { return s.Tok.Literal }
func (s *ShaderKindType) Pos() token.Position        { return s.Tok.Pos() }
func (s *ShaderKindType) String() string             { return s.Kind.String() }
func (s *ShaderKindType) GetResolved() *typesys.Type  { return s.Resolved }
func (s *ShaderKindType) SetResolved(t *typesys.Type) { s.Resolved = t }

// NamedType is a type written as a bare identifier — resolves to a struct
// declaration during checking.
type NamedType struct {
	Tok      token.Token
	Name     string
	Resolved *typesys.Type
}

func (n *NamedType) typeExprNode()              {}
func (n *NamedType) TokenLiteral() string       { return n.Tok.Literal }
func (n *NamedType) Pos() token.Position        { return n.Tok.Pos() }
func (n *NamedType) String() string             { return n.Name }
func (n *NamedType) GetResolved() *typesys.Type  { return n.Resolved }
func (n *NamedType) SetResolved(t *typesys.Type) { n.Resolved = t }

// UnsizedArrayType marks a trailing `[]` on a parameter type, meaning an
// array whose length is not fixed. Legal only in parameter position.
type UnsizedArrayType struct {
	Tok      token.Token
	Elem     TypeExpr
	Resolved *typesys.Type
}

func (u *UnsizedArrayType) typeExprNode()              {}
func (u *UnsizedArrayType) TokenLiteral() string       { return u.Tok.Literal }
func (u *UnsizedArrayType) Pos() token.Position        { return u.Elem.Pos() }
func (u *UnsizedArrayType) String() string             { return u.Elem.String() + "[]" }
func (u *UnsizedArrayType) GetResolved() *typesys.Type  { return u.Resolved }
func (u *UnsizedArrayType) SetResolved(t *typesys.Type) { u.Resolved = t }

// SizedArrayType marks a fixed-length array dimension `[dim]` on a
// variable or parameter type. Dim is checked as a statically-evaluated
// positive int expression by the checker.
type SizedArrayType struct {
	Tok      token.Token
	Elem     TypeExpr
	Dim      Expr
	Resolved *typesys.Type
}

func (s *SizedArrayType) typeExprNode()              {}
func (s *SizedArrayType) TokenLiteral() string       { return s.Tok.Literal }
func (s *SizedArrayType) Pos() token.Position        { return s.Elem.Pos() }
func (s *SizedArrayType) String() string             { return s.Elem.String() + "[" + s.Dim.String() + "]" }
func (s *SizedArrayType) GetResolved() *typesys.Type  { return s.Resolved }
func (s *SizedArrayType) SetResolved(t *typesys.Type) { s.Resolved = t }
