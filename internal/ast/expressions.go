package ast

import (
	"strings"

	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

// BinaryExpr is a binary operation. Operator is the raw token spelling
// (`+`, `==`, `&&`, `=` and `+=` etc. for assignment, …); the checker dispatches most
// operators via overload resolution against `__operator__<op>__`, except
// `&&`/`||` (both sides coerced to bool) and assignment (handled
// directly).
type BinaryExpr struct {
	Tok      token.Token
	Left     Expr
	Operator string
	Right    Expr
	Resolved *typesys.Type
}

func (b *BinaryExpr) exprNode()               {}
func (b *BinaryExpr) TokenLiteral() string    { return b.Tok.Literal }
func (b *BinaryExpr) Pos() token.Position     { return b.Tok.Pos() }
func (b *BinaryExpr) String() string          { return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")" }
func (b *BinaryExpr) GetType() *typesys.Type  { return b.Resolved }
func (b *BinaryExpr) SetType(t *typesys.Type) { b.Resolved = t }

// IsAssign reports whether this is an assignment-family operator.
func (b *BinaryExpr) IsAssign() bool {
	switch b.Operator {
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=":
		return true
	default:
		return false
	}
}

// UnaryExpr is a prefix or postfix unary operation (`!x`, `-x`, `++x`,
// `x++`, …).
type UnaryExpr struct {
	Tok      token.Token
	Operator string
	Operand  Expr
	Postfix  bool
	Resolved *typesys.Type
}

func (u *UnaryExpr) exprNode()            {}
func (u *UnaryExpr) TokenLiteral() string { return u.Tok.Literal }
func (u *UnaryExpr) Pos() token.Position  { return u.Tok.Pos() }
func (u *UnaryExpr) String() string {
	if u.Postfix {
		return "(" + u.Operand.String() + u.Operator + ")"
	}
	return "(" + u.Operator + u.Operand.String() + ")"
}
func (u *UnaryExpr) GetType() *typesys.Type  { return u.Resolved }
func (u *UnaryExpr) SetType(t *typesys.Type) { u.Resolved = t }

// CallExpr is a function call `callee(args…)`.
type CallExpr struct {
	Tok      token.Token
	Callee   Expr
	Args     []Expr
	Resolved *typesys.Type
}

func (c *CallExpr) exprNode()            {}
func (c *CallExpr) TokenLiteral() string { return c.Tok.Literal }
func (c *CallExpr) Pos() token.Position  { return c.Tok.Pos() }
func (c *CallExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (c *CallExpr) GetType() *typesys.Type  { return c.Resolved }
func (c *CallExpr) SetType(t *typesys.Type) { c.Resolved = t }

// ConstructExpr is a primitive constructor call, e.g. `color(1, 0, 0)` or
// `point("world", x, y, z)`. Resolved against the built-in constructor
// list for Target, never the environment.
type ConstructExpr struct {
	Tok      token.Token
	Target   TypeExpr
	Args     []Expr
	Resolved *typesys.Type
}

func (c *ConstructExpr) exprNode()            {}
func (c *ConstructExpr) TokenLiteral() string { return c.Tok.Literal }
func (c *ConstructExpr) Pos() token.Position  { return c.Tok.Pos() }
func (c *ConstructExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Target.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (c *ConstructExpr) GetType() *typesys.Type  { return c.Resolved }
func (c *ConstructExpr) SetType(t *typesys.Type) { c.Resolved = t }

// ParenExpr is a single parenthesised expression, `(expr)`. A comma
// sequence inside parens instead produces a CompoundExpr.
type ParenExpr struct {
	Tok      token.Token
	Inner    Expr
	Resolved *typesys.Type
}

func (p *ParenExpr) exprNode()            {}
func (p *ParenExpr) TokenLiteral() string { return p.Tok.Literal }
func (p *ParenExpr) Pos() token.Position  { return p.Tok.Pos() }
func (p *ParenExpr) String() string       { return "(" + p.Inner.String() + ")" }
func (p *ParenExpr) GetType() *typesys.Type  { return p.Resolved }
func (p *ParenExpr) SetType(t *typesys.Type) { p.Resolved = t }

// CompoundExpr is a parenthesised comma sequence `(a, b, c)`; its value
// is the last element, evaluated left to right (C comma-operator
// semantics).
type CompoundExpr struct {
	Tok      token.Token
	Elems    []Expr
	Resolved *typesys.Type
}

func (c *CompoundExpr) exprNode()            {}
func (c *CompoundExpr) TokenLiteral() string { return c.Tok.Literal }
func (c *CompoundExpr) Pos() token.Position  { return c.Tok.Pos() }
func (c *CompoundExpr) String() string {
	parts := make([]string, len(c.Elems))
	for i, e := range c.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (c *CompoundExpr) GetType() *typesys.Type  { return c.Resolved }
func (c *CompoundExpr) SetType(t *typesys.Type) { c.Resolved = t }

// BraceInit is a brace-initialiser `{ a, b, c }`. It is first inferred
// as a compound(elem_types) type, then coerced to the context's expected
// struct or array type.
type BraceInit struct {
	Tok      token.Token
	Elems    []Expr
	Resolved *typesys.Type
}

func (b *BraceInit) exprNode()            {}
func (b *BraceInit) TokenLiteral() string { return b.Tok.Literal }
func (b *BraceInit) Pos() token.Position  { return b.Tok.Pos() }
func (b *BraceInit) String() string {
	parts := make([]string, len(b.Elems))
	for i, e := range b.Elems {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (b *BraceInit) GetType() *typesys.Type  { return b.Resolved }
func (b *BraceInit) SetType(t *typesys.Type) { b.Resolved = t }

// TernaryExpr is `cond ? then : else`. The else-branch is checked with
// the then-branch's resolved type as its expected type; the result type
// is the then-branch's type.
type TernaryExpr struct {
	Tok      token.Token
	Cond     Expr
	Then     Expr
	Else     Expr
	Resolved *typesys.Type
}

func (t *TernaryExpr) exprNode()            {}
func (t *TernaryExpr) TokenLiteral() string { return t.Tok.Literal }
func (t *TernaryExpr) Pos() token.Position  { return t.Tok.Pos() }
func (t *TernaryExpr) String() string {
	return "(" + t.Cond.String() + " ? " + t.Then.String() + " : " + t.Else.String() + ")"
}
func (t *TernaryExpr) GetType() *typesys.Type  { return t.Resolved }
func (t *TernaryExpr) SetType(ty *typesys.Type) { t.Resolved = ty }

// IndexExpr is `base[index]`. On an array this yields the element type;
// on a triple, float; on a matrix, single-indexing is rejected and
// double-indexing `m[i][j]` (two nested IndexExpr) yields float.
type IndexExpr struct {
	Tok      token.Token
	Base     Expr
	Index    Expr
	Resolved *typesys.Type
}

func (ix *IndexExpr) exprNode()            {}
func (ix *IndexExpr) TokenLiteral() string { return ix.Tok.Literal }
func (ix *IndexExpr) Pos() token.Position  { return ix.Tok.Pos() }
func (ix *IndexExpr) String() string       { return ix.Base.String() + "[" + ix.Index.String() + "]" }
func (ix *IndexExpr) GetType() *typesys.Type  { return ix.Resolved }
func (ix *IndexExpr) SetType(t *typesys.Type) { ix.Resolved = t }

// ProjExpr is `base.field` — component projection on a triple (`.r/.g/.b`
// on color, `.x/.y/.z` on point/vector/normal) or field projection on a
// struct. FieldIndex records the resolved field's position once checked.
type ProjExpr struct {
	Tok        token.Token
	Base       Expr
	Field      string
	FieldIndex int
	Resolved   *typesys.Type
}

func (p *ProjExpr) exprNode()            {}
func (p *ProjExpr) TokenLiteral() string { return p.Tok.Literal }
func (p *ProjExpr) Pos() token.Position  { return p.Tok.Pos() }
func (p *ProjExpr) String() string       { return p.Base.String() + "." + p.Field }
func (p *ProjExpr) GetType() *typesys.Type  { return p.Resolved }
func (p *ProjExpr) SetType(t *typesys.Type) { p.Resolved = t }

// CastExpr is an explicit `(type)expr` cast, or an implicit coercion
// wrapper inserted by the checker around an argument/return value whose
// static type differs from the target.
type CastExpr struct {
	Tok      token.Token
	Target   TypeExpr
	Operand  Expr
	Implicit bool
	Resolved *typesys.Type
}

func (c *CastExpr) exprNode()            {}
func (c *CastExpr) TokenLiteral() string { return c.Tok.Literal }
func (c *CastExpr) Pos() token.Position  { return c.Tok.Pos() }
func (c *CastExpr) String() string {
	if c.Implicit {
		return c.Operand.String()
	}
	return "(" + c.Target.String() + ")" + c.Operand.String()
}
func (c *CastExpr) GetType() *typesys.Type  { return c.Resolved }
func (c *CastExpr) SetType(t *typesys.Type) { c.Resolved = t }
