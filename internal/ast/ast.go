package ast

import (
	"strings"

	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

// Node is the base interface every program-tree node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expr is a node that produces a value. Every Expr carries a resolved type
// slot, populated by the type checker; it is nil until checked and never
// nil once the sub-traversal containing it returns successfully.
type Expr interface {
	Node
	exprNode()
	GetType() *typesys.Type
	SetType(*typesys.Type)
}

// Stmt is a node that performs an action but does not itself produce a
// value.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level (or struct-field-group) declaration.
type Decl interface {
	Node
	declNode()
}

// TypeExpr is the syntactic spelling of a type, as written by the user —
// distinct from typesys.Type, which is the checker's resolved, hash-consed
// representation. Every TypeExpr is also checked and given a ResolvedType.
type TypeExpr interface {
	Node
	typeExprNode()
	GetResolved() *typesys.Type
	SetResolved(*typesys.Type)
}

// Attribute is one entry of an `__attribute__((…))` block: a bare
// identifier, optionally followed by a parenthesised argument list.
type Attribute struct {
	Tok  token.Token
	Name string
	Args []Expr
}

func (a *Attribute) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return a.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Attributes is the attribute list attached to a declaration. Lookup is
// order-independent and multiple attributes may be combined in a single
// `__attribute__((…))` block, matching the original checker's
// name-based scan rather than assuming a fixed position.
type Attributes []*Attribute

// Has reports whether name appears anywhere in the attribute list.
func (a Attributes) Has(name string) bool {
	for _, attr := range a {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// Find returns the first attribute named name, or nil.
func (a Attributes) Find(name string) *Attribute {
	for _, attr := range a {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}

func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, len(a))
	for i, attr := range a {
		parts[i] = attr.String()
	}
	return "__attribute__((" + strings.Join(parts, ", ") + "))"
}

// Program is the root of a translation unit's tree: a flat list of
// top-level declarations in source order. The original implementation
// threads declarations via an arena sibling-link list; this is expressed
// here as an ordinary slice, the idiomatic Go equivalent.
type Program struct {
	Decls []Decl
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var sb strings.Builder
	for i, d := range p.Decls {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}

// ErrorNode is the sentinel synthesised at a parse failure point. It
// satisfies Expr, Stmt, Decl, and TypeExpr so the parser can plug it into
// whichever context it failed in and resume.
type ErrorNode struct {
	Tok      token.Token
	Message  string
	Resolved *typesys.Type
}

func (e *ErrorNode) TokenLiteral() string { return e.Tok.Literal }
func (e *ErrorNode) Pos() token.Position  { return e.Tok.Pos() }
func (e *ErrorNode) String() string       { return "<error>" }
func (e *ErrorNode) exprNode()            {}
func (e *ErrorNode) stmtNode()            {}
func (e *ErrorNode) declNode()            {}
func (e *ErrorNode) typeExprNode()        {}
func (e *ErrorNode) GetType() *typesys.Type     { return e.Resolved }
func (e *ErrorNode) SetType(t *typesys.Type)    { e.Resolved = t }
func (e *ErrorNode) GetResolved() *typesys.Type { return e.Resolved }
func (e *ErrorNode) SetResolved(t *typesys.Type) { e.Resolved = t }
