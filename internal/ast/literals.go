package ast

import (
	"strconv"

	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

// Ident is an identifier used in expression position. Once checked
// successfully, Symbol points at the declaration it resolved to.
type Ident struct {
	Tok      token.Token
	Name     string
	Symbol   Decl
	Resolved *typesys.Type
}

func (i *Ident) exprNode()                  {}
func (i *Ident) TokenLiteral() string       { return i.Tok.Literal }
func (i *Ident) Pos() token.Position        { return i.Tok.Pos() }
func (i *Ident) String() string             { return i.Name }
func (i *Ident) GetType() *typesys.Type     { return i.Resolved }
func (i *Ident) SetType(t *typesys.Type)    { i.Resolved = t }

// BoolLiteral is a `true` or `false` literal.
type BoolLiteral struct {
	Tok      token.Token
	Value    bool
	Resolved *typesys.Type
}

func (b *BoolLiteral) exprNode()               {}
func (b *BoolLiteral) TokenLiteral() string    { return b.Tok.Literal }
func (b *BoolLiteral) Pos() token.Position     { return b.Tok.Pos() }
func (b *BoolLiteral) String() string          { return strconv.FormatBool(b.Value) }
func (b *BoolLiteral) GetType() *typesys.Type  { return b.Resolved }
func (b *BoolLiteral) SetType(t *typesys.Type) { b.Resolved = t }

// IntLiteral is an integer literal, parsed as unsigned per the lexer's
// contract; signedness is a matter of the surrounding expression, not the
// literal itself.
type IntLiteral struct {
	Tok      token.Token
	Value    uint64
	Resolved *typesys.Type
}

func (l *IntLiteral) exprNode()               {}
func (l *IntLiteral) TokenLiteral() string    { return l.Tok.Literal }
func (l *IntLiteral) Pos() token.Position     { return l.Tok.Pos() }
func (l *IntLiteral) String() string          { return l.Tok.Literal }
func (l *IntLiteral) GetType() *typesys.Type  { return l.Resolved }
func (l *IntLiteral) SetType(t *typesys.Type) { l.Resolved = t }

// FloatLiteral is a binary64 floating-point literal.
type FloatLiteral struct {
	Tok      token.Token
	Value    float64
	Resolved *typesys.Type
}

func (f *FloatLiteral) exprNode()               {}
func (f *FloatLiteral) TokenLiteral() string    { return f.Tok.Literal }
func (f *FloatLiteral) Pos() token.Position     { return f.Tok.Pos() }
func (f *FloatLiteral) String() string          { return f.Tok.Literal }
func (f *FloatLiteral) GetType() *typesys.Type  { return f.Resolved }
func (f *FloatLiteral) SetType(t *typesys.Type) { f.Resolved = t }

// StringLiteral is a double-quoted string literal. Adjacent string
// literals are concatenated by the parser before this node is built, so
// Value already reflects the concatenated text.
type StringLiteral struct {
	Tok      token.Token
	Value    string
	Resolved *typesys.Type
}

func (s *StringLiteral) exprNode()               {}
func (s *StringLiteral) TokenLiteral() string    { return s.Tok.Literal }
func (s *StringLiteral) Pos() token.Position     { return s.Tok.Pos() }
func (s *StringLiteral) String() string          { return strconv.Quote(s.Value) }
func (s *StringLiteral) GetType() *typesys.Type  { return s.Resolved }
func (s *StringLiteral) SetType(t *typesys.Type) { s.Resolved = t }
