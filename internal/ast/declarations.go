package ast

import (
	"strings"

	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

// Metadatum is one `type name = value` entry inside a shader parameter's
// `[[ … ]]` metadata block (the OSL convention for UI hints, units, etc.).
type Metadatum struct {
	Tok   token.Token
	Type  TypeExpr
	Name  string
	Value Expr
}

func (m *Metadatum) TokenLiteral() string { return m.Tok.Literal }
func (m *Metadatum) Pos() token.Position  { return m.Tok.Pos() }
func (m *Metadatum) String() string {
	return m.Type.String() + " " + m.Name + " = " + m.Value.String()
}

// Param is one parameter of a function or shader declaration.
type Param struct {
	Tok       token.Token
	Name      string
	Type      TypeExpr
	IsOutput  bool
	Default   Expr // required for shader params, optional for function params
	Meta      []*Metadatum
	Resolved  *typesys.Type
}

func (p *Param) declNode()            {}
func (p *Param) TokenLiteral() string { return p.Tok.Literal }
func (p *Param) Pos() token.Position  { return p.Tok.Pos() }
func (p *Param) String() string {
	var sb strings.Builder
	if p.IsOutput {
		sb.WriteString("output ")
	}
	sb.WriteString(p.Type.String())
	sb.WriteString(" ")
	sb.WriteString(p.Name)
	if p.Default != nil {
		sb.WriteString(" = ")
		sb.WriteString(p.Default.String())
	}
	return sb.String()
}

// FunctionDecl is a function declaration:
// `[attrs] <ret_type> <name> '(' params ')' (';' | block)`. Shaders use the
// separate ShaderDecl, which shares the parameter and body shape.
// A nil Body means the declaration is a forward declaration or a built-in
// (Attrs.Has("builtin")).
type FunctionDecl struct {
	Tok         token.Token
	RetType     TypeExpr
	Name        string
	Attrs       Attributes
	Params      []*Param
	HasEllipsis bool
	Body        *BlockStmt
	Resolved    *typesys.Type // the func type once checked
}

func (f *FunctionDecl) declNode()            {}
func (f *FunctionDecl) TokenLiteral() string { return f.Tok.Literal }
func (f *FunctionDecl) Pos() token.Position  { return f.Tok.Pos() }
func (f *FunctionDecl) String() string {
	var sb strings.Builder
	if len(f.Attrs) > 0 {
		sb.WriteString(f.Attrs.String())
		sb.WriteString(" ")
	}
	sb.WriteString(f.RetType.String())
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	if f.HasEllipsis {
		if len(f.Params) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
	}
	sb.WriteString(")")
	if f.Body != nil {
		sb.WriteString(" ")
		sb.WriteString(f.Body.String())
	} else {
		sb.WriteString(";")
	}
	return sb.String()
}

// IsBuiltin reports whether this declaration carries
// `__attribute__((builtin))`.
func (f *FunctionDecl) IsBuiltin() bool { return f.Attrs.Has("builtin") }

// IsConstructorAttr reports whether this declaration carries
// `__attribute__((constructor))` — it is accessible only via its
// constructor form, never entered into the environment under its name.
func (f *FunctionDecl) IsConstructorAttr() bool { return f.Attrs.Has("constructor") }

// ShaderDecl is a shader declaration. It shares FunctionDecl's parameter
// and body shape but every parameter requires a default initialiser and
// the declaration carries its own `[[ … ]]` metadata block rather than
// per-parameter ones only.
type ShaderDecl struct {
	Tok      token.Token
	Kind     typesys.ShaderTag
	Name     string
	Attrs    Attributes
	Meta     []*Metadatum
	Params   []*Param
	Body     *BlockStmt
	Resolved *typesys.Type
}

func (s *ShaderDecl) declNode()            {}
func (s *ShaderDecl) TokenLiteral() string { return s.Tok.Literal }
func (s *ShaderDecl) Pos() token.Position  { return s.Tok.Pos() }
func (s *ShaderDecl) String() string {
	var sb strings.Builder
	sb.WriteString(s.Kind.String())
	sb.WriteString(" ")
	sb.WriteString(s.Name)
	sb.WriteString("(")
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") ")
	sb.WriteString(s.Body.String())
	return sb.String()
}

// StructDecl declares a named product type. A name beginning with
// `__operator__` is reserved by the built-in operator table and rejected
// by the checker.
type StructDecl struct {
	Tok      token.Token
	Name     string
	Fields   []*VarDecl
	Resolved *typesys.Type
}

func (s *StructDecl) declNode()            {}
func (s *StructDecl) TokenLiteral() string { return s.Tok.Literal }
func (s *StructDecl) Pos() token.Position  { return s.Tok.Pos() }
func (s *StructDecl) String() string {
	var sb strings.Builder
	sb.WriteString("struct ")
	sb.WriteString(s.Name)
	sb.WriteString(" {\n")
	for _, f := range s.Fields {
		sb.WriteString("  ")
		sb.WriteString(f.String())
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// VarDecl is a single variable within a VarGroupDecl: `name [array_dim]
// [= init]`.
type VarDecl struct {
	Tok      token.Token
	Name     string
	Type     TypeExpr // shared with the group, or a per-variable array dimension
	Init     Expr
	Resolved *typesys.Type
}

func (v *VarDecl) declNode()            {}
func (v *VarDecl) TokenLiteral() string { return v.Tok.Literal }
func (v *VarDecl) Pos() token.Position  { return v.Tok.Pos() }
func (v *VarDecl) String() string {
	var sb strings.Builder
	sb.WriteString(v.Type.String())
	sb.WriteString(" ")
	sb.WriteString(v.Name)
	if v.Init != nil {
		sb.WriteString(" = ")
		sb.WriteString(v.Init.String())
	}
	return sb.String()
}

// VarGroupDecl is `<type> <var> (',' <var>)* ';'`, a group of variables
// sharing one declared type.
type VarGroupDecl struct {
	Tok   token.Token
	Type  TypeExpr
	Vars  []*VarDecl
	Attrs Attributes
}

func (g *VarGroupDecl) declNode()            {}
func (g *VarGroupDecl) stmtNode()            {} // also usable as a local statement
func (g *VarGroupDecl) TokenLiteral() string { return g.Tok.Literal }
func (g *VarGroupDecl) Pos() token.Position  { return g.Tok.Pos() }
func (g *VarGroupDecl) String() string {
	parts := make([]string, len(g.Vars))
	for i, v := range g.Vars {
		parts[i] = v.String()
	}
	return g.Type.String() + " " + strings.Join(parts, ", ") + ";"
}

// IsBuiltin reports whether this group carries
// `__attribute__((builtin))` — legal only at global scope, and only
// without an initialiser on any of its variables.
func (g *VarGroupDecl) IsBuiltin() bool { return g.Attrs.Has("builtin") }
