package printer

import (
	"strings"

	"github.com/madmann91/nosl/internal/ast"
)

func (p *Printer) printDecl(d ast.Decl) string {
	switch n := d.(type) {
	case *ast.StructDecl:
		return p.printStruct(n)
	case *ast.FunctionDecl:
		return p.printFunction(n)
	case *ast.ShaderDecl:
		return p.printShader(n)
	case *ast.VarGroupDecl:
		return p.printVarGroup(n)
	case *ast.ErrorNode:
		return "<error>"
	default:
		return d.String()
	}
}

func (p *Printer) printStruct(s *ast.StructDecl) string {
	var sb strings.Builder
	sb.WriteString(p.Style.keyword("struct"))
	sb.WriteString(" ")
	sb.WriteString(s.Name)
	sb.WriteString(" {\n")
	for _, f := range s.Fields {
		sb.WriteString("  ")
		sb.WriteString(p.printVarDecl(f))
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (p *Printer) printParams(params []*ast.Param, hasEllipsis bool) string {
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = p.printParam(param)
	}
	out := strings.Join(parts, ", ")
	if hasEllipsis {
		if len(params) > 0 {
			out += ", "
		}
		out += "..."
	}
	return out
}

func (p *Printer) printParam(param *ast.Param) string {
	var sb strings.Builder
	if param.IsOutput {
		sb.WriteString(p.Style.keyword("output"))
		sb.WriteString(" ")
	}
	sb.WriteString(param.Type.String())
	sb.WriteString(" ")
	sb.WriteString(param.Name)
	if param.Default != nil {
		sb.WriteString(" = ")
		sb.WriteString(p.printExpr(param.Default))
	}
	for _, m := range param.Meta {
		sb.WriteString(" ")
		sb.WriteString(p.printMetadatum(m))
	}
	return sb.String()
}

func (p *Printer) printMetadatum(m *ast.Metadatum) string {
	return "[[" + m.Type.String() + " " + m.Name + " = " + p.printExpr(m.Value) + "]]"
}

func (p *Printer) printFunction(f *ast.FunctionDecl) string {
	var sb strings.Builder
	if len(f.Attrs) > 0 {
		sb.WriteString(f.Attrs.String())
		sb.WriteString(" ")
	}
	sb.WriteString(f.RetType.String())
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	sb.WriteString(p.printParams(f.Params, f.HasEllipsis))
	sb.WriteString(")")
	if f.Body != nil {
		sb.WriteString(" ")
		sb.WriteString(p.printBlock(f.Body))
	} else {
		sb.WriteString(";")
	}
	return sb.String()
}

func (p *Printer) printShader(s *ast.ShaderDecl) string {
	var sb strings.Builder
	sb.WriteString(p.Style.keyword(s.Kind.String()))
	sb.WriteString(" ")
	sb.WriteString(s.Name)
	sb.WriteString("(")
	sb.WriteString(p.printParams(s.Params, false))
	sb.WriteString(")")
	for _, m := range s.Meta {
		sb.WriteString(" ")
		sb.WriteString(p.printMetadatum(m))
	}
	if s.Body != nil {
		sb.WriteString(" ")
		sb.WriteString(p.printBlock(s.Body))
	}
	return sb.String()
}

func (p *Printer) printVarDecl(v *ast.VarDecl) string {
	var sb strings.Builder
	sb.WriteString(v.Type.String())
	sb.WriteString(" ")
	sb.WriteString(v.Name)
	if v.Init != nil {
		sb.WriteString(" = ")
		sb.WriteString(p.printExpr(v.Init))
	}
	return sb.String()
}

func (p *Printer) printVarGroup(g *ast.VarGroupDecl) string {
	parts := make([]string, len(g.Vars))
	for i, v := range g.Vars {
		part := v.Name
		switch t := v.Type.(type) {
		case *ast.SizedArrayType:
			if t.Elem == g.Type {
				part += "[" + p.printExpr(t.Dim) + "]"
			}
		case *ast.UnsizedArrayType:
			if t.Elem == g.Type {
				part += "[]"
			}
		}
		if v.Init != nil {
			part += " = " + p.printExpr(v.Init)
		}
		parts[i] = part
	}
	var sb strings.Builder
	if len(g.Attrs) > 0 {
		sb.WriteString(g.Attrs.String())
		sb.WriteString(" ")
	}
	sb.WriteString(g.Type.String())
	sb.WriteString(" ")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(";")
	return sb.String()
}
