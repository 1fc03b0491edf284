package printer

import (
	"strings"

	"github.com/madmann91/nosl/internal/ast"
)

func (p *Printer) printStmt(s ast.Stmt) string {
	switch n := s.(type) {
	case *ast.BlockStmt:
		return p.printBlock(n)
	case *ast.ExprStmt:
		return p.printExpr(n.Expr) + ";"
	case *ast.EmptyStmt:
		return ";"
	case *ast.VarGroupDecl:
		return p.printVarGroup(n)
	case *ast.IfStmt:
		return p.printIf(n)
	case *ast.WhileStmt:
		return p.Style.keyword("while") + " (" + p.printExpr(n.Cond) + ") " + p.printStmt(n.Body)
	case *ast.DoWhileStmt:
		return p.Style.keyword("do") + " " + p.printStmt(n.Body) + " " + p.Style.keyword("while") +
			" (" + p.printExpr(n.Cond) + ");"
	case *ast.ForStmt:
		return p.printFor(n)
	case *ast.BreakStmt:
		return p.Style.keyword("break") + ";"
	case *ast.ContinueStmt:
		return p.Style.keyword("continue") + ";"
	case *ast.ReturnStmt:
		if n.Value == nil {
			return p.Style.keyword("return") + ";"
		}
		return p.Style.keyword("return") + " " + p.printExpr(n.Value) + ";"
	case *ast.ErrorNode:
		return "<error>"
	default:
		return s.String()
	}
}

func (p *Printer) printBlock(b *ast.BlockStmt) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Stmts {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(p.printStmt(s), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (p *Printer) printIf(i *ast.IfStmt) string {
	var sb strings.Builder
	sb.WriteString(p.Style.keyword("if"))
	sb.WriteString(" (")
	sb.WriteString(p.printExpr(i.Cond))
	sb.WriteString(") ")
	sb.WriteString(p.printStmt(i.Then))
	if i.Else != nil {
		sb.WriteString(" ")
		sb.WriteString(p.Style.keyword("else"))
		sb.WriteString(" ")
		sb.WriteString(p.printStmt(i.Else))
	}
	return sb.String()
}

func (p *Printer) printFor(f *ast.ForStmt) string {
	var sb strings.Builder
	sb.WriteString(p.Style.keyword("for"))
	sb.WriteString(" (")
	if f.Init != nil {
		sb.WriteString(strings.TrimSuffix(p.printStmt(f.Init), ";"))
	}
	sb.WriteString("; ")
	if f.Cond != nil {
		sb.WriteString(p.printExpr(f.Cond))
	}
	sb.WriteString("; ")
	if f.Post != nil {
		sb.WriteString(strings.TrimSuffix(p.printStmt(f.Post), ";"))
	}
	sb.WriteString(") ")
	sb.WriteString(p.printStmt(f.Body))
	return sb.String()
}
