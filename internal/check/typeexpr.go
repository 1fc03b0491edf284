package check

import (
	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/typesys"
)

// checkTypeExpr resolves a syntactic TypeExpr to its canonical
// *typesys.Type, recording the result on the node itself. allowUnsized
// gates a top-level trailing `[]` — legal only on function/shader
// parameters. Grounded on check.c's check_type / check_array_dim.
func (c *Checker) checkTypeExpr(te ast.TypeExpr, allowUnsized bool) *typesys.Type {
	var t *typesys.Type
	switch n := te.(type) {
	case *ast.PrimitiveType:
		prim := c.table.GetPrim(n.Prim)
		if n.IsClosure {
			t = c.table.GetClosure(prim)
		} else {
			t = prim
		}
	case *ast.ShaderKindType:
		t = c.table.GetShader(n.Kind)
	case *ast.NamedType:
		decl, ok := c.env.FindOne(n.Name)
		if !ok {
			c.sink.Error(n.Pos(), "unknown identifier %q", n.Name)
			t = c.errT
			break
		}
		sd, ok := decl.(*ast.StructDecl)
		if !ok || sd.Resolved == nil {
			c.sink.Error(n.Pos(), "%q does not name a type", n.Name)
			t = c.errT
			break
		}
		t = sd.Resolved
	case *ast.UnsizedArrayType:
		if !allowUnsized {
			c.sink.Error(n.Pos(), "unsized arrays are only allowed as function or shader parameters")
		}
		t = c.table.GetArrayUnsized(c.checkTypeExpr(n.Elem, false))
	case *ast.SizedArrayType:
		elem := c.checkTypeExpr(n.Elem, false)
		t = c.checkSizedDim(n.Dim, elem)
	case *ast.ErrorNode:
		t = c.errT
	default:
		t = c.errT
	}
	te.SetResolved(t)
	return t
}

// checkSizedDim implements 4.6.3's array-dimension rule: the dimension is
// checked as int and must be a statically-known positive integer literal
// (after paren-stripping) — the only constant evaluation the checker
// performs.
func (c *Checker) checkSizedDim(dim ast.Expr, elem *typesys.Type) *typesys.Type {
	pe := dim
	c.checkExpr(&pe, c.intT)

	lit, ok := skipParens(pe).(*ast.IntLiteral)
	n := 1
	if !ok || lit.Value == 0 || lit.Value > (1<<31) {
		c.sink.Error(dim.Pos(), "array dimension must be constant and strictly positive")
	} else {
		n = int(lit.Value)
	}
	return c.table.GetArraySized(elem, n)
}
