package check

import (
	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/builtins"
	"github.com/madmann91/nosl/internal/typesys"
)

// checkExpr implements check_expr: it dispatches on the concrete node
// type, computes and records the node's type, and finally runs it through
// coerce against expected. pe is the address of the slot holding the
// expression so that coerce can splice in an implicit CastExpr in place —
// the idiomatic-Go analogue of the original's in-place ast mutation.
func (c *Checker) checkExpr(pe *ast.Expr, expected *typesys.Type) *typesys.Type {
	switch n := (*pe).(type) {
	case *ast.BoolLiteral:
		n.Resolved = c.boolT
	case *ast.IntLiteral:
		n.Resolved = c.intT
	case *ast.FloatLiteral:
		n.Resolved = c.floatT
	case *ast.StringLiteral:
		n.Resolved = c.stringT
	case *ast.Ident:
		c.checkIdentExpr(n)
	case *ast.BinaryExpr:
		c.checkBinaryExpr(n, expected)
	case *ast.UnaryExpr:
		c.checkUnaryExpr(n, expected)
	case *ast.CallExpr:
		c.checkCallExpr(n, expected)
	case *ast.ConstructExpr:
		c.checkConstructExpr(n, expected)
	case *ast.ParenExpr:
		t := c.checkExpr(&n.Inner, expected)
		n.Resolved = t
		return t
	case *ast.CompoundExpr:
		c.checkCompoundExpr(n, expected)
	case *ast.BraceInit:
		c.checkBraceInit(n, expected)
	case *ast.TernaryExpr:
		c.checkTernaryExpr(n, expected)
	case *ast.IndexExpr:
		c.checkIndexExpr(n, expected)
	case *ast.ProjExpr:
		c.checkProjExpr(n, expected)
	case *ast.CastExpr:
		c.checkCastExpr(n, expected)
	case *ast.ErrorNode:
		n.Resolved = c.errT
		return c.errT
	default:
		return c.errT
	}
	return c.coerce(pe, expected)
}

// checkIdentExpr implements check_ident_expr.
func (c *Checker) checkIdentExpr(id *ast.Ident) {
	decl, ok := c.env.FindOne(id.Name)
	if !ok {
		all := c.env.FindAll(id.Name)
		if len(all) > 0 {
			c.sink.Error(id.Pos(), "cannot resolve overloaded identifier %q", id.Name)
		} else {
			c.sink.Error(id.Pos(), "unknown identifier %q", id.Name)
		}
		id.Resolved = c.errT
		return
	}
	if _, isFunc := decl.(*ast.FunctionDecl); isFunc {
		c.sink.Error(id.Pos(), "cannot use function %q as value", id.Name)
	} else if _, isStruct := decl.(*ast.StructDecl); isStruct {
		c.sink.Error(id.Pos(), "cannot use structure %q as value", id.Name)
	}
	id.Symbol = decl
	id.Resolved = typeOfSymbol(decl)
}

func typeOfSymbol(decl ast.Decl) *typesys.Type {
	switch d := decl.(type) {
	case *ast.VarDecl:
		return d.Resolved
	case *ast.Param:
		return d.Resolved
	case *ast.FunctionDecl:
		return d.Resolved
	case *ast.ShaderDecl:
		return d.Resolved
	case *ast.StructDecl:
		return d.Resolved
	default:
		return nil
	}
}

// checkCallArgs checks every argument with no expected type and reports
// whether all of them checked to a non-error type.
func (c *Checker) checkCallArgs(args []ast.Expr) bool {
	ok := true
	for i := range args {
		if c.checkExpr(&args[i], nil).IsError() {
			ok = false
		}
	}
	return ok
}

// checkBinaryExpr implements check_binary_expr.
func (c *Checker) checkBinaryExpr(b *ast.BinaryExpr, expected *typesys.Type) {
	if b.IsAssign() {
		c.checkAssignExpr(b)
		return
	}
	if b.Operator == "&&" || b.Operator == "||" {
		c.checkLogicExpr(b)
		return
	}

	args := []ast.Expr{b.Left, b.Right}
	if !c.checkCallArgs(args) {
		b.Left, b.Right = args[0], args[1]
		b.Resolved = c.errT
		return
	}
	b.Left, b.Right = args[0], args[1]

	cands := candidatesFromOverloads(c.table, c.reg.Operators(builtins.OperatorSymbol(b.Operator)))
	cand := c.resolveCall(b.Pos(), b.Operator, cands, args, expected)
	if cand == nil {
		b.Resolved = c.errT
		return
	}
	b.Left = c.coerceArg(args[0], cand.typ.Func.Params, 0)
	b.Right = c.coerceArg(args[1], cand.typ.Func.Params, 1)
	b.Resolved = cand.typ.Func.Ret
}

// coerceArg wraps args[i] in an implicit cast to params[i].Type, if i is
// within range (ellipsis tail arguments pass through unconverted).
func (c *Checker) coerceArg(arg ast.Expr, params []typesys.Param, i int) ast.Expr {
	if i >= len(params) {
		return arg
	}
	pe := arg
	c.coerce(&pe, params[i].Type)
	return pe
}

func (c *Checker) checkAssignExpr(b *ast.BinaryExpr) {
	leftType := c.checkExpr(&b.Left, nil)
	c.checkExpr(&b.Right, leftType)
	c.expectMutable(b.Left)
	b.Resolved = leftType
}

func (c *Checker) checkLogicExpr(b *ast.BinaryExpr) {
	c.checkCond(&b.Left)
	c.checkCond(&b.Right)
	b.Resolved = c.boolT
}

// checkUnaryExpr implements check_unary_expr.
func (c *Checker) checkUnaryExpr(u *ast.UnaryExpr, expected *typesys.Type) {
	args := []ast.Expr{u.Operand}
	if !c.checkCallArgs(args) {
		u.Operand = args[0]
		u.Resolved = c.errT
		return
	}
	u.Operand = args[0]

	name := unaryOpName(u.Operator, u.Postfix)
	cands := candidatesFromOverloads(c.table, c.reg.Operators(builtins.OperatorSymbol(name)))
	cand := c.resolveCall(u.Pos(), name, cands, args, expected)
	if cand == nil {
		u.Resolved = c.errT
		return
	}
	u.Operand = c.coerceArg(args[0], cand.typ.Func.Params, 0)
	u.Resolved = cand.typ.Func.Ret
}

// unaryOpName maps a unary operator's spelling/fixity to the synthesised
// operator-overload name used by internal/builtins: "neg" for prefix '-',
// and "++pre"/"++post"/"--pre"/"--post" for increment/decrement.
func unaryOpName(op string, postfix bool) string {
	switch op {
	case "-":
		return "neg"
	case "++", "--":
		if postfix {
			return op + "post"
		}
		return op + "pre"
	default:
		return op
	}
}

// checkCallExpr implements check_call_expr / check_callee.
func (c *Checker) checkCallExpr(call *ast.CallExpr, expected *typesys.Type) {
	if !c.checkCallArgs(call.Args) {
		call.Resolved = c.errT
		return
	}

	callee := skipParens(call.Callee)
	id, isIdent := callee.(*ast.Ident)
	if !isIdent {
		c.checkExpr(&call.Callee, nil)
		call.Resolved = c.errT
		return
	}

	decls := c.env.FindAll(id.Name)
	if len(decls) == 0 {
		c.sink.Error(id.Pos(), "unknown identifier %q", id.Name)
		call.Resolved = c.errT
		return
	}
	if len(decls) == 1 {
		if sd, ok := decls[0].(*ast.StructDecl); ok {
			id.Symbol = sd
			id.Resolved = sd.Resolved
			call.Resolved = c.checkStructConstructor(call, sd, call.Args)
			return
		}
	}

	cands := candidatesFromDecls(decls)
	if len(cands) == 0 {
		c.reportInvalidTypeMsg(id.Pos(), typeOfSymbol(decls[0]), "function")
		call.Resolved = c.errT
		return
	}
	cand := c.resolveCall(call.Pos(), id.Name, cands, call.Args, expected)
	if cand == nil {
		call.Resolved = c.errT
		return
	}
	id.Symbol = cand.decl
	id.Resolved = cand.typ

	for i := range call.Args {
		call.Args[i] = c.coerceArg(call.Args[i], cand.typ.Func.Params, i)
	}
	call.Resolved = cand.typ.Func.Ret
}

// checkStructConstructor implements check_struct_constructor: arity must
// match the field list exactly (no overload resolution for struct
// constructors, unlike primitive ones).
func (c *Checker) checkStructConstructor(pos ast.Node, sd *ast.StructDecl, args []ast.Expr) *typesys.Type {
	n := len(sd.Fields)
	if len(args) < n {
		c.reportMissingField(pos.Pos(), sd.Resolved, len(args), true)
		return c.errT
	}
	if len(args) > n {
		c.sink.Error(pos.Pos(), "expected %d initializer(s) for type %q, but got %d", n, sd.Resolved, len(args))
		return c.errT
	}
	return sd.Resolved
}

// checkConstructExpr implements check_construct_expr.
func (c *Checker) checkConstructExpr(ce *ast.ConstructExpr, expected *typesys.Type) {
	typ := c.checkTypeExpr(ce.Target, false)
	if !c.checkCallArgs(ce.Args) {
		ce.Resolved = c.errT
		return
	}
	if typ.Tag != typesys.Prim {
		ce.Resolved = c.errT
		return
	}

	cands := candidatesFromOverloads(c.table, c.reg.Constructors(typ.Prim))
	cand := c.resolveCall(ce.Pos(), typ.Prim.String(), cands, ce.Args, typ)
	if cand == nil {
		ce.Resolved = c.errT
		return
	}
	for i := range ce.Args {
		ce.Args[i] = c.coerceArg(ce.Args[i], cand.typ.Func.Params, i)
	}
	ce.Resolved = typ
}

// checkCompoundExpr implements check_compound_expr: a parenthesised
// comma sequence; its type (and expected-type propagation) is that of
// the last element.
func (c *Checker) checkCompoundExpr(ce *ast.CompoundExpr, expected *typesys.Type) {
	var last *typesys.Type
	for i := range ce.Elems {
		exp := (*typesys.Type)(nil)
		if i == len(ce.Elems)-1 {
			exp = expected
		}
		last = c.checkExpr(&ce.Elems[i], exp)
	}
	ce.Resolved = last
}

// checkBraceInit implements check_compound_init.
func (c *Checker) checkBraceInit(b *ast.BraceInit, expected *typesys.Type) {
	elemTypes := make([]*typesys.Type, len(b.Elems))
	for i := range b.Elems {
		elemTypes[i] = c.checkExpr(&b.Elems[i], nil)
	}
	b.Resolved = c.table.NewCompound(elemTypes)
}

// checkTernaryExpr implements check_ternary_expr.
func (c *Checker) checkTernaryExpr(t *ast.TernaryExpr, expected *typesys.Type) {
	c.checkCond(&t.Cond)
	thenType := c.checkExpr(&t.Then, nil)
	c.checkExpr(&t.Else, thenType)
	t.Resolved = thenType
}

// checkSingleIndex implements check_single_index_expr.
func (c *Checker) checkSingleIndex(pos ast.Node, valueType *typesys.Type) *typesys.Type {
	switch {
	case valueType.Tag == typesys.Array:
		return valueType.Array.Elem
	case valueType.IsTriple():
		return c.floatT
	default:
		c.reportInvalidTypeMsg(pos.Pos(), valueType, "vector, point, normal, color, or array")
		return c.errT
	}
}

// checkIndexExpr implements check_index_expr, including the
// double-indexing rule for matrices (m[i][j] -> float; single-indexing a
// matrix is rejected since checkSingleIndex only accepts array/triple).
func (c *Checker) checkIndexExpr(ix *ast.IndexExpr, expected *typesys.Type) {
	inner, isNestedIndex := ix.Base.(*ast.IndexExpr)
	if !isNestedIndex {
		valueType := c.checkExpr(&ix.Base, nil)
		c.checkExpr(&ix.Index, c.intT)
		ix.Resolved = c.checkSingleIndex(ix.Base, valueType)
		return
	}

	valueType := c.checkExpr(&inner.Base, nil)
	c.checkExpr(&ix.Index, c.intT)
	c.checkExpr(&inner.Index, c.intT)
	if valueType.Tag == typesys.Prim && valueType.Prim == typesys.Matrix {
		ix.Resolved = c.floatT
		return
	}
	elemType := c.checkSingleIndex(inner.Base, valueType)
	ix.Resolved = c.checkSingleIndex(inner, elemType)
}

// checkProjExpr implements check_proj_expr.
func (c *Checker) checkProjExpr(p *ast.ProjExpr, expected *typesys.Type) {
	valueType := c.checkExpr(&p.Base, nil)

	var result *typesys.Type
	if valueType.IsTriple() {
		names := "xyz"
		if valueType.Prim == typesys.Color {
			names = "rgb"
		}
		if len(p.Field) == 1 {
			for i := 0; i < 3; i++ {
				if p.Field[0] == names[i] {
					result = c.floatT
					p.FieldIndex = i
					break
				}
			}
		}
	} else if valueType.Tag == typesys.Struct {
		for i, f := range valueType.Struct.Fields {
			if f.Name == p.Field {
				result = f.Type
				p.FieldIndex = i
				break
			}
		}
	}

	if result == nil {
		result = c.errT
		if !valueType.IsError() {
			c.sink.Error(p.Pos(), "unknown field or component %q for type %q", p.Field, valueType)
		}
	}
	p.Resolved = result
}

// checkCastExpr implements check_cast_expr.
func (c *Checker) checkCastExpr(cast *ast.CastExpr, expected *typesys.Type) {
	cast.Resolved = c.checkTypeExpr(cast.Target, false)
	valueType := c.checkExpr(&cast.Operand, nil)
	if !isCastable(valueType, cast.Resolved) {
		c.sink.Error(cast.Pos(), "invalid cast from type %q to type %q", valueType, cast.Resolved)
	}
}
