package check

import (
	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/env"
	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

// checkBlockWithoutScope checks a block's statements without pushing a
// new scope — used for a function/shader body, whose parameter scope is
// already the body's scope. Grounded on check_block_without_scope.
func (c *Checker) checkBlockWithoutScope(b *ast.BlockStmt) {
	for _, s := range b.Stmts {
		c.checkStmt(s)
	}
}

// checkBlock pushes a fresh scope before checking a nested block.
func (c *Checker) checkBlock(b *ast.BlockStmt) {
	c.env.Push(env.KindBlock, b)
	c.checkBlockWithoutScope(b)
	c.env.Pop()
}

func (c *Checker) checkCond(pe *ast.Expr) {
	c.checkExpr(pe, c.boolT)
}

func (c *Checker) checkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.EmptyStmt, *ast.ErrorNode:
		// nothing to check
	case *ast.BlockStmt:
		c.checkBlock(n)
	case *ast.VarGroupDecl:
		c.checkVarGroupDecl(n, false)
	case *ast.ExprStmt:
		c.checkExpr(&n.Expr, nil)
	case *ast.IfStmt:
		c.checkCond(&n.Cond)
		c.checkStmt(n.Then)
		if n.Else != nil {
			c.checkStmt(n.Else)
		}
	case *ast.WhileStmt:
		c.checkCond(&n.Cond)
		c.env.Push(env.KindLoop, n)
		c.checkStmt(n.Body)
		c.env.Pop()
	case *ast.DoWhileStmt:
		c.env.Push(env.KindLoop, n)
		c.checkStmt(n.Body)
		c.env.Pop()
		c.checkCond(&n.Cond)
	case *ast.ForStmt:
		c.env.Push(env.KindLoop, n)
		if n.Init != nil {
			c.checkStmt(n.Init)
		}
		if n.Cond != nil {
			c.checkCond(&n.Cond)
		}
		if n.Post != nil {
			c.checkStmt(n.Post)
		}
		c.checkStmt(n.Body)
		c.env.Pop()
	case *ast.ReturnStmt:
		c.checkReturnStmt(n)
	case *ast.BreakStmt:
		c.checkBreakOrContinue(n.Pos(), "break")
	case *ast.ContinueStmt:
		c.checkBreakOrContinue(n.Pos(), "continue")
	default:
		c.sink.Error(s.Pos(), "invalid statement")
	}
}

// checkReturnStmt implements check_return_stmt.
func (c *Checker) checkReturnStmt(r *ast.ReturnStmt) {
	owner, ok := c.env.EnclosingFuncOrShader()
	if !ok {
		c.sink.Error(r.Pos(), "'return' is not allowed outside of a function or shader")
		return
	}

	var retType *typesys.Type
	isShader := false
	switch f := owner.(type) {
	case *ast.FunctionDecl:
		retType = f.Resolved.Func.Ret
	case *ast.ShaderDecl:
		retType = f.Resolved.Func.Ret
		isShader = true
	}

	if r.Value != nil {
		if isShader {
			c.sink.Error(r.Value.Pos(), "shaders cannot return a value")
		} else {
			c.checkExpr(&r.Value, retType)
		}
	} else if !isShader && retType != nil && !retType.IsVoid() {
		c.sink.Error(r.Pos(), "missing return value")
	}
}

func (c *Checker) checkBreakOrContinue(pos token.Position, kind string) {
	if _, ok := c.env.EnclosingLoop(); !ok {
		c.sink.Error(pos, "'%s' is not allowed outside of loops", kind)
	}
}
