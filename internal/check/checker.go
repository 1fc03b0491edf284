package check

import (
	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/builtins"
	"github.com/madmann91/nosl/internal/diag"
	"github.com/madmann91/nosl/internal/env"
	"github.com/madmann91/nosl/internal/typesys"
)

// Checker holds the shared state of one type-checking pass: the type
// table every resolved type is interned into, the built-in constructor
// and operator registry, the symbol environment, and the diagnostic
// sink every error/warning/note is reported through.
type Checker struct {
	table *typesys.Table
	reg   *builtins.Registry
	env   *env.Env
	sink  diag.Sink

	boolT, intT, floatT, stringT, voidT *typesys.Type
	errT                                *typesys.Type
}

// New creates a checker ready to check a single translation unit.
func New(table *typesys.Table, reg *builtins.Registry, sink diag.Sink) *Checker {
	return &Checker{
		table:   table,
		reg:     reg,
		env:     env.New(),
		sink:    sink,
		boolT:   table.GetPrim(typesys.Bool),
		intT:    table.GetPrim(typesys.Int),
		floatT:  table.GetPrim(typesys.Float),
		stringT: table.GetPrim(typesys.String),
		voidT:   table.GetPrim(typesys.Void),
		errT:    table.GetError(),
	}
}

// Check type-checks every top-level declaration of prog in source order,
// rewriting it in place.
func (c *Checker) Check(prog *ast.Program) {
	for _, d := range prog.Decls {
		c.checkTopLevelDecl(d)
	}
}

// insertSymbol binds name -> decl in the current scope, reporting a
// shadow warning or redefinition error as env.Insert's result dictates.
// Grounded on check.c's insert_symbol.
func (c *Checker) insertSymbol(name string, decl ast.Decl, allowOverload bool) {
	switch result, prev := c.env.Insert(name, decl, allowOverload); result {
	case env.Shadowed:
		c.sink.Warn(decl.Pos(), "symbol %q shadows previous definition", name)
		c.notePreviousLocation(prev)
	case env.Redefined:
		c.sink.Error(decl.Pos(), "redefinition for symbol %q", name)
		c.notePreviousLocation(prev)
	}
}

func (c *Checker) notePreviousLocation(prev ast.Decl) {
	if prev != nil {
		c.sink.Note(prev.Pos(), "previously declared here")
	}
}

func (c *Checker) expectMutable(e ast.Expr) {
	if !isMutable(e) {
		c.sink.Error(e.Pos(), "value cannot be written to")
	}
}

// isMutable reports whether e is a syntactically-mutable l-value: an
// output parameter, a local variable, or an indexing/projection of a
// mutable value — per 4.6.2's viability rule for output arguments.
func isMutable(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.Ident:
		switch sym := n.Symbol.(type) {
		case *ast.Param:
			return sym.IsOutput
		case *ast.VarDecl:
			return true
		default:
			return false
		}
	case *ast.IndexExpr:
		return isMutable(n.Base)
	case *ast.ProjExpr:
		return isMutable(n.Base)
	case *ast.ParenExpr:
		return isMutable(n.Inner)
	default:
		return false
	}
}

// skipParens unwraps any number of enclosing ParenExpr nodes.
func skipParens(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.Inner
	}
}

func funcTypeOf(decl ast.Decl) (*typesys.Type, bool) {
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		if d.Resolved != nil && d.Resolved.Tag == typesys.Func {
			return d.Resolved, true
		}
	case *ast.ShaderDecl:
		if d.Resolved != nil && d.Resolved.Tag == typesys.Func {
			return d.Resolved, true
		}
	}
	return nil, false
}
