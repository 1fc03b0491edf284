package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/builtins"
	"github.com/madmann91/nosl/internal/check"
	"github.com/madmann91/nosl/internal/diag"
	"github.com/madmann91/nosl/internal/lexer"
	"github.com/madmann91/nosl/internal/parser"
	"github.com/madmann91/nosl/internal/typesys"
)

// checkSource parses and type-checks src, returning the resulting program
// and the sink that collected every diagnostic along the way.
func checkSource(t *testing.T, src string) (*ast.Program, *diag.DefaultSink) {
	t.Helper()
	sink := diag.NewDefault("test.osl", src, true, false, diag.Limits{MaxErrors: 64})
	lex := lexer.New("test.osl", src)
	prog := parser.New(lex, sink).Parse()
	require.Empty(t, lex.Errors(), "source must lex cleanly")

	table := typesys.NewTable()
	reg := builtins.New(table)
	check.New(table, reg, sink).Check(prog)
	return prog, sink
}

func declNamed(prog *ast.Program, name string) ast.Decl {
	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.FunctionDecl:
			if n.Name == name {
				return n
			}
		case *ast.ShaderDecl:
			if n.Name == name {
				return n
			}
		case *ast.StructDecl:
			if n.Name == name {
				return n
			}
		case *ast.VarGroupDecl:
			for _, v := range n.Vars {
				if v.Name == name {
					return v
				}
			}
		}
	}
	return nil
}

func TestImplicitIntToFloatInsertsCast(t *testing.T) {
	prog, sink := checkSource(t, `
		void f() {
			int a = 1;
			float b = a;
		}
	`)
	assert.Equal(t, 0, sink.ErrorCount())

	fn := declNamed(prog, "f").(*ast.FunctionDecl)
	var bDecl *ast.VarDecl
	for _, s := range fn.Body.Stmts {
		if g, ok := s.(*ast.VarGroupDecl); ok {
			for _, v := range g.Vars {
				if v.Name == "b" {
					bDecl = v
				}
			}
		}
	}
	require.NotNil(t, bDecl)
	cast, ok := bDecl.Init.(*ast.CastExpr)
	require.True(t, ok, "initializer must be wrapped in an implicit cast")
	assert.True(t, cast.Implicit)
	assert.Same(t, cast.Resolved, bDecl.Resolved)
}

func TestOverloadResolutionPicksExactMatch(t *testing.T) {
	prog, sink := checkSource(t, `
		float pick(float x) { return x; }
		int pick(int x) { return x; }
		void f() {
			int r = pick(1);
		}
	`)
	assert.Equal(t, 0, sink.ErrorCount())

	fn := declNamed(prog, "f").(*ast.FunctionDecl)
	g := fn.Body.Stmts[0].(*ast.VarGroupDecl)
	call := g.Vars[0].Init.(*ast.CallExpr)
	id := call.Callee.(*ast.Ident)
	chosen, ok := id.Symbol.(*ast.FunctionDecl)
	require.True(t, ok)
	assert.True(t, chosen.Resolved.Func.Ret.IsError() == false)
	assert.Equal(t, typesys.Int, chosen.Resolved.Func.Ret.Prim)
}

func TestOverloadResolutionPrefersExactOverEllipsis(t *testing.T) {
	_, sink := checkSource(t, `
		void trace(int a, int b) {}
		__attribute__((builtin)) void trace(int a, ...);
		void f() {
			trace(1, 2);
		}
	`)
	assert.Equal(t, 0, sink.ErrorCount())
}

func TestColorComponentProjection(t *testing.T) {
	prog, sink := checkSource(t, `
		void f() {
			color c = color(1, 0, 0);
			float r = c.r;
		}
	`)
	assert.Equal(t, 0, sink.ErrorCount())

	fn := declNamed(prog, "f").(*ast.FunctionDecl)
	g := fn.Body.Stmts[1].(*ast.VarGroupDecl)
	proj := g.Vars[0].Init.(*ast.ProjExpr)
	assert.Equal(t, 0, proj.FieldIndex)
	assert.Equal(t, typesys.Float, proj.Resolved.Prim)
}

func TestArrayDimensionMustBePositiveLiteral(t *testing.T) {
	_, sink := checkSource(t, `
		void f() {
			int a[0];
		}
	`)
	assert.Greater(t, sink.ErrorCount(), 0, "a zero-length array dimension must be rejected")
}

func TestShaderReturningValueIsRejected(t *testing.T) {
	_, sink := checkSource(t, `
		surface s() {
			return 1;
		}
	`)
	assert.Greater(t, sink.ErrorCount(), 0, "shaders cannot return a value")
}

func TestUnknownIdentifierReportsError(t *testing.T) {
	_, sink := checkSource(t, `
		void f() {
			int a = doesNotExist;
		}
	`)
	assert.Greater(t, sink.ErrorCount(), 0)
}

func TestAssignmentToParameterRequiresOutput(t *testing.T) {
	_, sink := checkSource(t, `
		void f(int x) {
			x = 1;
		}
	`)
	assert.Greater(t, sink.ErrorCount(), 0, "a non-output parameter cannot be assigned to")

	_, sink2 := checkSource(t, `
		void f(output int x) {
			x = 1;
		}
	`)
	assert.Equal(t, 0, sink2.ErrorCount())
}

func TestBreakOutsideLoopIsRejected(t *testing.T) {
	_, sink := checkSource(t, `
		void f() {
			break;
		}
	`)
	assert.Greater(t, sink.ErrorCount(), 0)
}

func TestStructConstructorArityMustMatchFieldCount(t *testing.T) {
	_, sink := checkSource(t, `
		struct Pair { int a; int b; };
		void f() {
			Pair p = Pair(1);
		}
	`)
	assert.Greater(t, sink.ErrorCount(), 0, "too few initializers must be rejected")
}

func TestFloatToIntConversionIsRejected(t *testing.T) {
	// float->int has no coercion rank at all (it's narrowing, not
	// widening), so this is a hard error rather than a warning.
	_, sink := checkSource(t, `
		void f() {
			float x = 1.5;
			int y = x;
		}
	`)
	assert.Greater(t, sink.ErrorCount(), 0, "narrowing float->int must be rejected")
}

func TestIncompleteStructInitializerWarns(t *testing.T) {
	_, sink := checkSource(t, `
		struct Pair { int a; int b; };
		void f() {
			Pair p = {1};
		}
	`)
	assert.Equal(t, 0, sink.ErrorCount())
	assert.Greater(t, sink.WarnCount(), 0, "a brace-initializer with fewer elements than fields must warn, not error")
}

func TestRedefinitionOfFunctionWithSameSignatureErrors(t *testing.T) {
	_, sink := checkSource(t, `
		int f(int x) { return x; }
		int f(int x) { return x; }
	`)
	assert.Greater(t, sink.ErrorCount(), 0)
}
