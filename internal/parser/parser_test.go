package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/diag"
	"github.com/madmann91/nosl/internal/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.DefaultSink) {
	t.Helper()
	lex := lexer.New("test.nosl", src)
	sink := diag.NewDefault("test.nosl", src, true, false, diag.Limits{})
	p := New(lex, sink)
	return p.Parse(), sink
}

func TestParseSimpleVarGroup(t *testing.T) {
	prog, sink := parse(t, "int a, b = 2;")
	require.Equal(t, 0, sink.ErrorCount())
	require.Len(t, prog.Decls, 1)
	g, ok := prog.Decls[0].(*ast.VarGroupDecl)
	require.True(t, ok)
	require.Len(t, g.Vars, 2)
	assert.Equal(t, "a", g.Vars[0].Name)
	assert.Equal(t, "b", g.Vars[1].Name)
	assert.NotNil(t, g.Vars[1].Init)
}

func TestParseFunctionDecl(t *testing.T) {
	prog, sink := parse(t, "float f(float x) { return x; }")
	require.Equal(t, 0, sink.ErrorCount())
	require.Len(t, prog.Decls, 1)
	fn, ok := prog.Decls[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	require.Len(t, fn.Params, 1)
	require.Len(t, fn.Body.Stmts, 1)
	_, ok = fn.Body.Stmts[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParseShaderDeclRequiresDefaults(t *testing.T) {
	_, sink := parse(t, "surface s(float Kd) {}")
	assert.Equal(t, 1, sink.ErrorCount())
}

func TestParseShaderDeclWithMeta(t *testing.T) {
	prog, sink := parse(t, `surface s(float Kd = 0.5 [[ string help = "diffuse" ]]) {}`)
	require.Equal(t, 0, sink.ErrorCount())
	sh := prog.Decls[0].(*ast.ShaderDecl)
	require.Len(t, sh.Params, 1)
	require.Len(t, sh.Params[0].Meta, 1)
	assert.Equal(t, "help", sh.Params[0].Meta[0].Name)
}

func TestParseStructDecl(t *testing.T) {
	prog, sink := parse(t, "struct Pair { float a; float b; };")
	require.Equal(t, 0, sink.ErrorCount())
	s := prog.Decls[0].(*ast.StructDecl)
	assert.Equal(t, "Pair", s.Name)
	assert.Len(t, s.Fields, 2)
}

func TestParseConstructorCall(t *testing.T) {
	prog, sink := parse(t, "color c = color(1.0, 2.0, 3.0);")
	require.Equal(t, 0, sink.ErrorCount())
	g := prog.Decls[0].(*ast.VarGroupDecl)
	ce, ok := g.Vars[0].Init.(*ast.ConstructExpr)
	require.True(t, ok)
	assert.Len(t, ce.Args, 3)
}

func TestParseCastVsParenExpr(t *testing.T) {
	prog, sink := parse(t, "float a = (float)1;")
	require.Equal(t, 0, sink.ErrorCount())
	g := prog.Decls[0].(*ast.VarGroupDecl)
	_, ok := g.Vars[0].Init.(*ast.CastExpr)
	assert.True(t, ok)
}

func TestParseParenExprNotCast(t *testing.T) {
	prog, sink := parse(t, "int a = (1 + 2);")
	require.Equal(t, 0, sink.ErrorCount())
	g := prog.Decls[0].(*ast.VarGroupDecl)
	_, ok := g.Vars[0].Init.(*ast.ParenExpr)
	assert.True(t, ok)
}

func TestParseCompoundExpr(t *testing.T) {
	prog, sink := parse(t, "int a = (1, 2, 3);")
	require.Equal(t, 0, sink.ErrorCount())
	g := prog.Decls[0].(*ast.VarGroupDecl)
	ce, ok := g.Vars[0].Init.(*ast.CompoundExpr)
	require.True(t, ok)
	assert.Len(t, ce.Elems, 3)
}

func TestParseTernaryAboveAssignment(t *testing.T) {
	prog, sink := parse(t, "int a = 1 ? 2 : 3;")
	require.Equal(t, 0, sink.ErrorCount())
	g := prog.Decls[0].(*ast.VarGroupDecl)
	_, ok := g.Vars[0].Init.(*ast.TernaryExpr)
	assert.True(t, ok)
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	prog, sink := parse(t, "void f() { a = b = c; }")
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	es := fn.Body.Stmts[0].(*ast.ExprStmt)
	outer, ok := es.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "=", outer.Operator)
	_, ok = outer.Right.(*ast.BinaryExpr)
	assert.True(t, ok, "b = c must be the RHS of the outer assignment")
}

func TestParseOperatorPrecedence(t *testing.T) {
	prog, sink := parse(t, "int a = 1 + 2 * 3;")
	require.Equal(t, 0, sink.ErrorCount())
	g := prog.Decls[0].(*ast.VarGroupDecl)
	add, ok := g.Vars[0].Init.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", add.Operator)
	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Operator)
}

func TestParseProjectionAndIndex(t *testing.T) {
	prog, sink := parse(t, "float r = c.r; float e = arr[0];")
	require.Equal(t, 0, sink.ErrorCount())
	require.Len(t, prog.Decls, 2)
	g0 := prog.Decls[0].(*ast.VarGroupDecl)
	_, ok := g0.Vars[0].Init.(*ast.ProjExpr)
	assert.True(t, ok)
	g1 := prog.Decls[1].(*ast.VarGroupDecl)
	_, ok = g1.Vars[0].Init.(*ast.IndexExpr)
	assert.True(t, ok)
}

func TestParseForLoop(t *testing.T) {
	prog, sink := parse(t, "void f() { for (int i = 0; i < 10; i++) { } }")
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	forStmt, ok := fn.Body.Stmts[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Post)
}

func TestParseArrayDimError(t *testing.T) {
	_, sink := parse(t, "int a[0];")
	// The parser itself does not reject a non-positive dimension — that is
	// a checker-time structural rule — so this must parse cleanly.
	assert.Equal(t, 0, sink.ErrorCount())
}

func TestParseEllipsisFunction(t *testing.T) {
	prog, sink := parse(t, "void printf(string fmt, ...);")
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	assert.True(t, fn.HasEllipsis)
}

func TestParseAttributeOnFunction(t *testing.T) {
	prog, sink := parse(t, `__attribute__((builtin)) float sin(float x);`)
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	assert.True(t, fn.IsBuiltin())
	assert.Nil(t, fn.Body)
}

func TestParseRecoversFromJunkTopLevelToken(t *testing.T) {
	prog, sink := parse(t, "; int a = 1;")
	assert.GreaterOrEqual(t, sink.ErrorCount(), 1)
	found := false
	for _, d := range prog.Decls {
		if _, ok := d.(*ast.VarGroupDecl); ok {
			found = true
		}
	}
	assert.True(t, found, "parsing should resume after the junk token")
}

func TestParseOutputParam(t *testing.T) {
	prog, sink := parse(t, "void inc(output int x) { x = x + 1; }")
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	require.Len(t, fn.Params, 1)
	assert.True(t, fn.Params[0].IsOutput)
}

func TestParseDoWhile(t *testing.T) {
	prog, sink := parse(t, "void f() { do { } while (1); }")
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	_, ok := fn.Body.Stmts[0].(*ast.DoWhileStmt)
	assert.True(t, ok)
}

func TestParseBreakContinue(t *testing.T) {
	prog, sink := parse(t, "void f() { while (1) { break; continue; } }")
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	w := fn.Body.Stmts[0].(*ast.WhileStmt)
	body := w.Body.(*ast.BlockStmt)
	_, ok := body.Stmts[0].(*ast.BreakStmt)
	assert.True(t, ok)
	_, ok = body.Stmts[1].(*ast.ContinueStmt)
	assert.True(t, ok)
}

func TestParseUnsizedArrayParam(t *testing.T) {
	prog, sink := parse(t, "void f(float x[]) {}")
	require.Equal(t, 0, sink.ErrorCount())
	fn := prog.Decls[0].(*ast.FunctionDecl)
	_, ok := fn.Params[0].Type.(*ast.UnsizedArrayType)
	assert.True(t, ok)
}
