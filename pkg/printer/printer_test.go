package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/diag"
	"github.com/madmann91/nosl/internal/lexer"
	"github.com/madmann91/nosl/internal/parser"
	"github.com/madmann91/nosl/pkg/printer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	sink := diag.NewDefault("test.osl", src, true, false, diag.Limits{MaxErrors: 64})
	lex := lexer.New("test.osl", src)
	prog := parser.New(lex, sink).Parse()
	require.Empty(t, lex.Errors())
	require.Equal(t, 0, sink.ErrorCount())
	return prog
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog := parseProgram(t, "void f() { "+src+"; }")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	return fn.Body.Stmts[0].(*ast.ExprStmt).Expr
}

func TestPrinterLeavesUnambiguousPrecedenceBare(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "a + b * c")
	assert.Equal(t, "a + b * c", p.PrintExpr(e))
}

func TestPrinterReparenthesisesLeftAssociativeSubtraction(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "a - (b - c)")
	assert.Equal(t, "a - (b - c)", p.PrintExpr(e))
}

func TestPrinterDropsRedundantParensOnSamePrecedenceLeftOperand(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "(a - b) - c")
	assert.Equal(t, "a - b - c", p.PrintExpr(e))
}

func TestPrinterHandlesMixedPrecedence(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "(a + b) * c")
	assert.Equal(t, "(a + b) * c", p.PrintExpr(e))
}

func TestPrinterHandlesTernaryNesting(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "a ? b : c ? d : e")
	assert.Equal(t, "a ? b : c ? d : e", p.PrintExpr(e))
}

func TestPrinterParenthesisesTernaryInCondPosition(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "(a ? b : c) ? d : e")
	assert.Equal(t, "(a ? b : c) ? d : e", p.PrintExpr(e))
}

func TestPrinterUnaryOnBinaryOperandNeedsParens(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "-(a + b)")
	assert.Equal(t, "-(a + b)", p.PrintExpr(e))
}

func TestPrinterPostfixBaseNeedsParens(t *testing.T) {
	p := printer.New(nil)
	e := parseExpr(t, "(a + b).x")
	assert.Equal(t, "(a + b).x", p.PrintExpr(e))
}

func TestPrinterRendersFunctionDeclaration(t *testing.T) {
	prog := parseProgram(t, `
		float add(float a, float b) {
			return a + b;
		}
	`)
	out := printer.New(nil).Print(prog)
	assert.Contains(t, out, "float add(float a, float b) {")
	assert.Contains(t, out, "return a + b;")
}

func TestPrinterRendersStructDeclaration(t *testing.T) {
	prog := parseProgram(t, `
		struct Pair { int a; int b; };
	`)
	out := printer.New(nil).Print(prog)
	assert.Contains(t, out, "struct Pair {")
	assert.Contains(t, out, "int a;")
	assert.Contains(t, out, "int b;")
}
