package printer

import (
	"strconv"
	"strings"

	"github.com/madmann91/nosl/internal/ast"
)

// Precedence levels, loosest first, mirroring
// internal/parser/parser.go's binaryPrec levels and adding unary,
// postfix and atom levels above them — a pretty
// printer needs the same ordering the parser used to decide when
// re-parenthesising a binary expression is required to preserve
// meaning.
const (
	precNone int = iota
	precAssign
	precTernary
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
	precAtom
)

var binOpPrec = map[string]int{
	"=": precAssign, "+=": precAssign, "-=": precAssign, "*=": precAssign, "/=": precAssign,
	"%=": precAssign, "&=": precAssign, "|=": precAssign, "^=": precAssign, "<<=": precAssign, ">>=": precAssign,

	"||": precLogicalOr,
	"&&": precLogicalAnd,
	"|":  precBitOr,
	"^":  precBitXor,
	"&":  precBitAnd,

	"==": precEquality, "!=": precEquality,

	"<": precRelational, "<=": precRelational, ">": precRelational, ">=": precRelational,

	"<<": precShift, ">>": precShift,

	"+": precAdditive, "-": precAdditive,

	"*": precMultiplicative, "/": precMultiplicative, "%": precMultiplicative,
}

// Printer reconstructs source text from a checked or unchecked program
// tree, faithful to operator precedence — a binary sub-expression is
// re-parenthesised only when the original parse could not otherwise be
// recovered from a flat infix rendering. It is not a formatter: spacing
// is uniform, not configurable, and the output is not meant to
// round-trip byte-for-byte.
type Printer struct {
	Style *Style
}

// New returns a Printer using style (nil means no coloring).
func New(style *Style) *Printer {
	if style == nil {
		style = NewStyle(false)
	}
	return &Printer{Style: style}
}

// Print renders an entire program, one declaration per top-level block.
func (p *Printer) Print(prog *ast.Program) string {
	var sb strings.Builder
	for i, d := range prog.Decls {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.printDecl(d))
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrintExpr renders a single expression, for tests and REPL-style tools.
func (p *Printer) PrintExpr(e ast.Expr) string { return p.printExpr(e) }

// nodePrec returns the precedence level of e, and whether it associates
// to the right. Atoms (literals, identifiers) and postfix forms report
// precAtom/precPostfix and so are never wrapped. A ParenExpr reports the
// level of its inner expression: source parentheses are not printed as
// such, and needsParens re-adds only the ones the grouping requires.
func nodePrec(e ast.Expr) (prec int, rightAssoc bool) {
	switch n := e.(type) {
	case *ast.ParenExpr:
		return nodePrec(n.Inner)
	case *ast.BinaryExpr:
		if n.IsAssign() {
			return precAssign, true
		}
		if pr, ok := binOpPrec[n.Operator]; ok {
			return pr, false
		}
		return precNone, false
	case *ast.TernaryExpr:
		return precTernary, true
	case *ast.UnaryExpr:
		return precUnary, false
	case *ast.CastExpr:
		if n.Implicit {
			return nodePrec(n.Operand)
		}
		return precUnary, false
	case *ast.IndexExpr, *ast.ProjExpr, *ast.CallExpr, *ast.ConstructExpr:
		return precPostfix, false
	default:
		return precAtom, false
	}
}

// needsParens reports whether child, appearing as an operand of a node
// at parentPrec (right-associative or not), must be wrapped to preserve
// the original grouping.
func needsParens(child ast.Expr, parentPrec int, isRightOperand, parentRightAssoc bool) bool {
	childPrec, _ := nodePrec(child)
	if childPrec < parentPrec {
		return true
	}
	if childPrec == parentPrec {
		if parentRightAssoc {
			return !isRightOperand
		}
		return isRightOperand
	}
	return false
}

func (p *Printer) printExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.BoolLiteral:
		return p.Style.literal(strconv.FormatBool(n.Value))
	case *ast.IntLiteral:
		return p.Style.literal(n.Tok.Literal)
	case *ast.FloatLiteral:
		return p.Style.literal(n.Tok.Literal)
	case *ast.StringLiteral:
		return p.Style.literal(strconv.Quote(n.Value))
	case *ast.Ident:
		return p.Style.ident(n.Name)
	case *ast.BinaryExpr:
		return p.printBinary(n)
	case *ast.UnaryExpr:
		return p.printUnary(n)
	case *ast.CallExpr:
		return p.printPostfixBase(n.Callee) + "(" + p.printExprList(n.Args) + ")"
	case *ast.ConstructExpr:
		return n.Target.String() + "(" + p.printExprList(n.Args) + ")"
	case *ast.ParenExpr:
		return p.printExpr(n.Inner)
	case *ast.CompoundExpr:
		return "(" + p.printExprList(n.Elems) + ")"
	case *ast.BraceInit:
		return "{" + p.printExprList(n.Elems) + "}"
	case *ast.TernaryExpr:
		return p.printTernary(n)
	case *ast.IndexExpr:
		return p.printPostfixBase(n.Base) + "[" + p.printExpr(n.Index) + "]"
	case *ast.ProjExpr:
		return p.printPostfixBase(n.Base) + "." + n.Field
	case *ast.CastExpr:
		if n.Implicit {
			return p.printExpr(n.Operand)
		}
		return "(" + n.Target.String() + ")" + p.printPostfixBase(n.Operand)
	case *ast.ErrorNode:
		return "<error>"
	default:
		return e.String()
	}
}

// printExprList renders a comma-separated list, no parenthesis rules
// of its own — every element there is already at "argument" position,
// which binds as loosely as assignment in the grammar, so only
// assignment-or-looser expressions (which cannot appear unparenthesised
// in an argument list to begin with) would ever need wrapping.
func (p *Printer) printExprList(elems []ast.Expr) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = p.printExpr(e)
	}
	return strings.Join(parts, ", ")
}

// printPostfixBase renders base, the receiver of a call/index/projection,
// wrapping it in parens if its own precedence is looser than postfix
// binding (e.g. `(a + b).x`).
func (p *Printer) printPostfixBase(base ast.Expr) string {
	s := p.printExpr(base)
	if needsParens(base, precPostfix, false, false) {
		return "(" + s + ")"
	}
	return s
}

func (p *Printer) printBinary(b *ast.BinaryExpr) string {
	prec, rightAssoc := nodePrec(b)
	left := p.printExpr(b.Left)
	if needsParens(b.Left, prec, false, rightAssoc) {
		left = "(" + left + ")"
	}
	right := p.printExpr(b.Right)
	if needsParens(b.Right, prec, true, rightAssoc) {
		right = "(" + right + ")"
	}
	return left + " " + p.Style.operator(b.Operator) + " " + right
}

func (p *Printer) printUnary(u *ast.UnaryExpr) string {
	operand := p.printExpr(u.Operand)
	if cp, _ := nodePrec(u.Operand); cp < precUnary {
		operand = "(" + operand + ")"
	}
	op := p.Style.operator(u.Operator)
	if u.Postfix {
		return operand + op
	}
	return op + operand
}

func (p *Printer) printTernary(t *ast.TernaryExpr) string {
	cond := p.printExpr(t.Cond)
	if cp, _ := nodePrec(t.Cond); cp <= precTernary {
		cond = "(" + cond + ")"
	}
	then := p.printExpr(t.Then)
	if cp, _ := nodePrec(t.Then); cp <= precTernary {
		then = "(" + then + ")"
	}
	// The else-branch associates right, so a nested ternary there
	// prints flat: `a ? b : c ? d : e`.
	elseStr := p.printExpr(t.Else)
	if cp, _ := nodePrec(t.Else); cp < precTernary {
		elseStr = "(" + elseStr + ")"
	}
	return cond + " ? " + then + " : " + elseStr
}
