package check

import (
	"strings"

	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/builtins"
	"github.com/madmann91/nosl/internal/token"
	"github.com/madmann91/nosl/internal/typesys"
)

// candidate is one overload under consideration by resolveCall: either a
// user-declared function/shader (decl set, for "previously declared
// here"-style notes) or a built-in operator/constructor overload (decl
// nil). Grounded on check.c's uniform treatment of struct ast* candidate
// arrays gathered from env_find_all_symbols and builtins_constructors.
type candidate struct {
	typ  *typesys.Type // Tag == Func
	decl ast.Decl
}

func candidatesFromDecls(decls []ast.Decl) []candidate {
	var out []candidate
	for _, d := range decls {
		if ft, ok := funcTypeOf(d); ok {
			out = append(out, candidate{typ: ft, decl: d})
		}
	}
	return out
}

func candidatesFromOverloads(table *typesys.Table, overloads []*builtins.Overload) []candidate {
	out := make([]candidate, len(overloads))
	for i, ov := range overloads {
		out[i] = candidate{typ: table.GetFunc(ov.Ret, ov.Params, false)}
	}
	return out
}

// isViable implements 4.6.2 step 2.
func isViable(cand candidate, args []ast.Expr, expectedRet *typesys.Type) bool {
	ft := cand.typ.Func
	n := len(ft.Params)
	if len(args) < n || (len(args) > n && !ft.HasEllipsis) {
		return false
	}
	for i, param := range ft.Params {
		if param.IsOutput && !isMutable(args[i]) {
			return false
		}
		if !isCoercible(args[i].GetType(), param.Type) {
			return false
		}
	}
	if expectedRet != nil && !isCoercible(ft.Ret, expectedRet) {
		return false
	}
	return true
}

func rankAt(ft *typesys.FuncType, i int, argType *typesys.Type) Rank {
	if i < len(ft.Params) {
		return coercionRank(argType, ft.Params[i].Type)
	}
	return RankEllipsis
}

// isBetter implements 4.6.2 step 3: a is better than b iff a is no worse
// at every argument position and strictly better at some position; ties
// fall back to comparing the return-type rank against expectedRet.
func isBetter(a, b candidate, args []ast.Expr, expectedRet *typesys.Type) bool {
	strictlyBetter := false
	for i, arg := range args {
		ar := rankAt(&a.typ.Func, i, arg.GetType())
		br := rankAt(&b.typ.Func, i, arg.GetType())
		if ar > br {
			return false
		}
		if ar < br {
			strictlyBetter = true
		}
	}
	if strictlyBetter {
		return true
	}
	if expectedRet == nil {
		return false
	}
	return coercionRank(a.typ.Func.Ret, expectedRet) < coercionRank(b.typ.Func.Ret, expectedRet)
}

// findBestCandidate implements 4.6.2 step 4 over an already-viable set.
func findBestCandidate(cands []candidate, args []ast.Expr, expectedRet *typesys.Type) (candidate, bool) {
	best := cands[0]
	for _, cand := range cands[1:] {
		if isBetter(cand, best, args, expectedRet) {
			best = cand
		}
	}
	for _, cand := range cands {
		if cand.decl == best.decl && cand.typ == best.typ {
			continue
		}
		if !isBetter(best, cand, args, expectedRet) {
			return candidate{}, true // ambiguous
		}
	}
	return best, false
}

func signatureString(ret *typesys.Type, args []ast.Expr) string {
	var sb strings.Builder
	if ret != nil {
		sb.WriteString(ret.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.GetType().String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// resolveCall runs the full 4.6.2 pipeline against a pre-gathered
// candidate list and reports no-viable-candidate / ambiguous-call
// diagnostics. It returns the chosen candidate, or nil if resolution
// failed (already diagnosed).
func (c *Checker) resolveCall(pos token.Position, name string, cands []candidate, args []ast.Expr, expectedRet *typesys.Type) *candidate {
	var viable []candidate
	for _, cand := range cands {
		if isViable(cand, args, expectedRet) {
			viable = append(viable, cand)
		}
	}
	if len(viable) == 0 {
		c.sink.Error(pos, "no viable candidate for call to %q with signature %q", name, signatureString(expectedRet, args))
		for _, cand := range cands {
			if cand.decl != nil {
				c.sink.Note(cand.decl.Pos(), "candidate with type %q", cand.typ)
			}
		}
		return nil
	}
	if len(viable) == 1 {
		return &viable[0]
	}
	best, ambiguous := findBestCandidate(viable, args, expectedRet)
	if ambiguous {
		c.sink.Error(pos, "ambiguous call to %q with signature %q", name, signatureString(expectedRet, args))
		for _, cand := range viable {
			if cand.decl != nil {
				c.sink.Note(cand.decl.Pos(), "candidate with type %q", cand.typ)
			}
		}
		return nil
	}
	return &best
}
