// Package builtins synthesizes the two built-in families every nosl
// program starts with: per-primitive constructors, consulted directly by
// the constructor-expression checker, and a flat table of overloaded
// operator functions, which the checker looks up by operator symbol in
// this Registry. Neither family is inserted into the symbol environment.
package builtins

import (
	"fmt"

	"github.com/madmann91/nosl/internal/typesys"
)

// OperatorSymbol returns the environment name an operator is registered
// under, e.g. OperatorSymbol("+") == "__operator__+__".
func OperatorSymbol(op string) string {
	return fmt.Sprintf("__operator__%s__", op)
}

// Overload is one constructor or operator signature.
type Overload struct {
	Params []typesys.Param
	Ret    *typesys.Type
}

// Registry holds every constructor and operator overload, built once
// against a type table and shared read-only from then on.
type Registry struct {
	constructors map[typesys.PrimTag][]*Overload
	operators    map[string][]*Overload
}

// Constructors returns the constructor overload list for prim, or nil if
// prim has no constructors (e.g. string, void, matrix).
func (r *Registry) Constructors(prim typesys.PrimTag) []*Overload {
	return r.constructors[prim]
}

// Operators returns every overload registered under operator symbol name
// (see OperatorSymbol), for use by find_all-style overload resolution.
func (r *Registry) Operators(name string) []*Overload {
	return r.operators[name]
}

// New builds the full built-in inventory against table.
func New(table *typesys.Table) *Registry {
	r := &Registry{
		constructors: make(map[typesys.PrimTag][]*Overload),
		operators:    make(map[string][]*Overload),
	}
	registerScalarConstructors(r, table)
	registerTripleConstructors(r, table)
	registerScalarOperators(r, table)
	for _, tag := range []typesys.PrimTag{typesys.Color, typesys.Vector, typesys.Point, typesys.Normal} {
		registerTripleOperators(r, table, tag)
	}
	registerMatrixOperators(r, table)
	return r
}

func addCtor(r *Registry, prim typesys.PrimTag, params []typesys.Param, ret *typesys.Type) {
	r.constructors[prim] = append(r.constructors[prim], &Overload{Params: params, Ret: ret})
}

func addOp(r *Registry, op string, params []typesys.Param, ret *typesys.Type) {
	sym := OperatorSymbol(op)
	r.operators[sym] = append(r.operators[sym], &Overload{Params: params, Ret: ret})
}

func p(t *typesys.Type) typesys.Param          { return typesys.Param{Type: t} }
func pOut(t *typesys.Type) typesys.Param       { return typesys.Param{Type: t, IsOutput: true} }

// registerScalarConstructors gives bool, int, and float a one-arg
// constructor from each of float, int, and bool — including an
// effectively-identity constructor from their own type.
func registerScalarConstructors(r *Registry, t *typesys.Table) {
	scalars := []typesys.PrimTag{typesys.Bool, typesys.Int, typesys.Float}
	for _, target := range scalars {
		ret := t.GetPrim(target)
		for _, from := range scalars {
			addCtor(r, target, []typesys.Param{p(t.GetPrim(from))}, ret)
		}
	}
}

// registerTripleConstructors gives each triple (color, point, vector,
// normal) a constructor from a single float (broadcast to all
// components), from three floats (one per component), from a named
// coordinate space plus three floats, and from each of the other three
// triples.
//
// The original builtins.c additionally registers a from-self variant
// (four triple-to-triple overloads, not three) and calls the
// triple-operator registration for color twice; both are harmless
// redundancies in a linked-list-based registry with no behavioral effect,
// and are not reproduced here — see DESIGN.md.
func registerTripleConstructors(r *Registry, t *typesys.Table) {
	triples := []typesys.PrimTag{typesys.Color, typesys.Point, typesys.Vector, typesys.Normal}
	floatT := t.GetPrim(typesys.Float)
	stringT := t.GetPrim(typesys.String)

	for _, target := range triples {
		ret := t.GetPrim(target)

		addCtor(r, target, []typesys.Param{p(floatT)}, ret)
		addCtor(r, target, []typesys.Param{p(floatT), p(floatT), p(floatT)}, ret)
		addCtor(r, target, []typesys.Param{p(stringT), p(floatT), p(floatT), p(floatT)}, ret)

		for _, from := range triples {
			if from == target {
				continue
			}
			addCtor(r, target, []typesys.Param{p(t.GetPrim(from))}, ret)
		}
	}
}

// registerScalarOperators covers arithmetic/comparison on int and float,
// bitwise/logical on int and bool, and eq/ne on every scalar primitive
// (bool, int, float, string).
func registerScalarOperators(r *Registry, t *typesys.Table) {
	intT := t.GetPrim(typesys.Int)
	floatT := t.GetPrim(typesys.Float)
	boolT := t.GetPrim(typesys.Bool)
	stringT := t.GetPrim(typesys.String)

	for _, ty := range []*typesys.Type{intT, floatT} {
		addOp(r, "+", []typesys.Param{p(ty), p(ty)}, ty)
		addOp(r, "-", []typesys.Param{p(ty), p(ty)}, ty)
		addOp(r, "*", []typesys.Param{p(ty), p(ty)}, ty)
		addOp(r, "/", []typesys.Param{p(ty), p(ty)}, ty)
		addOp(r, "%", []typesys.Param{p(ty), p(ty)}, ty)
		addOp(r, "<", []typesys.Param{p(ty), p(ty)}, boolT)
		addOp(r, "<=", []typesys.Param{p(ty), p(ty)}, boolT)
		addOp(r, ">", []typesys.Param{p(ty), p(ty)}, boolT)
		addOp(r, ">=", []typesys.Param{p(ty), p(ty)}, boolT)
		addOp(r, "neg", []typesys.Param{p(ty)}, ty)
		addOp(r, "++pre", []typesys.Param{pOut(ty)}, ty)
		addOp(r, "--pre", []typesys.Param{pOut(ty)}, ty)
		addOp(r, "++post", []typesys.Param{pOut(ty)}, ty)
		addOp(r, "--post", []typesys.Param{pOut(ty)}, ty)
	}

	for _, ty := range []*typesys.Type{intT, boolT} {
		addOp(r, "!", []typesys.Param{p(ty)}, ty)
		addOp(r, "~", []typesys.Param{p(ty)}, ty)
		addOp(r, "&", []typesys.Param{p(ty), p(ty)}, ty)
		addOp(r, "^", []typesys.Param{p(ty), p(ty)}, ty)
		addOp(r, "|", []typesys.Param{p(ty), p(ty)}, ty)
	}

	for _, ty := range []*typesys.Type{boolT, intT, floatT, stringT} {
		addOp(r, "==", []typesys.Param{p(ty), p(ty)}, boolT)
		addOp(r, "!=", []typesys.Param{p(ty), p(ty)}, boolT)
	}
}

// registerTripleOperators registers add/sub/mul/div/eq/ne/neg for one
// triple kind. sub and neg return vector except for color, which returns
// its own kind (matrix is handled separately by registerMatrixOperators,
// which follows the same neg-returns-self rule).
func registerTripleOperators(r *Registry, t *typesys.Table, tag typesys.PrimTag) {
	ty := t.GetPrim(tag)
	boolT := t.GetPrim(typesys.Bool)

	negOrSubType := ty
	if tag != typesys.Color {
		negOrSubType = t.GetPrim(typesys.Vector)
	}

	addOp(r, "+", []typesys.Param{p(ty), p(ty)}, ty)
	addOp(r, "-", []typesys.Param{p(ty), p(ty)}, negOrSubType)
	addOp(r, "*", []typesys.Param{p(ty), p(ty)}, ty)
	addOp(r, "/", []typesys.Param{p(ty), p(ty)}, ty)
	addOp(r, "==", []typesys.Param{p(ty), p(ty)}, boolT)
	addOp(r, "!=", []typesys.Param{p(ty), p(ty)}, boolT)
	addOp(r, "neg", []typesys.Param{p(ty)}, negOrSubType)
}

// registerMatrixOperators registers matrix arithmetic: add/sub/mul/div
// and eq/ne/neg all stay within matrix (matrix is its own neg-or-sub
// type, like color).
func registerMatrixOperators(r *Registry, t *typesys.Table) {
	ty := t.GetPrim(typesys.Matrix)
	boolT := t.GetPrim(typesys.Bool)

	addOp(r, "+", []typesys.Param{p(ty), p(ty)}, ty)
	addOp(r, "-", []typesys.Param{p(ty), p(ty)}, ty)
	addOp(r, "*", []typesys.Param{p(ty), p(ty)}, ty)
	addOp(r, "/", []typesys.Param{p(ty), p(ty)}, ty)
	addOp(r, "==", []typesys.Param{p(ty), p(ty)}, boolT)
	addOp(r, "!=", []typesys.Param{p(ty), p(ty)}, boolT)
	addOp(r, "neg", []typesys.Param{p(ty)}, ty)
}
