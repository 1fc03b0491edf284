package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madmann91/nosl/internal/typesys"
)

func TestOperatorSymbolFormat(t *testing.T) {
	assert.Equal(t, "__operator__+__", OperatorSymbol("+"))
}

func TestScalarConstructorsCoverAllCrossPairs(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	ctors := reg.Constructors(typesys.Int)
	require.Len(t, ctors, 3)

	var froms []typesys.PrimTag
	for _, c := range ctors {
		require.Len(t, c.Params, 1)
		froms = append(froms, c.Params[0].Type.Prim)
	}
	assert.ElementsMatch(t, []typesys.PrimTag{typesys.Bool, typesys.Int, typesys.Float}, froms)
}

func TestTripleConstructorInventory(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	ctors := reg.Constructors(typesys.Color)
	// from-float, from-3-floats, from-space+3-floats, + 3 other triples = 6
	require.Len(t, ctors, 6)
}

func TestScalarArithmeticOperators(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	adds := reg.Operators(OperatorSymbol("+"))
	var sawInt, sawFloat bool
	for _, o := range adds {
		if len(o.Params) == 2 && o.Params[0].Type.Prim == typesys.Int && o.Ret.Prim == typesys.Int {
			sawInt = true
		}
		if len(o.Params) == 2 && o.Params[0].Type.Prim == typesys.Float && o.Ret.Prim == typesys.Float {
			sawFloat = true
		}
	}
	assert.True(t, sawInt)
	assert.True(t, sawFloat)
}

func TestIncDecOperandsAreOutput(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	preInc := reg.Operators(OperatorSymbol("++pre"))
	require.NotEmpty(t, preInc)
	for _, o := range preInc {
		assert.True(t, o.Params[0].IsOutput)
	}
}

func TestColorSubReturnsColor(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	subs := reg.Operators(OperatorSymbol("-"))
	found := false
	for _, o := range subs {
		if len(o.Params) == 2 && o.Params[0].Type.Prim == typesys.Color {
			assert.Equal(t, typesys.Color, o.Ret.Prim, "color - color must return color, not vector")
			found = true
		}
	}
	assert.True(t, found)
}

func TestPointSubReturnsVector(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	subs := reg.Operators(OperatorSymbol("-"))
	found := false
	for _, o := range subs {
		if len(o.Params) == 2 && o.Params[0].Type.Prim == typesys.Point {
			assert.Equal(t, typesys.Vector, o.Ret.Prim, "point - point must return vector")
			found = true
		}
	}
	assert.True(t, found)
}

func TestMatrixOperators(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	muls := reg.Operators(OperatorSymbol("*"))
	found := false
	for _, o := range muls {
		if len(o.Params) == 2 && o.Params[0].Type.Prim == typesys.Matrix {
			assert.Equal(t, typesys.Matrix, o.Ret.Prim)
			found = true
		}
	}
	assert.True(t, found)
}

func TestEqCoversEveryPrimitive(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)

	eqs := reg.Operators(OperatorSymbol("=="))
	prims := map[typesys.PrimTag]bool{}
	for _, o := range eqs {
		if len(o.Params) == 2 {
			prims[o.Params[0].Type.Prim] = true
		}
	}
	for _, want := range []typesys.PrimTag{
		typesys.Bool, typesys.Int, typesys.Float, typesys.String,
		typesys.Color, typesys.Point, typesys.Vector, typesys.Normal, typesys.Matrix,
	} {
		assert.True(t, prims[want], "expected eq overload for %s", want)
	}
}

func TestConstructorsNotRegisteredAsOperators(t *testing.T) {
	tbl := typesys.NewTable()
	reg := New(tbl)
	assert.Empty(t, reg.Operators("color"), "constructors must not appear under a plain type-name operator symbol")
}
