package typesys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPrimIsCanonical(t *testing.T) {
	tbl := NewTable()
	a := tbl.GetPrim(Int)
	b := tbl.GetPrim(Int)
	assert.Same(t, a, b)
	assert.NotSame(t, a, tbl.GetPrim(Float))
}

func TestGetArraySizedIsCanonical(t *testing.T) {
	tbl := NewTable()
	elem := tbl.GetPrim(Float)
	a := tbl.GetArraySized(elem, 4)
	b := tbl.GetArraySized(elem, 4)
	assert.Same(t, a, b)
	assert.NotSame(t, a, tbl.GetArraySized(elem, 5))
}

func TestGetArrayUnsizedDistinctFromSized(t *testing.T) {
	tbl := NewTable()
	elem := tbl.GetPrim(Int)
	unsized := tbl.GetArrayUnsized(elem)
	assert.True(t, unsized.IsUnsizedArray())
	assert.NotSame(t, unsized, tbl.GetArraySized(elem, 1))
}

func TestGetFuncComparesParamsElementwise(t *testing.T) {
	tbl := NewTable()
	ret := tbl.GetPrim(Void)
	intT := tbl.GetPrim(Int)
	floatT := tbl.GetPrim(Float)

	a := tbl.GetFunc(ret, []Param{{Type: intT}, {Type: floatT, IsOutput: true}}, false)
	b := tbl.GetFunc(ret, []Param{{Type: intT}, {Type: floatT, IsOutput: true}}, false)
	assert.Same(t, a, b)

	c := tbl.GetFunc(ret, []Param{{Type: intT}, {Type: floatT, IsOutput: false}}, false)
	assert.NotSame(t, a, c, "differing is_output must produce a distinct type")
}

func TestStructTypesAreNominal(t *testing.T) {
	tbl := NewTable()
	s1 := tbl.CreateStruct(1)
	s1.Struct.Name = "Point2"
	s1.Struct.Fields[0] = Field{Name: "x", Type: tbl.GetPrim(Float)}
	tbl.FinalizeStruct(s1)

	s2 := tbl.CreateStruct(1)
	s2.Struct.Name = "Point2"
	s2.Struct.Fields[0] = Field{Name: "x", Type: tbl.GetPrim(Float)}
	tbl.FinalizeStruct(s2)

	assert.NotSame(t, s1, s2, "structurally identical struct decls must still be distinct types")
}

func TestErrorTypeIsSingleton(t *testing.T) {
	tbl := NewTable()
	assert.Same(t, tbl.GetError(), tbl.GetError())
	assert.True(t, tbl.GetError().IsError())
}

func TestClosureWrapsInnerIdentity(t *testing.T) {
	tbl := NewTable()
	color := tbl.GetPrim(Color)
	a := tbl.GetClosure(color)
	b := tbl.GetClosure(color)
	assert.Same(t, a, b)
}

func TestCompoundTypeIsNotInterned(t *testing.T) {
	tbl := NewTable()
	intT := tbl.GetPrim(Int)
	a := tbl.NewCompound([]*Type{intT, intT})
	b := tbl.NewCompound([]*Type{intT, intT})
	assert.NotSame(t, a, b, "compound types are transient and never hash-consed")
}

func TestPrimTagHelpers(t *testing.T) {
	assert.True(t, Color.IsTriple())
	assert.False(t, Color.IsPointLike())
	assert.True(t, Vector.IsPointLike())
	assert.Equal(t, 3, Point.ComponentCount())
	assert.Equal(t, 16, Matrix.ComponentCount())
	assert.Equal(t, 1, Int.ComponentCount())
}
