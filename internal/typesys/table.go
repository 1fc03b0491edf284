package typesys

import (
	"fmt"
	"strings"
)

// Table interns types so that equal types share identity: every getter
// returns the same *Type pointer for the same structural arguments.
// Struct types are the one exception — each declaration gets a fresh,
// nominally-distinct *Type.
type Table struct {
	interned map[string]*Type
	nextID   int
}

// NewTable creates an empty, ready-to-use type table.
func NewTable() *Table {
	return &Table{interned: make(map[string]*Type)}
}

func (t *Table) intern(key string, build func() *Type) *Type {
	if ty, ok := t.interned[key]; ok {
		return ty
	}
	ty := build()
	ty.id = t.nextID
	t.nextID++
	t.interned[key] = ty
	return ty
}

// GetError returns the singleton error type.
func (t *Table) GetError() *Type {
	return t.intern("error", func() *Type { return &Type{Tag: Error} })
}

// GetPrim returns the canonical Type for the given primitive tag.
func (t *Table) GetPrim(tag PrimTag) *Type {
	key := fmt.Sprintf("prim:%d", tag)
	return t.intern(key, func() *Type { return &Type{Tag: Prim, Prim: tag} })
}

// GetShader returns the canonical Type for the given shader kind.
func (t *Table) GetShader(tag ShaderTag) *Type {
	key := fmt.Sprintf("shader:%d", tag)
	return t.intern(key, func() *Type { return &Type{Tag: Shader, Shader: tag} })
}

// GetClosure returns the canonical closure(inner) type.
func (t *Table) GetClosure(inner *Type) *Type {
	key := fmt.Sprintf("closure:%d", inner.id)
	return t.intern(key, func() *Type { return &Type{Tag: Closure, Closure: inner} })
}

// GetArraySized returns the canonical array(elem, n) type. n must be > 0;
// callers needing an unsized array use GetArrayUnsized instead.
func (t *Table) GetArraySized(elem *Type, n int) *Type {
	if n <= 0 {
		panic("typesys: GetArraySized requires a positive count")
	}
	key := fmt.Sprintf("array:%d:%d", elem.id, n)
	return t.intern(key, func() *Type { return &Type{Tag: Array, Array: ArrayType{Elem: elem, Count: n}} })
}

// GetArrayUnsized returns the canonical unsized array(elem) type.
func (t *Table) GetArrayUnsized(elem *Type) *Type {
	key := fmt.Sprintf("array:%d:unsized", elem.id)
	return t.intern(key, func() *Type { return &Type{Tag: Array, Array: ArrayType{Elem: elem, Count: 0}} })
}

// GetFunc returns the canonical func(ret, params, has_ellipsis) type.
// Parameters are compared element-wise on (type identity, is_output).
func (t *Table) GetFunc(ret *Type, params []Param, hasEllipsis bool) *Type {
	var sb strings.Builder
	fmt.Fprintf(&sb, "func:%d:%v:", ret.id, hasEllipsis)
	for _, p := range params {
		fmt.Fprintf(&sb, "%d,%v;", p.Type.id, p.IsOutput)
	}
	key := sb.String()
	return t.intern(key, func() *Type {
		cp := make([]Param, len(params))
		copy(cp, params)
		return &Type{Tag: Func, Func: FuncType{Ret: ret, Params: cp, HasEllipsis: hasEllipsis}}
	})
}

// CreateStruct allocates a fresh, nominally-unique struct type with
// fieldCount uninitialised field slots. Callers fill in Struct.Fields and
// Struct.Name, then call FinalizeStruct.
func (t *Table) CreateStruct(fieldCount int) *Type {
	ty := &Type{
		Tag:    Struct,
		Struct: &StructType{Fields: make([]Field, fieldCount)},
		id:     t.nextID,
	}
	ty.Struct.id = ty.id
	t.nextID++
	// Struct types are never interned by structural key (each declaration
	// is nominally distinct), but they're tracked for ID bookkeeping.
	t.interned[fmt.Sprintf("struct#%d", ty.id)] = ty
	return ty
}

// FinalizeStruct finalizes a struct type created by CreateStruct, after
// its Name and Fields have been populated. In the original C
// implementation this interns field/struct names into a shared string
// pool; Go string interning is unnecessary since Go strings are already
// immutable values compared by content.
func (t *Table) FinalizeStruct(ty *Type) {
	if ty.Tag != Struct {
		panic("typesys: FinalizeStruct called on a non-struct type")
	}
}

// NewCompound builds the inferred type of a brace-initialiser. Unlike the
// other variants, compound types are not hash-consed: they're transient,
// produced fresh by the checker for each `{...}` expression and discarded
// once coerced to a concrete struct or array type.
func (t *Table) NewCompound(elems []*Type) *Type {
	cp := make([]*Type, len(elems))
	copy(cp, elems)
	ty := &Type{Tag: Compound, Compound: cp, id: t.nextID}
	t.nextID++
	return ty
}
