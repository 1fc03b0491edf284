// Package typesys implements the canonical, hash-consed type system of the
// nosl type checker: every structurally-equal type (outside of structs,
// which are nominal) shares a single *Type value, so type equality is
// pointer identity.
package typesys

import "fmt"

// Tag discriminates the variant held by a Type.
type Tag int

const (
	Error Tag = iota
	Prim
	Closure
	Shader
	Array
	Func
	Compound
	Struct
)

func (t Tag) String() string {
	switch t {
	case Error:
		return "error"
	case Prim:
		return "prim"
	case Closure:
		return "closure"
	case Shader:
		return "shader"
	case Array:
		return "array"
	case Func:
		return "func"
	case Compound:
		return "compound"
	case Struct:
		return "struct"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// PrimTag enumerates the primitive (scalar and triple) types.
type PrimTag int

const (
	Bool PrimTag = iota
	Int
	Float
	Color
	Point
	Vector
	Normal
	Matrix
	String
	Void
)

var primNames = [...]string{
	Bool: "bool", Int: "int", Float: "float", Color: "color",
	Point: "point", Vector: "vector", Normal: "normal", Matrix: "matrix",
	String: "string", Void: "void",
}

func (p PrimTag) String() string {
	if int(p) >= 0 && int(p) < len(primNames) {
		return primNames[p]
	}
	return fmt.Sprintf("PrimTag(%d)", int(p))
}

// IsTriple reports whether p is one of the three-component spatial/color
// primitives: color, point, vector, normal.
func (p PrimTag) IsTriple() bool {
	switch p {
	case Color, Point, Vector, Normal:
		return true
	default:
		return false
	}
}

// IsPointLike reports whether p is one of point, vector, normal — the
// triples that coerce to one another at a better rank than to/from color.
func (p PrimTag) IsPointLike() bool {
	switch p {
	case Point, Vector, Normal:
		return true
	default:
		return false
	}
}

// ComponentCount returns the number of scalar components p is made of.
func (p PrimTag) ComponentCount() int {
	switch p {
	case Color, Point, Vector, Normal:
		return 3
	case Matrix:
		return 16
	case Void:
		return 0
	default:
		return 1
	}
}

// ShaderTag enumerates the shader kinds.
type ShaderTag int

const (
	Shader_ ShaderTag = iota
	Surface
	Displacement
	Volume
)

var shaderNames = [...]string{
	Shader_: "shader", Surface: "surface", Displacement: "displacement", Volume: "volume",
}

func (s ShaderTag) String() string {
	if int(s) >= 0 && int(s) < len(shaderNames) {
		return shaderNames[s]
	}
	return fmt.Sprintf("ShaderTag(%d)", int(s))
}

// Param describes one parameter of a func type.
type Param struct {
	Type     *Type
	IsOutput bool
}

// Field describes one field of a struct type.
type Field struct {
	Name string
	Type *Type
}

// ArrayType is the payload of an Array-tagged Type.
type ArrayType struct {
	Elem  *Type
	Count int // 0 means unsized
}

// FuncType is the payload of a Func-tagged Type.
type FuncType struct {
	Ret         *Type
	Params      []Param
	HasEllipsis bool
}

// StructType is the payload of a Struct-tagged Type. Struct identity is
// nominal: two structurally-identical struct declarations still yield
// distinct *Type values.
type StructType struct {
	Name   string
	Fields []Field
	id     int
}

// Type is a tagged variant. Exactly one of the payload fields below is
// meaningful, selected by Tag.
type Type struct {
	Tag Tag

	Prim    PrimTag
	Shader  ShaderTag
	Closure *Type // inner type, only ever Prim(Color) in practice
	Array   ArrayType
	Func    FuncType
	Compound []*Type // element types of a brace-initialiser, pre-coercion
	Struct  *StructType

	id int
}

// String renders the type the way diagnostics print it.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Tag {
	case Error:
		return "<error>"
	case Prim:
		return t.Prim.String()
	case Closure:
		return "closure " + t.Closure.String()
	case Shader:
		return t.Shader.String()
	case Array:
		if t.Array.Count > 0 {
			return fmt.Sprintf("%s[%d]", t.Array.Elem, t.Array.Count)
		}
		return t.Array.Elem.String() + "[]"
	case Func:
		out := t.Func.Ret.String() + "("
		for i, p := range t.Func.Params {
			if i > 0 {
				out += ", "
			}
			if p.IsOutput {
				out += "output "
			}
			out += p.Type.String()
		}
		if t.Func.HasEllipsis {
			if len(t.Func.Params) > 0 {
				out += ", "
			}
			out += "..."
		}
		return out + ")"
	case Compound:
		out := "{"
		for i, e := range t.Compound {
			if i > 0 {
				out += ", "
			}
			out += e.String()
		}
		return out + "}"
	case Struct:
		return t.Struct.Name
	default:
		return "<?>"
	}
}

// IsVoid reports whether t is the void primitive.
func (t *Type) IsVoid() bool { return t.Tag == Prim && t.Prim == Void }

// IsError reports whether t is the sentinel error type.
func (t *Type) IsError() bool { return t.Tag == Error }

// IsUnsizedArray reports whether t is an array with no fixed length —
// legal only in parameter position.
func (t *Type) IsUnsizedArray() bool { return t.Tag == Array && t.Array.Count == 0 }

// IsTriple reports whether t is one of the four triple primitives.
func (t *Type) IsTriple() bool { return t.Tag == Prim && t.Prim.IsTriple() }

// IsPointLike reports whether t is one of point, vector, normal.
func (t *Type) IsPointLike() bool { return t.Tag == Prim && t.Prim.IsPointLike() }

// IsScalar reports whether t is bool, int, or float.
func (t *Type) IsScalar() bool {
	return t.Tag == Prim && (t.Prim == Bool || t.Prim == Int || t.Prim == Float)
}

// ComponentCount returns the number of scalar components of a primitive;
// 0 for anything else, structs included.
func (t *Type) ComponentCount() int {
	if t.Tag == Prim {
		return t.Prim.ComponentCount()
	}
	return 0
}

// ConstructorName returns the name a constructor call for this primitive
// would resolve under (used for diagnostics, not lookup).
func (t *Type) ConstructorName() string {
	if t.Tag == Prim {
		return t.Prim.String()
	}
	return t.String()
}
