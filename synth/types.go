// Package synth derives a tree of named type definitions from a merged
// observation. It owns the literal-collapse heuristic and the naming scheme
// for nested structs.
//
// Literal values are sorted, so they do not depend on the order records
// arrived in. Struct fields deliberately keep first-seen order instead:
// two corpora with the same records in a different order produce the same
// types but may lay fields out differently.
package synth

type TypeKind int

const (
	KindScalar  TypeKind = 1
	KindLiteral TypeKind = 2
	KindStruct  TypeKind = 3
	KindList    TypeKind = 4
	KindUnion   TypeKind = 5
)

type Type interface {
	Kind() TypeKind
	AsScalar() *ScalarType
	AsLiteral() *LiteralType
	AsStruct() *StructType
	AsList() *ListType
	AsUnion() *UnionType
}

// Primitive names the base value families a scalar or literal type can
// carry. Null stands for a slot that was only ever null; Any is the
// permissive type cross-kind widening degrades to.
type Primitive int

const (
	String Primitive = 1
	Int    Primitive = 2
	Float  Primitive = 3
	Bool   Primitive = 4
	Null   Primitive = 5
	Any    Primitive = 6
)

type ScalarType struct {
	P Primitive
}

func (t *ScalarType) Kind() TypeKind { return KindScalar }
func (t *ScalarType) AsScalar() *ScalarType { return t }
func (t *ScalarType) AsLiteral() *LiteralType { panic("scalar is not a literal") }
func (t *ScalarType) AsStruct() *StructType { panic("scalar is not a struct") }
func (t *ScalarType) AsList() *ListType { panic("scalar is not a list") }
func (t *ScalarType) AsUnion() *UnionType { panic("scalar is not a union") }

// LiteralType is an enumeration of permitted values. Only string and bool
// slots collapse to literals; Values are sorted so output is independent of
// input order. Bools holds false before true.
type LiteralType struct {
	P       Primitive
	Strings []string
	Bools   []bool
}

func (t *LiteralType) Kind() TypeKind { return KindLiteral }
func (t *LiteralType) AsScalar() *ScalarType { panic("literal is not a scalar") }
func (t *LiteralType) AsLiteral() *LiteralType { return t }
func (t *LiteralType) AsStruct() *StructType { panic("literal is not a struct") }
func (t *LiteralType) AsList() *ListType { panic("literal is not a list") }
func (t *LiteralType) AsUnion() *UnionType { panic("literal is not a union") }

// StructType is a named record with fields in first-seen order.
type StructType struct {
	Name   string
	Fields []StructField
}

type StructField struct {
	Key      string
	Type     Type
	Required bool
}

func (t *StructType) Kind() TypeKind { return KindStruct }
func (t *StructType) AsScalar() *ScalarType { panic("struct is not a scalar") }
func (t *StructType) AsLiteral() *LiteralType { panic("struct is not a literal") }
func (t *StructType) AsStruct() *StructType { return t }
func (t *StructType) AsList() *ListType { panic("struct is not a list") }
func (t *StructType) AsUnion() *UnionType { panic("struct is not a union") }

type ListType struct {
	Elem Type
}

func (t *ListType) Kind() TypeKind { return KindList }
func (t *ListType) AsScalar() *ScalarType { panic("list is not a scalar") }
func (t *ListType) AsLiteral() *LiteralType { panic("list is not a literal") }
func (t *ListType) AsStruct() *StructType { panic("list is not a struct") }
func (t *ListType) AsList() *ListType { return t }
func (t *ListType) AsUnion() *UnionType { panic("list is not a union") }

// UnionType joins alternatives that could not be widened into one family.
// A two-member union whose second member is Null renders as an optional.
type UnionType struct {
	Members []Type
}

func (t *UnionType) Kind() TypeKind { return KindUnion }
func (t *UnionType) AsScalar() *ScalarType { panic("union is not a scalar") }
func (t *UnionType) AsLiteral() *LiteralType { panic("union is not a literal") }
func (t *UnionType) AsStruct() *StructType { panic("union is not a struct") }
func (t *UnionType) AsList() *ListType { panic("union is not a list") }
func (t *UnionType) AsUnion() *UnionType { return t }

// NullMember reports whether one of the members is the null scalar, and
// returns the remaining members.
func (t *UnionType) NullMember() (bool, []Type) {
	rest := make([]Type, 0, len(t.Members))
	sawNull := false
	for _, m := range t.Members {
		if m.Kind() == KindScalar && m.AsScalar().P == Null {
			sawNull = true
			continue
		}
		rest = append(rest, m)
	}
	return sawNull, rest
}
