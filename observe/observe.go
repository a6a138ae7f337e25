// Package observe accumulates structural observations over a corpus of
// decoded JSON values. One Observation records everything seen at a single
// structural slot; merging observations from many records produces the
// input for type synthesis.
package observe

type Kind int

const (
	KindScalar Kind = 1
	KindObject Kind = 2
	KindArray  Kind = 3
	KindUnion  Kind = 4
)

type Observation interface {
	Kind() Kind
	AsScalar() *Scalar
	AsObject() *Object
	AsArray() *Array
	AsUnion() *Union
}

// Scalar records every leaf value seen at a slot. The Maybe flags form a
// kind mask; the value sets keep distinct literals in first-seen order so
// the synthesizer can decide on literal collapse with full-corpus counts.
type Scalar struct {
	MaybeString bool
	MaybeInt    bool
	MaybeFloat  bool
	MaybeBool   bool
	MaybeNull   bool

	Strings *ValueSet[string]
	Ints    *ValueSet[int64]
	Floats  *ValueSet[float64]
	Bools   *ValueSet[bool]
}

func (s *Scalar) Kind() Kind { return KindScalar }
func (s *Scalar) AsScalar() *Scalar { return s }
func (s *Scalar) AsObject() *Object { panic("scalar is not an object") }
func (s *Scalar) AsArray() *Array { panic("scalar is not an array") }
func (s *Scalar) AsUnion() *Union { panic("scalar is not a union") }

func newScalar() *Scalar {
	return &Scalar{
		Strings: NewValueSet[string](),
		Ints:    NewValueSet[int64](),
		Floats:  NewValueSet[float64](),
		Bools:   NewValueSet[bool](),
	}
}

func NewString(v string) *Scalar {
	s := newScalar()
	s.MaybeString = true
	s.Strings.Add(v)
	return s
}

func NewInt(v int64) *Scalar {
	s := newScalar()
	s.MaybeInt = true
	s.Ints.Add(v)
	return s
}

func NewFloat(v float64) *Scalar {
	s := newScalar()
	s.MaybeFloat = true
	s.Floats.Add(v)
	return s
}

func NewBool(v bool) *Scalar {
	s := newScalar()
	s.MaybeBool = true
	s.Bools.Add(v)
	return s
}

func NewNull() *Scalar {
	s := newScalar()
	s.MaybeNull = true
	return s
}

// Object records the union of field names seen at a slot. Fields keep
// first-seen order. Seen counts how many records contributed to this slot;
// a field with Seen less than the object's Seen was absent somewhere and is
// therefore not required.
type Object struct {
	Fields []ObjectField
	Seen   int
}

type ObjectField struct {
	Key   string
	Value Observation
	Seen  int
}

func (o *Object) Kind() Kind { return KindObject }
func (o *Object) AsScalar() *Scalar { panic("object is not a scalar") }
func (o *Object) AsObject() *Object { return o }
func (o *Object) AsArray() *Array { panic("object is not an array") }
func (o *Object) AsUnion() *Union { panic("object is not a union") }

// Field returns the field with the given key, or nil.
func (o *Object) Field(key string) *ObjectField {
	for i := range o.Fields {
		if o.Fields[i].Key == key {
			return &o.Fields[i]
		}
	}
	return nil
}

// Array records the shared element observation for a slot. Arrays are
// treated as monomorphic: elements from every index and every record fold
// into one Elem. Elem is nil until a non-empty array has been seen.
type Array struct {
	Elem Observation
}

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) AsScalar() *Scalar { panic("array is not a scalar") }
func (a *Array) AsObject() *Object { panic("array is not an object") }
func (a *Array) AsArray() *Array { return a }
func (a *Array) AsUnion() *Union { panic("array is not a union") }

// Union holds at most one observation per structural family. It only
// appears when the widening merge policy joins observations of different
// kinds at the same slot.
type Union struct {
	O Observation // object branch
	A Observation // array branch
	V Observation // scalar branch
}

func (u *Union) Kind() Kind { return KindUnion }
func (u *Union) AsScalar() *Scalar { panic("union is not a scalar") }
func (u *Union) AsObject() *Object { panic("union is not an object") }
func (u *Union) AsArray() *Array { panic("union is not an array") }
func (u *Union) AsUnion() *Union { return u }
