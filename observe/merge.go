package observe

import "fmt"

// ConflictError reports two observations of incompatible kinds at the same
// slot. Only the strict merge policy surfaces it; the default policy widens
// instead.
type ConflictError struct {
	Path  string
	Left  string
	Right string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("incompatible kinds at %s: %s vs %s", e.Path, e.Left, e.Right)
}

// Merge folds two observations of the same slot into one. It is total,
// commutative and associative; observations of different kinds widen into a
// Union. Merging an observation with a copy of itself yields an equivalent
// observation (same kind masks, value sets and field sets).
func Merge(a, b Observation) Observation {
	m, _ := merge(a, b, "$", false)
	return m
}

// MergeStrict is Merge under the fatal conflict policy: joining two
// observations whose kinds are incompatible returns a *ConflictError naming
// the slot path instead of widening.
func MergeStrict(a, b Observation) (Observation, error) {
	return merge(a, b, "$", true)
}

func merge(a, b Observation, path string, strict bool) (Observation, error) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a != nil && b == nil {
		return a, nil
	}
	if a == nil && b != nil {
		return b, nil
	}

	if a.Kind() == KindScalar && b.Kind() == KindScalar {
		return mergeScalars(a.AsScalar(), b.AsScalar(), path, strict)
	}
	if a.Kind() == KindObject && b.Kind() == KindObject {
		return mergeObjects(a.AsObject(), b.AsObject(), path, strict)
	}
	if a.Kind() == KindArray && b.Kind() == KindArray {
		return mergeArrays(a.AsArray(), b.AsArray(), path, strict)
	}

	if strict {
		return nil, &ConflictError{Path: path, Left: describe(a), Right: describe(b)}
	}
	return mergeUnions(intoUnion(a), intoUnion(b), path)
}

func mergeScalars(a, b *Scalar, path string, strict bool) (Observation, error) {
	if strict {
		af, bf := scalarFamily(a), scalarFamily(b)
		if af != "" && bf != "" && af != bf {
			return nil, &ConflictError{Path: path, Left: af, Right: bf}
		}
	}
	return &Scalar{
		MaybeString: a.MaybeString || b.MaybeString,
		MaybeInt:    a.MaybeInt || b.MaybeInt,
		MaybeFloat:  a.MaybeFloat || b.MaybeFloat,
		MaybeBool:   a.MaybeBool || b.MaybeBool,
		MaybeNull:   a.MaybeNull || b.MaybeNull,
		Strings:     a.Strings.Union(b.Strings),
		Ints:        a.Ints.Union(b.Ints),
		Floats:      a.Floats.Union(b.Floats),
		Bools:       a.Bools.Union(b.Bools),
	}, nil
}

// scalarFamily names the non-null value family of a scalar observation.
// Int and float share one family so numeric widening never conflicts; null
// never conflicts with anything.
func scalarFamily(s *Scalar) string {
	var fam string
	set := func(f string) {
		if fam == "" {
			fam = f
		}
	}
	if s.MaybeString {
		set("string")
	}
	if s.MaybeInt || s.MaybeFloat {
		set("number")
	}
	if s.MaybeBool {
		set("bool")
	}
	return fam
}

func mergeObjects(a, b *Object, path string, strict bool) (Observation, error) {
	m := &Object{
		Fields: make([]ObjectField, 0, len(a.Fields)),
		Seen:   a.Seen + b.Seen,
	}

	for _, f := range a.Fields {
		g := b.Field(f.Key)
		if g == nil {
			m.Fields = append(m.Fields, f)
			continue
		}
		v, err := merge(f.Value, g.Value, path+"/"+f.Key, strict)
		if err != nil {
			return nil, err
		}
		m.Fields = append(m.Fields, ObjectField{Key: f.Key, Value: v, Seen: f.Seen + g.Seen})
	}

	for _, g := range b.Fields {
		if a.Field(g.Key) == nil {
			m.Fields = append(m.Fields, g)
		}
	}

	return m, nil
}

func mergeArrays(a, b *Array, path string, strict bool) (Observation, error) {
	elem, err := merge(a.Elem, b.Elem, path+"/*", strict)
	if err != nil {
		return nil, err
	}
	return &Array{Elem: elem}, nil
}

func mergeUnions(a, b *Union, path string) (Observation, error) {
	o, _ := merge(a.O, b.O, path, false)
	arr, _ := merge(a.A, b.A, path, false)
	v, _ := merge(a.V, b.V, path, false)
	return &Union{O: o, A: arr, V: v}, nil
}

func intoUnion(s Observation) *Union {
	switch s.Kind() {
	case KindScalar:
		return &Union{V: s}
	case KindObject:
		return &Union{O: s}
	case KindArray:
		return &Union{A: s}
	case KindUnion:
		return s.AsUnion()
	}
	panic("should be unreachable")
}

func describe(o Observation) string {
	switch o.Kind() {
	case KindScalar:
		if f := scalarFamily(o.AsScalar()); f != "" {
			return f
		}
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	}
	return "unknown"
}
