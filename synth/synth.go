package synth

import (
	"sort"

	"github.com/typesmith/json2type/observe"
)

// DefaultLiteralLimit is the largest distinct-value count that still
// collapses a string or bool slot into a literal enumeration.
const DefaultLiteralLimit = 9

type Options struct {
	// LiteralLimit overrides DefaultLiteralLimit when positive.
	LiteralLimit int
	// RootName names the corpus record struct. Defaults to "Root".
	RootName string
}

// Result is the synthesized output: the root type (a list over the corpus
// record type) and every struct produced anywhere in the recursion, in
// dependency order. A struct appears after all structs it references, so a
// renderer can emit declarations top to bottom.
type Result struct {
	Root    Type
	Structs []*StructType
}

// Synthesize walks the merged element observation of a corpus and derives
// its type definitions. It is a pure function of the observation tree and
// never fails: slots carrying no information degrade to Any.
func Synthesize(elem observe.Observation, opts Options) *Result {
	if opts.LiteralLimit <= 0 {
		opts.LiteralLimit = DefaultLiteralLimit
	}
	if opts.RootName == "" {
		opts.RootName = "Root"
	}

	s := &synthesizer{opts: opts, taken: make(map[string]int)}
	var rec Type
	if elem == nil {
		rec = &ScalarType{P: Any}
	} else {
		rec = s.walk(elem, nil)
	}

	return &Result{
		Root:    &ListType{Elem: rec},
		Structs: s.structs,
	}
}

type synthesizer struct {
	opts    Options
	structs []*StructType
	taken   map[string]int
}

func (s *synthesizer) walk(o observe.Observation, path []string) Type {
	switch o.Kind() {
	case observe.KindScalar:
		return s.scalar(o.AsScalar())
	case observe.KindObject:
		return s.object(o.AsObject(), path)
	case observe.KindArray:
		return s.array(o.AsArray(), path)
	case observe.KindUnion:
		return s.union(o.AsUnion(), path)
	}
	panic("should be unreachable")
}

// scalar applies the literal-collapse heuristic. Only string and bool slots
// are eligible; numeric slots always degrade to a plain scalar no matter
// how few distinct values were observed.
func (s *synthesizer) scalar(o *observe.Scalar) Type {
	var base Type

	switch {
	case o.MaybeString && !o.MaybeInt && !o.MaybeFloat && !o.MaybeBool:
		if o.Strings.Len() <= s.opts.LiteralLimit {
			vs := o.Strings.Values()
			sort.Strings(vs)
			base = &LiteralType{P: String, Strings: vs}
		} else {
			base = &ScalarType{P: String}
		}
	case o.MaybeBool && !o.MaybeString && !o.MaybeInt && !o.MaybeFloat:
		if o.Bools.Len() <= s.opts.LiteralLimit {
			vs := o.Bools.Values()
			sort.Slice(vs, func(i, j int) bool { return !vs[i] && vs[j] })
			base = &LiteralType{P: Bool, Bools: vs}
		} else {
			base = &ScalarType{P: Bool}
		}
	case o.MaybeFloat && !o.MaybeString && !o.MaybeBool:
		// int+float widens to float
		base = &ScalarType{P: Float}
	case o.MaybeInt && !o.MaybeString && !o.MaybeBool:
		base = &ScalarType{P: Int}
	case !o.MaybeString && !o.MaybeInt && !o.MaybeFloat && !o.MaybeBool:
		// Only ever null, or nothing at all.
		if o.MaybeNull {
			return &ScalarType{P: Null}
		}
		return &ScalarType{P: Any}
	default:
		// Mixed value families under the widening policy.
		base = &ScalarType{P: Any}
	}

	if o.MaybeNull && !isAny(base) {
		return &UnionType{Members: []Type{base, &ScalarType{P: Null}}}
	}
	return base
}

func (s *synthesizer) object(o *observe.Object, path []string) Type {
	st := &StructType{Fields: make([]StructField, 0, len(o.Fields))}

	for _, f := range o.Fields {
		ft := s.walk(f.Value, append(path, f.Key))
		st.Fields = append(st.Fields, StructField{
			Key:      f.Key,
			Type:     ft,
			Required: f.Seen >= o.Seen,
		})
	}

	// Children were appended first, so the struct list stays in dependency
	// order.
	st.Name = s.name(path)
	s.structs = append(s.structs, st)
	return st
}

func (s *synthesizer) array(o *observe.Array, path []string) Type {
	if o.Elem == nil {
		return &ListType{Elem: &ScalarType{P: Any}}
	}
	return &ListType{Elem: s.walk(o.Elem, path)}
}

func (s *synthesizer) union(o *observe.Union, path []string) Type {
	members := make([]Type, 0, 3)
	if o.O != nil {
		members = append(members, s.walk(o.O, path))
	}
	if o.A != nil {
		members = append(members, s.walk(o.A, path))
	}
	if o.V != nil {
		v := s.walk(o.V, path)
		// Flatten a nullable scalar so null sits directly in this union.
		if v.Kind() == KindUnion {
			members = append(members, v.AsUnion().Members...)
		} else {
			members = append(members, v)
		}
	}

	if len(members) == 1 {
		return members[0]
	}
	return &UnionType{Members: members}
}

func isAny(t Type) bool {
	return t.Kind() == KindScalar && t.AsScalar().P == Any
}
