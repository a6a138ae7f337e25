package observe

import (
	"github.com/valyala/fastjson"
)

// FromFastJSON builds a fresh observation from one decoded JSON value.
// Object key order is preserved as first-seen field order. Strings and keys
// are copied out of the parser's buffers, so the parser may be reused.
func FromFastJSON(v *fastjson.Value) (Observation, error) {
	switch v.Type() {
	case fastjson.TypeObject:
		o, err := v.Object()
		if err != nil {
			return nil, err
		}
		return fromFastJSONObject(o)
	case fastjson.TypeArray:
		a, err := v.Array()
		if err != nil {
			return nil, err
		}
		return fromFastJSONArray(a)
	case fastjson.TypeString:
		sb, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		return NewString(string(sb)), nil
	case fastjson.TypeNumber:
		// Integer syntax stays an int observation; anything with a
		// fraction or exponent becomes a float.
		if i, err := v.Int64(); err == nil {
			return NewInt(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return NewFloat(f), nil
	case fastjson.TypeTrue:
		return NewBool(true), nil
	case fastjson.TypeFalse:
		return NewBool(false), nil
	case fastjson.TypeNull:
		return NewNull(), nil
	}

	panic("should be unreachable")
}

func fromFastJSONObject(o *fastjson.Object) (Observation, error) {
	n := &Object{Fields: make([]ObjectField, 0), Seen: 1}

	var visitErr error
	o.Visit(func(key []byte, v *fastjson.Value) {
		if visitErr != nil {
			return
		}
		child, err := FromFastJSON(v)
		if err != nil {
			visitErr = err
			return
		}
		// Keys must stay unique. A duplicate key within one object folds
		// into the existing field; it is still a single record.
		if f := n.Field(string(key)); f != nil {
			f.Value = Merge(f.Value, child)
			return
		}
		n.Fields = append(n.Fields, ObjectField{Key: string(key), Value: child, Seen: 1})
	})

	return n, visitErr
}

func fromFastJSONArray(vs []*fastjson.Value) (Observation, error) {
	var elem Observation
	for _, v := range vs {
		child, err := FromFastJSON(v)
		if err != nil {
			return nil, err
		}
		elem = Merge(elem, child)
	}
	return &Array{Elem: elem}, nil
}
