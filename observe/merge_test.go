package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecord(fields ...ObjectField) *Object {
	return &Object{Fields: fields, Seen: 1}
}

func field(key string, v Observation) ObjectField {
	return ObjectField{Key: key, Value: v, Seen: 1}
}

func TestMergeScalarsSameKind(t *testing.T) {
	m := Merge(NewString("a"), NewString("b"))

	require.Equal(t, KindScalar, m.Kind())
	s := m.AsScalar()
	assert.True(t, s.MaybeString)
	assert.False(t, s.MaybeInt)
	assert.Equal(t, []string{"a", "b"}, s.Strings.Values())
}

func TestMergeScalarsDistinctValuesDedup(t *testing.T) {
	m := Merge(Merge(NewString("a"), NewString("b")), NewString("a"))

	assert.Equal(t, 2, m.AsScalar().Strings.Len())
}

func TestMergeScalarsNumericWiden(t *testing.T) {
	m := Merge(NewInt(1), NewFloat(1.5))

	s := m.AsScalar()
	assert.True(t, s.MaybeInt)
	assert.True(t, s.MaybeFloat)
	assert.Equal(t, []int64{1}, s.Ints.Values())
	assert.Equal(t, []float64{1.5}, s.Floats.Values())
}

func TestMergeScalarsNullable(t *testing.T) {
	m := Merge(NewString("x"), NewNull())

	s := m.AsScalar()
	assert.True(t, s.MaybeString)
	assert.True(t, s.MaybeNull)
}

func TestMergeCommutative(t *testing.T) {
	a := makeRecord(field("aaa", NewString("x")), field("bbb", NewInt(1)))
	b := makeRecord(field("bbb", NewInt(2)), field("ccc", NewBool(true)))

	assert.True(t, Equal(Merge(a, b), Merge(b, a)))
}

func TestMergeAssociative(t *testing.T) {
	a := makeRecord(field("k", NewString("x")))
	b := makeRecord(field("k", NewString("y")))
	c := makeRecord(field("k", NewNull()))

	assert.True(t, Equal(Merge(Merge(a, b), c), Merge(a, Merge(b, c))))
}

func TestMergeIdempotent(t *testing.T) {
	a := makeRecord(
		field("s", NewString("x")),
		field("n", NewInt(7)),
		field("o", makeRecord(field("inner", NewBool(false)))),
	)

	assert.True(t, Equal(Merge(a, a), a))
}

func TestMergeObjectsFieldUnion(t *testing.T) {
	a := makeRecord(field("aaa", NewString("x")))
	b := makeRecord(field("bbb", NewString("y")))

	m := Merge(a, b)
	require.Equal(t, KindObject, m.Kind())
	o := m.AsObject()

	require.Len(t, o.Fields, 2)
	assert.Equal(t, "aaa", o.Fields[0].Key)
	assert.Equal(t, "bbb", o.Fields[1].Key)
	assert.Equal(t, 2, o.Seen)
	assert.Equal(t, 1, o.Fields[0].Seen)
	assert.Equal(t, 1, o.Fields[1].Seen)
}

func TestMergeObjectsSharedFieldRecurses(t *testing.T) {
	a := makeRecord(field("k", NewString("x")))
	b := makeRecord(field("k", NewString("y")))

	o := Merge(a, b).AsObject()
	require.Len(t, o.Fields, 1)
	assert.Equal(t, 2, o.Fields[0].Seen)
	assert.Equal(t, []string{"x", "y"}, o.Fields[0].Value.AsScalar().Strings.Values())
}

func TestMergeArraysFoldElements(t *testing.T) {
	a := &Array{Elem: NewString("x")}
	b := &Array{Elem: NewString("y")}

	m := Merge(a, b)
	require.Equal(t, KindArray, m.Kind())
	assert.Equal(t, 2, m.AsArray().Elem.AsScalar().Strings.Len())
}

func TestMergeArrayEmptySide(t *testing.T) {
	a := &Array{}
	b := &Array{Elem: NewInt(1)}

	m := Merge(a, b)
	require.NotNil(t, m.AsArray().Elem)
	assert.True(t, m.AsArray().Elem.AsScalar().MaybeInt)
}

func TestMergeCrossKindWidensToUnion(t *testing.T) {
	m := Merge(makeRecord(field("k", NewInt(1))), NewString("oops"))

	require.Equal(t, KindUnion, m.Kind())
	u := m.AsUnion()
	assert.NotNil(t, u.O)
	assert.NotNil(t, u.V)
	assert.Nil(t, u.A)
}

func TestMergeUnionAbsorbsMoreKinds(t *testing.T) {
	m := Merge(NewString("a"), &Array{Elem: NewInt(1)})
	m = Merge(m, NewString("b"))

	u := m.AsUnion()
	assert.Equal(t, 2, u.V.AsScalar().Strings.Len())
	assert.NotNil(t, u.A)
}

func TestMergeStrictConflict(t *testing.T) {
	a := makeRecord(field("k", NewInt(1)))
	b := makeRecord(field("k", NewString("x")))

	_, err := MergeStrict(a, b)
	require.Error(t, err)

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "$/k", ce.Path)
	assert.Equal(t, "number", ce.Left)
	assert.Equal(t, "string", ce.Right)
}

func TestMergeStrictAllowsNullAndNumericWidening(t *testing.T) {
	_, err := MergeStrict(NewString("x"), NewNull())
	assert.NoError(t, err)

	_, err = MergeStrict(NewInt(1), NewFloat(2.5))
	assert.NoError(t, err)
}

func TestMergeStrictCrossKind(t *testing.T) {
	_, err := MergeStrict(makeRecord(), &Array{})

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "$", ce.Path)
	assert.Equal(t, "object", ce.Left)
	assert.Equal(t, "array", ce.Right)
}
