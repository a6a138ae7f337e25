package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typesmith/json2type/observe"
)

func TestCollectFoldsRecords(t *testing.T) {
	in := strings.Join([]string{
		`[{"id": 1, "name": "a"}]`,
		`[{"id": 2, "name": "b"}, {"id": 3}]`,
	}, "\n")

	elem, stats, err := Collect(strings.NewReader(in), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Lines)
	assert.Equal(t, 3, stats.Records)

	o := elem.AsObject()
	assert.Equal(t, 3, o.Seen)
	require.Len(t, o.Fields, 2)
	assert.Equal(t, "id", o.Fields[0].Key)
	assert.Equal(t, 3, o.Fields[0].Seen)
	assert.Equal(t, 2, o.Fields[1].Seen)
}

func TestCollectSkipsBlankLinesAndEmptyArrays(t *testing.T) {
	in := "\n[]\n[{\"k\": \"v\"}]\n\n[]\n"

	elem, stats, err := Collect(strings.NewReader(in), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Records)
	require.NotNil(t, elem)
	assert.Equal(t, observe.KindObject, elem.Kind())
}

func TestCollectEmptyCorpus(t *testing.T) {
	elem, stats, err := Collect(strings.NewReader("\n\n"), Options{})
	require.NoError(t, err)

	assert.Nil(t, elem)
	assert.Equal(t, 0, stats.Records)
}

func TestCollectInvalidJSON(t *testing.T) {
	in := "[{\"k\": 1}]\n{oops\n"

	_, _, err := Collect(strings.NewReader(in), Options{})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Line)
}

func TestCollectNonArrayLine(t *testing.T) {
	_, _, err := Collect(strings.NewReader(`{"k": 1}`), Options{})

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Line)
	assert.Contains(t, de.Error(), "expected a JSON array")
}

func TestCollectStrictConflict(t *testing.T) {
	in := "[{\"k\": 1}]\n[{\"k\": \"x\"}]\n"

	_, _, err := Collect(strings.NewReader(in), Options{Strict: true})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Line)

	var ce *observe.ConflictError
	assert.ErrorAs(t, err, &ce)
}

func TestCollectWideningDefault(t *testing.T) {
	in := "[{\"k\": 1}]\n[{\"k\": \"x\"}]\n"

	elem, _, err := Collect(strings.NewReader(in), Options{})
	require.NoError(t, err)

	k := elem.AsObject().Field("k")
	require.NotNil(t, k)
	s := k.Value.AsScalar()
	assert.True(t, s.MaybeInt)
	assert.True(t, s.MaybeString)
}

func TestCollectMaxLines(t *testing.T) {
	in := "[]\n[]\n[]\n"

	_, _, err := Collect(strings.NewReader(in), Options{MaxLines: 2})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Line)
}
