package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIWorkedExample(t *testing.T) {
	out, err := OpenAPI(inferResult(t, quoteCorpus))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "array", doc["type"])
	items := doc["items"].(map[string]any)
	assert.Equal(t, "object", items["type"])
	assert.Equal(t, "Root", items["title"])

	props := items["properties"].(map[string]any)
	excess := props["excess"].(map[string]any)
	assert.Equal(t, "string", excess["type"])
	assert.Equal(t, []any{"No", "Yes"}, excess["enum"])

	limit := props["limit"].(map[string]any)
	assert.Equal(t, "integer", limit["type"])
	_, hasEnum := limit["enum"]
	assert.False(t, hasEnum)

	required := items["required"].([]any)
	assert.Len(t, required, 7)
}

func TestOpenAPIOptionalAndNullable(t *testing.T) {
	in := "[{\"a\": \"x\", \"b\": 1}]\n[{\"a\": null}]\n"
	out, err := OpenAPI(inferResult(t, in))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	items := doc["items"].(map[string]any)
	props := items["properties"].(map[string]any)

	a := props["a"].(map[string]any)
	assert.Equal(t, true, a["nullable"])

	required := items["required"].([]any)
	assert.Equal(t, []any{"a"}, required)
}
