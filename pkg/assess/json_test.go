package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectPlain(t *testing.T) {
	obj, err := ExtractJSONObject(`{"complexity": 3, "reasoning": "ok"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"complexity": 3, "reasoning": "ok"}`, obj)
}

func TestExtractJSONObjectMarkdownFence(t *testing.T) {
	raw := "```json\n{\"complexity\": 7}\n```"
	obj, err := ExtractJSONObject(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"complexity": 7}`, obj)
}

func TestExtractJSONObjectSurroundingProse(t *testing.T) {
	raw := "Here is my assessment:\n{\"complexity\": 4, \"factors\": [\"io\"]}\nHope that helps!"
	obj, err := ExtractJSONObject(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"complexity": 4, "factors": ["io"]}`, obj)
}

func TestExtractJSONObjectNested(t *testing.T) {
	raw := `{"outer": {"inner": {"deep": 1}}, "n": 2}`
	obj, err := ExtractJSONObject(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, obj)
}

func TestExtractJSONObjectBracesInStrings(t *testing.T) {
	raw := `{"reasoning": "uses {braces} and a \" quote", "complexity": 5}`
	obj, err := ExtractJSONObject(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, obj)
}

func TestExtractJSONObjectStableUnderFormatting(t *testing.T) {
	variants := []string{
		`{"complexity": 6}`,
		"  \n {\"complexity\": 6} \n ",
		"```\n{\"complexity\": 6}\n```",
		"```json\n{\"complexity\": 6}\n```\n",
		"verdict below\n```json\n{\"complexity\": 6}\n```",
	}
	for _, v := range variants {
		obj, err := ExtractJSONObject(v)
		require.NoError(t, err, "variant %q", v)
		assert.JSONEq(t, `{"complexity": 6}`, obj, "variant %q", v)
	}
}

func TestExtractJSONObjectNoObject(t *testing.T) {
	for _, raw := range []string{"", "no json here", "[]", "{unbalanced"} {
		_, err := ExtractJSONObject(raw)
		assert.ErrorIs(t, err, ErrNoJSON, "input %q", raw)
	}
}

func TestExtractJSONObjectFirstOfSeveral(t *testing.T) {
	obj, err := ExtractJSONObject(`{"a": 1} {"b": 2}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, obj)
}
