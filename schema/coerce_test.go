package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Entity: "test",
	Fields: []Field{
		{Name: "title", Kind: String, Required: true},
		{Name: "tags", Kind: StringList, Default: []string{}},
		{Name: "isActive", Kind: Bool, Default: true},
		{Name: "order", Kind: Int, Default: 0},
		{Name: "publishedAt", Kind: Time},
		{Name: "info", Kind: Object, Fields: []Field{
			{Name: "name", Kind: String},
			{Name: "links", Kind: Object, Fields: []Field{
				{Name: "github", Kind: String},
				{Name: "linkedin", Kind: String},
			}},
		}},
	},
}

func TestExpandFormBracketNotation(t *testing.T) {
	out := ExpandForm(map[string][]string{
		"title":                  {"Hello"},
		"info[name]":             {"Jane"},
		"info[links][github]":    {"gh"},
		"info[links][linkedin]":  {"li"},
	})

	info, ok := out["info"].(map[string]any)
	require.True(t, ok)
	links, ok := info["links"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Hello", out["title"])
	assert.Equal(t, "Jane", info["name"])
	assert.Equal(t, "gh", links["github"])
	assert.Equal(t, "li", links["linkedin"])
}

func TestExpandFormPlainKeys(t *testing.T) {
	out := ExpandForm(map[string][]string{"a": {"1"}, "b": {"2", "ignored"}})
	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, out)
}

func TestCoerceCommaSeparatedList(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"trims and keeps order", "React, Node.js,MongoDB", []string{"React", "Node.js", "MongoDB"}},
		{"drops empty segments", "a,,b, ", []string{"a", "b"}},
		{"empty string yields empty list", "", []string{}},
		{"native string slice passes through", []string{"x", "y"}, []string{"x", "y"}},
		{"json array passes through", []any{"x", "y"}, []string{"x", "y"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Coerce(testSchema, map[string]any{"tags": tc.in})
			assert.Equal(t, tc.want, doc["tags"])
		})
	}
}

func TestCoerceBool(t *testing.T) {
	cases := []struct {
		in       any
		want     any
		provided bool
	}{
		{"true", true, true},
		{"false", false, true},
		{true, true, true},
		{false, false, true},
		{"yes", nil, false},
		{"1", nil, false},
		{"", nil, false},
	}
	for _, tc := range cases {
		doc := Coerce(testSchema, map[string]any{"isActive": tc.in})
		v, ok := doc["isActive"]
		assert.Equal(t, tc.provided, ok, "input %v", tc.in)
		if tc.provided {
			assert.Equal(t, tc.want, v, "input %v", tc.in)
		}
	}
}

func TestCoerceInt(t *testing.T) {
	doc := Coerce(testSchema, map[string]any{"order": "42"})
	assert.Equal(t, 42, doc["order"])

	// JSON numbers decode as float64.
	doc = Coerce(testSchema, map[string]any{"order": float64(7)})
	assert.Equal(t, 7, doc["order"])

	doc = Coerce(testSchema, map[string]any{"order": "not-a-number"})
	_, ok := doc["order"]
	assert.False(t, ok, "malformed int must degrade to not provided")
}

func TestCoerceTime(t *testing.T) {
	doc := Coerce(testSchema, map[string]any{"publishedAt": "2024-03-01"})
	ts, ok := doc["publishedAt"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	doc = Coerce(testSchema, map[string]any{"publishedAt": "soon"})
	_, ok = doc["publishedAt"]
	assert.False(t, ok)
}

func TestCoerceDropsUnknownFields(t *testing.T) {
	doc := Coerce(testSchema, map[string]any{"title": "t", "bogus": "x"})
	_, ok := doc["bogus"]
	assert.False(t, ok)
}

func TestCoerceNestedObjectOnlyWhenMentioned(t *testing.T) {
	doc := Coerce(testSchema, map[string]any{"title": "t"})
	_, ok := doc["info"]
	assert.False(t, ok, "unmentioned nested object must stay not provided")

	doc = Coerce(testSchema, map[string]any{"info": map[string]any{}})
	_, ok = doc["info"]
	assert.True(t, ok, "explicitly supplied object is provided, even empty")
}

// The same payload sent as JSON and as bracket-notation form fields must
// normalize to the identical shape.
func TestCoerceCrossFormatEquivalence(t *testing.T) {
	jsonDoc := Coerce(testSchema, map[string]any{
		"title":    "Hello",
		"tags":     []any{"a", "b"},
		"isActive": true,
		"order":    float64(3),
		"info":     map[string]any{"links": map[string]any{"github": "gh"}},
	})

	formDoc := Coerce(testSchema, ExpandForm(map[string][]string{
		"title":               {"Hello"},
		"tags":                {"a,b"},
		"isActive":            {"true"},
		"order":               {"3"},
		"info[links][github]": {"gh"},
	}))

	assert.Equal(t, jsonDoc, formDoc)
}

func TestCoerceIdempotent(t *testing.T) {
	once := Coerce(testSchema, map[string]any{
		"title":    "Hello",
		"tags":     "a, b",
		"isActive": "false",
		"order":    "5",
		"info":     map[string]any{"name": "Jane"},
	})
	twice := Coerce(testSchema, once)
	assert.Equal(t, once, twice)
}
