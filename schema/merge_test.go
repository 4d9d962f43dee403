package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var profileLike = Schema{
	Entity: "profile",
	Fields: []Field{
		{Name: "title", Kind: String, Required: true},
		{Name: "tags", Kind: StringList, Default: []string{}},
		{Name: "isActive", Kind: Bool, Default: true},
		{Name: "isFeatured", Kind: Bool, Default: false},
		{Name: "order", Kind: Int, Default: 0},
		{Name: "liveUrl", Kind: String},
		{Name: "personalInfo", Kind: Object, Fields: []Field{
			{Name: "name", Kind: String},
			{Name: "socialLinks", Kind: Object, Fields: []Field{
				{Name: "github", Kind: String},
				{Name: "linkedin", Kind: String},
			}},
		}},
	},
}

func TestApplyDefaultsFillsOmittedFields(t *testing.T) {
	doc := ApplyDefaults(profileLike, map[string]any{"title": "t"})

	assert.Equal(t, true, doc["isActive"])
	assert.Equal(t, false, doc["isFeatured"])
	assert.Equal(t, 0, doc["order"])
	assert.Equal(t, []string{}, doc["tags"])
}

func TestApplyDefaultsKeepsProvidedValues(t *testing.T) {
	doc := ApplyDefaults(profileLike, map[string]any{
		"title":    "t",
		"isActive": false,
		"tags":     []string{"x"},
	})

	assert.Equal(t, false, doc["isActive"], "explicit false must survive defaulting")
	assert.Equal(t, []string{"x"}, doc["tags"])
}

func TestApplyDefaultsLeavesDefaultlessFieldsAbsent(t *testing.T) {
	doc := ApplyDefaults(profileLike, map[string]any{"title": "t"})
	_, ok := doc["liveUrl"]
	assert.False(t, ok)
}

func TestApplyDefaultsDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"title": "t"}
	ApplyDefaults(profileLike, in)
	assert.Equal(t, map[string]any{"title": "t"}, in)
}

func TestFlattenOnlyProvidedFields(t *testing.T) {
	set := Flatten(profileLike, map[string]any{"title": "t2"})
	assert.Equal(t, map[string]any{"title": "t2"}, set)
}

// Supplying one social link must produce a dotted path, never a whole
// replacement object that would erase sibling links.
func TestFlattenNestedKeyLevelMerge(t *testing.T) {
	set := Flatten(profileLike, map[string]any{
		"personalInfo": map[string]any{
			"socialLinks": map[string]any{"github": "g2"},
		},
	})

	assert.Equal(t, map[string]any{"personalInfo.socialLinks.github": "g2"}, set)
	_, ok := set["personalInfo"]
	assert.False(t, ok, "nested object must not be set wholesale")
}

func TestFlattenMixedLevels(t *testing.T) {
	set := Flatten(profileLike, map[string]any{
		"isActive": false,
		"personalInfo": map[string]any{
			"name": "Jane",
			"socialLinks": map[string]any{
				"github":   "g",
				"linkedin": "l",
			},
		},
	})

	assert.Equal(t, map[string]any{
		"isActive":                          false,
		"personalInfo.name":                 "Jane",
		"personalInfo.socialLinks.github":   "g",
		"personalInfo.socialLinks.linkedin": "l",
	}, set)
}

func TestFlattenEmptyObjectSetsNothing(t *testing.T) {
	set := Flatten(profileLike, map[string]any{"personalInfo": map[string]any{}})
	assert.Empty(t, set, "an explicitly emptied object merges zero keys")
}
