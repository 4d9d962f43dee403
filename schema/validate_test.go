package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectLike = Schema{
	Entity: "project",
	Fields: []Field{
		{Name: "title", Kind: String, Required: true},
		{Name: "category", Kind: String, Required: true, Enum: []string{"web", "mobile", "other"}},
		{Name: "mediaUrl", Kind: String, Required: true},
		{Name: "tags", Kind: StringList, Default: []string{}},
		{Name: "isActive", Kind: Bool, Default: true},
		{Name: "order", Kind: Int, Default: 0},
		{Name: "info", Kind: Object, Fields: []Field{
			{Name: "email", Kind: String},
		}},
	},
}

func validDoc() map[string]any {
	return map[string]any{
		"title":    "A",
		"category": "web",
		"mediaUrl": "https://x/y.png",
	}
}

func TestValidateStrictMissingRequiredNamesField(t *testing.T) {
	doc := validDoc()
	delete(doc, "title")

	err := Validate(projectLike, doc, Strict)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, "is required", verr.Reason)
}

func TestValidateStrictOK(t *testing.T) {
	assert.NoError(t, Validate(projectLike, validDoc(), Strict))
}

func TestValidateEnumCaseSensitive(t *testing.T) {
	doc := validDoc()
	doc["category"] = "Web"

	err := Validate(projectLike, doc, Strict)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)
}

func TestValidateRequiredStringNotEmpty(t *testing.T) {
	doc := validDoc()
	doc["title"] = ""

	err := Validate(projectLike, doc, Strict)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, "must not be empty", verr.Reason)
}

func TestValidatePartialAllowsMissingRequired(t *testing.T) {
	assert.NoError(t, Validate(projectLike, map[string]any{}, Partial))
}

func TestValidatePartialStillChecksPresentFields(t *testing.T) {
	err := Validate(projectLike, map[string]any{"category": "desktop"}, Partial)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)
}

func TestValidateSuppliedSatisfiesRequired(t *testing.T) {
	doc := validDoc()
	delete(doc, "mediaUrl")

	// A pending attachment counts as provided for required-media checks.
	assert.NoError(t, Validate(projectLike, doc, Strict, "mediaUrl"))
}

func TestValidateNestedFieldPath(t *testing.T) {
	doc := validDoc()
	doc["info"] = map[string]any{"email": 5}

	// Coercion would normally drop this, but a raw wrong type must still
	// be named with its full dotted path.
	err := Validate(projectLike, doc, Strict)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "info.email", verr.Field)
}

func TestValidateFirstFailureWins(t *testing.T) {
	err := Validate(projectLike, map[string]any{}, Strict)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// Fields are checked in declaration order.
	assert.Equal(t, "title", verr.Field)
}
