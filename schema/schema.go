// Package schema implements the normalization pipeline admin write
// endpoints run request bodies through: wire-format coercion, declarative
// validation, creation defaults and partial-update merge documents.
//
// A request body may arrive as JSON (nested objects, native types) or as
// multipart form fields (flat bracket-notation keys, everything a string).
// Both are reduced to the same map[string]any shape, checked against a
// per-entity Schema, and turned into either a full document to insert or a
// flat dotted-path $set document for a partial update.
package schema

// Kind is the target type a schema field coerces to.
type Kind int

const (
	String Kind = iota
	StringList
	Bool
	Int
	Time
	Object
)

// Field declares one writable field of an entity. Object fields carry
// their nested declarations in Fields. Default is applied on create only;
// a nil Default means the field stays absent when not provided.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Enum     []string
	Default  any
	Fields   []Field
}

// Schema is the declarative writable shape of one entity. New entities are
// added by declaring a Schema value, not by writing new control flow.
type Schema struct {
	Entity string
	Fields []Field
}
