package schema

import (
	"strings"
	"time"
)

// Mode selects create (Strict) or partial-update (Partial) validation.
type Mode int

const (
	Strict Mode = iota
	Partial
)

// ValidationError reports the first violated constraint. Validation does
// not aggregate: the first failure wins and names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Validate checks a coerced doc against the schema. Strict mode requires
// every required field; Partial mode only constrains fields that are
// present. Field names listed in supplied also count as present, which
// lets a required media field be satisfied by a pending attachment that is
// uploaded only after validation passes.
func Validate(s Schema, doc map[string]any, mode Mode, supplied ...string) error {
	pre := make(map[string]bool, len(supplied))
	for _, name := range supplied {
		pre[name] = true
	}
	return validateFields(s.Fields, doc, mode, "", pre)
}

func validateFields(fields []Field, doc map[string]any, mode Mode, prefix string, pre map[string]bool) error {
	for _, f := range fields {
		name := prefix + f.Name
		v, ok := doc[f.Name]
		if !ok {
			if mode == Strict && f.Required && !pre[name] {
				return &ValidationError{Field: name, Reason: "is required"}
			}
			continue
		}
		if err := validateValue(f, name, v, mode, pre); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(f Field, name string, v any, mode Mode, pre map[string]bool) error {
	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return &ValidationError{Field: name, Reason: "must be a string"}
		}
		if f.Required && s == "" {
			return &ValidationError{Field: name, Reason: "must not be empty"}
		}
		if len(f.Enum) > 0 && !enumHas(f.Enum, s) {
			return &ValidationError{Field: name, Reason: "must be one of " + strings.Join(f.Enum, ", ")}
		}
	case StringList:
		if _, ok := v.([]string); !ok {
			return &ValidationError{Field: name, Reason: "must be a list of strings"}
		}
	case Bool:
		if _, ok := v.(bool); !ok {
			return &ValidationError{Field: name, Reason: "must be a boolean"}
		}
	case Int:
		if _, ok := v.(int); !ok {
			return &ValidationError{Field: name, Reason: "must be an integer"}
		}
	case Time:
		if _, ok := v.(time.Time); !ok {
			return &ValidationError{Field: name, Reason: "must be a date"}
		}
	case Object:
		m, ok := v.(map[string]any)
		if !ok {
			return &ValidationError{Field: name, Reason: "must be an object"}
		}
		return validateFields(f.Fields, m, mode, name+".", pre)
	}
	return nil
}

// Enum matches are case-sensitive; no normalization is performed.
func enumHas(enum []string, s string) bool {
	for _, e := range enum {
		if e == s {
			return true
		}
	}
	return false
}
