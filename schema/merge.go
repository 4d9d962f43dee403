package schema

// ApplyDefaults returns a copy of doc with declared defaults filled in for
// fields the request did not provide. Used on create only: updates never
// reapply defaults, so a field that coerced to "not provided" is left
// untouched on the stored document.
func ApplyDefaults(s Schema, doc map[string]any) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for k, v := range doc {
		out[k] = v
	}
	for _, f := range s.Fields {
		if _, ok := out[f.Name]; ok {
			continue
		}
		if f.Default != nil {
			out[f.Name] = f.Default
		}
	}
	return out
}

// Flatten converts a coerced partial-update doc into a flat map keyed by
// dotted paths, suitable as a $set document. Nested objects flatten key by
// key, so the stored document merges rather than replaces them: an update
// carrying only personalInfo.socialLinks.github leaves
// personalInfo.socialLinks.linkedin alone.
func Flatten(s Schema, doc map[string]any) map[string]any {
	out := map[string]any{}
	flattenFields(s.Fields, doc, "", out)
	return out
}

func flattenFields(fields []Field, doc map[string]any, prefix string, out map[string]any) {
	for _, f := range fields {
		v, ok := doc[f.Name]
		if !ok {
			continue
		}
		if f.Kind == Object {
			if m, ok := v.(map[string]any); ok {
				flattenFields(f.Fields, m, prefix+f.Name+".", out)
			}
			continue
		}
		out[prefix+f.Name] = v
	}
}
