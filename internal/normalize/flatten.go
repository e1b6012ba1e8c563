package normalize

import "strings"

// schemaNoiseKeys are top-level keys carried by the upstream parser that hold
// no resume content.
var schemaNoiseKeys = []string{"meta", "fileinfo", "formatting", "sectionheadings", "additional"}

// Flatten rewrites a value tree into its uniform form: any mapping whose only
// key is "value" is replaced by the flattened form of that value, all other
// mapping keys are lower-cased, and sequences are flattened element-wise.
// Flatten is idempotent.
func Flatten(v Value) Value {
	switch t := v.(type) {
	case Sequence:
		out := make(Sequence, len(t))
		for i, child := range t {
			out[i] = Flatten(child)
		}
		return out
	case Mapping:
		if len(t) == 1 {
			if inner, ok := t["value"]; ok {
				return Flatten(inner)
			}
		}
		out := make(Mapping, len(t))
		for k, child := range t {
			out[strings.ToLower(k)] = Flatten(child)
		}
		return out
	default:
		return v
	}
}

// CleanSchema removes upstream schema noise keys from a flattened mapping.
func CleanSchema(m Mapping) Mapping {
	for _, k := range schemaNoiseKeys {
		delete(m, k)
	}
	return m
}

// IsEmpty judges a record's data envelope as empty when none of the
// content-bearing sections (work, education, projects) has entries.
func IsEmpty(m Mapping) bool {
	if len(m) == 0 {
		return true
	}
	return !IsTruthy(m["work"]) && !IsTruthy(m["education"]) && !IsTruthy(m["projects"])
}
