// Package normalize turns raw extraction records into a uniform nested mapping
// ready for typed deserialization: wrapper envelopes are flattened, keys are
// lower-cased, irrelevant schema keys are dropped, and date strings are parsed
// into canonical year-month values.
package normalize

// Value is a generic JSON-like tree node. Exactly one of the three concrete
// forms (Scalar, Sequence, Mapping) backs any Value.
type Value interface {
	isValue()
}

// Scalar wraps a leaf value: string, number, bool, nil, or a parsed
// *types.YearMonth once date parsing has run.
type Scalar struct {
	V any
}

// Sequence is an ordered list of child values.
type Sequence []Value

// Mapping is a string-keyed object of child values.
type Mapping map[string]Value

func (Scalar) isValue()   {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// FromAny converts a decoded-JSON value (the result of json.Unmarshal into
// any) into a Value tree.
func FromAny(v any) Value {
	switch t := v.(type) {
	case map[string]any:
		m := make(Mapping, len(t))
		for k, child := range t {
			m[k] = FromAny(child)
		}
		return m
	case []any:
		s := make(Sequence, len(t))
		for i, child := range t {
			s[i] = FromAny(child)
		}
		return s
	default:
		return Scalar{V: v}
	}
}

// ToAny converts a Value tree back into plain decoded-JSON form.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Mapping:
		m := make(map[string]any, len(t))
		for k, child := range t {
			m[k] = ToAny(child)
		}
		return m
	case Sequence:
		s := make([]any, len(t))
		for i, child := range t {
			s[i] = ToAny(child)
		}
		return s
	case Scalar:
		return t.V
	default:
		return nil
	}
}

// IsTruthy reports whether a value is non-nil and non-empty, matching the
// loose presence checks used throughout the pipeline: empty strings,
// empty sequences, empty mappings and nil scalars all count as absent.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case Scalar:
		switch s := t.V.(type) {
		case nil:
			return false
		case string:
			return s != ""
		case bool:
			return s
		default:
			return true
		}
	case Sequence:
		return len(t) > 0
	case Mapping:
		return len(t) > 0
	default:
		return false
	}
}
