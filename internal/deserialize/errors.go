package deserialize

import "fmt"

// EntryError is the structured rejection reason for one section entry that
// failed typed validation. The entry is dropped; the record proceeds.
type EntryError struct {
	Section string
	Field   string
	Message string
	Cause   error
}

func (e *EntryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s entry: field %s: %s", e.Section, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s entry: %s", e.Section, e.Message)
}

func (e *EntryError) Unwrap() error {
	return e.Cause
}
