package render

import "fmt"

// TemplateError reports a template that could not be resolved or executed.
type TemplateError struct {
	TemplateID string
	Message    string
	Cause      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %s", e.TemplateID, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
