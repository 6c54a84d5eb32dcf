package validation

import (
	"strings"

	"github.com/dmitrijs2005/devlearn/internal/common"
)

// FieldError is a message bound to a form field identifier.
type FieldError struct {
	Field   string
	Message string
}

// Errors collects field errors in the order they were found. It matches
// common.ErrValidation with errors.Is.
type Errors struct {
	fields []FieldError
}

// Add records msg for field. A field keeps its first message.
func (e *Errors) Add(field, msg string) {
	if e.Message(field) != "" {
		return
	}
	e.fields = append(e.fields, FieldError{Field: field, Message: msg})
}

// Err returns e, or nil when nothing was recorded.
func (e *Errors) Err() error {
	if e == nil || len(e.fields) == 0 {
		return nil
	}
	return e
}

func (e *Errors) Fields() []FieldError {
	out := make([]FieldError, len(e.fields))
	copy(out, e.fields)
	return out
}

// Message returns the message recorded for field, or "".
func (e *Errors) Message(field string) string {
	for _, f := range e.fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return common.ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Errors) Unwrap() error { return common.ErrValidation }
