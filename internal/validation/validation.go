// Package validation holds the pre-persist consistency checks for all
// entities. Rules collect every failure instead of stopping at the first,
// so callers can report the full field-scoped list at once.
package validation

import "strings"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the collected result of running all rules against one record.
// A nil/empty Errors means the record is valid.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "valid"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e Errors) Empty() bool { return len(e) == 0 }
