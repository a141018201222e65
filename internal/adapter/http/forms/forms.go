// Package forms validates and coerces submitted field values before they
// reach the store, and projects existing entities back into editable form
// state for edit flows.
package forms

const (
	errRequired    = "This field is required."
	errTooLong     = "Ensure this value has at most 100 characters."
	errWholeNumber = "Enter a whole number."

	maxTextLength = 100
)

// Errors maps a field name to its validation messages.
type Errors map[string][]string

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}
