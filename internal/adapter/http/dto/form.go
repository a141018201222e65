package dto

// FormState is what a downstream page needs to redraw an input form: the
// submitted (or pre-filled) values and any per-field validation messages.
type FormState struct {
	Values map[string]string   `json:"values"`
	Errors map[string][]string `json:"errors"`
}
