package forms

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"taskboard/internal/core/domain"
)

// ProjectForm carries the single editable project field.
type ProjectForm struct {
	Name string

	Errors Errors
}

// NewProjectForm returns an empty form for the create flow.
func NewProjectForm() *ProjectForm {
	return &ProjectForm{Errors: Errors{}}
}

// ProjectFormFromModel pre-fills the form with an existing project's values.
func ProjectFormFromModel(project domain.Project) *ProjectForm {
	return &ProjectForm{Name: project.Name, Errors: Errors{}}
}

// BindProjectForm populates the form from submitted url-encoded values.
func BindProjectForm(values url.Values) *ProjectForm {
	return &ProjectForm{
		Name:   strings.TrimSpace(values.Get("name")),
		Errors: Errors{},
	}
}

// Valid runs validation and records per-field errors.
func (f *ProjectForm) Valid() bool {
	f.Errors = Errors{}

	if f.Name == "" {
		f.Errors.add("name", errRequired)
	} else if utf8.RuneCountInString(f.Name) > maxTextLength {
		f.Errors.add("name", errTooLong)
	}

	return len(f.Errors) == 0
}
