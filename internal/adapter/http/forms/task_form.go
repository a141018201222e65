package forms

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"taskboard/internal/core/domain"
)

// TaskForm carries the user-editable task fields as submitted. Priority is
// kept raw so an invalid value can be redisplayed as typed.
type TaskForm struct {
	Title       string
	Description string
	Priority    string

	Errors   Errors
	priority int
}

// NewTaskForm returns an empty form for the create flow.
func NewTaskForm() *TaskForm {
	return &TaskForm{Errors: Errors{}}
}

// TaskFormFromModel pre-fills the form with an existing task's values.
func TaskFormFromModel(task domain.Task) *TaskForm {
	return &TaskForm{
		Title:       task.Title,
		Description: task.Description,
		Priority:    strconv.Itoa(task.Priority),
		Errors:      Errors{},
	}
}

// BindTaskForm populates the form from submitted url-encoded values.
func BindTaskForm(values url.Values) *TaskForm {
	return &TaskForm{
		Title:       strings.TrimSpace(values.Get("title")),
		Description: strings.TrimSpace(values.Get("description")),
		Priority:    strings.TrimSpace(values.Get("priority")),
		Errors:      Errors{},
	}
}

// Valid runs validation and records per-field errors. A blank priority falls
// back to the model default of 0.
func (f *TaskForm) Valid() bool {
	f.Errors = Errors{}

	if f.Title == "" {
		f.Errors.add("title", errRequired)
	} else if utf8.RuneCountInString(f.Title) > maxTextLength {
		f.Errors.add("title", errTooLong)
	}

	if f.Description == "" {
		f.Errors.add("description", errRequired)
	}

	f.priority = 0
	if f.Priority != "" {
		value, err := strconv.Atoi(f.Priority)
		if err != nil {
			f.Errors.add("priority", errWholeNumber)
		} else {
			f.priority = value
		}
	}

	return len(f.Errors) == 0
}

// Task builds a task from the validated fields. The parent project is not a
// form field; the caller attaches ProjectID from the request context before
// persisting. Only meaningful after Valid has returned true.
func (f *TaskForm) Task() domain.Task {
	return domain.Task{
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.priority,
	}
}
