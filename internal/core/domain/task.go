package domain

// Task is a unit of work belonging to exactly one project. Lower priority
// values sort first in the project's task list.
//
// Completed is stored and surfaced but no command currently flips it; it is
// kept for forward compatibility with a complete-task flow.
type Task struct {
	ID          uint64
	ProjectID   uint64
	Title       string
	Description string
	Priority    int
	Completed   bool
}
