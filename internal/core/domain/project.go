package domain

// Project is a named grouping that owns tasks. Deleting a project removes
// every task that belongs to it.
type Project struct {
	ID   uint64
	Name string
}
