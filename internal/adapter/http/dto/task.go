package dto

type TaskItem struct {
	ID          uint64 `json:"id"`
	ProjectID   uint64 `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
}

type TaskListPage struct {
	Project ProjectItem `json:"project"`
	Tasks   []TaskItem  `json:"tasks"`
}

type TaskFormPage struct {
	Form    FormState    `json:"form"`
	Project *ProjectItem `json:"project,omitempty"`
	Task    *TaskItem    `json:"task,omitempty"`
}

type TaskDeletePage struct {
	Task TaskItem `json:"task"`
}
