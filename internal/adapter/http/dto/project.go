package dto

type ProjectItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ProjectListPage struct {
	Projects []ProjectItem `json:"projects"`
}

type ProjectFormPage struct {
	Form    FormState    `json:"form"`
	Project *ProjectItem `json:"project,omitempty"`
}

type ProjectDeletePage struct {
	Project ProjectItem `json:"project"`
}
