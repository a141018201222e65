package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/forms"
	"taskboard/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	return dto.ProjectItem{
		ID:   project.ID,
		Name: project.Name,
	}
}

func ToProjectFormState(form *forms.ProjectForm) dto.FormState {
	return dto.FormState{
		Values: map[string]string{"name": form.Name},
		Errors: form.Errors,
	}
}
