package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/forms"
	"taskboard/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Completed:   task.Completed,
	}
}

func ToTaskFormState(form *forms.TaskForm) dto.FormState {
	return dto.FormState{
		Values: map[string]string{
			"title":       form.Title,
			"description": form.Description,
			"priority":    form.Priority,
		},
		Errors: form.Errors,
	}
}
