package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/forms"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type TaskHandler struct {
	taskService    ports.TaskService
	projectService ports.ProjectService
}

func NewTaskHandler(taskService ports.TaskService, projectService ports.ProjectService) *TaskHandler {
	return &TaskHandler{taskService: taskService, projectService: projectService}
}

func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, "project_id")
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
		)
		return
	}

	project, tasks, err := h.taskService.ListProjectTasks(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list tasks", zap.Uint64("project_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListPage{
		Project: mapper.ToProjectItem(project),
		Tasks:   mapper.ToTaskItems(tasks),
	})
}

func (h *TaskHandler) NewTaskForm(c *gin.Context) {
	lang := middleware.GetLang(c)

	project, ok := h.resolveParentProject(c, lang)
	if !ok {
		return
	}

	item := mapper.ToProjectItem(project)
	form := forms.NewTaskForm()
	c.JSON(http.StatusOK, dto.TaskFormPage{Form: mapper.ToTaskFormState(form), Project: &item})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	project, ok := h.resolveParentProject(c, lang)
	if !ok {
		return
	}

	form := forms.BindTaskForm(postFormValues(c))
	if !form.Valid() {
		item := mapper.ToProjectItem(project)
		c.JSON(http.StatusOK, dto.TaskFormPage{Form: mapper.ToTaskFormState(form), Project: &item})
		return
	}

	// Two-phase construction: the form builds the flat fields, the parent
	// comes from the URL.
	task := form.Task()
	task.ProjectID = project.ID

	if _, err := h.taskService.CreateTask(c.Request.Context(), task); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("project_id", project.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveTask, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, taskListPath(project.ID))
}

func (h *TaskHandler) EditTaskForm(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, ok := h.resolveTask(c, lang)
	if !ok {
		return
	}

	item := mapper.ToTaskItem(task)
	form := forms.TaskFormFromModel(task)
	c.JSON(http.StatusOK, dto.TaskFormPage{Form: mapper.ToTaskFormState(form), Task: &item})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, ok := h.resolveTask(c, lang)
	if !ok {
		return
	}

	form := forms.BindTaskForm(postFormValues(c))
	if !form.Valid() {
		item := mapper.ToTaskItem(task)
		c.JSON(http.StatusOK, dto.TaskFormPage{Form: mapper.ToTaskFormState(form), Task: &item})
		return
	}

	// The form never carries the parent or the completed flag; both survive
	// the edit unchanged.
	updated := form.Task()
	updated.ID = task.ID
	updated.ProjectID = task.ProjectID
	updated.Completed = task.Completed

	if _, err := h.taskService.UpdateTask(c.Request.Context(), updated); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", task.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveTask, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, taskListPath(task.ProjectID))
}

// ConfirmDeleteTask returns the task a confirmation page would show; the
// delete itself only happens on POST.
func (h *TaskHandler) ConfirmDeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, ok := h.resolveTask(c, lang)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.TaskDeletePage{Task: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, "task_id")
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, taskListPath(task.ProjectID))
}

// UpdateTaskPriority sets a task's priority from the path. Negative values
// are a silent no-op: the request still redirects but nothing is stored.
func (h *TaskHandler) UpdateTaskPriority(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, "task_id")
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return
	}

	priority, err := strconv.Atoi(c.Param("priority"))
	if err != nil {
		// A non-integer segment could never have matched this route's intent.
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgPageNotFound, lang),
		)
		return
	}

	task, err := h.taskService.SetTaskPriority(c.Request.Context(), id, priority)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task priority",
			zap.Uint64("task_id", id), zap.Int("priority", priority), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdatePriority, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, taskListPath(task.ProjectID))
}

func (h *TaskHandler) resolveParentProject(c *gin.Context, lang string) (domain.Project, bool) {
	id, ok := pathID(c, "project_id")
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
		)
		return domain.Project{}, false
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return domain.Project{}, false
		}

		zap.L().Error("failed to load project", zap.Uint64("project_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProjects, lang),
		)
		return domain.Project{}, false
	}

	return project, true
}

func (h *TaskHandler) resolveTask(c *gin.Context, lang string) (domain.Task, bool) {
	id, ok := pathID(c, "task_id")
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return domain.Task{}, false
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return domain.Task{}, false
		}

		zap.L().Error("failed to load task", zap.Uint64("task_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return domain.Task{}, false
	}

	return task, true
}
