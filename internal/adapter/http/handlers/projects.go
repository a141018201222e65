package handlers

import (
	"errors"
	"net/http"

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

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectListPage{Projects: mapper.ToProjectItems(projects)})
}

func (h *ProjectHandler) NewProjectForm(c *gin.Context) {
	form := forms.NewProjectForm()
	c.JSON(http.StatusOK, dto.ProjectFormPage{Form: mapper.ToProjectFormState(form)})
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	form := forms.BindProjectForm(postFormValues(c))
	if !form.Valid() {
		c.JSON(http.StatusOK, dto.ProjectFormPage{Form: mapper.ToProjectFormState(form)})
		return
	}

	if _, err := h.projectService.CreateProject(c.Request.Context(), form.Name); err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveProject, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, projectListPath)
}

func (h *ProjectHandler) EditProjectForm(c *gin.Context) {
	lang := middleware.GetLang(c)

	project, ok := h.resolveProject(c, lang)
	if !ok {
		return
	}

	item := mapper.ToProjectItem(project)
	form := forms.ProjectFormFromModel(project)
	c.JSON(http.StatusOK, dto.ProjectFormPage{Form: mapper.ToProjectFormState(form), Project: &item})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	project, ok := h.resolveProject(c, lang)
	if !ok {
		return
	}

	form := forms.BindProjectForm(postFormValues(c))
	if !form.Valid() {
		item := mapper.ToProjectItem(project)
		c.JSON(http.StatusOK, dto.ProjectFormPage{Form: mapper.ToProjectFormState(form), Project: &item})
		return
	}

	if _, err := h.projectService.RenameProject(c.Request.Context(), project.ID, form.Name); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update project", zap.Uint64("project_id", project.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveProject, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, projectListPath)
}

// ConfirmDeleteProject returns the project a confirmation page would show;
// the delete itself only happens on POST.
func (h *ProjectHandler) ConfirmDeleteProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	project, ok := h.resolveProject(c, lang)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ProjectDeletePage{Project: mapper.ToProjectItem(project)})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, "project_id")
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
		)
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete project", zap.Uint64("project_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteProject, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, projectListPath)
}

func (h *ProjectHandler) resolveProject(c *gin.Context, lang string) (domain.Project, bool) {
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
