package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
)

// RegisterRoutes wires the command surface. The paths (trailing slashes
// included) are a compatibility contract and must not change.
func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	dashboardHandler *handlers.DashboardHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/", dashboardHandler.Dashboard)

	r.GET("/projects_list/", projectHandler.ListProjects)
	r.GET("/add_project/", projectHandler.NewProjectForm)
	r.POST("/add_project/", projectHandler.CreateProject)
	r.GET("/projects/:project_id/edit/", projectHandler.EditProjectForm)
	r.POST("/projects/:project_id/edit/", projectHandler.UpdateProject)
	r.GET("/projects/:project_id/delete/", projectHandler.ConfirmDeleteProject)
	r.POST("/projects/:project_id/delete/", projectHandler.DeleteProject)

	r.GET("/add_task/:project_id/tasks/add/", taskHandler.NewTaskForm)
	r.POST("/add_task/:project_id/tasks/add/", taskHandler.CreateTask)
	r.GET("/task_list/:project_id/", taskHandler.ListProjectTasks)
	r.GET("/tasks/:task_id/edit/", taskHandler.EditTaskForm)
	r.POST("/tasks/:task_id/edit/", taskHandler.UpdateTask)
	r.GET("/tasks/:task_id/delete/", taskHandler.ConfirmDeleteTask)
	r.POST("/tasks/:task_id/delete/", taskHandler.DeleteTask)
	r.GET("/tasks/:task_id/priority/:priority/", taskHandler.UpdateTaskPriority)

	r.GET("/notifications/:notification_id/read/", notificationHandler.MarkNotificationRead)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}
}
