package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/app/service"
	"taskboard/internal/core/domain"
)

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) Create(ctx context.Context, name string) (domain.Project, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) Update(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *projectRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *projectRepositoryMock) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) ListByProject(ctx context.Context, projectID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type notificationRepositoryMock struct {
	mock.Mock
}

func (m *notificationRepositoryMock) Create(ctx context.Context, message string) (domain.Notification, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationRepositoryMock) MarkRead(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *notificationRepositoryMock) List(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestProjectService_CreateProject_Notifies(t *testing.T) {
	projects := new(projectRepositoryMock)
	notifications := new(notificationRepositoryMock)

	projects.On("Create", mock.Anything, "Alpha").
		Return(domain.Project{ID: 1, Name: "Alpha"}, nil).Once()
	notifications.On("Create", mock.Anything, "New project added: Alpha").
		Return(domain.Notification{ID: 1}, nil).Once()

	svc := service.NewProjectService(projects, notifications)
	project, err := svc.CreateProject(context.Background(), "Alpha")

	require.NoError(t, err)
	require.Equal(t, uint64(1), project.ID)
	projects.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestProjectService_RenameProject_Notifies(t *testing.T) {
	projects := new(projectRepositoryMock)
	notifications := new(notificationRepositoryMock)

	projects.On("Update", mock.Anything, domain.Project{ID: 1, Name: "Alpha v2"}).
		Return(nil).Once()
	notifications.On("Create", mock.Anything, "Project edited: Alpha v2").
		Return(domain.Notification{ID: 2}, nil).Once()

	svc := service.NewProjectService(projects, notifications)
	_, err := svc.RenameProject(context.Background(), 1, "Alpha v2")

	require.NoError(t, err)
	projects.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestProjectService_DeleteProject_Notifies(t *testing.T) {
	projects := new(projectRepositoryMock)
	notifications := new(notificationRepositoryMock)

	projects.On("GetByID", mock.Anything, uint64(1)).
		Return(domain.Project{ID: 1, Name: "Alpha"}, nil).Once()
	projects.On("Delete", mock.Anything, uint64(1)).Return(nil).Once()
	notifications.On("Create", mock.Anything, "Project deleted: Alpha").
		Return(domain.Notification{ID: 3}, nil).Once()

	svc := service.NewProjectService(projects, notifications)
	require.NoError(t, svc.DeleteProject(context.Background(), 1))

	projects.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestProjectService_DeleteProject_Missing(t *testing.T) {
	projects := new(projectRepositoryMock)
	notifications := new(notificationRepositoryMock)

	projects.On("GetByID", mock.Anything, uint64(99)).
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	svc := service.NewProjectService(projects, notifications)
	err := svc.DeleteProject(context.Background(), 99)

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_CreateTask_NotifiesWithProjectName(t *testing.T) {
	projects := new(projectRepositoryMock)
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)

	input := domain.Task{ProjectID: 1, Title: "T1", Description: "d", Priority: 5}

	projects.On("GetByID", mock.Anything, uint64(1)).
		Return(domain.Project{ID: 1, Name: "Alpha"}, nil).Once()
	tasks.On("Create", mock.Anything, input).
		Return(domain.Task{ID: 10, ProjectID: 1, Title: "T1", Description: "d", Priority: 5}, nil).Once()
	notifications.On("Create", mock.Anything, "New task added: T1 to project Alpha").
		Return(domain.Notification{ID: 1}, nil).Once()

	svc := service.NewTaskService(tasks, projects, notifications)
	created, err := svc.CreateTask(context.Background(), input)

	require.NoError(t, err)
	require.Equal(t, uint64(10), created.ID)
	tasks.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestTaskService_CreateTask_MissingProject(t *testing.T) {
	projects := new(projectRepositoryMock)
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)

	projects.On("GetByID", mock.Anything, uint64(42)).
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	svc := service.NewTaskService(tasks, projects, notifications)
	_, err := svc.CreateTask(context.Background(), domain.Task{ProjectID: 42, Title: "T1", Description: "d"})

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_UpdateTask_Notifies(t *testing.T) {
	projects := new(projectRepositoryMock)
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)

	task := domain.Task{ID: 10, ProjectID: 1, Title: "T1", Description: "d", Priority: 2}

	tasks.On("Update", mock.Anything, task).Return(nil).Once()
	notifications.On("Create", mock.Anything, "Task edited: T1").
		Return(domain.Notification{ID: 1}, nil).Once()

	svc := service.NewTaskService(tasks, projects, notifications)
	_, err := svc.UpdateTask(context.Background(), task)

	require.NoError(t, err)
	tasks.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestTaskService_DeleteTask_Notifies(t *testing.T) {
	projects := new(projectRepositoryMock)
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)

	tasks.On("GetByID", mock.Anything, uint64(10)).
		Return(domain.Task{ID: 10, ProjectID: 1, Title: "T1", Description: "d"}, nil).Once()
	tasks.On("Delete", mock.Anything, uint64(10)).Return(nil).Once()
	notifications.On("Create", mock.Anything, "Task deleted: T1").
		Return(domain.Notification{ID: 1}, nil).Once()

	svc := service.NewTaskService(tasks, projects, notifications)
	deleted, err := svc.DeleteTask(context.Background(), 10)

	require.NoError(t, err)
	require.Equal(t, uint64(1), deleted.ProjectID)
	tasks.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestTaskService_SetTaskPriority_Notifies(t *testing.T) {
	projects := new(projectRepositoryMock)
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)

	tasks.On("GetByID", mock.Anything, uint64(10)).
		Return(domain.Task{ID: 10, ProjectID: 1, Title: "T1", Description: "d", Priority: 2}, nil).Once()
	tasks.On("Update", mock.Anything, domain.Task{ID: 10, ProjectID: 1, Title: "T1", Description: "d", Priority: 7}).
		Return(nil).Once()
	notifications.On("Create", mock.Anything, "Task priority updated: T1 to 7").
		Return(domain.Notification{ID: 1}, nil).Once()

	svc := service.NewTaskService(tasks, projects, notifications)
	task, err := svc.SetTaskPriority(context.Background(), 10, 7)

	require.NoError(t, err)
	require.Equal(t, 7, task.Priority)
	tasks.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestTaskService_SetTaskPriority_NegativeIsNoOp(t *testing.T) {
	projects := new(projectRepositoryMock)
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)

	tasks.On("GetByID", mock.Anything, uint64(10)).
		Return(domain.Task{ID: 10, ProjectID: 1, Title: "T1", Description: "d", Priority: 2}, nil).Once()

	svc := service.NewTaskService(tasks, projects, notifications)
	task, err := svc.SetTaskPriority(context.Background(), 10, -1)

	require.NoError(t, err)
	require.Equal(t, 2, task.Priority, "stored priority is kept")
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDashboardService_AggregatesCountsAndLog(t *testing.T) {
	projects := new(projectRepositoryMock)
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)

	log := []domain.Notification{
		{ID: 3, Message: "New task added: T2 to project Alpha", CreatedAt: time.Now()},
		{ID: 2, Message: "New task added: T1 to project Alpha", CreatedAt: time.Now().Add(-time.Minute)},
		{ID: 1, Message: "New project added: Alpha", CreatedAt: time.Now().Add(-2 * time.Minute)},
	}

	projects.On("Count", mock.Anything).Return(int64(1), nil).Once()
	tasks.On("Count", mock.Anything).Return(int64(2), nil).Once()
	notifications.On("Count", mock.Anything).Return(int64(3), nil).Once()
	notifications.On("List", mock.Anything).Return(log, nil).Once()

	svc := service.NewDashboardService(projects, tasks, notifications)
	dashboard, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	require.EqualValues(t, 1, dashboard.TotalProjects)
	require.EqualValues(t, 2, dashboard.TotalTasks)
	require.EqualValues(t, 3, dashboard.TotalNotifications)
	require.Len(t, dashboard.Notifications, 3)
	require.Equal(t, uint64(3), dashboard.Notifications[0].ID)
}

func TestNotificationService_MarkRead(t *testing.T) {
	notifications := new(notificationRepositoryMock)
	notifications.On("MarkRead", mock.Anything, uint64(5)).Return(nil).Once()

	svc := service.NewNotificationService(notifications)
	require.NoError(t, svc.MarkNotificationRead(context.Background(), 5))
	notifications.AssertExpectations(t)
}
