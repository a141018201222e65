package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/core/domain"
)

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) RenameProject(ctx context.Context, id uint64, name string) (domain.Project, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListProjectTasks(ctx context.Context, projectID uint64) (domain.Project, []domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(1); value != nil {
		tasks = value.([]domain.Task)
	}
	return args.Get(0).(domain.Project), tasks, args.Error(2)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetTaskPriority(ctx context.Context, id uint64, priority int) (domain.Task, error) {
	args := m.Called(ctx, id, priority)
	return args.Get(0).(domain.Task), args.Error(1)
}

type notificationServiceMock struct {
	mock.Mock
}

func (m *notificationServiceMock) MarkNotificationRead(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type dashboardServiceMock struct {
	mock.Mock
}

func (m *dashboardServiceMock) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Dashboard), args.Error(1)
}
