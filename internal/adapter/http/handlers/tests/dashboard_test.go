package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
)

func newDashboardRouter(serviceMock *dashboardServiceMock) *gin.Engine {
	handler := handlers.NewDashboardHandler(serviceMock)

	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	router.GET("/", handler.Dashboard)
	return router
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	serviceMock := new(dashboardServiceMock)
	serviceMock.On("Dashboard", mock.Anything).Return(domain.Dashboard{
		TotalProjects:      1,
		TotalTasks:         2,
		TotalNotifications: 3,
		Notifications: []domain.Notification{
			{ID: 3, Message: "New task added: T2 to project Alpha", CreatedAt: createdAt},
			{ID: 2, Message: "New task added: T1 to project Alpha", CreatedAt: createdAt.Add(-time.Minute)},
			{ID: 1, Message: "New project added: Alpha", Read: true, CreatedAt: createdAt.Add(-2 * time.Minute)},
		},
	}, nil).Once()

	rec := get(newDashboardRouter(serviceMock), "/")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.DashboardPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.EqualValues(t, 1, got.TotalProjects)
	require.EqualValues(t, 2, got.TotalTasks)
	require.EqualValues(t, 3, got.TotalNotifications)
	require.Len(t, got.Notifications, 3)
	require.Equal(t, "New task added: T2 to project Alpha", got.Notifications[0].Message)
	require.Equal(t, "2026-03-02T09:30:00Z", got.Notifications[0].CreatedAt)
	require.False(t, got.Notifications[0].Read)
	require.True(t, got.Notifications[2].Read)
	serviceMock.AssertExpectations(t)
}

func TestDashboardHandler_Dashboard_Error(t *testing.T) {
	serviceMock := new(dashboardServiceMock)
	serviceMock.On("Dashboard", mock.Anything).
		Return(domain.Dashboard{}, errors.New("db is down")).Once()

	rec := get(newDashboardRouter(serviceMock), "/")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to load the dashboard.", got.ErrDetails.Message)
}
