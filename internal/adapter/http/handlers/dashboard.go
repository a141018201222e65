package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	lang := middleware.GetLang(c)

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load dashboard", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLoadDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardPage(dashboard))
}
