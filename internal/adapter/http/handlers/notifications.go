package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// MarkNotificationRead flips the read flag and sends the caller back to the
// dashboard. Unlike the other mutations it does not log a notification.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, "notification_id")
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotificationNotFound, lang),
		)
		return
	}

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotificationNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to mark notification read", zap.Uint64("notification_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailMarkNotifRead, lang),
		)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
