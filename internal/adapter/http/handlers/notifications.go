package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/adapter/http/mapper"
	"github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
	"github.com/AErenK/site-yonetim/internal/core/ports"
	"github.com/AErenK/site-yonetim/pkg/apierrors"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns the caller's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	notifications, err := h.notificationService.List(c.Request.Context(), actor)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.String("user_id", actor.ID), zap.Error(err))
		respondDomainError(c, lang, err, apierrors.MsgFailListNotifs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)
	notificationID := strings.TrimSpace(c.Param("id"))

	if err := h.notificationService.MarkRead(c.Request.Context(), actor, notificationID); err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to mark notification read", zap.String("notification_id", notificationID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailMarkRead)
		return
	}

	c.Status(http.StatusNoContent)
}
