package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
	"github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
	"github.com/AErenK/site-yonetim/internal/core/ports"
	"github.com/AErenK/site-yonetim/pkg/apierrors"
)

type PushHandler struct {
	pushService ports.PushService
}

func NewPushHandler(pushService ports.PushService) *PushHandler {
	return &PushHandler{pushService: pushService}
}

func (h *PushHandler) Subscribe(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	err := h.pushService.Subscribe(c.Request.Context(), actor, req.Endpoint, req.Keys.P256dh, req.Keys.Auth)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to save push subscription", zap.String("user_id", actor.ID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailSubscribe)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *PushHandler) Unsubscribe(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	var req dto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	if err := h.pushService.Unsubscribe(c.Request.Context(), actor, req.Endpoint); err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to remove push subscription", zap.String("user_id", actor.ID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailUnsubscribe)
		return
	}

	c.Status(http.StatusNoContent)
}
