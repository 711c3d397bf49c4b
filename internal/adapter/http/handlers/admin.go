package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
	"github.com/AErenK/site-yonetim/internal/core/ports"
	"github.com/AErenK/site-yonetim/pkg/apierrors"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Reset wipes subscriptions, notifications, tasks and employee accounts.
func (h *AdminHandler) Reset(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	if err := h.adminService.Reset(c.Request.Context(), actor); err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to reset system", zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailReset)
		return
	}

	c.Status(http.StatusNoContent)
}
