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

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	users, err := h.userService.List(c.Request.Context(), actor)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to list users", zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailListUsers)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)
	userID := strings.TrimSpace(c.Param("id"))

	if err := h.userService.Delete(c.Request.Context(), actor, userID); err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to delete user", zap.String("user_id", userID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailDeleteUser)
		return
	}

	c.Status(http.StatusNoContent)
}
