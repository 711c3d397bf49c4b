package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
	"github.com/AErenK/site-yonetim/internal/adapter/http/mapper"
	"github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
	"github.com/AErenK/site-yonetim/pkg/apierrors"
)

type AuthHandler struct {
	authService   ports.AuthService
	sessionSecret string
}

func NewAuthHandler(authService ports.AuthService, sessionSecret string) *AuthHandler {
	return &AuthHandler{authService: authService, sessionSecret: sessionSecret}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFields, lang))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to register user", zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailRegister)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFields, lang))
		return
	}

	identity, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to log user in", zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailLogin)
		return
	}

	token, err := middleware.IssueSessionToken(h.sessionSecret, identity.ID, time.Now())
	if err != nil {
		zap.L().Error("failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang))
		return
	}

	h.setSessionCookie(c, token, int(middleware.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, toSessionResponse(identity))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		lang := middleware.GetLang(c)
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang))
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(identity))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)
}

func toSessionResponse(identity domain.Identity) dto.SessionResponse {
	return dto.SessionResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  string(identity.Role),
	}
}
