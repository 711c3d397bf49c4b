package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/pkg/apierrors"
)

// respondDomainError maps the shared error taxonomy to HTTP. Unknown errors
// fall through to a 500 with the operation-specific message key; callers log
// those before calling this.
func respondDomainError(c *gin.Context, lang string, err error, fallbackKey string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang))
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgUnauthorized, lang))
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFields, lang))
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang))
	case errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotificationNotFound, lang))
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang))
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang))
	case errors.Is(err, domain.ErrSelfDeletion):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgSelfDeletion, lang))
	case errors.Is(err, domain.ErrUserHasRecords):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgUserHasRecords, lang))
	default:
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, fallbackKey, lang))
	}
}

func isDomainError(err error) bool {
	for _, known := range []error{
		domain.ErrUnauthenticated,
		domain.ErrUnauthorized,
		domain.ErrValidation,
		domain.ErrTaskNotFound,
		domain.ErrUserNotFound,
		domain.ErrNotificationNotFound,
		domain.ErrInvalidCredentials,
		domain.ErrEmailTaken,
		domain.ErrSelfDeletion,
		domain.ErrUserHasRecords,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
