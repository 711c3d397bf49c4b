package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
	"github.com/AErenK/site-yonetim/pkg/apierrors"
)

const (
	SessionCookieName = "session"
	SessionTTL        = 7 * 24 * time.Hour

	identityKey = "identity"
)

// IssueSessionToken signs the 7-day HS256 token stored in the session cookie.
// The token only carries the user id; the identity is re-resolved on every
// request so role changes and deletions take effect immediately.
func IssueSessionToken(secret, userID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature and expiry and returns the user id.
func ParseSessionToken(secret, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// AuthMiddleware resolves the session cookie into a caller identity and
// attaches it to the request context. Requests without a valid session get a
// localized 401.
func AuthMiddleware(secret string, auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			abortUnauthenticated(c, lang)
			return
		}

		userID, err := ParseSessionToken(secret, token)
		if err != nil {
			abortUnauthenticated(c, lang)
			return
		}

		identity, err := auth.Resolve(c.Request.Context(), userID)
		if err != nil {
			// A stale cookie for a deleted user is expected; anything else is
			// a store failure worth logging.
			if !errors.Is(err, domain.ErrUserNotFound) {
				zap.L().Error("failed to resolve session user", zap.String("user_id", userID), zap.Error(err))
			}
			abortUnauthenticated(c, lang)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// SetIdentity attaches the caller identity to the request context.
func SetIdentity(c *gin.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

// GetIdentity returns the authenticated caller set by AuthMiddleware.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

func abortUnauthenticated(c *gin.Context, lang string) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
	)
}
