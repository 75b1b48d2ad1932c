package handlers

import (
	"errors"
	"net/http"
	"strings"

	"blog_backend/internal/models"
	"blog_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// userCtxKey is where the resolved user lives in the Gin context, for the
// duration of a single request only.
const userCtxKey = "currentUser"

// currentUserMiddleware resolves the bearer token to a stored user.
// Each stage fails distinctly: missing credential, invalid/expired token,
// token without subject, and subject that no longer resolves to a user
// (tokens are not revoked when a user is deleted).
func (h *Handler) currentUserMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	email, err := h.services.ParseToken(parts[1])
	if err != nil {
		if errors.Is(err, service.ErrMalformedToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid token payload",
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	user, err := h.services.UserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": "user not found",
			})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to resolve user", "auth_resolve_failed", err)
		c.Abort()
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// currentUser returns the user the middleware resolved for this request.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
