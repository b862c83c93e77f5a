package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDCtxKey is where the middleware stores the authenticated user's ID in
// the gin context.
const userIDCtxKey = "userId"

// userIdMiddleware extracts the bearer token, verifies it and attaches the
// resolved user ID to the request context. Malformed and expired tokens get
// the same answer on purpose.
func (h *Handler) userIdMiddleware(c *gin.Context) {
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

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIDCtxKey, userId)
	c.Next()
}

// ownerID reads the user ID the middleware stored for this request.
func ownerID(c *gin.Context) int {
	return c.GetInt(userIDCtxKey)
}
