package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey  = "userId"
	isGuestKey = "isGuest"

	// GuestID is the shared identity used when no X-User-Id header is sent.
	GuestID = "guest"
)

// Identity resolves the acting user from the X-User-Id header. Requests
// without the header run under the shared guest identity.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			c.Set(userIDKey, GuestID)
			c.Set(isGuestKey, true)
			c.Next()
			return
		}
		c.Set(userIDKey, userID)
		c.Set(isGuestKey, false)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return GuestID
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok && id != "" {
		return id
	}
	return GuestID
}

// IsGuest reports whether the request runs under the guest identity.
func IsGuest(c *gin.Context) bool {
	if c == nil {
		return true
	}
	val, _ := c.Get(isGuestKey)
	if guest, ok := val.(bool); ok {
		return guest
	}
	return true
}
