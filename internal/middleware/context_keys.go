package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the acting user's ID in the Gin context.
const userIDKey = contextKey("userID")

// defaultActor is attributed when a request carries no X-User-ID header.
const defaultActor = "system"

// ActorAttribution stores the caller identity from the X-User-ID header in the
// Gin context so handlers can stamp audit fields.
func ActorAttribution() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-User-ID")
		if actor == "" {
			actor = defaultActor
		}
		c.Set(string(userIDKey), actor)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the acting user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) string {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return defaultActor
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return defaultActor
	}

	return userID
}
