package middleware

import (
	"net/http"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates the admin surface on the X-ADMIN-TOKEN header. The token
// is an opaque capability from the caller's point of view; holders of a
// valid one are admins, no finer-grained identity is attached downstream.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-ADMIN-TOKEN")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		adminID, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}
