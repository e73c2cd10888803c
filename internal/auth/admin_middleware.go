package auth

import (
	"net/http"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware creates a gin middleware to check that the authenticated
// principal is a catalog admin. It must be used AFTER AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, exists := c.Get("adminID")
		if !exists {
			// This should not happen if AuthMiddleware is used before it
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		var admin models.Admin
		if err := database.DB.First(&admin, adminID.(uint)).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Authenticated admin not found"})
			return
		}

		if admin.Role != "admin" && admin.Role != "super-admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("adminRole", admin.Role)
		c.Next()
	}
}

// SuperAdminMiddleware restricts a route to the super-admin role. It must
// be used AFTER AdminMiddleware.
func SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("adminRole")
		if role != "super-admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Super-admin access required"})
			return
		}
		c.Next()
	}
}
