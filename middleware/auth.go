package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userContextKey = "currentUser"

// Protect resolves the bearer token to a user row before the handler runs.
// The user is re-loaded per request so role changes take effect on the next
// call, not on token expiry.
func Protect(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, no token")
			c.Abort()
			return
		}

		userID, err := utils.ParseToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized, token failed")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.JSONError(c, http.StatusUnauthorized, "Not authorized, user no longer exists")
			} else {
				utils.JSONError(c, http.StatusInternalServerError, "Server error")
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// AdminOnly requires a Protect-ed request whose user holds the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			utils.JSONError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Protect, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
