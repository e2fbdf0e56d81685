package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/models"
	"github.com/hostkeep/rental-app/utils"
)

// RoleHeader carries the active role picked in the UI's role switcher.
const RoleHeader = "X-Active-Role"

// ActiveRole reads the role switcher header into the request context.
// There is no authentication behind it; an unset header means Cleaner,
// an unknown value is rejected.
func ActiveRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.GetHeader(RoleHeader))
		if role == "" {
			role = models.RoleCleaner
		}
		if !models.ValidRole(role) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown role %q", role))
			c.Abort()
			return
		}

		c.Set("role", role)
		c.Next()
	}
}

// RequireRole gates a route group to one active role.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != required {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("switch to the %s role first", required))
			c.Abort()
			return
		}

		c.Next()
	}
}
