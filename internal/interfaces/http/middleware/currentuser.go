package middleware

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// CurrentUser attaches the configured caller identity to every request.
// There is no authentication; handlers read the identity from the context
// and pass it into use case commands.
func CurrentUser(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserEmail, email)
		c.Next()
	}
}

// UserEmail returns the identity set by CurrentUser.
func UserEmail(c *gin.Context) (string, bool) {
	email := c.GetString(constants.ContextKeyUserEmail)
	return email, email != ""
}
