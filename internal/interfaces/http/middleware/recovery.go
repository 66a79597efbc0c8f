package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Recovery turns a handler panic into the generic 500 body. Broken client
// connections are handled by gin before this callback runs.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		args := append(requestFields(c),
			"panic", recovered,
			"stack", string(debug.Stack()))
		log.Errorw("handler panicked", args...)

		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		c.Abort()
	})
}
