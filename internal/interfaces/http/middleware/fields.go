package middleware

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

const unmatchedRoute = "unmatched"

// requestFields returns the log attributes that identify a request: the
// route template, the request id and, on ticket routes, the ticket id and
// caller.
func requestFields(c *gin.Context) []any {
	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}

	fields := []any{
		"method", c.Request.Method,
		"route", route,
	}
	if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if ticketID := c.Param("id"); ticketID != "" {
		fields = append(fields, "ticket_id", ticketID)
	}
	if email, ok := UserEmail(c); ok {
		fields = append(fields, "user", email)
	}
	return fields
}
