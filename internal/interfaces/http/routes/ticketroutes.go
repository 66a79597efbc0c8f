package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	// RateLimit guards mutating routes; nil disables it.
	RateLimit gin.HandlerFunc
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	mutating := []gin.HandlerFunc{}
	if config.RateLimit != nil {
		mutating = append(mutating, config.RateLimit)
	}

	tickets := api.Group("/ticket")
	{
		tickets.POST("", append(mutating, config.TicketHandler.CreateTicket)...)

		tickets.POST("/:id/comment", append(mutating, config.TicketHandler.AddComment)...)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", append(mutating, config.TicketHandler.UpdateTicketState)...)
	}
}
