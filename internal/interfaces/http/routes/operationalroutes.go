package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"helpdesk/internal/interfaces/http/handlers"
)

type OperationalRouteConfig struct {
	HealthHandler *handlers.HealthHandler
	// MetricsPath is empty when metrics are disabled.
	MetricsPath    string
	MetricsHandler http.Handler
	EnableSwagger  bool
}

func SetupOperationalRoutes(engine *gin.Engine, config *OperationalRouteConfig) {
	engine.GET("/health", config.HealthHandler.Health)

	if config.MetricsPath != "" {
		handler := config.MetricsHandler
		if handler == nil {
			handler = promhttp.Handler()
		}
		engine.GET(config.MetricsPath, gin.WrapH(handler))
	}

	if config.EnableSwagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
