package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"promptrelay.app/relay/internal/http/dto"
	"promptrelay.app/relay/internal/http/handler"
	"promptrelay.app/relay/internal/http/middleware"
	"promptrelay.app/relay/internal/service"
)

type RouterConfig struct {
	AllowedOrigins []string
	ServiceName    string
	TracingEnabled bool
}

// NewEngine builds the gin engine with the middleware chain and all routes.
func NewEngine(cfg RouterConfig, services *service.Services) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Order matters: OTel creates span → request id → Recovery catches panics → Logger logs with
	// trace context → CORS answers preflights before routing
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	SetupRoutes(router, services)
	return router
}

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
	})

	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)

		generateHandler := handler.NewGenerateHandler(services.Generation())
		GenerateRouter(api, generateHandler)
	}
}
