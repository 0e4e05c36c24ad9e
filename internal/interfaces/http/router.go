package http

import (
	"github.com/gin-gonic/gin"

	"noticeboard/internal/interfaces/http/handlers"
	"noticeboard/internal/interfaces/http/middleware"
	"noticeboard/internal/shared/config"
	"noticeboard/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	graphqlHandler *handlers.GraphQLHandler
	healthHandler  *handlers.HealthHandler
	allowedOrigins []string
	logger         logger.Interface
}

// NewRouter creates a router serving the GraphQL endpoint and health probe.
func NewRouter(
	graphqlHandler *handlers.GraphQLHandler,
	healthHandler *handlers.HealthHandler,
	serverCfg config.ServerConfig,
	log logger.Interface,
) *Router {
	return &Router{
		engine:         gin.New(),
		graphqlHandler: graphqlHandler,
		healthHandler:  healthHandler,
		allowedOrigins: serverCfg.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", r.healthHandler.Check)

	r.engine.POST("/graphql", r.graphqlHandler.Post)
	r.engine.GET("/graphql", r.graphqlHandler.Get)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
