package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"email-meeting-triage/internal/model"
	triageHTTP "email-meeting-triage/internal/triage/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	// Local development keeps rate limiting off so test tooling is not throttled.
	if srv.environment != string(model.EnvironmentDevelopment) {
		srv.gin.Use(srv.mw.RateLimit())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.triageHandler == nil {
		srv.l.Warn(ctx, "Triage handler not configured, skipping domain routes")
		return
	}

	api := srv.gin.Group("/api/v1")
	triageHTTP.RegisterRoutes(api.Group("/triage"), srv.triageHandler)
	srv.l.Infof(ctx, "Triage domain registered under /api/v1/triage")
}
