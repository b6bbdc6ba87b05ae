package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slack-routine-bot/internal/model"
	adminHTTP "slack-routine-bot/internal/routine/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
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
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.slackHandler != nil {
		srv.gin.POST("/webhook/slack/events",
			srv.mw.RateLimit(),
			srv.mw.SlackSignature(),
			srv.slackHandler.HandleEvent,
		)
		srv.l.Infof(ctx, "Slack events route registered at POST /webhook/slack/events")
	} else {
		srv.l.Infof(ctx, "Slack handler not configured, skipping events route")
	}

	if srv.adminHandler != nil {
		api := srv.gin.Group("/api/v1")
		adminHTTP.RegisterRoutes(api.Group("/admin"), srv.adminHandler)
		srv.l.Infof(ctx, "Admin routes registered under /api/v1/admin")
	}

	return nil
}
