package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"slack-routine-bot/internal/middleware"
	adminHTTP "slack-routine-bot/internal/routine/delivery/http"
	slackDelivery "slack-routine-bot/internal/routine/delivery/slack"
	pkgLog "slack-routine-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw           middleware.Middleware
	slackHandler slackDelivery.Handler
	adminHandler adminHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware   middleware.Middleware
	SlackHandler slackDelivery.Handler
	AdminHandler adminHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		slackHandler: cfg.SlackHandler,
		adminHandler: cfg.AdminHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
