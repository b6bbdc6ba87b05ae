package http

import (
	"github.com/gin-gonic/gin"

	"slack-routine-bot/internal/routine"
	"slack-routine-bot/pkg/daytime"
	pkgLog "slack-routine-bot/pkg/log"
)

// Handler is the public interface for the admin HTTP delivery layer.
type Handler interface {
	CreateTask(c *gin.Context)
	LookupTask(c *gin.Context)
	Assign(c *gin.Context)
	OpenSession(c *gin.Context)
	Outstanding(c *gin.Context)
}

type handler struct {
	l     pkgLog.Logger
	uc    routine.UseCase
	clock *daytime.Clock
}

// New creates a new HTTP handler for the admin surface.
func New(l pkgLog.Logger, uc routine.UseCase, clock *daytime.Clock) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		clock: clock,
	}
}
