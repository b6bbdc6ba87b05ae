package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The admin
// surface is meant for internal operators, expose it behind your own
// network boundary.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/tasks", h.CreateTask)
	rg.GET("/tasks/lookup", h.LookupTask)
	rg.POST("/assign", h.Assign)
	rg.POST("/sessions/open", h.OpenSession)
	rg.GET("/outstanding", h.Outstanding)
}
