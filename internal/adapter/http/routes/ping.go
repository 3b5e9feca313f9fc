package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathPing = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	ping := rg.Group(PathPing)
	ping.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
