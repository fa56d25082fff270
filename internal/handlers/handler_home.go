package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// getUsersHealthCheck godoc
// @Summary Users service health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "Server up and running"
// @Router /users/healthCheck [get]
func getUsersHealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "Server up and running")
}
