package handlers

import (
	"net/http"

	"labreserve/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency probe.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	state := "ok"
	if !status.Healthy() {
		state = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    state,
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}
