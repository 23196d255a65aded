package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripnest/utils"
)

// Healthz reports the latest stored health snapshot for mongo and redis.
func Healthz(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
