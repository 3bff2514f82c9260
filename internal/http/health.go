package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	health  StoreHealth
	version string
}

func NewHealthController(health StoreHealth, version string) *HealthController {
	return &HealthController{health: health, version: version}
}

// Status reports liveness. A store that never became usable degrades the API
// to empty reads, so it is reported as degraded rather than unhealthy.
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.health == nil {
		checks["store"] = "not configured"
		status = "degraded"
	} else if h.health.Available() {
		checks["store"] = "ok"
	} else {
		checks["store"] = "unavailable"
		status = "degraded"
	}

	c.IndentedJSON(http.StatusOK, HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	})
}
