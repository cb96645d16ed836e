package handler

import (
	"net/http"

	"plaza/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness for load balancers and uptime probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
