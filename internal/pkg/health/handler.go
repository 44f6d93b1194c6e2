package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Status is the health endpoint response body.
type Status struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Status:    "ok",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	e.GET("/health", handler)
	e.GET("/health/ready", handler)
}
