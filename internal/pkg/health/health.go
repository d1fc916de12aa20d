package health

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// Status is the health endpoint payload.
type Status struct {
	Status     string    `json:"status"`
	Service    string    `json:"service"`
	Version    string    `json:"version,omitempty"`
	GoVersion  string    `json:"go_version"`
	UptimeSecs int64     `json:"uptime_seconds"`
	ServerTime time.Time `json:"server_time"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Status:     "ok",
			Service:    serviceName,
			GoVersion:  runtime.Version(),
			UptimeSecs: int64(time.Since(startTime).Seconds()),
			ServerTime: time.Now().UTC(),
		})
	}

	e.GET("/health", handler)
	e.GET("/health/ready", handler)
}
