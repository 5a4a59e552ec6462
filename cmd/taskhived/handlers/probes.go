package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/pkg/buildtime"
)

// something knowing whether its backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

type ReadyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Cache    string `json:"cache,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HealthHandler answers the liveness probe.
//
// It checks nothing but the process itself. A broken dependency is the
// readiness probe's business; restarting this pod would not fix it.
func HealthHandler(service string, startedAt time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: service,
			Version: buildtime.VERSION(),
			Uptime:  time.Since(startedAt).Round(time.Second).String(),
		})
	}
}

// ReadyHandler answers the readiness probe.
//
// Ready means both the database and the cache answer a ping. Otherwise
// it reports 503 so that Services withhold traffic from this pod.
func ReadyHandler(database Pinger, cache Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := database.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, ReadyResponse{
				Status: "not ready", Error: err.Error(),
			})
		}
		if err := cache.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, ReadyResponse{
				Status: "not ready", Error: err.Error(),
			})
		}

		return c.JSON(http.StatusOK, ReadyResponse{
			Status: "ready", Database: "connected", Cache: "connected",
		})
	}
}
