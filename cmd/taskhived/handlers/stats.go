package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/taskhive/taskhive/pkg/api/types/errors"
	apitasks "github.com/taskhive/taskhive/pkg/api/types/tasks"
	kdb "github.com/taskhive/taskhive/pkg/db"
)

// StatsHandler reports the aggregate over all tasks.
//
// Always queried from the store; the summary is cheap and callers
// expect it fresh.
func StatsHandler(dbtask kdb.TaskInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		summary, err := dbtask.Stats(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitasks.ComposeSummary(summary))
	}
}
