package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/taskhive/taskhive/pkg/api/types/errors"
	apitasks "github.com/taskhive/taskhive/pkg/api/types/tasks"
	kache "github.com/taskhive/taskhive/pkg/cache"
	kdb "github.com/taskhive/taskhive/pkg/db"
)

// fixed cache key of the serialized task collection.
//
// The whole list lives under this one key; any write drops it instead
// of patching it.
const TaskCollectionKey = "tasks:all"

func ListTasksHandler(dbtask kdb.TaskInterface, store kache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		cached, err := store.Get(ctx, TaskCollectionKey)
		if err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}
		if !errors.Is(err, kache.ErrMiss) {
			// cache trouble never fails a read. fall through to the store.
			c.Logger().Warnf("cache lookup failed, reading database: %s", err)
		}

		tasks, err := dbtask.List(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		found := make([]apitasks.Detail, 0, len(tasks))
		for _, task := range tasks {
			found = append(found, apitasks.ComposeDetail(task))
		}

		if body, err := json.Marshal(found); err == nil {
			if err := store.Set(ctx, TaskCollectionKey, body, ttl); err != nil {
				c.Logger().Warnf("cache population failed: %s", err)
			}
		}

		return c.JSON(http.StatusOK, found)
	}
}

func GetTaskHandler(dbtask kdb.TaskInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.ParseInt(c.Param(paramKey), 10, 64)
		if err != nil {
			return apierr.BadRequest("task id should be an integer", err)
		}

		// single-record reads go to the source of truth, always.
		task, err := dbtask.Get(ctx, id)
		if err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitasks.ComposeDetail(task))
	}
}

func CreateTaskHandler(dbtask kdb.TaskInterface, store kache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apitasks.TaskSpec{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		created, err := dbtask.Create(ctx, spec.Spec())
		if err != nil {
			if errors.Is(err, kdb.ErrInvalidTask) {
				return apierr.BadRequest(err.Error(), err)
			}
			return apierr.InternalServerError(err)
		}

		invalidateTaskCollection(c, store)

		return c.JSON(http.StatusCreated, apitasks.ComposeDetail(created))
	}
}

func UpdateTaskHandler(dbtask kdb.TaskInterface, store kache.Cache, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.ParseInt(c.Param(paramKey), 10, 64)
		if err != nil {
			return apierr.BadRequest("task id should be an integer", err)
		}

		spec := apitasks.TaskSpec{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		updated, err := dbtask.Update(ctx, id, spec.Spec())
		if err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				return apierr.NotFound()
			}
			if errors.Is(err, kdb.ErrInvalidTask) {
				return apierr.BadRequest(err.Error(), err)
			}
			return apierr.InternalServerError(err)
		}

		invalidateTaskCollection(c, store)

		return c.JSON(http.StatusOK, apitasks.ComposeDetail(updated))
	}
}

func DeleteTaskHandler(dbtask kdb.TaskInterface, store kache.Cache, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.ParseInt(c.Param(paramKey), 10, 64)
		if err != nil {
			return apierr.BadRequest("task id should be an integer", err)
		}

		if err := dbtask.Delete(ctx, id); err != nil {
			if errors.Is(err, kdb.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		invalidateTaskCollection(c, store)

		return c.JSON(http.StatusOK, apitasks.DeleteResult{
			Message: fmt.Sprintf("task %d deleted", id),
		})
	}
}

// invalidateTaskCollection drops the cached collection so that the next
// list reads the store.
//
// A failed delete is logged, not propagated: the write under it has
// already happened, and the stale entry dies by its ttl anyway.
func invalidateTaskCollection(c echo.Context, store kache.Cache) {
	if err := store.Delete(c.Request().Context(), TaskCollectionKey); err != nil {
		c.Logger().Warnf("cache invalidation failed: %s", err)
	}
}
