package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// task is not found in the database.
var ErrMissing = errors.New("task missing")

// task record is malformed (e.g. empty title).
var ErrInvalidTask = errors.New("invalid task")

type TaskStatus string

const (
	Pending    TaskStatus = "pending"
	InProgress TaskStatus = "in_progress"
	Completed  TaskStatus = "completed"
)

type TaskPriority string

const (
	Low    TaskPriority = "low"
	Medium TaskPriority = "medium"
	High   TaskPriority = "high"
)

// Task is a record in the "tasks" table.
type Task struct {
	// identity of this task. assigned by the database, never changes.
	Id int64

	Title       string
	Description *string

	Status   TaskStatus
	Priority TaskPriority

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Task) Equal(o *Task) bool {
	if (t == nil) || (o == nil) {
		return t == nil && o == nil
	}
	if (t.Description == nil) != (o.Description == nil) {
		return false
	}
	if t.Description != nil && *t.Description != *o.Description {
		return false
	}
	return t.Id == o.Id &&
		t.Title == o.Title &&
		t.Status == o.Status &&
		t.Priority == o.Priority &&
		t.CreatedAt.Equal(o.CreatedAt) &&
		t.UpdatedAt.Equal(o.UpdatedAt)
}

// TaskSpec is user-writable part of Task.
//
// Create and Update receive it as a whole;
// updating replaces every field of the stored record (no partial patch).
type TaskSpec struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
}

// WithDefaults fills zero-value Status/Priority with their defaults.
//
// Status and Priority are NOT validated against the known constants.
// Arbitrary values pass through as-is, on purpose.
func (s TaskSpec) WithDefaults() TaskSpec {
	if s.Status == "" {
		s.Status = Pending
	}
	if s.Priority == "" {
		s.Priority = Medium
	}
	return s
}

// Validate returns ErrInvalidTask (wrapped) when the spec can not be stored.
func (s TaskSpec) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	return nil
}

// TaskSummary is the aggregate over the "tasks" table.
//
// Statuses with no stored task count as zero.
// Total counts every row, whatever its status value is.
type TaskSummary struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

type TaskInterface interface {
	// List returns all tasks, newest first (created_at desc, id desc).
	List(ctx context.Context) ([]Task, error)

	// Get returns the task identified by id.
	//
	// returned error wraps ErrMissing when no such task exists.
	Get(ctx context.Context, id int64) (Task, error)

	// Create inserts a new task built from spec (defaults applied),
	// and returns the stored record with its database-assigned fields.
	//
	// returned error wraps ErrInvalidTask when spec.Title is empty.
	Create(ctx context.Context, spec TaskSpec) (Task, error)

	// Update replaces the whole user-writable part of task id with spec
	// and refreshes updated_at.
	//
	// returned error wraps ErrMissing when no such task exists,
	// or ErrInvalidTask when spec.Title is empty.
	Update(ctx context.Context, id int64, spec TaskSpec) (Task, error)

	// Delete removes the task identified by id, permanently.
	//
	// returned error wraps ErrMissing when no such task exists.
	Delete(ctx context.Context, id int64) error

	// Stats aggregates stored tasks by status.
	Stats(ctx context.Context) (TaskSummary, error)
}
