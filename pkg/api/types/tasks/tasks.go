package tasks

import (
	"github.com/taskhive/taskhive/pkg/cmp"
	kdb "github.com/taskhive/taskhive/pkg/db"
	"github.com/taskhive/taskhive/pkg/utils/rfctime"
)

// Detail is a task record as API clients see it.
type Detail struct {
	Id          int64           `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	CreatedAt   rfctime.RFC3339 `json:"created_at"`
	UpdatedAt   rfctime.RFC3339 `json:"updated_at"`
}

func (d *Detail) Equal(o *Detail) bool {
	if (d == nil) || (o == nil) {
		return d == nil && o == nil
	}
	ca, cb := d.CreatedAt, o.CreatedAt
	ua, ub := d.UpdatedAt, o.UpdatedAt
	return d.Id == o.Id &&
		d.Title == o.Title &&
		cmp.PEqEq(d.Description, o.Description) &&
		d.Status == o.Status &&
		d.Priority == o.Priority &&
		ca.Equal(&cb) &&
		ua.Equal(&ub)
}

func ComposeDetail(t kdb.Task) Detail {
	return Detail{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   rfctime.New(t.CreatedAt),
		UpdatedAt:   rfctime.New(t.UpdatedAt),
	}
}

// TaskSpec is the request body of task create/update.
//
// Update replaces the whole record with this; fields left out are not
// preserved from the stored record.
type TaskSpec struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Priority    string  `json:"priority,omitempty"`
}

func (s TaskSpec) Spec() kdb.TaskSpec {
	return kdb.TaskSpec{
		Title:       s.Title,
		Description: s.Description,
		Status:      kdb.TaskStatus(s.Status),
		Priority:    kdb.TaskPriority(s.Priority),
	}
}

// Summary is the aggregate over all tasks, for the stats API.
type Summary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

func (s *Summary) Equal(o *Summary) bool {
	return *s == *o
}

func ComposeSummary(s kdb.TaskSummary) Summary {
	return Summary{
		Total:      s.Total,
		Pending:    s.Pending,
		InProgress: s.InProgress,
		Completed:  s.Completed,
	}
}

// DeleteResult confirms a task removal.
type DeleteResult struct {
	Message string `json:"message"`
}
