package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	pgerrcode "github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	kdb "github.com/taskhive/taskhive/pkg/db"
	kpgerr "github.com/taskhive/taskhive/pkg/db/postgres/errors"
	kpool "github.com/taskhive/taskhive/pkg/db/postgres/pool"
	xe "github.com/taskhive/taskhive/pkg/errors"
)

type taskPG struct { // implements kdb.TaskInterface

	// connection pool for PostgreSQL
	pool kpool.Pool
}

// args:
//   - pool: connection pool used to query/exec SQL
func New(pool kpool.Pool) *taskPG {
	return &taskPG{pool: pool}
}

var _ kdb.TaskInterface = &taskPG{}

const taskColumns = `"id", "title", "description", "status", "priority", "created_at", "updated_at"`

func scanTask(row pgx.Row) (kdb.Task, error) {
	task := kdb.Task{}
	description := pgtype.Text{}

	if err := row.Scan(
		&task.Id, &task.Title, &description,
		&task.Status, &task.Priority,
		&task.CreatedAt, &task.UpdatedAt,
	); err != nil {
		return kdb.Task{}, err
	}

	if description.Status == pgtype.Present {
		d := description.String
		task.Description = &d
	}

	return task, nil
}

func (t *taskPG) List(ctx context.Context) ([]kdb.Task, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`select `+taskColumns+` from "tasks" order by "created_at" desc, "id" desc`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	tasks := []kdb.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return tasks, nil
}

func (t *taskPG) Get(ctx context.Context, id int64) (kdb.Task, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return kdb.Task{}, xe.Wrap(err)
	}
	defer conn.Release()

	task, err := scanTask(conn.QueryRow(
		ctx,
		`select `+taskColumns+` from "tasks" where "id" = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Task{}, kpgerr.Missing{
				Table: "tasks", Identity: fmt.Sprintf("id=%d", id),
			}
		}
		return kdb.Task{}, xe.Wrap(err)
	}

	return task, nil
}

func (t *taskPG) Create(ctx context.Context, spec kdb.TaskSpec) (kdb.Task, error) {
	if err := spec.Validate(); err != nil {
		return kdb.Task{}, err
	}
	spec = spec.WithDefaults()

	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return kdb.Task{}, xe.Wrap(err)
	}
	defer conn.Release()

	task, err := scanTask(conn.QueryRow(
		ctx,
		`
		insert into "tasks" ("title", "description", "status", "priority")
		values ($1, $2, $3, $4)
		returning `+taskColumns,
		spec.Title, spec.Description, spec.Status, spec.Priority,
	))
	if err != nil {
		return kdb.Task{}, asDomainError(err)
	}

	return task, nil
}

func (t *taskPG) Update(ctx context.Context, id int64, spec kdb.TaskSpec) (kdb.Task, error) {
	if err := spec.Validate(); err != nil {
		return kdb.Task{}, err
	}
	spec = spec.WithDefaults()

	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return kdb.Task{}, xe.Wrap(err)
	}
	defer conn.Release()

	// whole-record replace. fields absent in spec do not survive.
	task, err := scanTask(conn.QueryRow(
		ctx,
		`
		update "tasks"
		set "title" = $2, "description" = $3, "status" = $4, "priority" = $5,
		    "updated_at" = now()
		where "id" = $1
		returning `+taskColumns,
		id, spec.Title, spec.Description, spec.Status, spec.Priority,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Task{}, kpgerr.Missing{
				Table: "tasks", Identity: fmt.Sprintf("id=%d", id),
			}
		}
		return kdb.Task{}, asDomainError(err)
	}

	return task, nil
}

func (t *taskPG) Delete(ctx context.Context, id int64) error {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `delete from "tasks" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table: "tasks", Identity: fmt.Sprintf("id=%d", id),
		}
	}

	return nil
}

func (t *taskPG) Stats(ctx context.Context) (kdb.TaskSummary, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return kdb.TaskSummary{}, xe.Wrap(err)
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx, `select "status", count(*) from "tasks" group by "status"`,
	)
	if err != nil {
		return kdb.TaskSummary{}, xe.Wrap(err)
	}
	defer rows.Close()

	// statuses absent from the table stay at zero.
	summary := kdb.TaskSummary{}
	for rows.Next() {
		var status kdb.TaskStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return kdb.TaskSummary{}, xe.Wrap(err)
		}

		summary.Total += count
		switch status {
		case kdb.Pending:
			summary.Pending = count
		case kdb.InProgress:
			summary.InProgress = count
		case kdb.Completed:
			summary.Completed = count
		}
	}
	if err := rows.Err(); err != nil {
		return kdb.TaskSummary{}, xe.Wrap(err)
	}

	return summary, nil
}

// asDomainError converts constraint violations to kdb.ErrInvalidTask.
//
// The title check constraint should not trip (Validate runs first),
// but when it does, the caller sees the same error kind.
func asDomainError(err error) error {
	pgErr := new(pgconn.PgError)
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return fmt.Errorf("%w: %s", kdb.ErrInvalidTask, pgErr.ConstraintName)
	}
	return xe.Wrap(err)
}
