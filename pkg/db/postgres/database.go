package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	kdb "github.com/taskhive/taskhive/pkg/db"
	kpool "github.com/taskhive/taskhive/pkg/db/postgres/pool"
	kpgschema "github.com/taskhive/taskhive/pkg/db/postgres/schema"
	kpgtask "github.com/taskhive/taskhive/pkg/db/postgres/tasks"
	xe "github.com/taskhive/taskhive/pkg/errors"
)

type taskDBPostgres struct {
	pool  *pgxpool.Pool
	tasks kdb.TaskInterface
}

var _ kdb.TaskDatabase = &taskDBPostgres{}

// New connects to PostgreSQL at url and prepares the schema.
func New(ctx context.Context, url string) (kdb.TaskDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	p := kpool.Wrap(pool)
	if err := kpgschema.Ensure(ctx, p); err != nil {
		pool.Close()
		return nil, err
	}

	return &taskDBPostgres{
		pool:  pool,
		tasks: kpgtask.New(p),
	}, nil
}

func (d *taskDBPostgres) Tasks() kdb.TaskInterface {
	return d.tasks
}

func (d *taskDBPostgres) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *taskDBPostgres) Close() error {
	d.pool.Close()
	return nil
}
