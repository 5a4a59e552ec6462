package schema

import (
	"context"

	kpool "github.com/taskhive/taskhive/pkg/db/postgres/pool"
	xe "github.com/taskhive/taskhive/pkg/errors"
)

// DDL of the "tasks" table.
//
// The title check backs up application-level validation; status and
// priority are varchar on purpose (values outside the known sets are
// accepted, see kdb.TaskSpec.WithDefaults).
const tasksTable = `
create table if not exists "tasks" (
	"id" bigserial primary key,
	"title" varchar(255) not null check ("title" <> ''),
	"description" text,
	"status" varchar(50) not null default 'pending',
	"priority" varchar(50) not null default 'medium',
	"created_at" timestamp with time zone not null default now(),
	"updated_at" timestamp with time zone not null default now()
);
`

const tasksCreatedAtIndex = `
create index if not exists "tasks_created_at_idx" on "tasks" ("created_at" desc, "id" desc);
`

// Ensure creates the tasks table and its indexes when they do not exist.
//
// Idempotent. Meant to run once at daemon boot (or from a migration Job).
func Ensure(ctx context.Context, p kpool.Pool) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer conn.Release()

	for _, ddl := range []string{tasksTable, tasksCreatedAtIndex} {
		if _, err := conn.Exec(ctx, ddl); err != nil {
			return xe.Wrap(err)
		}
	}
	return nil
}
