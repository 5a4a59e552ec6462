package db

import "context"

type TaskDatabase interface {
	Tasks() TaskInterface

	// Ping checks connectivity to the backing database.
	// It is for the readiness probe, not for queries.
	Ping(ctx context.Context) error

	Close() error
}
