package mocks

import (
	"context"
	"errors"

	kdb "github.com/taskhive/taskhive/pkg/db"
)

type CallLog[T any] []T

func (l CallLog[T]) Times() uint {
	return uint(len(l))
}

type TaskInterface struct {
	Impl struct {
		List   func(context.Context) ([]kdb.Task, error)
		Get    func(context.Context, int64) (kdb.Task, error)
		Create func(context.Context, kdb.TaskSpec) (kdb.Task, error)
		Update func(context.Context, int64, kdb.TaskSpec) (kdb.Task, error)
		Delete func(context.Context, int64) error
		Stats  func(context.Context) (kdb.TaskSummary, error)
	}
	Calls struct {
		List   CallLog[struct{}]
		Get    CallLog[struct{ Id int64 }]
		Create CallLog[struct{ Spec kdb.TaskSpec }]
		Update CallLog[struct {
			Id   int64
			Spec kdb.TaskSpec
		}]
		Delete CallLog[struct{ Id int64 }]
		Stats  CallLog[struct{}]
	}
}

func NewTaskInterface() *TaskInterface {
	return &TaskInterface{}
}

var _ kdb.TaskInterface = &TaskInterface{}

func (ti *TaskInterface) List(ctx context.Context) ([]kdb.Task, error) {
	ti.Calls.List = append(ti.Calls.List, struct{}{})
	if ti.Impl.List != nil {
		return ti.Impl.List(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TaskInterface) Get(ctx context.Context, id int64) (kdb.Task, error) {
	ti.Calls.Get = append(ti.Calls.Get, struct{ Id int64 }{Id: id})
	if ti.Impl.Get != nil {
		return ti.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TaskInterface) Create(ctx context.Context, spec kdb.TaskSpec) (kdb.Task, error) {
	ti.Calls.Create = append(ti.Calls.Create, struct{ Spec kdb.TaskSpec }{Spec: spec})
	if ti.Impl.Create != nil {
		return ti.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TaskInterface) Update(ctx context.Context, id int64, spec kdb.TaskSpec) (kdb.Task, error) {
	ti.Calls.Update = append(ti.Calls.Update, struct {
		Id   int64
		Spec kdb.TaskSpec
	}{
		Id: id, Spec: spec,
	})
	if ti.Impl.Update != nil {
		return ti.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TaskInterface) Delete(ctx context.Context, id int64) error {
	ti.Calls.Delete = append(ti.Calls.Delete, struct{ Id int64 }{Id: id})
	if ti.Impl.Delete != nil {
		return ti.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (ti *TaskInterface) Stats(ctx context.Context) (kdb.TaskSummary, error) {
	ti.Calls.Stats = append(ti.Calls.Stats, struct{}{})
	if ti.Impl.Stats != nil {
		return ti.Impl.Stats(ctx)
	}
	panic(errors.New("it should not be called"))
}
