package mocks

import (
	"context"
	"errors"
	"time"

	kache "github.com/taskhive/taskhive/pkg/cache"
)

type CallLog[T any] []T

func (l CallLog[T]) Times() uint {
	return uint(len(l))
}

type Cache struct {
	Impl struct {
		Get    func(context.Context, string) ([]byte, error)
		Set    func(context.Context, string, []byte, time.Duration) error
		Delete func(context.Context, string) error
		Ping   func(context.Context) error
		Close  func() error
	}
	Calls struct {
		Get CallLog[struct{ Key string }]
		Set CallLog[struct {
			Key   string
			Value []byte
			TTL   time.Duration
		}]
		Delete CallLog[struct{ Key string }]
		Ping   CallLog[struct{}]
		Close  CallLog[struct{}]
	}
}

func NewCache() *Cache {
	return &Cache{}
}

var _ kache.Cache = &Cache{}

func (m *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	m.Calls.Get = append(m.Calls.Get, struct{ Key string }{Key: key})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, key)
	}
	panic(errors.New("it should not be called"))
}

func (m *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.Calls.Set = append(m.Calls.Set, struct {
		Key   string
		Value []byte
		TTL   time.Duration
	}{
		Key: key, Value: value, TTL: ttl,
	})
	if m.Impl.Set != nil {
		return m.Impl.Set(ctx, key, value, ttl)
	}
	panic(errors.New("it should not be called"))
}

func (m *Cache) Delete(ctx context.Context, key string) error {
	m.Calls.Delete = append(m.Calls.Delete, struct{ Key string }{Key: key})
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, key)
	}
	panic(errors.New("it should not be called"))
}

func (m *Cache) Ping(ctx context.Context) error {
	m.Calls.Ping = append(m.Calls.Ping, struct{}{})
	if m.Impl.Ping != nil {
		return m.Impl.Ping(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *Cache) Close() error {
	m.Calls.Close = append(m.Calls.Close, struct{}{})
	if m.Impl.Close != nil {
		return m.Impl.Close()
	}
	panic(errors.New("it should not be called"))
}
