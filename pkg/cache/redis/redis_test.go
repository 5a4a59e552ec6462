package redis_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	kache "github.com/taskhive/taskhive/pkg/cache"
	rediscache "github.com/taskhive/taskhive/pkg/cache/redis"
)

// set TASKHIVE_TEST_REDIS to "host:port" of a disposable Redis to run these.
func testee(t *testing.T) kache.Cache {
	t.Helper()
	addr := os.Getenv("TASKHIVE_TEST_REDIS")
	if addr == "" {
		t.Skip("TASKHIVE_TEST_REDIS is not set")
	}
	c := rediscache.New(addr, os.Getenv("TASKHIVE_TEST_REDIS_PASSWORD"))
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("it misses for a key never set", func(t *testing.T) {
		c := testee(t)

		_, err := c.Get(ctx, "taskhive:test:never-set")
		if !errors.Is(err, kache.ErrMiss) {
			t.Errorf("expected ErrMiss, but got: %v", err)
		}
	})

	t.Run("it returns what was set, until deleted", func(t *testing.T) {
		c := testee(t)
		key := "taskhive:test:roundtrip"

		if err := c.Set(ctx, key, []byte(`["a","b"]`), time.Minute); err != nil {
			t.Fatal(err)
		}

		got, err := c.Get(ctx, key)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != `["a","b"]` {
			t.Errorf("unmatch value: %s", string(got))
		}

		if err := c.Delete(ctx, key); err != nil {
			t.Fatal(err)
		}
		if _, err := c.Get(ctx, key); !errors.Is(err, kache.ErrMiss) {
			t.Errorf("expected ErrMiss after delete, but got: %v", err)
		}
	})

	t.Run("it expires entries after their ttl", func(t *testing.T) {
		c := testee(t)
		key := "taskhive:test:expiry"

		if err := c.Set(ctx, key, []byte("ephemeral"), 100*time.Millisecond); err != nil {
			t.Fatal(err)
		}
		time.Sleep(200 * time.Millisecond)

		if _, err := c.Get(ctx, key); !errors.Is(err, kache.ErrMiss) {
			t.Errorf("expected ErrMiss after expiry, but got: %v", err)
		}
	})

	t.Run("it deletes absent keys without error", func(t *testing.T) {
		c := testee(t)

		if err := c.Delete(ctx, "taskhive:test:absent"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it answers ping while the server is reachable", func(t *testing.T) {
		c := testee(t)

		if err := c.Ping(ctx); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
