package scope_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	cache "github.com/rishavk/scoped-ttl-cache"
	"github.com/rishavk/scoped-ttl-cache/scope"
	"golang.org/x/sync/errgroup"
)

func testConfig() cache.Config {
	return cache.Config{
		TTL:      time.Minute,
		Capacity: 10,
	}
}

func TestAcquireReusesInstance(t *testing.T) {
	reg := scope.NewRegistry[string, int](testConfig())

	first, err := reg.Acquire("scope-1")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	first.Set("k", 42)

	again, err := reg.Acquire("scope-1")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}

	if first != again {
		t.Fatal("same scope returned different cache instances")
	}

	v, ok, _ := again.Get("k")
	if !ok || v != 42 {
		t.Fatalf("state lost across acquires: got %d (present=%v)", v, ok)
	}
}

func TestScopesAreIsolated(t *testing.T) {
	reg := scope.NewRegistry[string, int](testConfig())

	a, _ := reg.Acquire("scope-a")
	b, _ := reg.Acquire("scope-b")

	a.Set("k", 1)

	if _, ok, _ := b.Get("k"); ok {
		t.Fatal("entry leaked between scopes")
	}
}

func TestReleaseDropsState(t *testing.T) {
	reg := scope.NewRegistry[string, int](testConfig())

	c, _ := reg.Acquire("scope-1")
	c.Set("k", 1)

	reg.Release("scope-1")

	fresh, _ := reg.Acquire("scope-1")
	if _, ok, _ := fresh.Get("k"); ok {
		t.Fatal("released scope kept its entries")
	}

	// Releasing an unknown scope must be harmless.
	reg.Release("never-acquired")
}

func TestReleaseAll(t *testing.T) {
	reg := scope.NewRegistry[string, int](testConfig())

	reg.Acquire("a")
	reg.Acquire("b")
	reg.Acquire("c")

	if reg.Len() != 3 {
		t.Fatalf("expected 3 scopes, got %d", reg.Len())
	}

	reg.ReleaseAll()

	if reg.Len() != 0 {
		t.Fatalf("expected 0 scopes after ReleaseAll, got %d", reg.Len())
	}
}

func TestInvalidConfigSurfacesOnAcquire(t *testing.T) {
	reg := scope.NewRegistry[string, int](cache.Config{TTL: -time.Second})

	if _, err := reg.Acquire("scope-1"); !errors.Is(err, cache.ErrInvalidTTL) {
		t.Fatalf("expected ErrInvalidTTL, got %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("failed acquire registered a scope anyway")
	}
}

func TestConcurrentAcquireSingleInstance(t *testing.T) {
	reg := scope.NewRegistry[string, int](testConfig())

	var (
		mu   sync.Mutex
		seen = make(map[*cache.Cache[string, int]]struct{})
	)

	g := errgroup.Group{}
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			c, err := reg.Acquire("hot-scope")
			if err != nil {
				return err
			}
			mu.Lock()
			seen[c] = struct{}{}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent acquire failed: %v", err)
	}

	if len(seen) != 1 {
		t.Fatalf("concurrent acquires built %d distinct caches", len(seen))
	}
}
