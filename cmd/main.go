package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	cache "github.com/rishavk/scoped-ttl-cache"
	"github.com/rishavk/scoped-ttl-cache/scope"
)

// ================= METRICS =================
type Metrics struct {
	hits      int
	misses    int
	expired   int
	evictions int
	clears    int
}

func (m *Metrics) Hit()      { m.hits++ }
func (m *Metrics) Miss()     { m.misses++ }
func (m *Metrics) Expire()   { m.expired++ }
func (m *Metrics) Eviction() { m.evictions++ }
func (m *Metrics) Clear()    { m.clears++ }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS      : %d\n", m.hits)
	fmt.Printf("MISSES    : %d\n", m.misses)
	fmt.Printf("EXPIRED   : %d\n", m.expired)
	fmt.Printf("EVICTIONS : %d\n", m.evictions)
	fmt.Printf("CLEARS    : %d\n", m.clears)
}

// ================= ENV CONFIG =================

// loadConfig reads TTL and capacity overrides from the environment.
// A .env file in the working directory is honored if present.
func loadConfig() (time.Duration, int) {
	_ = godotenv.Load()

	ttl := 2 * time.Second
	capacity := 5

	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}
	if v := os.Getenv("CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			capacity = n
		}
	}
	return ttl, capacity
}

// ================= MAIN =================

func main() {

	fmt.Println("\n==================== SYSTEM BOOT ====================")

	ttl, capacity := loadConfig()

	// ---------------- System Config ----------------
	fmt.Println("EVICTION POLICY :", "FIFO (soonest expiry = oldest insert)")
	fmt.Println("TTL             :", ttl)
	fmt.Println("CAPACITY        :", capacity, "keys")

	// ---------------- Metrics ----------------
	metrics := &Metrics{}

	// ---------------- Cache ----------------
	c, err := cache.New[string, string](cache.Config{
		TTL:      ttl,
		Capacity: capacity,
		Metrics:  metrics,
	})
	if err != nil {
		fmt.Println("BOOT FAILED:", err)
		os.Exit(1)
	}

	// ====================================================
	fmt.Println("\n==================== 1) CACHE MISS ====================")
	v, ok, _ := c.Get("a")
	fmt.Printf("CACHE  → GET a = %q (present=%v)\n", v, ok)

	// ====================================================
	fmt.Println("\n==================== 2) CACHE HIT ====================")
	c.Set("a", "alpha")
	v, ok, _ = c.Get("a")
	fmt.Printf("CACHE  → SET a, GET a = %q (present=%v)\n", v, ok)

	// ====================================================
	fmt.Println("\n==================== 3) OVERWRITE ====================")
	c.Set("a", "alpha-2")
	v, _, _ = c.Get("a")
	fmt.Printf("CACHE  → SET a again, GET a = %q (size=%d)\n", v, c.Len())

	// ====================================================
	fmt.Println("\n==================== 4) TTL EXPIRATION ====================")
	c.Set("x", "temp-value")
	fmt.Println("CACHE  → PUT x (TTL =", ttl, ")")

	time.Sleep(ttl + 100*time.Millisecond)

	fmt.Println("CACHE  → TTL expired for x")
	v, ok, _ = c.Get("x")
	fmt.Printf("CACHE  → GET x after TTL = %q (present=%v)\n", v, ok)

	// ====================================================
	fmt.Println("\n==================== 5) EVICTION ====================")

	for i := 0; i < capacity+3; i++ {
		c.Set(fmt.Sprintf("k%d", i), fmt.Sprintf("value-%d", i))
	}

	_, ok, _ = c.Get("k0")
	fmt.Println("CACHE  → GET k0 after overfill, present =", ok)
	_, ok, _ = c.Get(fmt.Sprintf("k%d", capacity+2))
	fmt.Println("CACHE  → GET newest key, present =", ok)
	fmt.Println("CACHE  → size =", c.Len())

	// ====================================================
	fmt.Println("\n==================== 6) CLEAR ====================")

	c.Clear()
	fmt.Println("CACHE  → CLEAR, size =", c.Len())

	v, ok, _ = c.Get("a")
	fmt.Printf("CACHE  → GET a after clear = %q (present=%v)\n", v, ok)

	// ====================================================
	fmt.Println("\n==================== 7) SCOPED OWNERSHIP ====================")

	reg := scope.NewRegistry[string, int](cache.Config{TTL: ttl, Capacity: capacity})

	s1, _ := reg.Acquire("request-1")
	s1.Set("count", 42)

	again, _ := reg.Acquire("request-1")
	n, ok, _ := again.Get("count")
	fmt.Printf("SCOPE  → request-1 reused, count = %d (present=%v)\n", n, ok)

	reg.Release("request-1")
	fresh, _ := reg.Acquire("request-1")
	_, ok, _ = fresh.Get("count")
	fmt.Println("SCOPE  → request-1 released and reacquired, count present =", ok)

	// ====================================================
	metrics.Print()

	fmt.Println("\n==================== SHUTDOWN ====================")
	reg.ReleaseAll()
	fmt.Println("SYSTEM → all scopes released")
}
