package leaktest

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures failures instead of failing the real test
type recorder struct {
	testing.TB
	mu     sync.Mutex
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, format)
	if len(args) > 2 {
		if s, ok := args[2].(string); ok {
			r.errors = append(r.errors, s)
		}
	}
}

func parked(stop <-chan struct{}) {
	<-stop
}

func TestCheck_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
			}()
		}
		wg.Wait()
	})
}

func TestCheck_ReportsLeakedStack(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	stop := make(chan struct{})
	defer close(stop)
	go parked(stop)

	prev := SettleTimeout
	SettleTimeout = 50 * time.Millisecond
	defer func() { SettleTimeout = prev }()

	checker.Check(0)

	require.NotEmpty(t, rec.errors)
	assert.True(t, strings.Contains(strings.Join(rec.errors, "\n"), "leaktest.parked"))
}

func TestCheck_WithinTolerance(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	stop := make(chan struct{})
	defer close(stop)
	go parked(stop)

	prev := SettleTimeout
	SettleTimeout = 50 * time.Millisecond
	defer func() { SettleTimeout = prev }()

	checker.Check(1)

	assert.Empty(t, rec.errors)
}

func TestCheck_WaitsForGoroutinesToFinish(t *testing.T) {
	checker := NewGoroutineChecker(t)

	stop := make(chan struct{})
	go parked(stop)
	close(stop)

	checker.Check(0)
}

func TestGoroutines_ExcludesCaller(t *testing.T) {
	_, ok := goroutines()[goroutineID()]
	assert.False(t, ok)
	assert.NotEmpty(t, goroutineID())
}
