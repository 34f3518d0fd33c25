// Package leaktest reports goroutines a test started and never stopped.
package leaktest

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"time"
)

// SettleTimeout is how long Check waits for new goroutines to exit
var SettleTimeout = time.Second

// ignoredFrames mark goroutines owned by the runtime or the test harness
var ignoredFrames = []string{
	"testing.(*T).Run",
	"testing.(*M).",
	"testing.tRunner",
	"runtime.goexit0",
	"os/signal.signal_recv",
	"net/http.(*persistConn)",
	"internal/poll.runtime_pollWait",
}

// GoroutineChecker compares the goroutines alive at creation with those
// alive when Check runs.
type GoroutineChecker struct {
	t      testing.TB
	before map[string]struct{}
}

// NewGoroutineChecker snapshots the running goroutines
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	before := make(map[string]struct{})
	for id := range goroutines() {
		before[id] = struct{}{}
	}
	return &GoroutineChecker{t: t, before: before}
}

// Check fails the test when more than tolerance goroutines started after
// the snapshot are still running once SettleTimeout has passed. The stacks
// of the survivors are included in the failure.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	var leaked []string
	deadline := time.Now().Add(SettleTimeout)
	for {
		leaked = g.leaked()
		if len(leaked) <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if len(leaked) > tolerance {
		g.t.Errorf("leaked %d goroutine(s) (tolerance %d):\n\n%s",
			len(leaked), tolerance, strings.Join(leaked, "\n\n"))
	}
}

func (g *GoroutineChecker) leaked() []string {
	var out []string
	for id, stack := range goroutines() {
		if _, ok := g.before[id]; ok {
			continue
		}
		if ignored(stack) {
			continue
		}
		out = append(out, stack)
	}
	return out
}

// CheckNoGoroutineLeak fails t if fn leaves any goroutine behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func ignored(stack string) bool {
	for _, frame := range ignoredFrames {
		if strings.Contains(stack, frame) {
			return true
		}
	}
	return false
}

// goroutines returns every goroutine's stack keyed by its id, excluding
// the caller's own goroutine.
func goroutines() map[string]string {
	buf := make([]byte, 64<<10)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	self := goroutineID()
	out := make(map[string]string)
	for _, block := range bytes.Split(buf, []byte("\n\n")) {
		header, _, _ := bytes.Cut(block, []byte("\n"))
		fields := strings.Fields(string(header))
		if len(fields) < 2 || fields[0] != "goroutine" || fields[1] == self {
			continue
		}
		out[fields[1]] = string(block)
	}
	return out
}

func goroutineID() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
