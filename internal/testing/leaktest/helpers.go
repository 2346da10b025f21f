// Package leaktest holds goroutine and heap checks for concurrency tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
	bytesPerMB  = 1024 * 1024
)

// GoroutineChecker compares the goroutine count at creation with the count
// at Check.
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	settle()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines outlived the
// checked code.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	drain()

	after := runtime.NumGoroutine()
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// HeapChecker compares live heap size at creation with the size at Check.
type HeapChecker struct {
	t      testing.TB
	before uint64
}

// NewHeapChecker records the live heap after a collection
func NewHeapChecker(t testing.TB) *HeapChecker {
	t.Helper()
	return &HeapChecker{t: t, before: liveHeap()}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (h *HeapChecker) Check(maxGrowthMB float64) {
	h.t.Helper()
	drain()

	after := liveHeap()
	growth := (float64(after) - float64(h.before)) / bytesPerMB
	if growth > maxGrowthMB {
		h.t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(h.before)/bytesPerMB, float64(after)/bytesPerMB, growth, maxGrowthMB)
	}
}

// NoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func NoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func settle() {
	runtime.Gosched()
	time.Sleep(settleDelay)
}

func drain() {
	runtime.Gosched()
	time.Sleep(drainDelay)
	runtime.GC()
	time.Sleep(drainDelay)
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
