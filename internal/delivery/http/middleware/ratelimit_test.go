package middleware

import (
	"testing"
	"time"
)

func TestLimiterStore_KeysAreIsolated(t *testing.T) {
	store := newLimiterStore(1, 1, time.Minute)

	if !store.get("10.0.0.1").Allow() {
		t.Fatalf("first request for a fresh key must pass")
	}
	if store.get("10.0.0.1").Allow() {
		t.Fatalf("second immediate request must be limited at burst 1")
	}

	// A different client key has its own bucket.
	if !store.get("10.0.0.2").Allow() {
		t.Fatalf("fresh key must not share the exhausted bucket")
	}
}

func TestLimiterStore_ReusesBucketPerKey(t *testing.T) {
	store := newLimiterStore(1, 5, time.Minute)

	a := store.get("10.0.0.1")
	b := store.get("10.0.0.1")
	if a != b {
		t.Fatalf("expected the same limiter for repeated lookups")
	}
}

func TestLimiterStore_CleanupEvictsIdleKeys(t *testing.T) {
	store := newLimiterStore(1, 1, 10*time.Millisecond)

	store.get("10.0.0.1")
	time.Sleep(20 * time.Millisecond)
	store.cleanup()

	store.mu.Lock()
	_, ok := store.entries["10.0.0.1"]
	store.mu.Unlock()
	if ok {
		t.Fatalf("idle key not evicted")
	}
}

func TestRateLimitMiddleware_DisabledWhenRPSZero(t *testing.T) {
	m := NewRateLimitMiddleware(0, 10)
	if m.store != nil {
		t.Fatalf("expected no store when rate limiting is disabled")
	}
}
