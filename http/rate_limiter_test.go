package http

import (
	"testing"
	"time"
)

func TestRateLimiter_ExhaustsBudget(t *testing.T) {

	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if rl.Allow("10.0.0.1") {
		t.Error("request over budget should be rejected")
	}
}

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {

	rl := NewRateLimiter(1, time.Nanosecond)
	defer rl.Stop()

	if !rl.Allow("10.0.0.2") {
		t.Fatal("first request should be allowed")
	}

	time.Sleep(time.Millisecond)

	if !rl.Allow("10.0.0.2") {
		t.Error("request after refill window should be allowed")
	}
}

func TestRateLimiter_ClientsAreIsolated(t *testing.T) {

	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	if !rl.Allow("10.0.0.3") {
		t.Fatal("first client should be allowed")
	}
	if rl.Allow("10.0.0.3") {
		t.Error("first client over budget should be rejected")
	}

	if !rl.Allow("10.0.0.4") {
		t.Error("second client should have its own budget")
	}
}
