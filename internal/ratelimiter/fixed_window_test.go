package ratelimiter

import (
	"testing"
	"time"
)

func TestAllowUnderLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, retryAfter := rl.Allow("10.0.0.1")
	if ok {
		t.Fatal("fourth request should be rejected")
	}
	if retryAfter <= 0 {
		t.Fatalf("retryAfter = %v, want > 0", retryAfter)
	}
}

func TestClientsAreIndependent(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("first client should be allowed")
	}
	if ok, _ := rl.Allow("10.0.0.2"); !ok {
		t.Fatal("second client should be allowed")
	}
	if ok, _ := rl.Allow("10.0.0.1"); ok {
		t.Fatal("first client should now be limited")
	}
}

func TestWindowRollover(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 10*time.Millisecond)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := rl.Allow("10.0.0.1"); ok {
		t.Fatal("second request should be limited")
	}

	time.Sleep(20 * time.Millisecond)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("request after window rollover should be allowed")
	}
}
