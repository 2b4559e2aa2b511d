package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := New(3, time.Minute)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("4th request should be blocked")
	}
}

func TestAllowIsolatesIPs(t *testing.T) {
	rl := New(1, time.Minute)
	defer rl.Close()

	if !rl.Allow("1.1.1.1") {
		t.Fatal("first IP should be allowed")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatal("second IP should not share first IP's bucket")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatal("first IP should now be blocked")
	}
}

func TestWindowExpiry(t *testing.T) {
	rl := New(1, 20*time.Millisecond)
	defer rl.Close()

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("second request should be blocked")
	}

	time.Sleep(30 * time.Millisecond)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("request after window expiry should be allowed")
	}
}

func TestReset(t *testing.T) {
	rl := New(1, time.Minute)
	defer rl.Close()

	rl.Allow("1.2.3.4")
	if rl.Allow("1.2.3.4") {
		t.Fatal("should be blocked before reset")
	}

	rl.Reset("1.2.3.4")
	if !rl.Allow("1.2.3.4") {
		t.Fatal("should be allowed after reset")
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	rl := New(1, time.Minute)
	defer rl.Close()

	if got := rl.RetryAfterSeconds("9.9.9.9"); got != 0 {
		t.Fatalf("unknown IP should have 0 retry, got %d", got)
	}

	rl.Allow("1.2.3.4")
	got := rl.RetryAfterSeconds("1.2.3.4")
	if got <= 0 || got > 61 {
		t.Fatalf("retry after should be within (0, 61], got %d", got)
	}
}

func TestExtractIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	if got := ExtractIP(r); got != "10.0.0.1" {
		t.Fatalf("RemoteAddr: got %q", got)
	}

	r.Header.Set("X-Real-IP", "20.0.0.2")
	if got := ExtractIP(r); got != "20.0.0.2" {
		t.Fatalf("X-Real-IP: got %q", got)
	}

	// X-Forwarded-For her şeyin önüne geçer, ilk IP alınır
	r.Header.Set("X-Forwarded-For", "30.0.0.3, 10.0.0.1")
	if got := ExtractIP(r); got != "30.0.0.3" {
		t.Fatalf("X-Forwarded-For: got %q", got)
	}
}

func TestFormatRetryMessage(t *testing.T) {
	if got := FormatRetryMessage(45); got != "45 second(s)" {
		t.Fatalf("got %q", got)
	}
	if got := FormatRetryMessage(120); got != "2 minute(s)" {
		t.Fatalf("got %q", got)
	}
}
