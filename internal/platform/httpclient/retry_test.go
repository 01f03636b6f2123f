package httpclient

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestBackoff_ExponentialWithJitter(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	const samples = 200
	for attempt := 1; attempt <= 3; attempt++ {
		base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
		lo := time.Duration(base * (1 - jitterFraction))
		hi := time.Duration(base * (1 + jitterFraction))

		for range samples {
			if d := backoff(attempt, cfg); d < lo || d > hi {
				t.Errorf("backoff(%d) = %v, want in [%v, %v]", attempt, d, lo, hi)
			}
		}
	}
}

func TestBackoff_CappedAtMaxInterval(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}
	hi := time.Duration(float64(cfg.maxInterval) * (1 + jitterFraction))

	for range 200 {
		if d := backoff(10, cfg); d > hi {
			t.Errorf("backoff(10) = %v, want <= %v", d, hi)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty", value: "", want: 0},
		{name: "seconds", value: "3", want: 3 * time.Second},
		{name: "zero seconds", value: "0", want: 0},
		{name: "negative seconds", value: "-5", want: 0},
		{name: "http date", value: now.Add(90 * time.Second).Format(http.TimeFormat), want: 90 * time.Second},
		{name: "past date", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := parseRetryAfter(tt.value, now); got != tt.want {
				t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "wrapped deadline", err: &net.OpError{Op: "read", Err: context.DeadlineExceeded}, want: false},
		{name: "dial", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "generic", err: errors.New("connection reset"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsDialError(t *testing.T) {
	t.Parallel()

	if !isDialError(&net.OpError{Op: "dial", Err: errors.New("refused")}) {
		t.Error("isDialError(dial) = false, want true")
	}
	if isDialError(&net.OpError{Op: "read", Err: errors.New("reset")}) {
		t.Error("isDialError(read) = true, want false")
	}
	if isDialError(errors.New("eof")) {
		t.Error("isDialError(generic) = true, want false")
	}
}

func TestRetryableStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status          int
		wantRetryable   bool
		wantUnprocessed bool
	}{
		{status: http.StatusOK},
		{status: http.StatusCreated},
		{status: http.StatusBadRequest},
		{status: http.StatusNotFound},
		{status: http.StatusTooManyRequests, wantRetryable: true, wantUnprocessed: true},
		{status: http.StatusInternalServerError, wantRetryable: true},
		{status: http.StatusBadGateway, wantRetryable: true},
		{status: http.StatusServiceUnavailable, wantRetryable: true, wantUnprocessed: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			if got := isRetryableStatus(tt.status); got != tt.wantRetryable {
				t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.status, got, tt.wantRetryable)
			}
			if got := isUnprocessedStatus(tt.status); got != tt.wantUnprocessed {
				t.Errorf("isUnprocessedStatus(%d) = %v, want %v", tt.status, got, tt.wantUnprocessed)
			}
		})
	}
}

func TestIsIdempotent(t *testing.T) {
	t.Parallel()

	for method, want := range map[string]bool{
		http.MethodGet:    true,
		http.MethodPut:    true,
		http.MethodDelete: true,
		http.MethodPost:   false,
		http.MethodPatch:  false,
	} {
		if got := isIdempotent(method); got != want {
			t.Errorf("isIdempotent(%s) = %v, want %v", method, got, want)
		}
	}
}
