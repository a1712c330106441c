package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry_RecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(down(), MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if n := len(mock.Calls()); n != 2 {
		t.Fatalf("expected 2 calls, got %d", n)
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(down(), down(), down(), down())
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if n := len(mock.Calls()); n != 3 {
		t.Fatalf("expected 3 calls, got %d", n)
	}
}

func TestRetry_TruncationIsFinal(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}}, MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}
	if n := len(mock.Calls()); n != 1 {
		t.Fatalf("expected 1 call, got %d", n)
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if n := len(mock.Calls()); n != 2 {
		t.Fatalf("expected 2 calls, got %d", n)
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(down(), MockResponse{Content: json.RawMessage(`{}`)})
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	p := WithRetry(mock, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestRetry_WaitHonoursRetryAfter(t *testing.T) {
	r := &RetryProvider{cfg: fastRetry()}
	got := r.wait(0, &ErrRateLimit{RetryAfter: 3 * time.Second})
	if got != 3*time.Second {
		t.Fatalf("expected 3s, got %s", got)
	}
}

func TestRetry_WaitIsCapped(t *testing.T) {
	r := &RetryProvider{cfg: RetryConfig{InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}}
	for attempt := 0; attempt < 5; attempt++ {
		if got := r.wait(attempt, errors.New("x")); got > 2400*time.Millisecond {
			t.Fatalf("attempt %d waited %s, above cap plus jitter", attempt, got)
		}
	}
}
