package cli

import (
	"context"
	"io"
	"testing"
	"time"
)

func quietSpinner(ctx context.Context, msg string) *Spinner {
	s := newSpinnerWithContext(ctx, msg)
	s.out = io.Discard
	return s
}

func TestSpinnerBasic(t *testing.T) {
	s := quietSpinner(context.Background(), "Testing...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := quietSpinner(ctx, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s := quietSpinner(ctx, "Testing with timeout...")
	s.Start()
	time.Sleep(60 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := quietSpinner(context.Background(), "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}
