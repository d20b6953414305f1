package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingSink struct {
	mu         sync.Mutex
	companyIDs []string
}

func (s *recordingSink) sink(_ context.Context, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companyIDs = append(s.companyIDs, companyID)
	return nil
}

func (s *recordingSink) delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.companyIDs...)
}

func TestInvalidator_DeliversToSink(t *testing.T) {
	sink := &recordingSink{}
	inv := New(sink.sink, WithLogger(discardLogger()))

	inv.Invalidate("company-1")
	inv.Invalidate("company-2")
	inv.Close()

	got := sink.delivered()
	if len(got) != 2 || got[0] != "company-1" || got[1] != "company-2" {
		t.Fatalf("expected ordered delivery of company-1, company-2, got %v", got)
	}
}

func TestInvalidator_IgnoresEmptyCompanyID(t *testing.T) {
	sink := &recordingSink{}
	inv := New(sink.sink, WithLogger(discardLogger()))

	inv.Invalidate("")
	inv.Close()

	if got := sink.delivered(); len(got) != 0 {
		t.Fatalf("expected no delivery for empty company id, got %v", got)
	}
}

func TestInvalidator_DropsWhenQueueFull(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})
	sink := &recordingSink{}
	var once sync.Once

	inv := New(func(ctx context.Context, companyID string) error {
		once.Do(func() {
			close(started)
			<-gate
		})
		return sink.sink(ctx, companyID)
	}, WithQueueSize(1), WithLogger(discardLogger()))

	inv.Invalidate("company-1")
	<-started

	// ワーカーが company-1 で停止している間にキューを埋める。
	inv.Invalidate("company-2")
	inv.Invalidate("company-3")

	close(gate)
	inv.Close()

	got := sink.delivered()
	if len(got) != 2 || got[0] != "company-1" || got[1] != "company-2" {
		t.Fatalf("expected company-3 to be dropped, got %v", got)
	}
}

func TestInvalidator_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &recordingSink{}
	calls := 0
	inv := New(func(ctx context.Context, companyID string) error {
		calls++
		if calls == 1 {
			return errors.New("cache unreachable")
		}
		return sink.sink(ctx, companyID)
	}, WithLogger(discardLogger()))

	inv.Invalidate("company-1")
	inv.Invalidate("company-2")
	inv.Close()

	got := sink.delivered()
	if len(got) != 1 || got[0] != "company-2" {
		t.Fatalf("expected delivery to continue after sink error, got %v", got)
	}
}

func TestInvalidator_CloseDrainsQueue(t *testing.T) {
	gate := make(chan struct{})
	sink := &recordingSink{}
	var once sync.Once

	inv := New(func(ctx context.Context, companyID string) error {
		once.Do(func() { <-gate })
		return sink.sink(ctx, companyID)
	}, WithLogger(discardLogger()))

	for i := 0; i < 10; i++ {
		inv.Invalidate("company-1")
	}
	close(gate)
	inv.Close()

	if got := sink.delivered(); len(got) != 10 {
		t.Fatalf("expected all 10 queued requests drained on close, got %d", len(got))
	}
}

func TestInvalidator_InvalidateAfterCloseIsNoop(t *testing.T) {
	sink := &recordingSink{}
	inv := New(sink.sink, WithLogger(discardLogger()))

	inv.Close()
	inv.Invalidate("company-1")
	inv.Close()

	if got := sink.delivered(); len(got) != 0 {
		t.Fatalf("expected no delivery after close, got %v", got)
	}
}

func TestInvalidator_NilSink(t *testing.T) {
	inv := New(nil, WithLogger(discardLogger()))
	inv.Invalidate("company-1")
	inv.Close()
}
