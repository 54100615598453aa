package scheduler

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestEngineStressConcurrentSchedule(t *testing.T) {
	engine := NewEngine(4096)
	engine.Start()
	defer engine.Stop()

	const workers = 8
	const perWorker = 200
	total := workers * perWorker

	now := time.Now()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				delay := time.Duration((w+i)%50+10) * time.Millisecond
				timer := Timer{
					Key:    fmt.Sprintf("w%d-%d", w, i),
					Token:  fmt.Sprintf("token-%d", i),
					FireAt: now.Add(delay),
				}
				if err := engine.Schedule(timer); err != nil {
					t.Errorf("schedule failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	deadline := time.After(5 * time.Second)
	var received int64
	for atomic.LoadInt64(&received) < int64(total) {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting timers: received=%d total=%d dropped=%d", received, total, engine.Dropped())
		case <-engine.C():
			atomic.AddInt64(&received, 1)
		}
	}

	if got := int(received); got != total {
		t.Fatalf("unexpected received count: got=%d want=%d", got, total)
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with active consumer, got=%d", engine.Dropped())
	}
}

func TestEngineStressSupersedeSameKey(t *testing.T) {
	engine := NewEngine(64)
	engine.Start()
	defer engine.Stop()

	fireAt := time.Now().Add(30 * time.Millisecond)
	for i := 0; i < 100; i++ {
		if err := engine.Schedule(Timer{Key: "notification", Token: fmt.Sprintf("n-%d", i), FireAt: fireAt}); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}

	got := waitTimer(t, engine.C(), time.Second)
	if got.Token != "n-99" {
		t.Fatalf("expected last token to win, got %q", got.Token)
	}
	select {
	case extra := <-engine.C():
		t.Fatalf("superseded timer leaked: %+v", extra)
	case <-time.After(60 * time.Millisecond):
	}
}
