package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestEngineEmitsInFireOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Timer{Key: "notification", Token: "later", FireAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Timer{Key: "bonfire", Token: "sooner", FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitTimer(t, engine.C(), time.Second)
	second := waitTimer(t, engine.C(), time.Second)
	if first.Token != "sooner" || second.Token != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.Token, second.Token)
	}
}

func TestEngineSupersedesTimerWithSameKey(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Timer{Key: "notification", Token: "old", FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule old: %v", err)
	}
	if err := engine.Schedule(Timer{Key: "notification", Token: "new", FireAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule new: %v", err)
	}
	if token, ok := engine.Pending("notification"); !ok || token != "new" {
		t.Fatalf("expected pending token new, got %q %v", token, ok)
	}

	got := waitTimer(t, engine.C(), time.Second)
	if got.Token != "new" {
		t.Fatalf("expected only the newest timer to fire, got %q", got.Token)
	}
	select {
	case extra := <-engine.C():
		t.Fatalf("unexpected extra timer: %+v", extra)
	case <-time.After(80 * time.Millisecond):
	}
	if _, ok := engine.Pending("notification"); ok {
		t.Fatal("expected no pending timer after fire")
	}
}

func TestEngineCancelDropsTimer(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	if err := engine.Schedule(Timer{Key: "bonfire", Token: "b1", FireAt: time.Now().Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	engine.Cancel("bonfire")

	select {
	case got := <-engine.C():
		t.Fatalf("cancelled timer fired: %+v", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	fireAt := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		key := string(rune('a' + i))
		if err := engine.Schedule(Timer{Key: key, Token: "t", FireAt: fireAt}); err != nil {
			t.Fatalf("schedule timer: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped timers > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTimer(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Timer{Key: "k", Token: "t"}); err != ErrInvalidFireTime {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
	if err := engine.Schedule(Timer{Key: " ", Token: "t", FireAt: time.Now()}); !errors.Is(err, ErrInvalidTimer) {
		t.Fatalf("expected ErrInvalidTimer, got %v", err)
	}
}

func TestScheduleAfterStopFails(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	err := engine.Schedule(Timer{Key: "k", Token: "t", FireAt: time.Now()})
	if !errors.Is(err, ErrEngineStopped) {
		t.Fatalf("expected ErrEngineStopped, got %v", err)
	}
}

func waitTimer(t *testing.T, ch <-chan Timer, timeout time.Duration) Timer {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for timer")
		return Timer{}
	}
}
