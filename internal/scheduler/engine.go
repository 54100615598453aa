package scheduler

import (
	"container/heap"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidFireTime = errors.New("scheduler: invalid fire time")
	ErrInvalidTimer    = errors.New("scheduler: timer key and token are required")
	ErrEngineStopped   = errors.New("scheduler: engine stopped")
)

// Timer is one pending expiry. At most one timer per Key is live; scheduling
// another timer with the same Key supersedes the earlier Token.
type Timer struct {
	Key    string
	Token  string
	FireAt time.Time
}

type queueItem struct {
	timer Timer
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].timer.FireAt.Before(pq[j].timer.FireAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	live    map[string]string
	out     chan Timer
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		live:   make(map[string]string),
		out:    make(chan Timer, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Timer {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule queues t and makes it the live timer for t.Key.
func (e *Engine) Schedule(t Timer) error {
	if t.FireAt.IsZero() {
		return ErrInvalidFireTime
	}
	if strings.TrimSpace(t.Key) == "" || strings.TrimSpace(t.Token) == "" {
		return ErrInvalidTimer
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrEngineStopped
	}

	e.live[t.Key] = t.Token
	heap.Push(&e.queue, queueItem{timer: t})
	e.signalWakeup()
	return nil
}

// Cancel drops the live timer for key, if any. Superseded heap entries are
// discarded lazily when they come due.
func (e *Engine) Cancel(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.live, key)
}

// Pending reports the live token for key.
func (e *Engine) Pending(key string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	token, ok := e.live[key]
	return token, ok
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.FireAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now())
			for _, t := range due {
				select {
				case e.out <- t:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Timer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return Timer{}, false
	}
	return e.queue[0].timer, true
}

func (e *Engine) popDue(now time.Time) []Timer {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Timer, 0)
	for len(e.queue) > 0 {
		next := e.queue[0].timer
		if next.FireAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		if e.live[item.timer.Key] != item.timer.Token {
			continue
		}
		delete(e.live, item.timer.Key)
		out = append(out, item.timer)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
