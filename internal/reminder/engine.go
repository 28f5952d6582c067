package reminder

import (
	"container/heap"
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrInvalidFireTime = errors.New("reminder: invalid fire time")

// Notification is one pending local reminder, keyed by task id.
type Notification struct {
	ID     string
	FireAt time.Time
	Title  string
	Body   string
}

type queueItem struct {
	notification Notification
	seq          uint64
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].notification.FireAt.Before(pq[j].notification.FireAt)
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

// Engine is the in-process notification collaborator: a timer loop over a
// time-ordered queue that hands due notifications to a desktop notifier.
// Cancellation is lazy: superseded or cancelled entries stay in the heap and
// are skipped when they surface.
type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	pending map[string]uint64
	nextSeq uint64
	desktop DesktopNotifier
	log     *slog.Logger
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
}

func NewEngine(desktop DesktopNotifier, log *slog.Logger) *Engine {
	if desktop == nil {
		desktop = NoopDesktopNotifier{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		queue:   make(priorityQueue, 0),
		pending: make(map[string]uint64),
		desktop: desktop,
		log:     log,
		wakeup:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
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

// RequestAuthorization maps onto desktop notifier availability; there is no
// interactive prompt to wait on.
func (e *Engine) RequestAuthorization(_ context.Context) (bool, error) {
	return e.desktop.Available(), nil
}

func (e *Engine) AuthorizationStatus(_ context.Context) bool {
	return e.desktop.Available()
}

// ScheduleAt queues a notification for the given instant, replacing any
// pending one with the same id.
func (e *Engine) ScheduleAt(id string, fireAt time.Time, title, body string) error {
	if fireAt.IsZero() {
		return ErrInvalidFireTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("reminder: engine stopped")
	}

	e.nextSeq++
	e.pending[id] = e.nextSeq
	heap.Push(&e.queue, queueItem{
		notification: Notification{ID: id, FireAt: fireAt, Title: title, Body: body},
		seq:          e.nextSeq,
	})
	e.signalWakeup()
	return nil
}

func (e *Engine) Cancel(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, id)
	e.signalWakeup()
	return nil
}

func (e *Engine) CancelAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = make(map[string]uint64)
	e.queue = e.queue[:0]
	e.signalWakeup()
	return nil
}

// PendingCount reports how many notifications are live in the queue.
func (e *Engine) PendingCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

func (e *Engine) loop() {
	defer close(e.doneCh)

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
			for _, n := range e.popDue(time.Now()) {
				if err := e.desktop.Send(n.Title, n.Body); err != nil {
					e.log.Error("notification delivery failed", "id", n.ID, "error", err)
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

// peek returns the earliest live notification, discarding stale heap entries
// along the way.
func (e *Engine) peek() (Notification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		head := e.queue[0]
		if e.pending[head.notification.ID] == head.seq {
			return head.notification, true
		}
		heap.Pop(&e.queue)
	}
	return Notification{}, false
}

func (e *Engine) popDue(now time.Time) []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Notification, 0)
	for len(e.queue) > 0 {
		head := e.queue[0]
		if e.pending[head.notification.ID] != head.seq {
			heap.Pop(&e.queue)
			continue
		}
		if head.notification.FireAt.After(now) {
			break
		}
		heap.Pop(&e.queue)
		delete(e.pending, head.notification.ID)
		out = append(out, head.notification)
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
