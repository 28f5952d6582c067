package reminder

import (
	"sync"
	"testing"
	"time"
)

type recordingDesktop struct {
	mu    sync.Mutex
	sent  []string
	fired chan string
}

func newRecordingDesktop() *recordingDesktop {
	return &recordingDesktop{fired: make(chan string, 16)}
}

func (d *recordingDesktop) Available() bool { return true }

func (d *recordingDesktop) Send(title, body string) error {
	d.mu.Lock()
	d.sent = append(d.sent, body)
	d.mu.Unlock()
	d.fired <- body
	return nil
}

func waitFired(t *testing.T, d *recordingDesktop, timeout time.Duration) string {
	t.Helper()
	select {
	case body := <-d.fired:
		return body
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for notification")
		return ""
	}
}

func TestEngineDeliversInFireOrder(t *testing.T) {
	desktop := newRecordingDesktop()
	engine := NewEngine(desktop, testLogger)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.ScheduleAt("later", now.Add(80*time.Millisecond), "HomeKeep Reminder", "later body"); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.ScheduleAt("sooner", now.Add(20*time.Millisecond), "HomeKeep Reminder", "sooner body"); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitFired(t, desktop, time.Second)
	second := waitFired(t, desktop, time.Second)
	if first != "sooner body" || second != "later body" {
		t.Fatalf("unexpected order: first=%q second=%q", first, second)
	}
}

func TestEngineCancelPreventsDelivery(t *testing.T) {
	desktop := newRecordingDesktop()
	engine := NewEngine(desktop, testLogger)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.ScheduleAt("cancelled", now.Add(40*time.Millisecond), "t", "cancelled body"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := engine.ScheduleAt("kept", now.Add(60*time.Millisecond), "t", "kept body"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := engine.Cancel("cancelled"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if got := waitFired(t, desktop, time.Second); got != "kept body" {
		t.Fatalf("delivered %q, want only the kept notification", got)
	}
	if n := engine.PendingCount(); n != 0 {
		t.Fatalf("pending count = %d, want 0", n)
	}
}

func TestEngineReschedulingSameIDReplaces(t *testing.T) {
	desktop := newRecordingDesktop()
	engine := NewEngine(desktop, testLogger)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.ScheduleAt("task-1", now.Add(30*time.Millisecond), "t", "stale body"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := engine.ScheduleAt("task-1", now.Add(60*time.Millisecond), "t", "fresh body"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	if got := waitFired(t, desktop, time.Second); got != "fresh body" {
		t.Fatalf("delivered %q, want the replacement only", got)
	}
	select {
	case extra := <-desktop.fired:
		t.Fatalf("unexpected second delivery: %q", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngineCancelAllClearsQueue(t *testing.T) {
	desktop := newRecordingDesktop()
	engine := NewEngine(desktop, testLogger)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	for _, id := range []string{"a", "b", "c"} {
		if err := engine.ScheduleAt(id, now.Add(50*time.Millisecond), "t", id); err != nil {
			t.Fatalf("schedule %s: %v", id, err)
		}
	}
	if err := engine.CancelAll(); err != nil {
		t.Fatalf("cancel all: %v", err)
	}
	if n := engine.PendingCount(); n != 0 {
		t.Fatalf("pending count = %d, want 0", n)
	}

	select {
	case body := <-desktop.fired:
		t.Fatalf("unexpected delivery after cancel-all: %q", body)
	case <-time.After(120 * time.Millisecond):
	}
}

func TestScheduleAtValidatesFireTime(t *testing.T) {
	engine := NewEngine(newRecordingDesktop(), testLogger)
	if err := engine.ScheduleAt("bad", time.Time{}, "t", "b"); err != ErrInvalidFireTime {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
}
