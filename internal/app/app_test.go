package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"habiter/internal/domain"
	"habiter/internal/record"
)

type fakeTicker struct {
	c        chan time.Time
	interval time.Duration

	mu      sync.Mutex
	stopped bool
}

func (ft *fakeTicker) C() <-chan time.Time {
	return ft.c
}

func (ft *fakeTicker) Stop() {
	ft.mu.Lock()
	ft.stopped = true
	ft.mu.Unlock()
}

func (ft *fakeTicker) isStopped() bool {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return ft.stopped
}

func (ft *fakeTicker) tick() {
	ft.c <- time.Now()
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []record.Record
}

func (fr *fakeRecorder) Add(r record.Record) (int, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.records = append(fr.records, r)
	return 1, nil
}

type harness struct {
	t       *testing.T
	app     *App
	tickers chan *fakeTicker
	cancel  context.CancelFunc
	done    chan error
}

func newHarness(t *testing.T, recorder ScoreRecorder) *harness {
	t.Helper()

	cfg := domain.DefaultGameConfig()
	cfg.Seed = 11

	a, err := NewApp(cfg, recorder)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	h := &harness{
		t:       t,
		app:     a,
		tickers: make(chan *fakeTicker, 10),
		done:    make(chan error, 1),
	}
	a.newTicker = func(d time.Duration) Ticker {
		ft := &fakeTicker{c: make(chan time.Time), interval: d}
		h.tickers <- ft
		return ft
	}

	// Known layout: the snake goes down column 0 into junk at (0,2).
	a.session.Foods = &domain.HealthyFood{Items: []domain.FoodItem{{Pos: domain.Coord{X: 9, Y: 9}}}}
	a.session.Junk = &domain.JunkFood{Items: []domain.FoodItem{{Pos: domain.Coord{X: 0, Y: 2}}}}

	return h
}

func (h *harness) start() *fakeTicker {
	h.t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() {
		h.done <- h.app.Run(ctx)
	}()

	ticker := h.nextTicker()
	h.expect(EventStateUpdated)
	return ticker
}

func (h *harness) stop() {
	h.t.Helper()
	h.cancel()
	select {
	case err := <-h.done:
		if err != nil {
			h.t.Errorf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		h.t.Fatalf("Run did not stop")
	}
}

func (h *harness) nextTicker() *fakeTicker {
	h.t.Helper()
	select {
	case ft := <-h.tickers:
		return ft
	case <-time.After(time.Second):
		h.t.Fatalf("no ticker armed")
	}
	return nil
}

func (h *harness) expect(want EventType) Event {
	h.t.Helper()
	for {
		select {
		case ev := <-h.app.Events():
			if ev.Type == want {
				return ev
			}
			if ev.Type == EventGameOver || ev.Type == EventError {
				h.t.Fatalf("got %v while waiting for %v", ev.Type, want)
			}
		case <-time.After(time.Second):
			h.t.Fatalf("timed out waiting for %v", want)
		}
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.BoardWidth = 810

	if _, err := NewApp(cfg, nil); err == nil {
		t.Errorf("expected error for invalid config")
	}
}

func TestRunUsesConfiguredDelay(t *testing.T) {
	h := newHarness(t, nil)
	ticker := h.start()
	defer h.stop()

	if ticker.interval != 150*time.Millisecond {
		t.Errorf("interval = %v, want 150ms", ticker.interval)
	}
}

func TestSteerAppliesOnNextTick(t *testing.T) {
	h := newHarness(t, nil)
	ticker := h.start()
	defer h.stop()

	h.app.Steer(domain.DirectionUp)
	h.app.Steer(domain.DirectionRight)
	ticker.tick()
	h.expect(EventStateUpdated)

	snap := h.app.Snapshot()
	if snap.Direction != domain.DirectionRight {
		t.Errorf("direction = %v, want right", snap.Direction)
	}
	if head := snap.Head(); head != (domain.Coord{X: 1, Y: 0}) {
		t.Errorf("head = %v, want (1,0)", head)
	}
	if snap.Ticks != 1 {
		t.Errorf("ticks = %d, want 1", snap.Ticks)
	}
}

func TestGameOverStopsTicksAndRestartRearms(t *testing.T) {
	recorder := &fakeRecorder{}
	h := newHarness(t, recorder)
	ticker := h.start()
	defer h.stop()

	ticker.tick()
	h.expect(EventStateUpdated)
	ticker.tick()
	ev := h.expect(EventGameOver)

	payload, ok := ev.Payload.(GameOverPayload)
	if !ok {
		t.Fatalf("payload = %T, want GameOverPayload", ev.Payload)
	}
	if payload.Snapshot.Cause != domain.CauseJunk || !payload.Snapshot.GameOver() {
		t.Errorf("snapshot = %+v, want junk game over", payload.Snapshot)
	}
	if payload.Rank != 1 {
		t.Errorf("rank = %d, want 1", payload.Rank)
	}
	if !ticker.isStopped() {
		t.Errorf("ticker still running after game over")
	}

	recorder.mu.Lock()
	saved := len(recorder.records)
	recorder.mu.Unlock()
	if saved != 1 {
		t.Errorf("saved %d records, want 1", saved)
	}

	oldID := payload.Snapshot.SessionID
	h.app.Restart()
	next := h.nextTicker()
	h.expect(EventRestarted)

	if next == ticker {
		t.Errorf("restart reused the stopped ticker")
	}
	snap := h.app.Snapshot()
	if snap.GameOver() || snap.Score != 0 || snap.Ticks != 0 || snap.SessionID == oldID {
		t.Errorf("restart did not produce a fresh session: %+v", snap)
	}
	if snap.Direction != domain.DirectionDown || len(snap.Snake) != 3 {
		t.Errorf("restart did not reset snake: %+v", snap)
	}
}

func TestCommandsIgnoredInWrongState(t *testing.T) {
	h := newHarness(t, nil)
	ticker := h.start()
	defer h.stop()

	h.app.Restart()
	h.app.Reconfigure(&domain.GameConfig{})
	h.expect(EventError)
	if h.app.Snapshot().Ticks != 0 {
		t.Errorf("restart while running changed the session")
	}

	ticker.tick()
	h.expect(EventStateUpdated)
	ticker.tick()
	h.expect(EventGameOver)

	h.app.Steer(domain.DirectionLeft)
	h.app.Reconfigure(&domain.GameConfig{})
	h.expect(EventError)

	if dir := h.app.Snapshot().Direction; dir != domain.DirectionDown {
		t.Errorf("steer after game over changed direction to %v", dir)
	}
}

func TestReconfigureRestartsWithNewDelay(t *testing.T) {
	h := newHarness(t, nil)
	h.start()
	defer h.stop()

	cfg := domain.DefaultGameConfig()
	cfg.TickDelayMs = 300
	cfg.FoodCount = 2
	h.app.Reconfigure(cfg)

	next := h.nextTicker()
	h.expect(EventRestarted)

	if next.interval != 300*time.Millisecond {
		t.Errorf("interval = %v, want 300ms", next.interval)
	}
	if got := h.app.Config().FoodCount; got != 2 {
		t.Errorf("food count = %d, want 2", got)
	}
	if got := len(h.app.Snapshot().Foods); got != 2 {
		t.Errorf("spawned %d food, want 2", got)
	}
}
