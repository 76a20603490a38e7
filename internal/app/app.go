package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"habiter/internal/domain"
	"habiter/internal/record"
)

// ScoreRecorder keeps finished sessions. Add returns the rank reached, 0 when
// off the table.
type ScoreRecorder interface {
	Add(r record.Record) (int, error)
}

// App is the game loop controller. Run owns the session; everything else
// talks to it through commands, events and snapshots.
type App struct {
	config  *domain.GameConfig
	session *domain.Session
	records ScoreRecorder

	inputCh chan Command
	eventCh chan Event

	snapshot domain.Snapshot
	dataMu   sync.RWMutex

	newTicker func(time.Duration) Ticker
	ticker    Ticker
}

// NewApp builds the first session. records may be nil.
func NewApp(config *domain.GameConfig, records ScoreRecorder) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	a := &App{
		config:    config.Copy(),
		records:   records,
		inputCh:   make(chan Command, 100),
		eventCh:   make(chan Event, 100),
		newTicker: newTimeTicker,
	}
	a.session = domain.NewSession(a.config)
	a.snapshot = a.session.Snapshot()

	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	log.Printf("APP: session %s started, tick every %v", a.session.ID, a.config.TickDelay())

	a.armTicker()
	defer a.disarmTicker()
	a.publish(Event{Type: EventStateUpdated})

	for {
		var tickCh <-chan time.Time
		if a.ticker != nil {
			tickCh = a.ticker.C()
		}

		select {
		case <-ctx.Done():
			log.Println("APP: loop stopped")
			return nil

		case cmd := <-a.inputCh:
			a.handleCommand(cmd)

		case <-tickCh:
			current := a.ticker
			a.drainInput()
			if a.ticker == current {
				a.doTick()
			}
		}
	}
}

// drainInput applies commands queued before a tick, so the tick sees them.
func (a *App) drainInput() {
	for {
		select {
		case cmd := <-a.inputCh:
			a.handleCommand(cmd)
		default:
			return
		}
	}
}

func (a *App) Events() <-chan Event {
	return a.eventCh
}

func (a *App) Input() chan<- Command {
	return a.inputCh
}

func (a *App) Snapshot() domain.Snapshot {
	a.dataMu.RLock()
	defer a.dataMu.RUnlock()
	return a.snapshot
}

func (a *App) Config() *domain.GameConfig {
	a.dataMu.RLock()
	defer a.dataMu.RUnlock()
	return a.config.Copy()
}

func (a *App) Steer(dir domain.Direction) {
	a.send(Command{Type: CommandSteer, Payload: dir})
}

func (a *App) Restart() {
	a.send(Command{Type: CommandRestart})
}

func (a *App) Reconfigure(config *domain.GameConfig) {
	a.send(Command{Type: CommandReconfigure, Payload: config.Copy()})
}

func (a *App) send(cmd Command) {
	select {
	case a.inputCh <- cmd:
	default:
		log.Println("APP: input queue full, dropping command")
	}
}

func (a *App) handleCommand(cmd Command) {
	switch cmd.Type {
	case CommandSteer:
		dir, ok := cmd.Payload.(domain.Direction)
		if !ok || a.session.Status != domain.StatusRunning {
			return
		}
		a.session.ChangeDirection(dir)
		a.storeSnapshot()

	case CommandRestart:
		if a.session.Status == domain.StatusRunning {
			log.Println("APP: restart ignored while running")
			return
		}
		a.session.Restart()
		a.restarted()

	case CommandReconfigure:
		config, ok := cmd.Payload.(*domain.GameConfig)
		if !ok {
			return
		}
		if err := config.Validate(); err != nil {
			log.Printf("APP: rejected config: %v", err)
			a.emit(Event{Type: EventError, Payload: ErrorPayload{Message: err.Error()}})
			return
		}

		a.dataMu.Lock()
		a.config = config.Copy()
		a.dataMu.Unlock()

		a.session.Reconfigure(config)
		a.restarted()
	}
}

func (a *App) restarted() {
	a.disarmTicker()
	a.armTicker()

	log.Printf("APP: session %s started", a.session.ID)

	a.publish(Event{Type: EventRestarted})
	a.emit(Event{Type: EventStateUpdated})
}

func (a *App) doTick() {
	result := a.session.Step()

	if result.Ate {
		a.emit(Event{Type: EventFoodEaten, Payload: result.ScoreDelta})
	}

	if result.Terminal() {
		a.disarmTicker()
		a.storeSnapshot()

		snapshot := a.Snapshot()
		rank := a.saveRecord(snapshot)

		log.Printf("APP: session %s over after %d ticks: %s, score %d",
			snapshot.SessionID, snapshot.Ticks, snapshot.Cause, snapshot.Score)

		a.emit(Event{
			Type:    EventGameOver,
			Payload: GameOverPayload{Snapshot: snapshot, Rank: rank},
		})
		return
	}

	a.publish(Event{Type: EventStateUpdated})
}

func (a *App) saveRecord(snapshot domain.Snapshot) int {
	if a.records == nil {
		return 0
	}

	rank, err := a.records.Add(record.Record{
		SessionID:  snapshot.SessionID,
		Score:      int32(snapshot.Score),
		Length:     int32(len(snapshot.Snake)),
		Ticks:      int32(snapshot.Ticks),
		FinishedAt: time.Now(),
	})
	if err != nil {
		log.Printf("APP: failed to save record: %v", err)
		return 0
	}
	return rank
}

func (a *App) armTicker() {
	if a.ticker != nil || a.session.Status != domain.StatusRunning {
		return
	}
	a.ticker = a.newTicker(a.config.TickDelay())
}

func (a *App) disarmTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	a.ticker = nil
}

func (a *App) storeSnapshot() {
	snapshot := a.session.Snapshot()

	a.dataMu.Lock()
	a.snapshot = snapshot
	a.dataMu.Unlock()
}

func (a *App) publish(event Event) {
	a.storeSnapshot()
	a.emit(event)
}

func (a *App) emit(event Event) {
	select {
	case a.eventCh <- event:
	default:
		log.Printf("APP: event channel full, dropping %v", event.Type)
	}
}
