package graphics

import (
	"log"
	"sync"

	"habiter/internal/domain"
	"habiter/internal/record"
	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

type Engine struct {
	width  int
	height int
	title  string

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	snapshot domain.Snapshot
	hasSnap  bool
	records  []record.Record
	config   *domain.GameConfig
	scale    float64
	gameOver domain.Snapshot
	rank     int
	switchTo *types.ScreenType
	errorMsg string
	quit     bool

	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

// NewEngine sizes the window to fit the board plus the side panel, header
// and footer.
func NewEngine(title string, width, height int) *Engine {
	types.InitFonts()

	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	return &Engine{
		width:         width,
		height:        height,
		title:         title,
		currentScreen: types.ScreenGame,
		screenMap:     make(map[types.ScreenType]types.Screen),
		config:        domain.DefaultGameConfig(),
		scale:         1,
		eventCh:       make(chan types.UIEvent, 100),
	}
}

func (e *Engine) RegisterScreens(
	game types.Screen,
	gameOver types.Screen,
	scores types.Screen,
	settings types.Screen,
) {
	e.screenMap[types.ScreenGame] = game
	e.screenMap[types.ScreenGameOver] = gameOver
	e.screenMap[types.ScreenScores] = scores
	e.screenMap[types.ScreenSettings] = settings
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	// Screen switches requested from other goroutines land here, on the
	// ebiten goroutine.
	e.dataMu.Lock()
	target := e.switchTo
	e.switchTo = nil
	errorMsg := e.errorMsg
	e.errorMsg = ""
	quit := e.quit
	e.dataMu.Unlock()
	if quit {
		return ebiten.Termination
	}
	if target != nil {
		e.SetScreen(*target)
	}

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	if setter, ok := screen.(ErrorSetter); ok && errorMsg != "" {
		setter.SetError(errorMsg)
	}
	e.push(screen)

	event := screen.Update()
	if event.Type == types.UIEventQuit {
		e.forward(event)
		return ebiten.Termination
	}
	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	e.push(currentScreen)
	currentScreen.Draw(screen)
}

// push hands the latest shared data to a screen before it runs.
func (e *Engine) push(screen types.Screen) {
	e.dataMu.RLock()
	defer e.dataMu.RUnlock()

	if updater, ok := screen.(SnapshotUpdater); ok && e.hasSnap {
		updater.SetSnapshot(e.snapshot)
	}

	if updater, ok := screen.(BestUpdater); ok {
		best := 0
		if len(e.records) > 0 {
			best = int(e.records[0].Score)
		}
		updater.SetBest(best)
	}

	if updater, ok := screen.(RecordsUpdater); ok {
		updater.SetRecords(e.records)
	}

	if updater, ok := screen.(GameOverUpdater); ok {
		updater.SetGameOver(e.gameOver, e.rank)
	}

	if updater, ok := screen.(ScaleUpdater); ok {
		updater.SetScale(e.scale)
	}
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

// SetScreen must run on the ebiten goroutine. Other goroutines use
// RequestScreen.
func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen == screen {
		return
	}

	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnExit()
	}
	e.currentScreen = screen
	s := e.screenMap[e.currentScreen]
	if s == nil {
		return
	}

	if updater, ok := s.(ConfigUpdater); ok {
		e.dataMu.RLock()
		updater.SetConfig(e.config)
		e.dataMu.RUnlock()
	}
	s.OnEnter()
}

func (e *Engine) RequestScreen(screen types.ScreenType) {
	e.dataMu.Lock()
	e.switchTo = &screen
	e.dataMu.Unlock()
}

// Quit closes the window on the next frame.
func (e *Engine) Quit() {
	e.dataMu.Lock()
	e.quit = true
	e.dataMu.Unlock()
}

func (e *Engine) SetSnapshot(snap domain.Snapshot) {
	e.dataMu.Lock()
	e.snapshot = snap
	e.hasSnap = true
	e.dataMu.Unlock()
}

func (e *Engine) SetRecords(records []record.Record) {
	e.dataMu.Lock()
	e.records = records
	e.dataMu.Unlock()
}

func (e *Engine) SetConfig(config *domain.GameConfig) {
	e.dataMu.Lock()
	e.config = config.Copy()
	e.dataMu.Unlock()
}

// SetScale sets the board zoom matching the window scale.
func (e *Engine) SetScale(scale float64) {
	e.dataMu.Lock()
	e.scale = scale
	e.dataMu.Unlock()
}

func (e *Engine) SetGameOver(snap domain.Snapshot, rank int) {
	e.dataMu.Lock()
	e.gameOver = snap
	e.rank = rank
	e.dataMu.Unlock()
}

// SetError is shown on the next frame if the current screen can display it.
func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.errorMsg = err
	e.dataMu.Unlock()
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowGameOver:
		e.SetScreen(types.ScreenGameOver)

	case types.UIEventShowScores:
		e.SetScreen(types.ScreenScores)

	case types.UIEventShowSettings:
		e.SetScreen(types.ScreenSettings)

	default:
		e.forward(event)
	}
}

func (e *Engine) forward(event types.UIEvent) {
	select {
	case e.eventCh <- event:
	default:
		log.Println("UI: event channel full, dropping event")
	}
}

type SnapshotUpdater interface {
	SetSnapshot(snap domain.Snapshot)
}

type BestUpdater interface {
	SetBest(best int)
}

type RecordsUpdater interface {
	SetRecords(records []record.Record)
}

type GameOverUpdater interface {
	SetGameOver(snap domain.Snapshot, rank int)
}

type ScaleUpdater interface {
	SetScale(scale float64)
}

type ConfigUpdater interface {
	SetConfig(config *domain.GameConfig)
}

type ErrorSetter interface {
	SetError(err string)
}
