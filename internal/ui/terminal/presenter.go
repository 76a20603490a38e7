// Package terminal draws the game in a text terminal with tcell.
package terminal

import (
	"context"
	"fmt"
	"log"

	"habiter/internal/app"
	"habiter/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Controller is the part of app.App the presenter drives.
type Controller interface {
	Steer(dir domain.Direction)
	Restart()
	Snapshot() domain.Snapshot
	Events() <-chan app.Event
}

type Action int

const (
	ActionNone Action = iota
	ActionSteer
	ActionRestart
	ActionQuit
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.GetColor("gray"))
	styleStatus = tcell.StyleDefault.Foreground(tcell.GetColor("steelblue")).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.GetColor("gray"))
	styleHead   = tcell.StyleDefault.Foreground(tcell.GetColor("green").TrueColor())
	styleBody   = tcell.StyleDefault.Foreground(tcell.GetColor("lime").TrueColor())
	styleDead   = tcell.StyleDefault.Foreground(tcell.GetColor("darkred"))
	styleBanner = tcell.StyleDefault.Foreground(tcell.GetColor("white")).Background(tcell.GetColor("darkred")).Bold(true)
)

var foodColors = map[domain.FoodKind]tcell.Color{
	domain.FoodApple:  tcell.GetColor("red"),
	domain.FoodBanana: tcell.GetColor("yellow"),
	domain.FoodCarrot: tcell.GetColor("orange"),
	domain.FoodCake:   tcell.GetColor("pink"),
	domain.FoodBurger: tcell.GetColor("saddlebrown"),
	domain.FoodPizza:  tcell.GetColor("gold"),
}

// KeyAction maps a key press to what the player wants.
func KeyAction(ev *tcell.EventKey) (Action, domain.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionSteer, domain.DirectionUp
	case tcell.KeyDown:
		return ActionSteer, domain.DirectionDown
	case tcell.KeyLeft:
		return ActionSteer, domain.DirectionLeft
	case tcell.KeyRight:
		return ActionSteer, domain.DirectionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, domain.DirectionNone
	case tcell.KeyEnter:
		return ActionRestart, domain.DirectionNone
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionSteer, domain.DirectionUp
		case 's', 'S':
			return ActionSteer, domain.DirectionDown
		case 'a', 'A':
			return ActionSteer, domain.DirectionLeft
		case 'd', 'D':
			return ActionSteer, domain.DirectionRight
		case 'r', 'R':
			return ActionRestart, domain.DirectionNone
		case 'q', 'Q':
			return ActionQuit, domain.DirectionNone
		}
	}
	return ActionNone, domain.DirectionNone
}

type Presenter struct {
	screen tcell.Screen
	ctrl   Controller

	best int
	rank int
}

// NewPresenter takes an initialized screen. best is the high score known at
// start-up.
func NewPresenter(screen tcell.Screen, ctrl Controller, best int) *Presenter {
	return &Presenter{
		screen: screen,
		ctrl:   ctrl,
		best:   best,
	}
}

// Run redraws on every app event and forwards keys until ctx is done or the
// player quits.
func (p *Presenter) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go p.screen.ChannelEvents(events, quit)
	defer close(quit)

	p.Render(p.ctrl.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-p.ctrl.Events():
			if !ok {
				return nil
			}
			p.handleAppEvent(event)

		case event, ok := <-events:
			if !ok {
				return nil
			}
			switch evt := event.(type) {
			case *tcell.EventError:
				return fmt.Errorf("terminal error: %w", evt)
			case *tcell.EventResize:
				p.screen.Sync()
				p.Render(p.ctrl.Snapshot())
			case *tcell.EventKey:
				action, dir := KeyAction(evt)
				switch action {
				case ActionSteer:
					p.ctrl.Steer(dir)
				case ActionRestart:
					p.ctrl.Restart()
				case ActionQuit:
					return nil
				}
			}
		}
	}
}

func (p *Presenter) handleAppEvent(event app.Event) {
	switch event.Type {
	case app.EventGameOver:
		payload, ok := event.Payload.(app.GameOverPayload)
		if !ok {
			return
		}
		p.rank = payload.Rank
		if payload.Snapshot.Score > p.best {
			p.best = payload.Snapshot.Score
		}
		p.Render(payload.Snapshot)

	case app.EventRestarted:
		p.rank = 0
		p.Render(p.ctrl.Snapshot())

	case app.EventError:
		if payload, ok := event.Payload.(app.ErrorPayload); ok {
			log.Printf("TUI: %s", payload.Message)
		}

	default:
		p.Render(p.ctrl.Snapshot())
	}
}

// cell converts a board cell to the screen column and row of its left half.
func cell(c domain.Coord) (int, int) {
	return 1 + int(c.X)*2, 2 + int(c.Y)
}

func (p *Presenter) Render(snap domain.Snapshot) {
	s := p.screen
	s.Clear()

	w, h := int(snap.Field.Width), int(snap.Field.Height)

	drawText(s, 0, 0, styleStatus, fmt.Sprintf("Score: %d  Length: %d  Best: %d", snap.Score, len(snap.Snake), max(p.best, snap.Score)))

	right, bottom := 1+w*2, 2+h
	s.SetContent(0, 1, '+', nil, styleBorder)
	s.SetContent(right, 1, '+', nil, styleBorder)
	s.SetContent(0, bottom, '+', nil, styleBorder)
	s.SetContent(right, bottom, '+', nil, styleBorder)
	for x := 1; x < right; x++ {
		s.SetContent(x, 1, '-', nil, styleBorder)
		s.SetContent(x, bottom, '-', nil, styleBorder)
	}
	for y := 2; y < bottom; y++ {
		s.SetContent(0, y, '|', nil, styleBorder)
		s.SetContent(right, y, '|', nil, styleBorder)
	}

	for _, item := range snap.Junk {
		x, y := cell(item.Pos)
		style := tcell.StyleDefault.Foreground(foodColors[item.Kind])
		s.SetContent(x, y, '[', nil, style)
		s.SetContent(x+1, y, ']', nil, style)
	}

	for _, item := range snap.Foods {
		x, y := cell(item.Pos)
		style := tcell.StyleDefault.Foreground(foodColors[item.Kind])
		s.SetContent(x, y, '(', nil, style)
		s.SetContent(x+1, y, ')', nil, style)
	}

	// Tail first so the head stays on top when segments are stacked.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := cell(snap.Snake[i])
		style := styleBody
		switch {
		case snap.GameOver():
			style = styleDead
		case i == 0:
			style = styleHead
		}
		s.SetContent(x, y, '█', nil, style)
		s.SetContent(x+1, y, '█', nil, style)
	}

	if snap.GameOver() {
		p.drawBanner(snap, right, bottom)
	} else {
		drawText(s, 0, bottom+1, styleHint, "arrows/wasd move  q quit")
	}

	s.Show()
}

func (p *Presenter) drawBanner(snap domain.Snapshot, width, bottom int) {
	lines := []string{
		" GAME OVER ",
		fmt.Sprintf(" The snake %s. Score %d ", snap.Cause, snap.Score),
	}
	switch {
	case p.rank == 1:
		lines = append(lines, " New best score! ")
	case p.rank > 1:
		lines = append(lines, fmt.Sprintf(" High score rank #%d ", p.rank))
	}

	top := 2 + (bottom-2-len(lines))/2
	for i, line := range lines {
		x := (width - len(line)) / 2
		if x < 0 {
			x = 0
		}
		drawText(p.screen, x, top+i, styleBanner, line)
	}

	drawText(p.screen, 0, bottom+1, styleHint, "r restart  q quit")
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
