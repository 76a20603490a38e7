package domain

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game over"
	}
	return "running"
}

const InitialDirection = DirectionDown

// Session is one game from start or restart until the next collision. It is
// not safe for concurrent use; the loop controller owns it.
type Session struct {
	ID        string
	Config    *GameConfig
	Field     *Field
	Snake     *Snake
	Foods     *HealthyFood
	Junk      *JunkFood
	Score     int
	Direction Direction
	Status    Status
	Ticks     int
	Cause     CollisionCause

	rng *rand.Rand
}

// NewSession seeds its generator from config.Seed, or from the clock when the
// seed is zero.
func NewSession(config *GameConfig) *Session {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSessionWithRand(config, rand.New(rand.NewSource(seed)))
}

func NewSessionWithRand(config *GameConfig, rng *rand.Rand) *Session {
	s := &Session{
		Config: config.Copy(),
		rng:    rng,
	}
	s.Restart()
	return s
}

// Restart rebuilds snake, food and junk and resets score and direction. The
// generator carries on, so a seeded run stays reproducible across restarts.
func (s *Session) Restart() {
	s.ID = uuid.NewString()
	s.Field = s.Config.Field()
	s.Snake = NewSnake(int(s.Config.InitialLength), Coord{})
	s.Score = 0
	s.Direction = InitialDirection
	s.Status = StatusRunning
	s.Ticks = 0
	s.Cause = CauseNone

	forbidden := make(map[Coord]bool)
	for _, p := range s.Snake.Points {
		forbidden[p] = true
	}
	forbidden[s.Field.Move(s.Snake.Head(), s.Direction)] = true

	s.Junk = NewJunkFood()
	s.Junk.Generate(s.Field, int(s.Config.JunkMin), int(s.Config.JunkMax), forbidden, s.Config.AvoidOverlap, s.rng)

	s.Foods = NewHealthyFood()
	s.Refill(s.Foods, s.Field, s.occupied())
}

// Reconfigure swaps the config and restarts.
func (s *Session) Reconfigure(config *GameConfig) {
	s.Config = config.Copy()
	s.Restart()
}

func (s *Session) ChangeDirection(requested Direction) Direction {
	s.Direction = ChangeDirection(s.Direction, requested)
	return s.Direction
}

// Refill implements Spawner with the session's generator and overlap policy.
func (s *Session) Refill(foods *HealthyFood, field *Field, forbidden map[Coord]bool) {
	foods.Spawn(int(s.Config.FoodCount), field, forbidden, s.Config.AvoidOverlap, s.rng)
}

// Step runs one tick. After game over it changes nothing and repeats the
// terminal outcome.
func (s *Session) Step() TickResult {
	if s.Status == StatusGameOver {
		return TickResult{
			Outcome: OutcomeTerminal,
			Snake:   s.Snake,
			Foods:   s.Foods,
			Cause:   s.Cause,
		}
	}

	result := Tick(s.Field, s.Snake, s.Foods, s.Junk, s.Direction, s)

	s.Ticks++
	s.Snake = result.Snake
	s.Foods = result.Foods
	s.Score += result.ScoreDelta

	if result.Terminal() {
		s.Status = StatusGameOver
		s.Cause = result.Cause
	}

	return result
}

func (s *Session) occupied() map[Coord]bool {
	occupied := make(map[Coord]bool, len(s.Snake.Points)+len(s.Junk.Items))
	for _, p := range s.Snake.Points {
		occupied[p] = true
	}
	for _, item := range s.Junk.Items {
		occupied[item.Pos] = true
	}
	return occupied
}

// Snapshot is a copy of a session that presenters may keep and read from any
// goroutine.
type Snapshot struct {
	SessionID string
	Field     Field
	CellSize  int32
	Snake     []Coord
	BodySize  int
	Foods     []FoodItem
	Junk      []FoodItem
	Score     int
	Direction Direction
	Status    Status
	Ticks     int
	Cause     CollisionCause
	FoodCount int
}

func (s *Session) Snapshot() Snapshot {
	snake := s.Snake.Copy()
	return Snapshot{
		SessionID: s.ID,
		Field:     *s.Field,
		CellSize:  s.Config.CellSize,
		Snake:     snake.Points,
		BodySize:  snake.BodySize,
		Foods:     s.Foods.Copy().Items,
		Junk:      s.Junk.Copy().Items,
		Score:     s.Score,
		Direction: s.Direction,
		Status:    s.Status,
		Ticks:     s.Ticks,
		Cause:     s.Cause,
		FoodCount: int(s.Config.FoodCount),
	}
}

func (s Snapshot) Head() Coord {
	if len(s.Snake) == 0 {
		return Coord{}
	}
	return s.Snake[0]
}

func (s Snapshot) GameOver() bool {
	return s.Status == StatusGameOver
}
