package domain

import (
	"math/rand"
	"reflect"
	"testing"
)

func seededSession(t *testing.T, seed int64) *Session {
	t.Helper()
	return NewSessionWithRand(DefaultGameConfig(), rand.New(rand.NewSource(seed)))
}

func checkInitialState(t *testing.T, s *Session) {
	t.Helper()

	if s.Status != StatusRunning {
		t.Errorf("status = %v, want running", s.Status)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if s.Direction != DirectionDown {
		t.Errorf("direction = %v, want down", s.Direction)
	}
	if s.Snake.BodySize != 3 || s.Snake.Len() != 3 {
		t.Errorf("snake size = %d/%d, want 3/3", s.Snake.BodySize, s.Snake.Len())
	}
	if s.Foods.Len() != int(s.Config.FoodCount) {
		t.Errorf("food count = %d, want %d", s.Foods.Len(), s.Config.FoodCount)
	}
	if n := s.Junk.Len(); n < 5 || n > 10 {
		t.Errorf("junk count = %d, want 5..10", n)
	}
	if s.Ticks != 0 || s.Cause != CauseNone {
		t.Errorf("ticks = %d, cause = %v, want fresh counters", s.Ticks, s.Cause)
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s := seededSession(t, 1)
	checkInitialState(t, s)

	if s.ID == "" {
		t.Errorf("session has no id")
	}
	ahead := s.Field.Move(s.Snake.Head(), s.Direction)
	if s.Junk.Contains(ahead) {
		t.Errorf("junk placed directly ahead of the snake at %v", ahead)
	}
}

func TestSessionFirstTick(t *testing.T) {
	s := seededSession(t, 2)
	s.Foods = foodAt(Coord{10, 10})
	s.Junk = junkAt(Coord{8, 8})

	result := s.Step()

	if result.Terminal() {
		t.Fatalf("first tick ended the game: %v", result.Cause)
	}
	if s.Snake.Len() != 3 || s.Score != 0 {
		t.Errorf("length = %d, score = %d, want 3 and 0", s.Snake.Len(), s.Score)
	}
	if s.Ticks != 1 {
		t.Errorf("ticks = %d, want 1", s.Ticks)
	}
}

func TestSessionEatsFoodBelowHead(t *testing.T) {
	s := seededSession(t, 3)
	s.Foods = foodAt(Coord{0, 1})
	s.Junk = junkAt(Coord{8, 8})

	s.Step()

	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if s.Snake.Len() != 4 {
		t.Errorf("length = %d, want 4", s.Snake.Len())
	}
	if s.Foods.Len() != int(s.Config.FoodCount) {
		t.Errorf("food count after refill = %d, want %d", s.Foods.Len(), s.Config.FoodCount)
	}
	for _, item := range s.Foods.Items {
		if s.Snake.Occupies(item.Pos) || s.Junk.Contains(item.Pos) {
			t.Errorf("refilled food on occupied cell %v", item.Pos)
		}
	}
}

func TestSessionRestartAfterGameOver(t *testing.T) {
	s := seededSession(t, 4)
	s.Foods = foodAt(Coord{10, 10})
	s.Junk = junkAt(Coord{0, 2})
	s.ChangeDirection(DirectionRight)
	s.ChangeDirection(DirectionDown)

	s.Step()
	result := s.Step()
	if !result.Terminal() || s.Status != StatusGameOver {
		t.Fatalf("expected game over, got %v", s.Status)
	}

	again := s.Step()
	if !again.Terminal() || s.Ticks != 2 {
		t.Errorf("step after game over changed the session: ticks = %d", s.Ticks)
	}

	oldID := s.ID
	s.Restart()
	checkInitialState(t, s)
	if s.ID == oldID {
		t.Errorf("restart kept session id %s", oldID)
	}
}

func TestSessionChangeDirectionRejectsReverse(t *testing.T) {
	s := seededSession(t, 5)

	if got := s.ChangeDirection(DirectionUp); got != DirectionDown {
		t.Errorf("reverse accepted: %v", got)
	}
	if got := s.ChangeDirection(DirectionLeft); got != DirectionLeft {
		t.Errorf("turn rejected: %v", got)
	}
	if got := s.ChangeDirection(DirectionNone); got != DirectionLeft {
		t.Errorf("unknown input changed direction to %v", got)
	}
}

func TestSessionInvariantsOverLongRun(t *testing.T) {
	s := seededSession(t, 6)
	rng := rand.New(rand.NewSource(60))

	for i := 0; i < 2000; i++ {
		if rng.Intn(4) == 0 {
			s.ChangeDirection(Directions[rng.Intn(len(Directions))])
		}

		before := s.Snake.Len()
		result := s.Step()

		want := before
		if result.Ate {
			want++
		}
		if s.Snake.Len() != want {
			t.Fatalf("tick %d: length %d, want %d (ate=%v)", i, s.Snake.Len(), want, result.Ate)
		}
		if n := s.Foods.Len(); n < 1 || n > int(s.Config.FoodCount) {
			t.Fatalf("tick %d: food count %d out of range", i, n)
		}
		for _, p := range s.Snake.Points {
			if !s.Field.Contains(p) {
				t.Fatalf("tick %d: segment %v off the board", i, p)
			}
		}

		if result.Terminal() {
			s.Restart()
		}
	}
}

func TestSessionDeterministicWithSeed(t *testing.T) {
	a := seededSession(t, 77)
	b := seededSession(t, 77)

	for i := 0; i < 300; i++ {
		dir := Directions[i/7%len(Directions)]
		a.ChangeDirection(dir)
		b.ChangeDirection(dir)
		if a.Step().Terminal() {
			a.Restart()
			b.Step()
			b.Restart()
			continue
		}
		b.Step()
	}

	snapA, snapB := a.Snapshot(), b.Snapshot()
	snapA.SessionID, snapB.SessionID = "", ""
	if !reflect.DeepEqual(snapA, snapB) {
		t.Errorf("same seed diverged:\n%+v\n%+v", snapA, snapB)
	}
}

func TestSpawnWithoutOverlapPolicyStaysOnBoard(t *testing.T) {
	field := NewField(6, 6)
	rng := rand.New(rand.NewSource(9))
	foods := NewHealthyFood()

	foods.Spawn(30, field, map[Coord]bool{{0, 0}: true}, false, rng)

	if foods.Len() != 30 {
		t.Fatalf("spawned %d items, want 30", foods.Len())
	}
	for _, item := range foods.Items {
		if !field.Contains(item.Pos) || !item.Kind.Healthy() {
			t.Errorf("bad item %+v", item)
		}
	}
}

func TestJunkGenerateCountInRange(t *testing.T) {
	field := NewField(16, 12)
	rng := rand.New(rand.NewSource(10))
	forbidden := map[Coord]bool{{0, 0}: true, {0, 1}: true}

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		junk := NewJunkFood()
		junk.Generate(field, 5, 10, forbidden, true, rng)
		n := junk.Len()
		if n < 5 || n > 10 {
			t.Fatalf("junk count %d out of range", n)
		}
		seen[n] = true
		for _, item := range junk.Items {
			if forbidden[item.Pos] || item.Kind.Healthy() {
				t.Fatalf("bad junk item %+v", item)
			}
		}
	}
	if len(seen) != 6 {
		t.Errorf("saw counts %v, want every value in 5..10", seen)
	}
}
