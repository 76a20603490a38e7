package domain

type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeTerminal
)

type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseSelf
	CauseJunk
)

func (c CollisionCause) String() string {
	switch c {
	case CauseSelf:
		return "bit itself"
	case CauseJunk:
		return "ate junk food"
	}
	return "none"
}

// Spawner refills the healthy food once the last item has been eaten.
type Spawner interface {
	Refill(foods *HealthyFood, field *Field, forbidden map[Coord]bool)
}

type TickResult struct {
	Outcome    Outcome
	Snake      *Snake
	Foods      *HealthyFood
	ScoreDelta int
	Ate        bool
	Refilled   bool
	Cause      CollisionCause
}

func (r TickResult) Terminal() bool {
	return r.Outcome == OutcomeTerminal
}

// Tick advances the snake one cell in dir. The arguments are left untouched;
// the next snake and food set come back in the result, also on a terminal
// tick.
func Tick(field *Field, snake *Snake, foods *HealthyFood, junk *JunkFood, dir Direction, spawner Spawner) TickResult {
	nextSnake := snake.Copy()
	nextFoods := foods.Copy()
	result := TickResult{
		Outcome: OutcomeContinue,
		Snake:   nextSnake,
		Foods:   nextFoods,
	}

	head := field.Move(nextSnake.Head(), dir)
	nextSnake.Points = append([]Coord{head}, nextSnake.Points...)

	eaten := nextFoods.RemoveAt(head)
	for i := 0; i < eaten; i++ {
		result.ScoreDelta++
		nextSnake.Grow()
	}
	result.Ate = eaten > 0

	if nextFoods.Empty() && spawner != nil {
		forbidden := make(map[Coord]bool, len(nextSnake.Points)+len(junk.Items))
		for _, p := range nextSnake.Points {
			forbidden[p] = true
		}
		for _, item := range junk.Items {
			forbidden[item.Pos] = true
		}
		spawner.Refill(nextFoods, field, forbidden)
		result.Refilled = true
	}

	if len(nextSnake.Points) > nextSnake.BodySize {
		nextSnake.Points = nextSnake.Points[:len(nextSnake.Points)-1]
	}

	switch {
	case nextSnake.HitsBody():
		result.Outcome = OutcomeTerminal
		result.Cause = CauseSelf
	case junk.Contains(head):
		result.Outcome = OutcomeTerminal
		result.Cause = CauseJunk
	}

	return result
}
