package domain

import (
	"reflect"
	"testing"
)

type fixedSpawner struct {
	items []FoodItem
	calls int
}

func (f *fixedSpawner) Refill(foods *HealthyFood, _ *Field, _ map[Coord]bool) {
	f.calls++
	foods.Items = append([]FoodItem(nil), f.items...)
}

func foodAt(coords ...Coord) *HealthyFood {
	foods := NewHealthyFood()
	for _, c := range coords {
		foods.Items = append(foods.Items, FoodItem{Pos: c, Kind: FoodApple})
	}
	return foods
}

func junkAt(coords ...Coord) *JunkFood {
	junk := NewJunkFood()
	for _, c := range coords {
		junk.Items = append(junk.Items, FoodItem{Pos: c, Kind: FoodPizza})
	}
	return junk
}

func TestTickFreshSnakeKeepsLength(t *testing.T) {
	field := NewField(16, 12)
	snake := NewSnake(3, Coord{})
	foods := foodAt(Coord{10, 10})
	spawner := &fixedSpawner{}

	result := Tick(field, snake, foods, junkAt(Coord{5, 5}), DirectionDown, spawner)

	if result.Terminal() {
		t.Fatalf("unexpected terminal result: %v", result.Cause)
	}
	if result.Snake.Len() != 3 {
		t.Errorf("length = %d, want 3", result.Snake.Len())
	}
	if result.ScoreDelta != 0 || result.Ate {
		t.Errorf("score delta = %d, ate = %v, want nothing eaten", result.ScoreDelta, result.Ate)
	}
	want := []Coord{{0, 1}, {0, 0}, {0, 0}}
	if !reflect.DeepEqual(result.Snake.Points, want) {
		t.Errorf("points = %v, want %v", result.Snake.Points, want)
	}
	if spawner.calls != 0 {
		t.Errorf("refill called %d times with food left", spawner.calls)
	}
}

func TestTickEatsLastFoodAndRefills(t *testing.T) {
	field := NewField(16, 12)
	snake := &Snake{Points: []Coord{{4, 4}, {4, 3}, {4, 2}}, BodySize: 3}
	spawner := &fixedSpawner{items: []FoodItem{
		{Pos: Coord{1, 1}}, {Pos: Coord{2, 2}}, {Pos: Coord{3, 3}}, {Pos: Coord{9, 9}}, {Pos: Coord{10, 10}},
	}}

	result := Tick(field, snake, foodAt(Coord{4, 5}), junkAt(), DirectionDown, spawner)

	if result.Terminal() {
		t.Fatalf("unexpected terminal result: %v", result.Cause)
	}
	if result.ScoreDelta != 1 || !result.Ate {
		t.Errorf("score delta = %d, want 1", result.ScoreDelta)
	}
	if result.Snake.Len() != 4 || result.Snake.BodySize != 4 {
		t.Errorf("length = %d, body size = %d, want 4/4", result.Snake.Len(), result.Snake.BodySize)
	}
	if !result.Refilled || spawner.calls != 1 {
		t.Errorf("refilled = %v after %d calls, want one refill", result.Refilled, spawner.calls)
	}
	if result.Foods.Len() != 5 {
		t.Errorf("food count = %d, want 5", result.Foods.Len())
	}
}

func TestTickEatsWithoutRefillWhenFoodRemains(t *testing.T) {
	field := NewField(16, 12)
	snake := &Snake{Points: []Coord{{4, 4}, {3, 4}, {2, 4}}, BodySize: 3}
	spawner := &fixedSpawner{}

	result := Tick(field, snake, foodAt(Coord{5, 4}, Coord{8, 8}), junkAt(), DirectionRight, spawner)

	if result.Refilled || spawner.calls != 0 {
		t.Errorf("unexpected refill")
	}
	if got := result.Foods.Positions(); !reflect.DeepEqual(got, []Coord{{8, 8}}) {
		t.Errorf("remaining food = %v, want [(8,8)]", got)
	}
}

func TestTickScoresEveryItemOnTheCell(t *testing.T) {
	field := NewField(16, 12)
	snake := &Snake{Points: []Coord{{4, 4}, {3, 4}, {2, 4}}, BodySize: 3}

	result := Tick(field, snake, foodAt(Coord{5, 4}, Coord{5, 4}, Coord{0, 0}), junkAt(), DirectionRight, &fixedSpawner{})

	if result.ScoreDelta != 2 {
		t.Errorf("score delta = %d, want 2", result.ScoreDelta)
	}
	if result.Snake.BodySize != 5 {
		t.Errorf("body size = %d, want 5", result.Snake.BodySize)
	}
	if result.Snake.Len() != 4 {
		t.Errorf("length = %d, want 4", result.Snake.Len())
	}
}

func TestTickSelfCollision(t *testing.T) {
	field := NewField(16, 12)
	snake := &Snake{
		Points:   []Coord{{2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}},
		BodySize: 5,
	}

	result := Tick(field, snake, foodAt(Coord{9, 9}), junkAt(), DirectionDown, &fixedSpawner{})

	if !result.Terminal() || result.Cause != CauseSelf {
		t.Errorf("outcome = %v cause = %v, want terminal self collision", result.Outcome, result.Cause)
	}
}

func TestTickJunkCollision(t *testing.T) {
	field := NewField(16, 12)
	snake := &Snake{Points: []Coord{{5, 5}, {5, 4}, {5, 3}}, BodySize: 3}

	result := Tick(field, snake, foodAt(Coord{9, 9}), junkAt(Coord{5, 6}), DirectionDown, &fixedSpawner{})

	if !result.Terminal() || result.Cause != CauseJunk {
		t.Errorf("outcome = %v cause = %v, want terminal junk collision", result.Outcome, result.Cause)
	}
}

func TestTickWrapsInsteadOfDying(t *testing.T) {
	field := NewField(16, 12)
	snake := &Snake{Points: []Coord{{15, 6}, {14, 6}, {13, 6}}, BodySize: 3}

	result := Tick(field, snake, foodAt(Coord{9, 9}), junkAt(), DirectionRight, &fixedSpawner{})

	if result.Terminal() {
		t.Fatalf("wrap-around should not be terminal")
	}
	if head := result.Snake.Head(); head != (Coord{0, 6}) {
		t.Errorf("head = %v, want (0,6)", head)
	}
}

func TestTickLeavesInputsUntouched(t *testing.T) {
	field := NewField(16, 12)
	snake := &Snake{Points: []Coord{{4, 4}, {4, 3}, {4, 2}}, BodySize: 3}
	foods := foodAt(Coord{4, 5}, Coord{7, 7})
	snakeBefore := snake.Copy()
	foodsBefore := foods.Copy()

	Tick(field, snake, foods, junkAt(), DirectionDown, &fixedSpawner{})

	if !reflect.DeepEqual(snake, snakeBefore) {
		t.Errorf("snake mutated: %+v", snake)
	}
	if !reflect.DeepEqual(foods, foodsBefore) {
		t.Errorf("foods mutated: %+v", foods)
	}
}
