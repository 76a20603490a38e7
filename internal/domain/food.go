package domain

import (
	"math/rand"
)

const maxPlacementAttempts = 100

type FoodKind int

const (
	FoodApple FoodKind = iota
	FoodBanana
	FoodCarrot
	FoodCake
	FoodBurger
	FoodPizza
)

var (
	healthyKinds = []FoodKind{FoodApple, FoodBanana, FoodCarrot}
	junkKinds    = []FoodKind{FoodCake, FoodBurger, FoodPizza}
)

func (k FoodKind) Healthy() bool {
	return k <= FoodCarrot
}

func (k FoodKind) String() string {
	switch k {
	case FoodApple:
		return "apple"
	case FoodBanana:
		return "banana"
	case FoodCarrot:
		return "carrot"
	case FoodCake:
		return "cake"
	case FoodBurger:
		return "burger"
	case FoodPizza:
		return "pizza"
	}
	return "unknown"
}

type FoodItem struct {
	Pos  Coord
	Kind FoodKind
}

type HealthyFood struct {
	Items []FoodItem
}

func NewHealthyFood() *HealthyFood {
	return &HealthyFood{Items: make([]FoodItem, 0)}
}

// Spawn replaces every item with count new ones. With avoid set, positions
// skip forbidden cells and each other while attempts last.
func (hf *HealthyFood) Spawn(count int, field *Field, forbidden map[Coord]bool, avoid bool, rng *rand.Rand) {
	occupied := make(map[Coord]bool, len(forbidden)+count)
	for c := range forbidden {
		occupied[c] = true
	}

	hf.Items = make([]FoodItem, 0, count)
	for i := 0; i < count; i++ {
		pos := randomCell(field, rng, occupied, avoid)
		occupied[pos] = true
		hf.Items = append(hf.Items, FoodItem{
			Pos:  pos,
			Kind: healthyKinds[rng.Intn(len(healthyKinds))],
		})
	}
}

// RemoveAt drops every item on c and returns how many were dropped.
func (hf *HealthyFood) RemoveAt(c Coord) int {
	kept := hf.Items[:0]
	removed := 0
	for _, item := range hf.Items {
		if item.Pos.Equals(c) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	hf.Items = kept
	return removed
}

func (hf *HealthyFood) Len() int {
	return len(hf.Items)
}

func (hf *HealthyFood) Empty() bool {
	return len(hf.Items) == 0
}

func (hf *HealthyFood) Positions() []Coord {
	result := make([]Coord, 0, len(hf.Items))
	for _, item := range hf.Items {
		result = append(result, item.Pos)
	}
	return result
}

func (hf *HealthyFood) Copy() *HealthyFood {
	items := make([]FoodItem, len(hf.Items))
	copy(items, hf.Items)
	return &HealthyFood{Items: items}
}

// JunkFood holds the obstacles of a session. They are only replaced by
// Generate, never moved or eaten.
type JunkFood struct {
	Items []FoodItem
}

func NewJunkFood() *JunkFood {
	return &JunkFood{Items: make([]FoodItem, 0)}
}

func (jf *JunkFood) Generate(field *Field, min, max int, forbidden map[Coord]bool, avoid bool, rng *rand.Rand) {
	count := min
	if max > min {
		count += rng.Intn(max - min + 1)
	}

	occupied := make(map[Coord]bool, len(forbidden)+count)
	for c := range forbidden {
		occupied[c] = true
	}

	jf.Items = make([]FoodItem, 0, count)
	for i := 0; i < count; i++ {
		pos := randomCell(field, rng, occupied, avoid)
		occupied[pos] = true
		jf.Items = append(jf.Items, FoodItem{
			Pos:  pos,
			Kind: junkKinds[rng.Intn(len(junkKinds))],
		})
	}
}

func (jf *JunkFood) Contains(c Coord) bool {
	for _, item := range jf.Items {
		if item.Pos.Equals(c) {
			return true
		}
	}
	return false
}

func (jf *JunkFood) Len() int {
	return len(jf.Items)
}

func (jf *JunkFood) Copy() *JunkFood {
	items := make([]FoodItem, len(jf.Items))
	copy(items, jf.Items)
	return &JunkFood{Items: items}
}

func randomCell(field *Field, rng *rand.Rand, occupied map[Coord]bool, avoid bool) Coord {
	var pos Coord
	for attempts := 0; attempts < maxPlacementAttempts; attempts++ {
		pos = Coord{
			X: rng.Int31n(field.Width),
			Y: rng.Int31n(field.Height),
		}
		if !avoid || !occupied[pos] {
			return pos
		}
	}
	return pos
}
