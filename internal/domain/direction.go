package domain

type Direction int32

// DirectionNone is what input mappers return for keys that do not steer.
const (
	DirectionNone  Direction = 0
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

var Directions = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

func (d Direction) Delta() Coord {
	switch d {
	case DirectionUp:
		return Coord{0, -1}
	case DirectionDown:
		return Coord{0, 1}
	case DirectionLeft:
		return Coord{-1, 0}
	case DirectionRight:
		return Coord{1, 0}
	}
	return Coord{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// ChangeDirection keeps current when requested would reverse the snake into
// its own neck or is not a direction at all.
func ChangeDirection(current, requested Direction) Direction {
	if !requested.Valid() || requested.IsOpposite(current) {
		return current
	}
	return requested
}
