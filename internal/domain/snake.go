package domain

// Snake keeps its segments head first. BodySize is the length the snake is
// growing towards; Points may be one longer than BodySize only inside a tick.
type Snake struct {
	Points   []Coord
	BodySize int
}

// NewSnake stacks every segment on start, so the body unfolds over the first
// ticks.
func NewSnake(length int, start Coord) *Snake {
	if length < 1 {
		length = 1
	}
	points := make([]Coord, length)
	for i := range points {
		points[i] = start
	}
	return &Snake{
		Points:   points,
		BodySize: length,
	}
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		panic("domain: snake without segments")
	}
	return s.Points[0]
}

func (s *Snake) Grow() {
	s.BodySize++
}

func (s *Snake) Len() int {
	return len(s.Points)
}

func (s *Snake) Occupies(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

// HitsBody reports whether the head shares a cell with any other segment.
func (s *Snake) HitsBody() bool {
	head := s.Head()
	for _, p := range s.Points[1:] {
		if p.Equals(head) {
			return true
		}
	}
	return false
}

func (s *Snake) Copy() *Snake {
	points := make([]Coord, len(s.Points))
	copy(points, s.Points)
	return &Snake{
		Points:   points,
		BodySize: s.BodySize,
	}
}
