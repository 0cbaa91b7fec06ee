package entity

import (
	"snake-world/game/types"
)

// Snake is an ordered list of cell indices, head first.
type Snake struct {
	Body      []int
	Direction types.Direction
}

// NewSnake builds a snake of the given length on consecutive decreasing
// indices, head at spawnIdx, facing right.
func NewSnake(spawnIdx, length int) *Snake {
	body := make([]int, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, spawnIdx-i)
	}

	return &Snake{
		Body:      body,
		Direction: types.Right, // Start moving right
	}
}

func (s *Snake) Head() int {
	return s.Body[0]
}

// Neck returns the segment right behind the head.
func (s *Snake) Neck() int {
	return s.Body[1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []int {
	cells := make([]int, len(s.Body))
	copy(cells, s.Body)
	return cells
}

// Advance puts the head on newHead and moves every other segment onto the
// position the segment ahead of it held before the move.
func (s *Snake) Advance(newHead int) {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = newHead
}

// Grow appends a tail segment.
func (s *Snake) Grow(cell int) {
	s.Body = append(s.Body, cell)
}

// Occupies reports whether any segment sits on cell.
func (s *Snake) Occupies(cell int) bool {
	for _, part := range s.Body {
		if part == cell {
			return true
		}
	}
	return false
}
