package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snake-world/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(10, 3)

	assert.Equal(t, []int{10, 9, 8}, s.Body)
	assert.Equal(t, types.Right, s.Direction)
	assert.Equal(t, 10, s.Head())
	assert.Equal(t, 9, s.Neck())
	assert.Equal(t, 3, s.Len())
}

func TestSnake_Advance(t *testing.T) {
	s := NewSnake(10, 4)

	s.Advance(11)

	assert.Equal(t, []int{11, 10, 9, 8}, s.Body)
}

func TestSnake_Grow(t *testing.T) {
	s := NewSnake(10, 3)
	s.Advance(11)
	s.Grow(s.Body[s.Len()-2])

	assert.Equal(t, []int{11, 10, 9, 10}, s.Body)
	assert.True(t, s.Occupies(9))
	assert.False(t, s.Occupies(8))
	assert.False(t, s.Occupies(12))
}

func TestSnake_Cells(t *testing.T) {
	s := NewSnake(10, 3)
	cells := s.Cells()
	cells[1] = 42

	assert.Equal(t, 9, s.Body[1])
}
