package manager

import (
	"snake-world/game/types"
)

// MovementManager computes head moves on a toroidal grid.
type MovementManager struct {
	grid types.Grid
}

func NewMovementManager(grid types.Grid) *MovementManager {
	return &MovementManager{
		grid: grid,
	}
}

// NextCell returns the cell reached by moving one step from idx.
// Leaving the grid on one edge re-enters it on the opposite edge of the
// same row or column.
func (mm *MovementManager) NextCell(idx int, dir types.Direction) int {
	width := mm.grid.Width
	row := idx / width

	switch dir {
	case types.Right:
		threshold := (row + 1) * width
		if idx+1 == threshold {
			return threshold - width
		}
		return idx + 1
	case types.Left:
		threshold := row * width
		if idx == threshold {
			return threshold + (width - 1)
		}
		return idx - 1
	case types.Up:
		col := idx - row*width
		if idx == col {
			return (mm.grid.Size() - width) + col
		}
		return idx - width
	case types.Down:
		if row == width-1 {
			return idx % width
		}
		return idx + width
	default:
		return idx
	}
}
