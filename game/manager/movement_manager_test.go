package manager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"snake-world/game/types"
)

func TestMovementManager_NextCell(t *testing.T) {
	tests := []struct {
		width int
		idx   int
		dir   types.Direction
		want  int
	}{
		{width: 8, idx: 10, dir: types.Right, want: 11},
		{width: 8, idx: 10, dir: types.Left, want: 9},
		{width: 8, idx: 10, dir: types.Up, want: 2},
		{width: 8, idx: 10, dir: types.Down, want: 18},

		{width: 4, idx: 3, dir: types.Right, want: 0},
		{width: 4, idx: 7, dir: types.Right, want: 4},
		{width: 4, idx: 15, dir: types.Right, want: 12},
		{width: 4, idx: 0, dir: types.Left, want: 3},
		{width: 4, idx: 8, dir: types.Left, want: 11},
		{width: 4, idx: 0, dir: types.Up, want: 12},
		{width: 4, idx: 3, dir: types.Up, want: 15},
		{width: 4, idx: 12, dir: types.Down, want: 0},
		{width: 4, idx: 14, dir: types.Down, want: 2},
		{width: 4, idx: 11, dir: types.Down, want: 15},
		{width: 4, idx: 4, dir: types.Up, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("w%d_%d_%s", tt.width, tt.idx, tt.dir), func(t *testing.T) {
			mm := NewMovementManager(types.Grid{Width: tt.width})
			assert.Equal(t, tt.want, mm.NextCell(tt.idx, tt.dir))
		})
	}
}

func TestMovementManager_OppositeMovesReturn(t *testing.T) {
	grid := types.Grid{Width: 5}
	mm := NewMovementManager(grid)

	for idx := 0; idx < grid.Size(); idx++ {
		for _, dir := range types.Directions {
			next := mm.NextCell(idx, dir)
			assert.True(t, grid.Contains(next), "cell %d %s -> %d", idx, dir, next)
			assert.Equal(t, idx, mm.NextCell(next, dir.Opposite()), "cell %d %s", idx, dir)
		}
	}
}

func TestMovementManager_EdgeIsBijection(t *testing.T) {
	grid := types.Grid{Width: 6}
	mm := NewMovementManager(grid)

	for _, dir := range types.Directions {
		seen := make(map[int]bool, grid.Size())
		for idx := 0; idx < grid.Size(); idx++ {
			seen[mm.NextCell(idx, dir)] = true
		}
		assert.Len(t, seen, grid.Size(), "direction %s", dir)
	}
}
