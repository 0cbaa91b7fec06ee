package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snake-world/game/entity"
	"snake-world/game/types"
)

func TestRewardManager_GenerateReward(t *testing.T) {
	grid := types.Grid{Width: 4}
	draws := []int{5, 4, 3, 9}
	calls := 0
	rng := RandFunc(func(n int) int {
		assert.Equal(t, 16, n)
		v := draws[calls]
		calls++
		return v
	})

	rm := NewRewardManager(grid, rng, NewCollisionManager(grid))
	reward := rm.GenerateReward(entity.NewSnake(5, 3))

	assert.Equal(t, 9, reward)
	assert.Equal(t, 4, calls)
}

func TestRewardManager_LastFreeCell(t *testing.T) {
	grid := types.Grid{Width: 2}
	snake := &entity.Snake{Body: []int{3, 1, 0}}
	rm := NewRewardManager(grid, NewRand(7), NewCollisionManager(grid))

	for i := 0; i < 10; i++ {
		assert.Equal(t, 2, rm.GenerateReward(snake))
	}
}
