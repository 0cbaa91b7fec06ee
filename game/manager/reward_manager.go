package manager

import (
	"snake-world/game/entity"
	"snake-world/game/types"
)

// RewardManager places the single reward cell of a world.
type RewardManager struct {
	grid         types.Grid
	rng          Rand
	collisionMgr *CollisionManager
}

func NewRewardManager(grid types.Grid, rng Rand, collisionMgr *CollisionManager) *RewardManager {
	return &RewardManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateReward draws cells until one is not covered by the snake.
// The caller must make sure at least one free cell exists.
func (rm *RewardManager) GenerateReward(snake *entity.Snake) int {
	size := rm.grid.Size()
	for {
		reward := rm.rng.Intn(size)
		if rm.collisionMgr.ValidateSpawnPosition(reward, snake) {
			return reward
		}
	}
}
