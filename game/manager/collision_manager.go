package manager

import (
	"snake-world/game/entity"
	"snake-world/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision reports whether the head shares a cell with any other segment.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.Head()
	for _, part := range snake.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// IsDanger reports whether moving the head onto pos would kill the snake on
// the next step. The tail is skipped since it leaves its cell as the head moves.
func (cm *CollisionManager) IsDanger(pos int, snake *entity.Snake) bool {
	for _, part := range snake.Body[:snake.Len()-1] {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a cell is free for a reward.
func (cm *CollisionManager) ValidateSpawnPosition(pos int, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsRewardCollision checks if the head sits on the reward cell.
func (cm *CollisionManager) IsRewardCollision(pos int, reward int, hasReward bool) bool {
	return hasReward && pos == reward
}
