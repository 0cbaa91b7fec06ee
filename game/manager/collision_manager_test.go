package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snake-world/game/entity"
	"snake-world/game/types"
)

func TestCollisionManager_IsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 4})

	assert.False(t, cm.IsSelfCollision(&entity.Snake{Body: []int{5, 4, 3}}))
	assert.True(t, cm.IsSelfCollision(&entity.Snake{Body: []int{4, 5, 6, 10, 9, 4}}))
	assert.True(t, cm.IsSelfCollision(&entity.Snake{Body: []int{2, 3, 2}}))
}

func TestCollisionManager_IsDanger(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 4})
	snake := &entity.Snake{Body: []int{5, 4, 0, 1}}

	assert.True(t, cm.IsDanger(4, snake))
	assert.True(t, cm.IsDanger(0, snake))
	assert.False(t, cm.IsDanger(1, snake), "tail moves away")
	assert.False(t, cm.IsDanger(6, snake))
}

func TestCollisionManager_ValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 4})
	snake := entity.NewSnake(5, 3)

	assert.False(t, cm.ValidateSpawnPosition(5, snake))
	assert.False(t, cm.ValidateSpawnPosition(3, snake))
	assert.False(t, cm.ValidateSpawnPosition(16, snake))
	assert.False(t, cm.ValidateSpawnPosition(-1, snake))
	assert.True(t, cm.ValidateSpawnPosition(6, snake))
}

func TestCollisionManager_IsRewardCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 4})

	assert.True(t, cm.IsRewardCollision(7, 7, true))
	assert.False(t, cm.IsRewardCollision(7, 7, false))
	assert.False(t, cm.IsRewardCollision(7, 8, true))
}
