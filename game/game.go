package game

import (
	"fmt"

	"snake-world/game/entity"
	"snake-world/game/manager"
	"snake-world/game/types"
)

// World is the whole state of one snake game on a toroidal square grid.
// It is advanced one tick at a time by Step and is not safe for
// concurrent use.
type World struct {
	grid   types.Grid
	snake  *entity.Snake
	status types.GameStatus
	points int

	// Head cell chosen by the last accepted direction change, consumed by Step.
	nextCell    int
	hasNextCell bool

	rewardCell int
	hasReward  bool

	movementMgr  *manager.MovementManager
	collisionMgr *manager.CollisionManager
	rewardMgr    *manager.RewardManager
}

// NewWorld creates a world of width*width cells with a snake of
// types.InitialSnakeLength cells whose head sits on spawnIdx and whose body
// runs over the preceding indices.
func NewWorld(width, spawnIdx int, rng manager.Rand) (*World, error) {
	if width < 2 {
		return nil, fmt.Errorf("new world with width %d: %w", width, ErrInvalidWidth)
	}
	if rng == nil {
		return nil, fmt.Errorf("new world: %w", ErrNilRand)
	}

	grid := types.Grid{Width: width}
	if spawnIdx < types.InitialSnakeLength-1 || spawnIdx >= grid.Size() {
		return nil, fmt.Errorf("new world with spawn %d on %d cells: %w", spawnIdx, grid.Size(), ErrInvalidSpawn)
	}

	collisionMgr := manager.NewCollisionManager(grid)
	w := &World{
		grid:         grid,
		snake:        entity.NewSnake(spawnIdx, types.InitialSnakeLength),
		status:       types.NotStarted,
		movementMgr:  manager.NewMovementManager(grid),
		collisionMgr: collisionMgr,
		rewardMgr:    manager.NewRewardManager(grid, rng, collisionMgr),
	}

	w.rewardCell = w.rewardMgr.GenerateReward(w.snake)
	w.hasReward = true

	return w, nil
}

func (w *World) Width() int {
	return w.grid.Width
}

// Size returns the number of cells of the grid.
func (w *World) Size() int {
	return w.grid.Size()
}

func (w *World) Points() int {
	return w.points
}

func (w *World) SnakeHeadIdx() int {
	return w.snake.Head()
}

// RewardCell returns the reward cell, if one is placed.
func (w *World) RewardCell() (int, bool) {
	return w.rewardCell, w.hasReward
}

func (w *World) SnakeLength() int {
	return w.snake.Len()
}

// SnakeCells returns a copy of the snake body, head first.
func (w *World) SnakeCells() []int {
	return w.snake.Cells()
}

// Direction returns the current facing of the snake.
func (w *World) Direction() types.Direction {
	return w.snake.Direction
}

func (w *World) GameStatus() types.GameStatus {
	return w.status
}

func (w *World) GameStatusText() string {
	return w.status.String()
}

// NextCell returns the cell the head would reach moving in dir.
func (w *World) NextCell(dir types.Direction) int {
	return w.movementMgr.NextCell(w.snake.Head(), dir)
}

// IsDanger reports whether the head moving onto pos would end the game.
func (w *World) IsDanger(pos int) bool {
	return w.collisionMgr.IsDanger(pos, w.snake)
}

// StartGame moves a fresh world into play. A world can only be started
// once; a new game needs a new World.
func (w *World) StartGame() error {
	if w.status != types.NotStarted {
		return fmt.Errorf("start game in status %q: %w", w.status, ErrGameStarted)
	}
	w.status = types.Playing
	return nil
}

// ChangeSnakeDir turns the snake for the next step. A turn that would put
// the head straight back onto the segment behind it is ignored.
func (w *World) ChangeSnakeDir(dir types.Direction) {
	if !dir.Valid() {
		return
	}

	next := w.NextCell(dir)
	if next == w.snake.Neck() {
		return
	}

	w.nextCell = next
	w.hasNextCell = true
	w.snake.Direction = dir
}

// Step advances the game by one tick. It does nothing unless the game is
// being played.
func (w *World) Step() {
	if w.status != types.Playing {
		return
	}

	var head int
	if w.hasNextCell {
		head = w.nextCell
		w.hasNextCell = false
	} else {
		head = w.NextCell(w.snake.Direction)
	}

	w.snake.Advance(head)

	if w.collisionMgr.IsSelfCollision(w.snake) {
		w.status = types.Lost
	}

	if w.collisionMgr.IsRewardCollision(head, w.rewardCell, w.hasReward) {
		w.points += types.PointsPerReward

		// The new reward avoids the body before it grows; the grown tail
		// repeats an existing cell so it never lands on the reward.
		if w.snake.Len()+1 < w.grid.Size() {
			w.rewardCell = w.rewardMgr.GenerateReward(w.snake)
		} else {
			w.hasReward = false
			w.status = types.Won
		}
		w.snake.Grow(w.snake.Body[w.snake.Len()-2])
	}
}
