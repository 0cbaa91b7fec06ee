package ai

import (
	"snake-world/game"
	"snake-world/game/types"
)

// State is what the agent sees of a world before choosing a direction.
type State struct {
	RelativeFoodDir [2]int  // Sign of the shortest wrapped (col, row) offset to the reward
	FoodDistance    int     // Wrapped Manhattan distance to the reward
	DangerDirs      [4]bool // Deadly move per types.Direction
	Heading         types.Direction
}

// Observe reads the agent state out of a world.
func Observe(w *game.World) State {
	s := State{Heading: w.Direction()}

	for _, dir := range types.Directions {
		s.DangerDirs[dir] = w.IsDanger(w.NextCell(dir))
	}

	reward, ok := w.RewardCell()
	if !ok {
		return s
	}

	width := w.Width()
	head := w.SnakeHeadIdx()
	dx := wrapDelta(reward%width-head%width, width)
	dy := wrapDelta(reward/width-head/width, width)

	s.RelativeFoodDir = [2]int{sign(dx), sign(dy)}
	s.FoodDistance = abs(dx) + abs(dy)
	return s
}

// wrapDelta folds an offset on a ring of the given width onto the shortest path.
func wrapDelta(d, width int) int {
	if d > width/2 {
		d -= width
	} else if d < -width/2 {
		d += width
	}
	return d
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
