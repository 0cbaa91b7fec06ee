package main

import (
	"snake-world/ai"
	"snake-world/game"
	"snake-world/game/types"
)

// Rewards handed to the learner.
const (
	rewardCloser  = 0.5
	rewardFarther = -0.3
	rewardEat     = 1.0
	rewardWin     = 2.0
	rewardDeath   = -1.0
)

// SnakeAgent plays one World with a Q-learning agent, the same way a human
// host would: pick a direction, then step.
type SnakeAgent struct {
	agent *ai.QLearning
	world *game.World
}

func NewSnakeAgent(agent *ai.QLearning, world *game.World) *SnakeAgent {
	return &SnakeAgent{
		agent: agent,
		world: world,
	}
}

// Update plays one tick and learns from it. It returns false once the game
// is over or was never started.
func (sa *SnakeAgent) Update() bool {
	if sa.world.GameStatus() != types.Playing {
		return false
	}

	currentState := ai.Observe(sa.world)
	oldPoints := sa.world.Points()

	action := sa.agent.GetAction(currentState)
	sa.world.ChangeSnakeDir(action)
	sa.world.Step()

	newState := ai.Observe(sa.world)
	reward := sa.calculateReward(currentState, newState, oldPoints)
	terminal := sa.world.GameStatus().IsTerminal()
	sa.agent.Update(currentState, action, reward, newState, terminal)

	return !terminal
}

func (sa *SnakeAgent) calculateReward(state, next ai.State, oldPoints int) float64 {
	switch sa.world.GameStatus() {
	case types.Lost:
		return rewardDeath
	case types.Won:
		return rewardWin
	}

	if sa.world.Points() > oldPoints {
		return rewardEat
	}
	if next.FoodDistance < state.FoodDistance {
		return rewardCloser
	}
	return rewardFarther
}
