package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"snake-world/game/types"
)

// Source is the randomness used for exploration.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Params holds the learning hyper parameters.
type Params struct {
	LearningRate float64 `yaml:"learning_rate"`
	Discount     float64 `yaml:"discount"`
	Epsilon      float64 `yaml:"epsilon"`
	EpsilonDecay float64 `yaml:"epsilon_decay"`
	MinEpsilon   float64 `yaml:"min_epsilon"`
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.9, // Start with high exploration
		EpsilonDecay: 0.995,
		MinEpsilon:   0.01,
	}
}

// QTable maps a state key to the value of every direction.
type QTable map[string]map[types.Direction]float64

type QLearning struct {
	QTable      QTable
	Params      Params
	Epsilon     float64
	TotalReward float64
	GamesPlayed int

	rng Source
}

func NewQLearning(params Params, rng Source) *QLearning {
	return &QLearning{
		QTable:  make(QTable),
		Params:  params,
		Epsilon: params.Epsilon,
		rng:     rng,
	}
}

func getStateKey(s State) string {
	return fmt.Sprintf("%d,%d|%d%d%d%d|%d",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		boolToInt(s.DangerDirs[types.Up]),
		boolToInt(s.DangerDirs[types.Right]),
		boolToInt(s.DangerDirs[types.Down]),
		boolToInt(s.DangerDirs[types.Left]),
		s.Heading,
	)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (q *QLearning) values(key string) map[types.Direction]float64 {
	if _, exists := q.QTable[key]; !exists {
		q.QTable[key] = make(map[types.Direction]float64, len(types.Directions))
		for _, dir := range types.Directions {
			q.QTable[key][dir] = 0
		}
	}
	return q.QTable[key]
}

// GetAction picks a direction with an epsilon-greedy policy.
func (q *QLearning) GetAction(state State) types.Direction {
	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return types.Directions[q.rng.Intn(len(types.Directions))]
	}

	// Exploitation: best known action
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) types.Direction {
	values := q.values(getStateKey(state))

	bestAction := types.Up
	bestValue := math.Inf(-1)
	for _, dir := range types.Directions {
		if values[dir] > bestValue {
			bestValue = values[dir]
			bestAction = dir
		}
	}

	return bestAction
}

// Update applies Q(s,a) += lr * (r + discount * max Q(s',·) - Q(s,a)).
// A terminal next state contributes no future value.
func (q *QLearning) Update(state State, action types.Direction, reward float64, nextState State, terminal bool) {
	current := q.values(getStateKey(state))

	maxNextQ := 0.0
	if !terminal {
		maxNextQ = math.Inf(-1)
		for _, value := range q.values(getStateKey(nextState)) {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	currentQ := current[action]
	current[action] = currentQ + q.Params.LearningRate*(reward+q.Params.Discount*maxNextQ-currentQ)

	q.TotalReward += reward
}

// EndGame counts a finished game and decays exploration.
func (q *QLearning) EndGame() {
	q.GamesPlayed++
	q.Epsilon = math.Max(q.Params.MinEpsilon, q.Epsilon*q.Params.EpsilonDecay)
}

// AgentState is the persisted form of an agent.
type AgentState struct {
	QTable      QTable  `json:"qtable"`
	Epsilon     float64 `json:"epsilon"`
	GamesPlayed int     `json:"games_played"`
}

// SaveQTable writes the agent state as JSON, creating parent directories.
func (q *QLearning) SaveQTable(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating qtable directory: %w", err)
	}

	data, err := json.MarshalIndent(AgentState{
		QTable:      q.QTable,
		Epsilon:     q.Epsilon,
		GamesPlayed: q.GamesPlayed,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling qtable: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing qtable %s: %w", filename, err)
	}
	return nil
}

// LoadQTable restores the agent state. A missing file leaves the agent untouched.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading qtable %s: %w", filename, err)
	}

	var state AgentState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parsing qtable %s: %w", filename, err)
	}

	if state.QTable != nil {
		q.QTable = state.QTable
		q.Epsilon = state.Epsilon
		q.GamesPlayed = state.GamesPlayed
	}
	return nil
}
