package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"snake-world/ai"
	"snake-world/game"
	"snake-world/game/manager"
	"snake-world/game/types"
)

// Summary describes one training session.
type Summary struct {
	SessionID    string    `json:"sessionId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Episodes     int       `json:"episodes"`
	BestScore    int       `json:"bestScore"`
	Wins         int       `json:"wins"`
	AverageScore float64   `json:"averageScore"`
	Interrupted  bool      `json:"interrupted"`
}

// Train plays cfg.Episodes games, each on a fresh World, and learns from
// them. It stops early when ctx is cancelled; the agent and stats are
// saved either way.
func Train(ctx context.Context, cfg Config, logger *slog.Logger, stats *GameStats) (Summary, error) {
	summary := Summary{
		SessionID: uuid.New().String(),
		StartTime: time.Now(),
	}
	logger = logger.With("session", summary.SessionID)

	rng := manager.NewRand(cfg.Seed)
	agent := ai.NewQLearning(cfg.Agent, rng)
	if err := agent.LoadQTable(cfg.QTablePath()); err != nil {
		return summary, fmt.Errorf("loading agent: %w", err)
	}
	logger.Info("training started",
		"episodes", cfg.Episodes,
		"width", cfg.Width,
		"known_states", len(agent.QTable),
		"epsilon", agent.Epsilon,
	)

	totalScore := 0
	for episode := 0; episode < cfg.Episodes; episode++ {
		if err := ctx.Err(); err != nil {
			summary.Interrupted = true
			logger.Warn("training interrupted", "episode", episode, "error", err)
			break
		}

		score, steps, status, err := playEpisode(cfg, agent, rng)
		if err != nil {
			return summary, fmt.Errorf("episode %d: %w", episode, err)
		}
		agent.EndGame()

		summary.Episodes++
		totalScore += score
		summary.BestScore = max(summary.BestScore, score)
		if status == types.Won {
			summary.Wins++
		}
		stats.AddGame(summary.SessionID, score, steps.count, status == types.Won, steps.start, steps.end)

		logger.Debug("episode finished",
			"episode", episode,
			"score", score,
			"steps", steps.count,
			"status", status.String(),
		)
		if (episode+1)%cfg.LogEvery == 0 {
			logger.Info("training progress",
				"episode", episode+1,
				"best_score", summary.BestScore,
				"average_score", float64(totalScore)/float64(summary.Episodes),
				"wins", summary.Wins,
				"epsilon", agent.Epsilon,
			)
		}
		if (episode+1)%cfg.SaveEvery == 0 {
			if err := save(cfg, agent, stats); err != nil {
				logger.Error("periodic save failed", "episode", episode+1, "error", err)
			}
		}
	}

	summary.EndTime = time.Now()
	if summary.Episodes > 0 {
		summary.AverageScore = float64(totalScore) / float64(summary.Episodes)
	}

	if err := save(cfg, agent, stats); err != nil {
		return summary, err
	}
	if err := saveSummary(cfg.SessionDir(summary.SessionID), summary); err != nil {
		return summary, err
	}

	logger.Info("training finished",
		"episodes", summary.Episodes,
		"best_score", summary.BestScore,
		"average_score", summary.AverageScore,
		"wins", summary.Wins,
	)
	return summary, nil
}

// episodeSteps is the tick count and wall clock span of one game.
type episodeSteps struct {
	count      int
	start, end time.Time
}

func playEpisode(cfg Config, agent *ai.QLearning, rng manager.Rand) (int, episodeSteps, types.GameStatus, error) {
	size := cfg.Width * cfg.Width
	minSpawn := types.InitialSnakeLength - 1
	spawn := minSpawn + rng.Intn(size-minSpawn)

	steps := episodeSteps{start: time.Now()}
	world, err := game.NewWorld(cfg.Width, spawn, rng)
	if err != nil {
		return 0, steps, types.NotStarted, err
	}
	if err := world.StartGame(); err != nil {
		return 0, steps, types.NotStarted, err
	}

	snakeAgent := NewSnakeAgent(agent, world)
	for steps.count < cfg.MaxSteps {
		steps.count++
		if !snakeAgent.Update() {
			break
		}
	}
	steps.end = time.Now()

	return world.Points(), steps, world.GameStatus(), nil
}

func save(cfg Config, agent *ai.QLearning, stats *GameStats) error {
	if err := agent.SaveQTable(cfg.QTablePath()); err != nil {
		return fmt.Errorf("saving agent: %w", err)
	}
	if err := stats.SaveToFile(); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}

func saveSummary(dir string, summary Summary) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}

	path := filepath.Join(dir, "summary.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	return nil
}
