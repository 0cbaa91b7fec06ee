package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const GroupSize = 100 // Records merged into one record of the next compression level

// GameStats holds every recorded game and answers summary questions about
// them. Old records are merged in groups so the file stays small.
type GameStats struct {
	Games []GameRecord
	path  string
	mutex sync.RWMutex
}

// GameRecord is either a single game or a group of compressed games.
type GameRecord struct {
	SessionID        string    `json:"sessionId"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`            // Single games only
	Steps            int       `json:"steps"`            // Single games only
	Won              bool      `json:"won"`              // Single games only
	CompressionIndex int       `json:"compressionIndex"` // 0 for single games, >0 for groups
	GamesCount       int       `json:"gamesCount"`       // 1 for single games, >1 for groups
	WinsCount        int       `json:"winsCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageSteps     float64   `json:"averageSteps"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// NewGameStats loads the stats stored at path. A missing file starts empty.
func NewGameStats(path string) (*GameStats, error) {
	stats := &GameStats{
		Games: make([]GameRecord, 0),
		path:  path,
	}
	if err := stats.loadFromFile(); err != nil {
		return nil, err
	}
	return stats, nil
}

// AddGame records a finished game.
func (s *GameStats) AddGame(sessionID string, score, steps int, won bool, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := endTime.Sub(startTime).Seconds()
	wins := 0
	if won {
		wins = 1
	}

	s.Games = append(s.Games, GameRecord{
		SessionID:        sessionID,
		StartTime:        startTime,
		EndTime:          endTime,
		Score:            score,
		Steps:            steps,
		Won:              won,
		CompressionIndex: 0,
		GamesCount:       1,
		WinsCount:        wins,
		AverageScore:     float64(score),
		MedianScore:      float64(score),
		MaxScore:         score,
		MinScore:         score,
		AverageSteps:     float64(steps),
		AverageDuration:  duration,
		MaxDuration:      duration,
		MinDuration:      duration,
	})

	s.groupGames()
}

// groupGames merges every GroupSize records of one compression level into a
// single record of the next level, cascading upwards.
func (s *GameStats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex < s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		records := make([]GameRecord, 0)
		for _, game := range s.Games {
			if game.CompressionIndex == level {
				records = append(records, game)
			}
		}

		if len(records) < GroupSize {
			break
		}

		var newRecords []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				// Leftovers stay at this level
				newRecords = append(newRecords, records[i:]...)
				break
			}
			newRecords = append(newRecords, mergeRecords(records[i:end], level+1))
		}

		remaining := make([]GameRecord, 0, len(s.Games))
		for _, game := range s.Games {
			if game.CompressionIndex != level {
				remaining = append(remaining, game)
			}
		}
		s.Games = append(remaining, newRecords...)
	}
}

func mergeRecords(group []GameRecord, level int) GameRecord {
	merged := GameRecord{
		SessionID:        group[0].SessionID,
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalSteps, totalDuration float64
	allScores := make([]float64, 0)
	for _, g := range group {
		merged.MaxScore = max(merged.MaxScore, g.MaxScore)
		merged.MinScore = min(merged.MinScore, g.MinScore)
		merged.MaxDuration = max(merged.MaxDuration, g.MaxDuration)
		merged.MinDuration = min(merged.MinDuration, g.MinDuration)
		if g.StartTime.Before(merged.StartTime) {
			merged.StartTime = g.StartTime
		}
		if g.EndTime.After(merged.EndTime) {
			merged.EndTime = g.EndTime
		}
		if g.SessionID != merged.SessionID {
			merged.SessionID = ""
		}

		totalScore += g.AverageScore * float64(g.GamesCount)
		totalSteps += g.AverageSteps * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		merged.GamesCount += g.GamesCount
		merged.WinsCount += g.WinsCount
		for i := 0; i < g.GamesCount; i++ {
			allScores = append(allScores, g.MedianScore)
		}
	}

	merged.AverageScore = totalScore / float64(merged.GamesCount)
	merged.AverageSteps = totalSteps / float64(merged.GamesCount)
	merged.AverageDuration = totalDuration / float64(merged.GamesCount)
	merged.MedianScore = median(allScores)
	return merged
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	if len(values)%2 == 0 {
		return (values[len(values)/2-1] + values[len(values)/2]) / 2
	}
	return values[len(values)/2]
}

// GetStats returns a copy of the current records.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	games := make([]GameRecord, len(s.Games))
	copy(games, s.Games)
	return games
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalScore float64
	var totalGames int
	for _, game := range s.Games {
		totalScore += game.AverageScore * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalScore / float64(totalGames)
}

// GetMedianScore returns the median score weighted by group size.
func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	allScores := make([]float64, 0)
	for _, game := range s.Games {
		for i := 0; i < game.GamesCount; i++ {
			allScores = append(allScores, game.MedianScore)
		}
	}
	return median(allScores)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, game := range s.Games {
		maxScore = max(maxScore, game.MaxScore)
	}
	return maxScore
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, game := range s.Games {
		total += game.GamesCount
	}
	return total
}

func (s *GameStats) GetWins() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, game := range s.Games {
		total += game.WinsCount
	}
	return total
}

// GetAverageDuration returns the mean game duration in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalDuration float64
	var totalGames int
	for _, game := range s.Games {
		totalDuration += game.AverageDuration * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalDuration / float64(totalGames)
}

// SaveToFile writes the records as JSON.
func (s *GameStats) SaveToFile() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating stats directory: %w", err)
	}

	data, err := json.Marshal(s.Games)
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing stats %s: %w", s.path, err)
	}
	return nil
}

func (s *GameStats) loadFromFile() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading stats %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &s.Games); err != nil {
		return fmt.Errorf("parsing stats %s: %w", s.path, err)
	}
	return nil
}
