package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStats(t *testing.T) *GameStats {
	t.Helper()
	stats, err := NewGameStats(filepath.Join(t.TempDir(), "stats.json"))
	require.NoError(t, err)
	return stats
}

func addGames(stats *GameStats, n int, score func(i int) int) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		start := base.Add(time.Duration(i) * time.Minute)
		stats.AddGame("session", score(i), 10, i%10 == 0, start, start.Add(2*time.Second))
	}
}

func TestGameStats_Empty(t *testing.T) {
	stats := newTestStats(t)

	assert.Empty(t, stats.GetStats())
	assert.Zero(t, stats.GetAverageScore())
	assert.Zero(t, stats.GetMedianScore())
	assert.Zero(t, stats.GetMaxScore())
	assert.Zero(t, stats.GetGamesPlayed())
	assert.Zero(t, stats.GetAverageDuration())
}

func TestGameStats_AddGame(t *testing.T) {
	stats := newTestStats(t)
	addGames(stats, 3, func(i int) int { return []int{4, 1, 7}[i] })

	records := stats.GetStats()
	require.Len(t, records, 3)
	assert.Equal(t, 0, records[0].CompressionIndex)
	assert.Equal(t, 1, records[0].GamesCount)
	assert.True(t, records[0].Won)

	assert.Equal(t, 3, stats.GetGamesPlayed())
	assert.Equal(t, 1, stats.GetWins())
	assert.Equal(t, 7, stats.GetMaxScore())
	assert.InDelta(t, 4.0, stats.GetAverageScore(), 1e-9)
	assert.InDelta(t, 4.0, stats.GetMedianScore(), 1e-9)
	assert.InDelta(t, 2.0, stats.GetAverageDuration(), 1e-9)
}

func TestGameStats_GroupsGames(t *testing.T) {
	stats := newTestStats(t)
	addGames(stats, 2*GroupSize+50, func(i int) int { return i % 10 })

	records := stats.GetStats()
	require.Len(t, records, 52)

	compressed := 0
	for _, r := range records {
		if r.CompressionIndex == 1 {
			compressed++
			assert.Equal(t, GroupSize, r.GamesCount)
			assert.Equal(t, GroupSize/10, r.WinsCount)
			assert.Equal(t, 9, r.MaxScore)
			assert.Equal(t, 0, r.MinScore)
			assert.InDelta(t, 4.5, r.AverageScore, 1e-9)
			assert.InDelta(t, 10.0, r.AverageSteps, 1e-9)
			assert.Equal(t, "session", r.SessionID)
		}
	}
	assert.Equal(t, 2, compressed)

	assert.Equal(t, 2*GroupSize+50, stats.GetGamesPlayed())
	assert.Equal(t, (2*GroupSize+50)/10, stats.GetWins())
	assert.InDelta(t, 4.5, stats.GetAverageScore(), 1e-9)
	assert.Equal(t, 9, stats.GetMaxScore())
}

func TestGameStats_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats.json")
	stats, err := NewGameStats(path)
	require.NoError(t, err)
	addGames(stats, 5, func(i int) int { return i })

	require.NoError(t, stats.SaveToFile())

	loaded, err := NewGameStats(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.GetGamesPlayed())
	assert.Equal(t, 4, loaded.GetMaxScore())
	assert.InDelta(t, 2.0, loaded.GetAverageScore(), 1e-9)
}

func TestMedian(t *testing.T) {
	assert.Zero(t, median(nil))
	assert.InDelta(t, 2.0, median([]float64{3, 1, 2}), 1e-9)
	assert.InDelta(t, 2.5, median([]float64{4, 1, 3, 2}), 1e-9)
}
