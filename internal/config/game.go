package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/leaderboard"
	"github.com/tomz197/survivors/internal/session"
)

// SessionConfig returns the standard ruleset with DIFFICULTY and
// VICTORY_SECONDS applied.
func SessionConfig() session.Config {
	cfg := session.DefaultConfig()
	cfg.Difficulty = entity.ParseDifficulty(GetEnv("DIFFICULTY", "constant"))
	cfg.VictoryTime = GetEnvFloat("VICTORY_SECONDS", cfg.VictoryTime)
	return cfg
}

// OpenLeaderboard opens the store named by LEADERBOARD_STORE and loads it.
func OpenLeaderboard(logger *log.Logger) (*leaderboard.Recorder, error) {
	kind := GetEnv("LEADERBOARD_STORE", leaderboard.KindFile)
	store, err := leaderboard.OpenStore(kind, GetEnv("LEADERBOARD_PATH", ""), GetEnv("DATABASE_URL", ""))
	if err != nil {
		return nil, fmt.Errorf("open leaderboard: %w", err)
	}
	rec, err := leaderboard.NewRecorder(store, logger.With("store", kind))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return rec, nil
}
