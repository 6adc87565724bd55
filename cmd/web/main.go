package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/survivors/internal/config"
	"github.com/tomz197/survivors/internal/leaderboard"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger, logFile, err := config.NewLogger("web", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	store, err := leaderboard.OpenStore(
		config.GetEnv("LEADERBOARD_STORE", leaderboard.KindFile),
		config.GetEnv("LEADERBOARD_PATH", ""),
		config.GetEnv("DATABASE_URL", ""),
	)
	if err != nil {
		logger.Error("open leaderboard", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	http.HandleFunc("/leaderboard", leaderboardHandler(store, logger))

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// leaderboardHandler serves the stored board as JSON. The store is read on
// every request so scores recorded by the game server show up immediately.
func leaderboardHandler(store leaderboard.Store, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.Load()
		if err != nil {
			logger.Warn("load leaderboard", "err", err)
			http.Error(w, "leaderboard unavailable", http.StatusServiceUnavailable)
			return
		}
		board := leaderboard.NewBoard(entries)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(struct {
			Entries []leaderboard.Entry `json:"entries"`
		}{board.Entries()}); err != nil {
			logger.Warn("write leaderboard", "err", err)
		}
	}
}
