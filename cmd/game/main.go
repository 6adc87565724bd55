package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/survivors/internal/audio"
	"github.com/tomz197/survivors/internal/config"
	"github.com/tomz197/survivors/internal/draw"
	"github.com/tomz197/survivors/internal/frontend/tcellui"
	"github.com/tomz197/survivors/internal/input"
	"github.com/tomz197/survivors/internal/loop/client"
	"github.com/tomz197/survivors/internal/loop/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Logs only reach a file; anything on stdout would tear the screen.
	logger, logFile, err := config.NewLogger("game", io.Discard)
	if err != nil {
		return err
	}
	defer logFile.Close()

	scores, err := config.OpenLeaderboard(logger)
	if err != nil {
		return err
	}
	defer scores.Close()
	hub := server.NewServer(scores, logger)

	sound, closeAudio := audio.Open(config.GetEnvBool("AUDIO", true), logger)
	defer closeAudio()

	surface, source, restore, err := openFrontend(config.GetEnv("FRONTEND", "tcell"), logger)
	if err != nil {
		return err
	}
	defer restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.SessionConfig()
	cfg.Audio = sound
	c := client.NewClient(hub, client.ClientOptions{
		Surface:  surface,
		Input:    source,
		Logger:   logger,
		Session:  cfg,
		Username: os.Getenv("USER"),
	})
	return c.Run(ctx)
}

// openFrontend sets up the terminal. restore undoes everything it changed.
func openFrontend(kind string, logger *log.Logger) (draw.Surface, input.Source, func(), error) {
	switch kind {
	case "ansi":
		fd := int(os.Stdin.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("enable raw mode: %w", err)
		}
		surface := draw.NewANSISurface(os.Stdout, draw.DefaultTermSizeFunc)
		if err := surface.Enter(); err != nil {
			_ = term.Restore(fd, oldState)
			return nil, nil, nil, fmt.Errorf("prepare terminal: %w", err)
		}
		restore := func() {
			_ = surface.Leave()
			_ = term.Restore(fd, oldState)
		}
		logger.Debug("frontend ready", "kind", kind)
		return surface, input.StartStream(bufio.NewReader(os.Stdin)), restore, nil
	case "", "tcell":
		screen, err := tcellui.New()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open tcell screen: %w", err)
		}
		logger.Debug("frontend ready", "kind", "tcell")
		return screen, screen, screen.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown frontend %q", kind)
	}
}
