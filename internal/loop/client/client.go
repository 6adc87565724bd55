package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/tomz197/survivors/internal/draw"
	"github.com/tomz197/survivors/internal/input"
	"github.com/tomz197/survivors/internal/loop/config"
	"github.com/tomz197/survivors/internal/loop/server"
	"github.com/tomz197/survivors/internal/render"
	"github.com/tomz197/survivors/internal/session"
	"github.com/tomz197/survivors/internal/skill"
)

// Client runs one player's session and draws it for a single connection.
type Client struct {
	lobby     server.Lobby
	handle    *server.ClientHandle
	state     *ClientState
	sess      *session.Session
	surface   draw.Surface
	source    input.Source
	canvas    *draw.Canvas
	view      *render.Renderer
	log       *log.Logger
	lastInput time.Time
	kickIdle  bool
	now       func() time.Time
}

// ClientOptions configures the client.
type ClientOptions struct {
	Surface  draw.Surface
	Input    input.Source
	Logger   *log.Logger
	Session  session.Config // Scores and Logger are filled in by the client
	Username string         // Prefills the name screen
	KickIdle bool           // Disconnect after the inactivity timeout
}

// syncer is implemented by surfaces that track the terminal size themselves.
type syncer interface {
	Sync() error
}

// NewClient registers with the lobby and prepares a fresh session.
func NewClient(lobby server.Lobby, opts ClientOptions) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	handle := lobby.RegisterClient(opts.Username)
	logger = logger.With("client", handle.ID)

	cfg := opts.Session
	cfg.Scores = lobby
	cfg.Logger = logger

	cols, rows := opts.Surface.Size()
	canvas := draw.NewCanvas(cols, rows)

	return &Client{
		lobby:     lobby,
		handle:    handle,
		state:     NewClientState(opts.Username),
		sess:      session.New("", cfg),
		surface:   opts.Surface,
		source:    opts.Input,
		canvas:    canvas,
		view:      render.New(canvas),
		log:       logger,
		lastInput: time.Now(),
		kickIdle:  opts.KickIdle,
		now:       time.Now,
	}
}

// Session returns the session driven by this client.
func (c *Client) Session() *session.Session { return c.sess }

// Run starts the client loop. Blocks until the player quits, the context is
// cancelled, or the hub shuts the client down.
func (c *Client) Run(ctx context.Context) error {
	defer c.lobby.UnregisterClient(c.handle.ID)

	lastTime := c.now()
	for c.state.Running {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := c.now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.step(c.source.Poll(), c.state.delta.Seconds())

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}
	return nil
}

// step advances the client by one frame of dt seconds.
func (c *Client) step(in input.Input, dt float64) {
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}
	c.state.Input = in
	c.state.recordFrame(dt)

	c.trackActivity(in)
	if in.Quit {
		c.state.Running = false
		return
	}

	c.processServerEvents(dt)

	switch c.state.Phase {
	case PhaseNameEntry:
		c.updateNameEntry(in)
	case PhasePlaying:
		c.updatePlaying(in, dt)
	case PhaseShutdown:
		c.updateShutdown(dt)
	}
}

// trackActivity drives the inactivity warning and disconnect.
func (c *Client) trackActivity(in input.Input) {
	now := c.now()
	if active(in) {
		c.lastInput = now
		c.state.isInactive = false
		return
	}
	if !c.kickIdle {
		return
	}
	idle := now.Sub(c.lastInput).Seconds()
	switch {
	case idle > config.InactivityDisconnectUser:
		c.log.Info("disconnecting idle player", "idle", idle)
		c.state.Running = false
	case idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}
}

func active(in input.Input) bool {
	return in.Move.Any() || in.Aim.Any() || in.Fire || in.Enter || in.Escape ||
		in.Backspace || in.Debug || in.Restart || in.Number >= 0 || len(in.Text) > 0 ||
		in.Mouse.Left || in.Mouse.RightClick
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents(dt float64) {
	if c.state.toast.remaining > 0 {
		c.state.toast.remaining -= dt
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventHighScore:
				text := fmt.Sprintf("%s entered the leaderboard with %d kills", event.Name, event.Kills)
				if event.Name == c.sess.Name() {
					text = "You entered the leaderboard!"
				}
				c.state.toast = toast{text: text, remaining: config.HighScoreToastSeconds}
			case server.EventServerShutdown:
				c.state.Phase = PhaseShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateNameEntry edits the name buffer and starts the run on Enter.
func (c *Client) updateNameEntry(in input.Input) {
	for _, r := range in.Text {
		if len(c.state.NameBuf) < config.MaxNameLength && unicode.IsPrint(r) {
			c.state.NameBuf = append(c.state.NameBuf, r)
		}
	}
	if in.Backspace && len(c.state.NameBuf) > 0 {
		c.state.NameBuf = c.state.NameBuf[:len(c.state.NameBuf)-1]
	}
	if in.Escape {
		c.state.NameBuf = c.state.NameBuf[:0]
	}
	if !in.Enter {
		return
	}
	name := strings.TrimSpace(string(c.state.NameBuf))
	if name == "" {
		return
	}
	c.sess.SetName(name)
	c.lobby.Rename(c.handle.ID, name)
	c.state.Phase = PhasePlaying
	c.log.Info("run started", "name", name)
}

// updatePlaying routes input according to the session state, then advances
// the session.
func (c *Client) updatePlaying(in input.Input, dt float64) {
	switch c.sess.State() {
	case session.StateLevelUp:
		c.updateUpgradeMenu(in)
	case session.StateDead:
		if in.Restart || in.Enter {
			c.sess.Restart()
		}
	case session.StateVictory:
		if in.Restart || in.Enter {
			c.sess.ResetFull()
			c.state.NameBuf = c.state.NameBuf[:0]
			c.state.Phase = PhaseNameEntry
			return
		}
	}

	ctrl := newController(in, c.view.Camera(), c.sess.Player().Pos, &c.state.AimDir)
	c.sess.Update(dt, ctrl)
	c.view.Debug = c.sess.Debug()
}

// updateUpgradeMenu handles the level-up choice: digits pick directly, Enter
// takes the highlighted entry and Escape skips the upgrade.
func (c *Client) updateUpgradeMenu(in input.Input) {
	offer := c.sess.Offer()
	if len(offer) == 0 {
		return
	}
	if c.state.MenuCursor >= len(offer) {
		c.state.MenuCursor = 0
	}
	nav := input.Dir{Up: in.Move.Up || in.Aim.Up, Down: in.Move.Down || in.Aim.Down}
	if nav.Up && !c.state.prevNav.Up {
		c.state.MenuCursor = (c.state.MenuCursor + len(offer) - 1) % len(offer)
	}
	if nav.Down && !c.state.prevNav.Down {
		c.state.MenuCursor = (c.state.MenuCursor + 1) % len(offer)
	}
	c.state.prevNav = nav

	var pick skill.ID = -1
	switch {
	case in.Number >= 1 && in.Number <= len(offer):
		pick = offer[in.Number-1]
	case in.Enter:
		pick = offer[c.state.MenuCursor]
	case in.Escape:
		c.sess.CancelUpgrade()
		c.state.MenuCursor = 0
		return
	}
	if pick >= 0 && c.sess.AcceptSkill(pick) {
		c.state.MenuCursor = 0
	}
}

// updateShutdown handles the shutdown screen countdown.
func (c *Client) updateShutdown(dt float64) {
	c.state.shutdownTimer -= dt
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
