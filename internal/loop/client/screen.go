package client

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/survivors/internal/draw"
	"github.com/tomz197/survivors/internal/loop/config"
	"github.com/tomz197/survivors/internal/session"
	"github.com/tomz197/survivors/internal/skill"
)

// titleArt is figlet "small".
var titleArt = []string{
	`  ___ _   _ ___ __   _____   _____  ___  ___ `,
	` / __| | | | _ \\ \ / /_ _\ \ / / _ \| _ \/ __|`,
	` \__ \ |_| |   / \ V / | | \ V / (_) |   /\__ \`,
	` |___/\___/|_|_\  \_/ |___| \_/ \___/|_|_\|___/`,
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	if s, ok := c.surface.(syncer); ok {
		if err := s.Sync(); err != nil {
			return err
		}
	}
	cols, rows := c.surface.Size()
	c.canvas.Resize(cols, rows)
	c.surface.Clear()

	switch c.state.Phase {
	case PhaseNameEntry:
		c.drawNameEntry(cols, rows)
	case PhasePlaying:
		c.drawPlaying(cols, rows)
	case PhaseShutdown:
		c.drawShutdownScreen(rows / 2)
	}

	if c.state.isInactive && c.state.Phase != PhaseShutdown {
		c.drawInactivityScreen(rows / 2)
	}
	if c.state.toast.remaining > 0 {
		draw.CenteredText(c.surface, 2, c.state.toast.text, draw.ColorYellow)
	}
	return c.surface.Show()
}

// drawNameEntry draws the title and the name prompt.
func (c *Client) drawNameEntry(cols, rows int) {
	s := c.surface
	top := rows/2 - 8
	for i, line := range titleArt {
		draw.CenteredText(s, top+i, line, draw.ColorGreen)
	}
	draw.CenteredText(s, top+len(titleArt)+1, "~ survive the horde ~", draw.ColorGray)

	boxW := config.MaxNameLength + 4
	boxCol := (cols - boxW) / 2
	boxRow := top + len(titleArt) + 3
	draw.CenteredText(s, boxRow, "Enter your name", draw.ColorWhite)
	draw.Box(s, boxCol, boxRow+1, boxW, 3, draw.ColorGray)
	end := draw.Text(s, boxCol+2, boxRow+2, string(c.state.NameBuf), draw.ColorCyan)
	if c.now().UnixMilli()/500%2 == 0 {
		s.SetCell(end, boxRow+2, '_', draw.ColorCyan)
	}

	controls := []string{
		"W A S D  . . . . . . Move",
		"Arrows / I J K L  .  Aim and shoot",
		"Mouse  . . . .  Aim and shoot",
		"SPACE  . . . . . . . Shoot",
		"`  . . . . . . . .  Debug",
		"Ctrl+C . . . . . . .  Quit",
	}
	for i, line := range controls {
		draw.CenteredText(s, boxRow+5+i, line, draw.ColorGray)
	}
	draw.CenteredText(s, boxRow+6+len(controls), ">>  Press ENTER to start  <<", draw.ColorWhite)
}

// drawPlaying draws the arena, the HUD and any overlay the session state needs.
func (c *Client) drawPlaying(cols, rows int) {
	c.view.Draw(c.sess)
	c.canvas.Blit(c.surface)
	c.drawHUD(cols, rows)

	switch c.sess.State() {
	case session.StateLevelUp:
		c.drawUpgradeMenu(cols, rows)
	case session.StateDead:
		c.drawDeadScreen(rows / 2)
	case session.StateVictory:
		c.drawVictoryScreen(rows / 2)
	}
	if c.sess.Debug() {
		c.drawDebug(cols)
	}
}

// drawHUD draws health, level, experience, time and kills on the top row and
// the lobby line at the bottom.
func (c *Client) drawHUD(cols, rows int) {
	s := c.surface
	p := c.sess.Player()

	col := draw.Text(s, 1, 0, "HP ", draw.ColorWhite)
	for i := 0; i < p.MaxHealth; i++ {
		ch, fg := '♥', draw.ColorRed
		if i >= p.Health {
			ch, fg = '♡', draw.ColorGray
		}
		s.SetCell(col, 0, ch, fg)
		col++
	}

	col = draw.Text(s, col+2, 0, fmt.Sprintf("LV %-3d", p.Level), draw.ColorWhite)
	need := p.Level * session.ExperiencePerLevel
	draw.Bar(s, col, 0, 20, float64(p.Experience)/float64(need), draw.ColorCyan)
	col = draw.Text(s, col+21, 0, fmt.Sprintf("%d/%d", p.Experience, need), draw.ColorGray)

	if fury := c.sess.FuryRemaining(); fury > 0 {
		draw.Text(s, col+2, 0, fmt.Sprintf("FURY %2.0fs", fury), draw.ColorYellow)
	}

	right := fmt.Sprintf("KILLS %-5d %s", c.sess.Stats().Kills, clock(c.sess.Remaining()))
	draw.Text(s, cols-utf8.RuneCountInString(right)-1, 0, right, draw.ColorWhite)

	draw.Text(s, 1, rows-1, c.sess.Name(), draw.ColorGreen)
	players := fmt.Sprintf("Players: %-4d", c.lobby.Players())
	draw.Text(s, cols-len(players)-1, rows-1, players, draw.ColorGray)
	if c.sess.Reviving() {
		draw.CenteredText(s, rows/2-4, "DEATH ECHO", draw.ColorMagenta)
	}
}

// clock formats seconds as mm:ss.
func clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// drawUpgradeMenu draws the level-up choices in a centered box.
func (c *Client) drawUpgradeMenu(cols, rows int) {
	s := c.surface
	offer := c.sess.Offer()
	inner := config.MenuWidth - 4

	lines := make([][]string, len(offer))
	height := 4
	for i, id := range offer {
		meta, _ := c.sess.SkillMetadata(id)
		lines[i] = wrap(meta.Description, inner-4)
		height += 2 + len(lines[i])
	}

	col := (cols - config.MenuWidth) / 2
	row := (rows - height) / 2
	draw.Box(s, col, row, config.MenuWidth, height, draw.ColorYellow)
	draw.CenteredText(s, row+1, fmt.Sprintf("LEVEL %d - CHOOSE AN UPGRADE", c.sess.Player().Level), draw.ColorYellow)

	y := row + 3
	for i, id := range offer {
		meta, _ := c.sess.SkillMetadata(id)
		fg, marker := draw.ColorWhite, "  "
		if i == c.state.MenuCursor {
			fg, marker = draw.ColorYellow, "> "
		}
		title := fmt.Sprintf("%s[%d] %s", marker, i+1, meta.Name)
		if meta.MaxStacks > 1 {
			title += fmt.Sprintf(" (%d/%d)", c.sess.Skills().Stacks(id), meta.MaxStacks)
		}
		draw.Text(s, col+2, y, title, fg)
		y++
		for _, l := range lines[i] {
			draw.Text(s, col+6, y, l, draw.ColorGray)
			y++
		}
		y++
	}
	draw.CenteredText(s, row+height-1, " 1-3 / ENTER pick   ESC skip ", draw.ColorGray)
}

// wrap splits text into lines of at most width runes at word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// drawRunStats draws the end-of-run counters starting at row.
func (c *Client) drawRunStats(row int) int {
	st := c.sess.Stats()
	accuracy := 0.0
	if st.ProjectilesFired > 0 {
		accuracy = float64(st.ProjectilesHit) / float64(st.ProjectilesFired) * 100
	}
	lines := []string{
		fmt.Sprintf("Kills: %d", st.Kills),
		fmt.Sprintf("Level: %d   Survived: %s", c.sess.Player().Level, clock(c.sess.Elapsed())),
		fmt.Sprintf("Orbs collected: %d", st.OrbsCollected),
		fmt.Sprintf("Shots: %d   Accuracy: %.0f%%", st.ProjectilesFired, accuracy),
	}
	for i, l := range lines {
		draw.CenteredText(c.surface, row+i, l, draw.ColorWhite)
	}
	return row + len(lines)
}

// drawDeadScreen draws the death screen.
func (c *Client) drawDeadScreen(centerY int) {
	art := []string{
		` __   _____  _   _   ___ ___ ___ ___  `,
		` \ \ / / _ \| | | | |   \_ _| __|   \ `,
		`  \ V / (_) | |_| | | |) | || _|| |) |`,
		`   |_| \___/ \___/  |___/___|___|___/ `,
	}
	top := centerY - 6
	for i, line := range art {
		draw.CenteredText(c.surface, top+i, line, draw.ColorRed)
	}
	next := c.drawRunStats(top + len(art) + 1)
	if c.now().UnixMilli()/600%2 == 0 {
		draw.CenteredText(c.surface, next+1, ">>  Press R to try again  <<", draw.ColorWhite)
	}
}

// drawVictoryScreen draws the victory banner and the leaderboard.
func (c *Client) drawVictoryScreen(centerY int) {
	s := c.surface
	top := centerY - 10
	draw.CenteredText(s, top, "YOU SURVIVED", draw.ColorGreen)
	next := c.drawRunStats(top + 2)

	draw.CenteredText(s, next+1, "LEADERBOARD", draw.ColorYellow)
	entries := c.lobby.Top()
	if len(entries) == 0 {
		draw.CenteredText(s, next+2, "(empty)", draw.ColorGray)
	}
	for i, e := range entries {
		fg := draw.ColorWhite
		if e.Name == c.sess.Name() {
			fg = draw.ColorCyan
		}
		draw.CenteredText(s, next+2+i, fmt.Sprintf("%2d. %-16s %5d", i+1, e.Name, e.Kills), fg)
	}
	draw.CenteredText(s, next+3+max(len(entries), 1), ">>  Press R for a new run  <<", draw.ColorWhite)
}

// drawDebug draws pool and skill diagnostics in the top-right corner.
func (c *Client) drawDebug(cols int) {
	pools := c.sess.Pools()
	st := c.sess.Stats()
	p := c.sess.Player()
	lines := []string{
		fmt.Sprintf("fps %5.1f", c.state.fps()),
		fmt.Sprintf("pos %6.0f %6.0f", p.Pos.X, p.Pos.Y),
		fmt.Sprintf("orbs %d (+%d)", pools.Orbs, pools.OrbOverwrites),
		fmt.Sprintf("enemies %d (+%d)", pools.Enemies, pools.EnemyOverwrites),
		fmt.Sprintf("shots %d (+%d)", pools.Projectiles, pools.ProjectileOverwrites),
		fmt.Sprintf("fx %d/%d/%d", pools.SpawnFx, pools.KillFx, pools.BlastFx),
		fmt.Sprintf("spawned %d", st.EnemiesSpawned),
		fmt.Sprintf("dmg %d spd %.2f", p.Damage, p.Speed),
	}
	set := c.sess.Skills()
	for _, id := range skill.All() {
		if n := set.Stacks(id); n > 0 {
			lines = append(lines, fmt.Sprintf("%s x%d", id, n))
		}
	}
	for i, l := range lines {
		draw.Text(c.surface, cols-24, 2+i, l, draw.ColorGray)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	s := c.surface
	draw.CenteredText(s, centerY-2, "INACTIVITY WARNING", draw.ColorYellow)
	left := int(config.InactivityDisconnectUser - c.now().Sub(c.lastInput).Seconds())
	draw.CenteredText(s, centerY, fmt.Sprintf("You will be disconnected in %d seconds.", left), draw.ColorWhite)
	draw.CenteredText(s, centerY+2, "Press any key to continue", draw.ColorGray)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	s := c.surface
	draw.CenteredText(s, centerY-3, "SERVER SHUTTING DOWN", draw.ColorRed)
	draw.CenteredText(s, centerY-1, "The server is restarting for maintenance.", draw.ColorWhite)
	draw.CenteredText(s, centerY, "Please reconnect in a moment.", draw.ColorWhite)
	remaining := int(c.state.shutdownTimer) + 1
	draw.CenteredText(s, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining), draw.ColorGray)
	draw.CenteredText(s, centerY+4, "Press Ctrl+C to disconnect now", draw.ColorGray)
}
