package client

import (
	"github.com/tomz197/survivors/internal/input"
	"github.com/tomz197/survivors/internal/loop/config"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/render"
	"github.com/tomz197/survivors/internal/session"
)

// controller adapts one frame of terminal input to session.Controller.
type controller struct {
	move  physics.Vec2
	aim   physics.Vec2
	fire  bool
	debug bool
	spawn bool
}

// newController resolves aiming: aim keys point away from the player, the
// mouse points at the world under the cursor, and otherwise the last aim
// direction is reused. aimDir is updated in place.
func newController(in input.Input, cam render.Camera, player physics.Vec2, aimDir *physics.Vec2) controller {
	c := controller{
		move:  in.Move.Vector().Normalize(),
		fire:  in.Fire || in.Aim.Any() || in.Mouse.Left,
		debug: in.Debug,
		spawn: in.Mouse.RightClick,
	}

	switch {
	case in.Aim.Any():
		if d := in.Aim.Vector(); d != (physics.Vec2{}) {
			*aimDir = d.Normalize()
		}
		c.aim = player.Add(aimDir.Scale(config.AimReach))
	case in.Mouse.Known && (in.Mouse.Left || in.Mouse.RightClick):
		c.aim = cam.CellToWorld(in.Mouse.Col, in.Mouse.Row)
		if d := c.aim.Sub(player); d != (physics.Vec2{}) {
			*aimDir = d.Normalize()
		}
	default:
		c.aim = player.Add(aimDir.Scale(config.AimReach))
	}
	return c
}

func (c controller) MovementIntent() physics.Vec2 { return c.move }
func (c controller) AimPoint() physics.Vec2       { return c.aim }
func (c controller) FireRequested() bool          { return c.fire }
func (c controller) DebugToggleRequested() bool   { return c.debug }
func (c controller) DebugSpawnRequested() bool    { return c.spawn }

var _ session.Controller = controller{}
