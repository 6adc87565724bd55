package entity

import "github.com/tomz197/survivors/internal/physics"

// OrbBaseRadius is the pickup radius of an orb before magnet stacks.
const OrbBaseRadius = 70.0

// Orb is an experience pickup dropped by dead enemies.
type Orb struct {
	Pos     physics.Vec2
	Radius  float64 // Pickup radius, already scaled by the magnet multiplier
	Enabled bool
}

// Collect removes the orb from play.
func (o *Orb) Collect() {
	o.Enabled = false
	o.Pos = OffMap
}

// OrbPool is the fixed arena of orbs.
type OrbPool struct {
	Pool[Orb]
}

// NewOrbPool creates an orb pool with every slot parked off-map.
func NewOrbPool(capacity int) *OrbPool {
	p := &OrbPool{Pool: *NewPool[Orb](capacity)}
	p.Clear()
	return p
}

// Spawn places an orb at pos. overwrote reports that a live orb was replaced.
func (p *OrbPool) Spawn(pos physics.Vec2, radius float64) (index int, overwrote bool) {
	index, _ = p.Acquire()
	o := p.At(index)
	if o.Enabled {
		overwrote = true
		p.NoteOverwrite()
	}
	*o = Orb{Pos: pos, Radius: radius, Enabled: true}
	return index, overwrote
}

// SetRadius rescales every orb, live or parked.
func (p *OrbPool) SetRadius(radius float64) {
	for i := range p.Slots() {
		p.At(i).Radius = radius
	}
}

// Clear disables every orb and rewinds the cursor.
func (p *OrbPool) Clear() {
	p.Reset(func(o *Orb) {
		o.Enabled = false
		o.Pos = OffMap
	})
}

// Live counts enabled orbs.
func (p *OrbPool) Live() int {
	n := 0
	for _, o := range p.Slots() {
		if o.Enabled {
			n++
		}
	}
	return n
}
