package entity

import "github.com/tomz197/survivors/internal/physics"

// ProjectileSpeed is the distance a projectile covers per frame.
const ProjectileSpeed = 4.0

// ProjectileRadius is the collision radius of a projectile.
const ProjectileRadius = 5.0

// ProjectileBound is the half side of the square outside which projectiles expire.
const ProjectileBound = 5700.0

// Projectile is a bullet. Damage is captured when it is fired.
type Projectile struct {
	Pos     physics.Vec2
	Dir     physics.Vec2 // Unit vector
	Speed   float64
	Radius  float64
	Damage  int
	Enabled bool
}

// Disable removes the projectile from play.
func (p *Projectile) Disable() {
	p.Enabled = false
	p.Pos = OffMap
}

// ProjectilePool is the fixed arena of projectiles.
type ProjectilePool struct {
	Pool[Projectile]
	bound float64
}

// NewProjectilePool creates a projectile pool with every slot parked off-map.
func NewProjectilePool(capacity int) *ProjectilePool {
	p := &ProjectilePool{Pool: *NewPool[Projectile](capacity), bound: ProjectileBound}
	p.Clear()
	return p
}

// Spawn fires a projectile from origin toward aim.
// An aim equal to origin fires along +X so the shot never hangs in place.
func (p *ProjectilePool) Spawn(origin, aim physics.Vec2, damage int) (index int, overwrote bool) {
	index, _ = p.Acquire()
	pr := p.At(index)
	if pr.Enabled {
		overwrote = true
		p.NoteOverwrite()
	}
	dir := aim.Sub(origin).Normalize()
	if dir == (physics.Vec2{}) {
		dir = physics.Vec2{X: 1}
	}
	*pr = Projectile{
		Pos:     origin,
		Dir:     dir,
		Speed:   ProjectileSpeed,
		Radius:  ProjectileRadius,
		Damage:  damage,
		Enabled: true,
	}
	return index, overwrote
}

// Update advances every enabled projectile and expires the ones leaving the world.
func (p *ProjectilePool) Update() {
	for i := range p.Slots() {
		pr := p.At(i)
		if !pr.Enabled {
			continue
		}
		pr.Pos = pr.Pos.Add(pr.Dir.Scale(pr.Speed))
		if pr.Pos.X < -p.bound || pr.Pos.X > p.bound || pr.Pos.Y < -p.bound || pr.Pos.Y > p.bound {
			pr.Enabled = false
		}
	}
}

// Clear disables every projectile and rewinds the cursor.
func (p *ProjectilePool) Clear() {
	p.Reset(func(pr *Projectile) {
		pr.Disable()
		pr.Radius = ProjectileRadius
		pr.Speed = ProjectileSpeed
	})
}

// Live counts enabled projectiles.
func (p *ProjectilePool) Live() int {
	n := 0
	for _, pr := range p.Slots() {
		if pr.Enabled {
			n++
		}
	}
	return n
}
