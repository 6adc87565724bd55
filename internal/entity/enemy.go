package entity

import "github.com/tomz197/survivors/internal/physics"

// EnemyRadius is the collision radius of every enemy.
const EnemyRadius = 15.0

// EnemyStats are the per-spawn values handed out by a Difficulty policy.
type EnemyStats struct {
	Health int
	Speed  float64
}

// Enemy walks straight at the player and dies on contact.
type Enemy struct {
	Pos       physics.Vec2
	Speed     float64
	Radius    float64
	Health    int
	MaxHealth int
	Enabled   bool
}

// Disable removes the enemy from play. The slot stays reusable.
func (e *Enemy) Disable() {
	e.Enabled = false
	e.Speed = 0
	e.Pos = OffMap
}

// TakeDamage subtracts damage and reports whether the enemy is now dead.
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	return e.Health <= 0
}

// StepToward advances the enemy toward target by its speed.
func (e *Enemy) StepToward(target physics.Vec2) {
	e.Pos = physics.StepToward(e.Pos, target, e.Speed)
}

// HealthRatio returns health/maxHealth clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 || e.Health <= 0 {
		return 0
	}
	r := float64(e.Health) / float64(e.MaxHealth)
	if r > 1 {
		return 1
	}
	return r
}

// EnemyPool is the fixed arena of enemies.
type EnemyPool struct {
	Pool[Enemy]
}

// NewEnemyPool creates an enemy pool with every slot parked off-map.
func NewEnemyPool(capacity int) *EnemyPool {
	p := &EnemyPool{Pool: *NewPool[Enemy](capacity)}
	p.Clear()
	return p
}

// Spawn places an enemy at pos. overwrote reports that a live enemy was replaced.
func (p *EnemyPool) Spawn(pos physics.Vec2, radius float64, stats EnemyStats) (index int, overwrote bool) {
	index, _ = p.Acquire()
	e := p.At(index)
	if e.Enabled {
		overwrote = true
		p.NoteOverwrite()
	}
	*e = Enemy{
		Pos:       pos,
		Speed:     stats.Speed,
		Radius:    radius,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Enabled:   true,
	}
	return index, overwrote
}

// Clear disables every enemy and rewinds the cursor.
func (p *EnemyPool) Clear() {
	p.Reset(func(e *Enemy) {
		e.Disable()
		e.Radius = EnemyRadius
	})
}

// Live counts enabled enemies.
func (p *EnemyPool) Live() int {
	n := 0
	for _, e := range p.Slots() {
		if e.Enabled {
			n++
		}
	}
	return n
}

// Nearest returns the index of the enabled enemy closest to pos within maxDist,
// or -1 if none qualifies. Ties go to the lower index.
func (p *EnemyPool) Nearest(pos physics.Vec2, maxDist float64) int {
	best := -1
	bestDist := maxDist
	for i, e := range p.Slots() {
		if !e.Enabled {
			continue
		}
		if d := physics.Distance(pos, e.Pos); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
