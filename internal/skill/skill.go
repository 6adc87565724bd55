// Package skill defines the upgrade catalog and the per-run acquisition state.
package skill

// ID identifies one upgrade. Values index fixed-size tables, so new skills go
// before Count.
type ID int

const (
	Resurrection ID = iota
	ImprovedShot
	AgileMovement
	Regeneration
	Bifurcation
	Ally
	BulletStorm
	Fury
	Explosion
	OrbMagnet
	FastShot
	WanderingSouls
	SpinningSaw
	FracturedHeart

	Count
)

// Meta is what the upgrade menu shows for a skill.
type Meta struct {
	Name        string
	Description string
	MaxStacks   int
}

var catalog = [Count]Meta{
	Resurrection:   {"Death Echo", "Revive once with 1 HP when you fall.", 1},
	ImprovedShot:   {"Improved Shot", "+20% damage.", 1},
	AgileMovement:  {"Agile Movement", "+20% movement speed.", 1},
	Regeneration:   {"Regeneration", "Every 60s a restoring pulse heals 1 HP.", 1},
	Bifurcation:    {"Arcane Bifurcation", "Every shot is mirrored by a second one.", 1},
	Ally:           {"Steel Herald", "A mechanical ally fires at the nearest enemy every 0.5s.", 1},
	BulletStorm:    {"Bullet Storm", "Every 3s a burst fires in six directions.", 1},
	Fury:           {"Unbound Fury", "Taking damage grants x2 damage and +25% speed for 15s.", 1},
	Explosion:      {"Explosive Revenge", "Getting hit sets off an explosion around you.", 1},
	OrbMagnet:      {"Orb Magnet", "Orb pickup radius +25%. Stacks 3 times.", 3},
	FastShot:       {"Fast Shot", "+25% fire rate.", 1},
	WanderingSouls: {"Wandering Souls", "Slain enemies release 3 projectiles.", 1},
	SpinningSaw:    {"Iron Pinwheel", "A spinning saw orbits you, cutting nearby enemies.", 1},
	FracturedHeart: {"Fractured Heart", "At 1 HP your shots burst and hit everything nearby.", 1},
}

// Valid reports whether id names a skill.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// Metadata returns the catalog entry for id. ok is false for unknown ids.
func Metadata(id ID) (m Meta, ok bool) {
	if !id.Valid() {
		return Meta{}, false
	}
	return catalog[id], true
}

// String returns the display name.
func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return catalog[id].Name
}

// All returns every skill id in catalog order.
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
