package entity

// Pool is a fixed-capacity arena of slots with a wrapping allocation cursor.
//
// Slots are never appended or removed: Acquire hands out the slot under the
// cursor and advances it. Once the cursor reaches capacity it wraps to 0 and
// the oldest slot is overwritten, whether or not it is still live.
type Pool[T any] struct {
	slots      []T
	next       int
	overwrites int
}

// NewPool allocates a pool with the given capacity.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool[T]{slots: make([]T, capacity)}
}

// Acquire returns the index of the slot to write next and advances the cursor.
// wrapped reports whether the cursor had to wrap to index 0 for this call.
func (p *Pool[T]) Acquire() (index int, wrapped bool) {
	if p.next >= len(p.slots) {
		p.next = 0
		wrapped = true
	}
	index = p.next
	p.next++
	return index, wrapped
}

// NoteOverwrite records that a live slot was overwritten by Acquire.
func (p *Pool[T]) NoteOverwrite() {
	p.overwrites++
}

// At returns a pointer to slot i.
func (p *Pool[T]) At(i int) *T {
	return &p.slots[i]
}

// Slots exposes the backing array for iteration. The slice must not be resliced.
func (p *Pool[T]) Slots() []T {
	return p.slots
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Cursor returns the index the next Acquire will consider.
func (p *Pool[T]) Cursor() int {
	return p.next
}

// Overwrites returns how many live slots were overwritten since the last Reset.
func (p *Pool[T]) Overwrites() int {
	return p.overwrites
}

// Reset applies fn to every slot and rewinds the cursor.
func (p *Pool[T]) Reset(fn func(*T)) {
	for i := range p.slots {
		fn(&p.slots[i])
	}
	p.next = 0
	p.overwrites = 0
}
