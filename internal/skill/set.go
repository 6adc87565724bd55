package skill

// Set tracks which skills a run has acquired. Acquisition is monotonic: the
// only way to drop a skill is Reset.
//
// Each skill also carries an applied counter so one-shot bonuses can be
// folded into base stats exactly once per stack, no matter how often the
// caller checks them.
type Set struct {
	stacks  [Count]int
	applied [Count]int
}

// Has reports whether id has at least one stack.
func (s *Set) Has(id ID) bool {
	return id.Valid() && s.stacks[id] > 0
}

// Stacks returns how many times id has been acquired.
func (s *Set) Stacks(id ID) int {
	if !id.Valid() {
		return 0
	}
	return s.stacks[id]
}

// CanAcquire reports whether id is still below its stack cap.
func (s *Set) CanAcquire(id ID) bool {
	return id.Valid() && s.stacks[id] < catalog[id].MaxStacks
}

// Acquire adds a stack of id. Returns false when id is unknown or maxed.
func (s *Set) Acquire(id ID) bool {
	if !s.CanAcquire(id) {
		return false
	}
	s.stacks[id]++
	return true
}

// AppendAvailable appends every skill that can still be acquired to dst.
func (s *Set) AppendAvailable(dst []ID) []ID {
	for id := ID(0); id < Count; id++ {
		if s.CanAcquire(id) {
			dst = append(dst, id)
		}
	}
	return dst
}

// AnyAvailable reports whether at least one skill can still be acquired.
func (s *Set) AnyAvailable() bool {
	for id := ID(0); id < Count; id++ {
		if s.CanAcquire(id) {
			return true
		}
	}
	return false
}

// Pending returns how many stacks of id have not been applied yet.
func (s *Set) Pending(id ID) int {
	if !id.Valid() {
		return 0
	}
	return s.stacks[id] - s.applied[id]
}

// MarkApplied records one stack of id as applied.
func (s *Set) MarkApplied(id ID) {
	if s.Pending(id) > 0 {
		s.applied[id]++
	}
}

// Reset drops every skill.
func (s *Set) Reset() {
	*s = Set{}
}
