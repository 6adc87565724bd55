package skill

// Interval fires once every Period seconds of accumulated frame time.
type Interval struct {
	Period  float64
	elapsed float64
}

// NewInterval returns an interval that first fires after period seconds.
func NewInterval(period float64) Interval {
	return Interval{Period: period}
}

// Tick adds dt and reports whether the interval fired. The accumulator
// restarts from zero on firing, so one long frame fires at most once.
func (i *Interval) Tick(dt float64) bool {
	i.elapsed += dt
	if i.elapsed < i.Period {
		return false
	}
	i.elapsed = 0
	return true
}

// Elapsed returns the time accumulated toward the next firing.
func (i *Interval) Elapsed() float64 {
	return i.elapsed
}

// Reset rewinds the accumulator.
func (i *Interval) Reset() {
	i.elapsed = 0
}

// Window is a timed buff: Start opens it, Tick closes it once Duration passes.
type Window struct {
	Duration float64
	elapsed  float64
	active   bool
}

// NewWindow returns a closed window lasting duration seconds once started.
func NewWindow(duration float64) Window {
	return Window{Duration: duration}
}

// Start opens the window, restarting it if it is already open.
func (w *Window) Start() {
	w.active = true
	w.elapsed = 0
}

// Tick advances an open window and reports whether it just closed.
func (w *Window) Tick(dt float64) bool {
	if !w.active {
		return false
	}
	w.elapsed += dt
	if w.elapsed > w.Duration {
		w.active = false
		w.elapsed = 0
		return true
	}
	return false
}

// Active reports whether the window is open.
func (w *Window) Active() bool {
	return w.active
}

// Remaining returns the seconds left in an open window.
func (w *Window) Remaining() float64 {
	if !w.active {
		return 0
	}
	return w.Duration - w.elapsed
}

// Reset closes the window.
func (w *Window) Reset() {
	w.active = false
	w.elapsed = 0
}
