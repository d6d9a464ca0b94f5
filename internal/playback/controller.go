package playback

import (
	"sync"
	"time"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 50

	minDelay    = 100 * time.Millisecond
	maxDelay    = 2000 * time.Millisecond
	delayPerTic = 19 * time.Millisecond
)

// Config wires a Controller to its step source. A nil Scheduler leaves the
// controller in manual mode: Play only flips the playing flag and the caller
// advances it by calling Tick at Delay intervals (the TUI drives it this way
// off its own tick messages).
type Config[T any] struct {
	GenerateSteps func() []T
	Scheduler     Scheduler
	Speed         int
	Empty         T
}

// Controller walks forward and backward through an immutable step sequence,
// either under a recurring timer or on discrete manual commands. Every index
// move is clamped to [0, len-1]; out-of-range requests are no-ops, not errors.
// A mutex serializes methods against timer ticks, which with a real Scheduler
// arrive on their own goroutine.
type Controller[T any] struct {
	mu      sync.Mutex
	steps   []T
	index   int
	playing bool
	speed   int
	empty   T

	sched  Scheduler
	gen    uint64 // bumped whenever steps are replaced or the controller closes
	cancel func()
	closed bool
}

func New[T any](cfg Config[T]) *Controller[T] {
	c := &Controller[T]{
		speed: cfg.Speed,
		sched: cfg.Scheduler,
		empty: cfg.Empty,
	}
	if c.speed < MinSpeed || c.speed > MaxSpeed {
		c.speed = DefaultSpeed
	}
	if cfg.GenerateSteps != nil {
		c.steps = cfg.GenerateSteps()
	}
	return c
}

func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps)
}

func (c *Controller[T]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Controller[T]) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

func (c *Controller[T]) Speed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Current returns the step at the playback position, or the configured empty
// placeholder when no steps have been generated yet.
func (c *Controller[T]) Current() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.steps) == 0 {
		return c.empty
	}
	return c.steps[c.index]
}

// Delay is the autoplay tick interval for the current speed.
func (c *Controller[T]) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delay()
}

func (c *Controller[T]) delay() time.Duration {
	d := maxDelay - time.Duration(c.speed)*delayPerTic
	if d < minDelay {
		d = minDelay
	}
	return d
}

// Play starts autoplay. At the terminal step it restarts from the beginning.
// With no steps there is nothing to play and the call is inert.
func (c *Controller[T]) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.play()
}

func (c *Controller[T]) play() {
	if c.closed || len(c.steps) == 0 {
		return
	}
	if c.index >= len(c.steps)-1 {
		c.index = 0
	}
	c.playing = true
	c.schedule()
}

// Pause stops autoplay and retains the current position.
func (c *Controller[T]) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pause()
}

func (c *Controller[T]) pause() {
	c.playing = false
	c.cancelPending()
}

// Toggle flips between playing and paused.
func (c *Controller[T]) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		c.pause()
	} else {
		c.play()
	}
}

// Tick applies one autoplay advance. Reaching the terminal step stops
// playback without scheduling anything further.
func (c *Controller[T]) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick()
}

func (c *Controller[T]) tick() {
	if !c.playing || len(c.steps) == 0 {
		return
	}
	if c.index < len(c.steps)-1 {
		c.index++
	}
	if c.index >= len(c.steps)-1 {
		c.playing = false
		c.cancelPending()
		return
	}
	c.schedule()
}

// Step advances one step, clamped at the end.
func (c *Controller[T]) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index < len(c.steps)-1 {
		c.index++
	}
}

// StepBack moves one step back, clamped at the start.
func (c *Controller[T]) StepBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index > 0 {
		c.index--
	}
}

// Reset stops playback and rewinds to the first step.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pause()
	c.index = 0
}

// SetSpeed clamps n into [MinSpeed, MaxSpeed]. An in-flight tick keeps its
// old delay; the next scheduled tick uses the new one.
func (c *Controller[T]) SetSpeed(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < MinSpeed {
		n = MinSpeed
	}
	if n > MaxSpeed {
		n = MaxSpeed
	}
	c.speed = n
}

// SetIndex jumps to n, clamped into range. Used to seed the position from a
// share link.
func (c *Controller[T]) SetIndex(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.steps) == 0 {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > len(c.steps)-1 {
		n = len(c.steps) - 1
	}
	c.index = n
}

// SetSteps replaces the sequence wholesale, rewinds to the start, and
// invalidates any tick scheduled against the previous generation.
func (c *Controller[T]) SetSteps(steps []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cancelPending()
	c.playing = false
	c.steps = steps
	c.index = 0
}

// Close cancels all pending work. A closed controller ignores Play.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cancelPending()
	c.playing = false
	c.closed = true
}

// schedule requires c.mu held. The generation check runs under the lock so a
// timer armed before SetSteps or Close can never advance the new state.
func (c *Controller[T]) schedule() {
	if c.sched == nil {
		return
	}
	c.cancelPending()
	g := c.gen
	c.cancel = c.sched.AfterFunc(c.delay(), func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if g != c.gen {
			return // stale tick from a replaced generation
		}
		c.tick()
	})
}

func (c *Controller[T]) cancelPending() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
