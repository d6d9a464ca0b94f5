package playback

import "time"

// Scheduler runs fn once after d. The returned cancel stops the run if it has
// not fired yet. Callbacks may arrive on a timer goroutine; the controller
// serializes them against its own methods.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc.
func NewTimerScheduler() Scheduler { return timerScheduler{} }
