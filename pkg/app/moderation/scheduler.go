package moderation

import "time"

// Timer is a cancellable scheduled task handle. Cancel reports whether the
// task was stopped before firing.
type Timer interface {
	Cancel() bool
}

// Scheduler abstracts debounce timing so tests can drive the pipeline with a
// logical clock instead of sleeping.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

// NewScheduler returns the wall-clock Scheduler used in production.
func NewScheduler() Scheduler {
	return realScheduler{}
}

type realTimer struct {
	timer *time.Timer
}

func (s realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return &realTimer{timer: time.AfterFunc(d, fn)}
}

func (t *realTimer) Cancel() bool {
	return t.timer.Stop()
}
