package clock

import (
	"slices"
	"time"
)

// TimerID identifies a scheduled callback; zero is never issued
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Time
	fn       func(now time.Time)
}

// Scheduler is a single-goroutine timer queue
// Callbacks run only inside Run, on the caller's goroutine, so they may touch
// game state without locks. Not safe for concurrent use
type Scheduler struct {
	clock  TimeProvider
	timers []timer
	nextID TimerID
}

// NewScheduler creates a scheduler reading deadlines from tp
func NewScheduler(tp TimeProvider) *Scheduler {
	return &Scheduler{clock: tp}
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After schedules fn to run once d has elapsed from the provider's current time
func (s *Scheduler) After(d time.Duration, fn func(now time.Time)) TimerID {
	return s.At(s.clock.Now().Add(d), fn)
}

// At schedules fn for an absolute deadline
func (s *Scheduler) At(deadline time.Time, fn func(now time.Time)) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, deadline: deadline, fn: fn})
	return s.nextID
}

// Cancel removes a pending timer, reporting whether it was still pending
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = slices.Delete(s.timers, i, i+1)
			return true
		}
	}
	return false
}

// CancelAll drops every pending timer
func (s *Scheduler) CancelAll() {
	clear(s.timers)
	s.timers = s.timers[:0]
}

// Pending returns the number of timers not yet fired
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Run fires every timer whose deadline is at or before now, earliest first
// and in scheduling order on equal deadlines. Timers armed by callbacks fire
// in the same call when already due. Returns the number fired
func (s *Scheduler) Run(now time.Time) int {
	fired := 0
	for {
		next := -1
		for i, t := range s.timers {
			if t.deadline.After(now) {
				continue
			}
			if next < 0 || t.deadline.Before(s.timers[next].deadline) ||
				(t.deadline.Equal(s.timers[next].deadline) && t.id < s.timers[next].id) {
				next = i
			}
		}
		if next < 0 {
			return fired
		}

		t := s.timers[next]
		s.timers = slices.Delete(s.timers, next, next+1)
		t.fn(now)
		fired++
	}
}
