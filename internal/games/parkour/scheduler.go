package parkour

import (
	"slices"
	"time"
)

// TaskID identifies a scheduled task.
type TaskID uint64

// Scheduler runs callbacks after a delay measured in simulation time. Time
// only moves when Advance is called, so timed transitions stay in step with
// the tick loop and are reproducible in tests.
type Scheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  []task
}

type task struct {
	id TaskID
	at time.Duration
	fn func()
}

// After schedules fn to run once d of simulation time has passed.
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, at: s.now + max(d, 0), fn: fn})
	return s.nextID
}

// Cancel removes a pending task. It reports whether the task was pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	i := slices.IndexFunc(s.tasks, func(t task) bool { return t.id == id })
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

// CancelAll removes every pending task.
func (s *Scheduler) CancelAll() {
	s.tasks = s.tasks[:0]
}

// Advance moves time forward by dt and runs every task that became due, in
// due-time order. Tasks scheduled by a running task with no delay run in the
// same call.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt
	for {
		i := s.due()
		if i < 0 {
			return
		}
		t := s.tasks[i]
		s.tasks = slices.Delete(s.tasks, i, i+1)
		t.fn()
	}
}

// due returns the index of the earliest due task, or -1.
func (s *Scheduler) due() int {
	best := -1
	for i, t := range s.tasks {
		if t.at > s.now {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.id < s.tasks[best].id) {
			best = i
		}
	}
	return best
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Now returns the current simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}
