package parkour

import (
	"testing"
	"time"
)

func TestSchedulerRunsWhenDue(t *testing.T) {
	var s Scheduler
	fired := 0
	s.After(100*time.Millisecond, func() { fired++ })

	s.Advance(60 * time.Millisecond)
	if fired != 0 {
		t.Fatal("task fired early")
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}

	s.Advance(40 * time.Millisecond)
	if fired != 1 {
		t.Errorf("task fired %d times at due time, expected 1", fired)
	}

	s.Advance(time.Second)
	if fired != 1 || s.Pending() != 0 {
		t.Errorf("task should run exactly once, fired=%d pending=%d", fired, s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	fired := false
	id := s.After(time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel() of a pending task should report true")
	}
	if s.Cancel(id) {
		t.Error("second Cancel() should report false")
	}

	s.Advance(2 * time.Second)
	if fired {
		t.Error("cancelled task ran")
	}
}

func TestSchedulerOrder(t *testing.T) {
	var s Scheduler
	var order []string

	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "b1") })
	s.After(20*time.Millisecond, func() { order = append(order, "b2") })

	s.Advance(time.Second)

	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("ran %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, expected %v", order, want)
			break
		}
	}
}

func TestSchedulerNestedTasks(t *testing.T) {
	var s Scheduler
	var ran []string

	s.After(0, func() {
		ran = append(ran, "outer")
		s.After(0, func() { ran = append(ran, "inner") })
		s.After(time.Second, func() { ran = append(ran, "later") })
	})

	s.Advance(time.Millisecond)
	if len(ran) != 2 || ran[0] != "outer" || ran[1] != "inner" {
		t.Errorf("ran = %v, expected [outer inner]", ran)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}

	s.CancelAll()
	s.Advance(2 * time.Second)
	if len(ran) != 2 {
		t.Errorf("CancelAll() should drop pending tasks, ran = %v", ran)
	}
}

func TestSchedulerNow(t *testing.T) {
	var s Scheduler
	for range 3 {
		s.Advance(time.Second / 60)
	}
	if s.Now() != 3*(time.Second/60) {
		t.Errorf("Now() = %v, expected %v", s.Now(), 3*(time.Second/60))
	}
}
