package game

import (
	"reflect"
	"testing"
	"time"
)

// TestSchedulerEvery 测试周期计时器按间隔触发
func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(3*time.Second, func() { count++ })

	s.Advance(2999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("Timer fired early: %d", count)
	}

	s.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("Expected 1 fire at 3s, got %d", count)
	}

	// 一帧跨越多个周期时补触发
	s.Advance(9 * time.Second)
	if count != 4 {
		t.Errorf("Expected 4 fires at 12s, got %d", count)
	}
}

// TestSchedulerAfter 测试一次性计时器只触发一次
func TestSchedulerAfter(t *testing.T) {
	s := NewScheduler()
	count := 0
	h := s.After(300*time.Millisecond, func() { count++ })

	s.Advance(299 * time.Millisecond)
	if count != 0 || !h.Active() {
		t.Fatal("One-shot fired early")
	}

	s.Advance(time.Second)
	if count != 1 {
		t.Fatalf("Expected 1 fire, got %d", count)
	}
	if h.Active() {
		t.Error("One-shot should be inactive after firing")
	}

	s.Advance(time.Second)
	if count != 1 {
		t.Errorf("One-shot fired again: %d", count)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.Pending())
	}
}

// TestSchedulerCancel 测试取消后的计时器不再触发
func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	count := 0
	h := s.Every(time.Second, func() { count++ })

	s.Advance(time.Second)
	h.Cancel()
	h.Cancel()
	s.Advance(10 * time.Second)

	if count != 1 {
		t.Errorf("Cancelled timer kept firing: %d", count)
	}
}

// TestSchedulerCancelFromCallback 测试回调中取消同一时刻到期的其他计时器
func TestSchedulerCancelFromCallback(t *testing.T) {
	s := NewScheduler()
	var victim *TimerHandle
	fired := false

	s.After(time.Second, func() { victim.Cancel() })
	victim = s.After(time.Second, func() { fired = true })

	s.Advance(time.Second)
	if fired {
		t.Error("Timer cancelled by an earlier callback in the same frame must not fire")
	}
}

// TestSchedulerOrdering 测试按到期时间、再按创建顺序触发
func TestSchedulerOrdering(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.Every(5*time.Second, func() { order = append(order, "female") })
	s.Every(3*time.Second, func() { order = append(order, "male") })
	s.Every(5*time.Second, func() { order = append(order, "ramp") })

	s.Advance(6 * time.Second)

	want := []string{"male", "female", "ramp", "male"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Fire order = %v, want %v", order, want)
	}
}

// TestSchedulerCancelAll 测试整局失效
func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	fired := 0
	handles := []*TimerHandle{
		s.Every(time.Second, func() { fired++ }),
		s.After(time.Second, func() { fired++ }),
	}

	s.CancelAll()
	s.Advance(5 * time.Second)

	if fired != 0 {
		t.Errorf("Expected no fires after CancelAll, got %d", fired)
	}
	for i, h := range handles {
		if h.Active() {
			t.Errorf("Handle %d still active after CancelAll", i)
		}
	}
}

// TestSchedulerTimerAddedInCallback 测试回调中注册的计时器
func TestSchedulerTimerAddedInCallback(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration

	s.After(time.Second, func() {
		s.After(500*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	s.Advance(2 * time.Second)

	if len(at) != 1 || at[0] != 1500*time.Millisecond {
		t.Errorf("Nested timer fired at %v, want [1.5s]", at)
	}
	if s.Now() != 2*time.Second {
		t.Errorf("Now() = %v, want 2s", s.Now())
	}
}

// TestSchedulerInvalidInterval 测试非法间隔
func TestSchedulerInvalidInterval(t *testing.T) {
	s := NewScheduler()
	h := s.Every(0, func() { t.Error("zero-interval timer must never fire") })
	if h.Active() {
		t.Error("Zero interval should yield a cancelled handle")
	}
	s.Advance(time.Second)

	var nilHandle *TimerHandle
	nilHandle.Cancel()
	if nilHandle.Active() {
		t.Error("nil handle should be inactive")
	}
}

// TestSchedulerAfterFireHook 测试每个回调之后都会调用钩子
func TestSchedulerAfterFireHook(t *testing.T) {
	s := NewScheduler()
	var events []string
	s.SetAfterFire(func() { events = append(events, "hook") })

	s.Every(time.Second, func() { events = append(events, "tick") })
	s.After(1500*time.Millisecond, func() { events = append(events, "once") })

	s.Advance(2 * time.Second)

	want := []string{"tick", "hook", "once", "hook", "tick", "hook"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
}

// TestSchedulerInterrupt 测试中断后剩余计时器留到下次推进
func TestSchedulerInterrupt(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(time.Second, func() {
		count++
		if count == 2 {
			s.Interrupt()
		}
	})

	s.Advance(5 * time.Second)
	if count != 2 {
		t.Fatalf("Expected Advance to stop after 2 fires, got %d", count)
	}
	if s.Now() != 2*time.Second {
		t.Errorf("Now() = %v, want 2s", s.Now())
	}

	// 下一次推进从中断处继续
	s.Advance(time.Second)
	if count != 3 {
		t.Errorf("Expected 3 fires after resuming, got %d", count)
	}
}
