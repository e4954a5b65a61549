package game

import "time"

// TimerHandle 调度器返回的计时器句柄
// Cancel 之后计时器不会再触发，即使它已经到期
type TimerHandle struct {
	seq       uint64
	due       time.Duration
	interval  time.Duration // 0 表示一次性计时器
	fn        func()
	cancelled bool
	done      bool
}

// Cancel 取消计时器，可重复调用
func (h *TimerHandle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Active 计时器是否仍会触发
func (h *TimerHandle) Active() bool {
	return h != nil && !h.cancelled && !h.done
}

// Scheduler 基于游戏时间的计时器调度器
//
// 游戏时间只在 Advance 时前进；场景只在进行中阶段推进它，
// 因此暂停期间所有计时器（包括死亡延迟）都被冻结。
// 所有回调在调用 Advance 的 goroutine 上按到期时间顺序执行，
// 同一时刻到期的计时器按创建顺序执行。
type Scheduler struct {
	now         time.Duration
	seq         uint64
	timers      []*TimerHandle
	afterFire   func()
	interrupted bool
}

// NewScheduler 创建调度器，游戏时间从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 返回当前游戏时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// SetAfterFire 设置每个回调执行完后调用的钩子
// 场景用它在每次状态变更后清理实体并检查胜利
func (s *Scheduler) SetAfterFire(fn func()) {
	s.afterFire = fn
}

// Interrupt 让正在进行的 Advance 在当前回调结束后立即返回
// 游戏时间停在该回调的到期时刻，剩余计时器留待下次 Advance
func (s *Scheduler) Interrupt() {
	s.interrupted = true
}

// Every 注册周期计时器，首次触发在一个完整间隔之后
// interval 必须为正数，否则返回一个已取消的句柄
func (s *Scheduler) Every(interval time.Duration, fn func()) *TimerHandle {
	if interval <= 0 {
		return &TimerHandle{cancelled: true}
	}
	return s.add(interval, interval, fn)
}

// After 注册一次性计时器
func (s *Scheduler) After(delay time.Duration, fn func()) *TimerHandle {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) *TimerHandle {
	s.seq++
	h := &TimerHandle{
		seq:      s.seq,
		due:      s.now + delay,
		interval: interval,
		fn:       fn,
	}
	s.timers = append(s.timers, h)
	return h
}

// Advance 推进游戏时间 dt，并依次触发到期的计时器
// 一帧跨越多个周期时，周期计时器会补触发对应次数
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	s.interrupted = false

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.done = true
		}
		if next.fn != nil {
			next.fn()
		}
		if s.afterFire != nil {
			s.afterFire()
		}
		if s.interrupted {
			s.interrupted = false
			s.compact()
			return
		}
	}

	s.now = target
	s.compact()
}

// nextDue 找出最早到期（且不晚于 target）的活动计时器
func (s *Scheduler) nextDue(target time.Duration) *TimerHandle {
	var best *TimerHandle
	for _, h := range s.timers {
		if !h.Active() || h.due > target {
			continue
		}
		if best == nil || h.due < best.due || (h.due == best.due && h.seq < best.seq) {
			best = h
		}
	}
	return best
}

// compact 移除已取消或已完成的计时器
func (s *Scheduler) compact() {
	kept := s.timers[:0]
	for _, h := range s.timers {
		if h.Active() {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept
}

// CancelAll 取消全部计时器（新的一局或重置时调用）
func (s *Scheduler) CancelAll() {
	for _, h := range s.timers {
		h.Cancel()
	}
	s.timers = s.timers[:0]
}

// Pending 返回仍会触发的计时器数量
func (s *Scheduler) Pending() int {
	n := 0
	for _, h := range s.timers {
		if h.Active() {
			n++
		}
	}
	return n
}
