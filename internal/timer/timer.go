// Package timer 提供逐帧轮询的一次性延迟回调计时器
//
// 计时器不启动任何 goroutine：调用方在每帧调用 Update()，
// 到期时回调在 Update() 内同步触发，且每次激活最多触发一次。
package timer

import "time"

// Clock 单调时钟
// 由调用方每帧推进（见 FrameClock），计时器只做时间戳比较
type Clock interface {
	Now() time.Duration
}

// Timer 一次性延迟回调计时器
type Timer struct {
	duration time.Duration
	clock    Clock
	callback func()

	start  time.Duration
	active bool
}

// New 创建计时器
//
// 参数:
//   - duration: 从激活到触发的时长
//   - clock: 时间来源
//   - callback: 到期回调，可为 nil
func New(duration time.Duration, clock Clock, callback func()) *Timer {
	return &Timer{
		duration: duration,
		clock:    clock,
		callback: callback,
	}
}

// Activate 记录当前时间并激活计时器
// 对已激活的计时器再次调用会重新计时（不累加）
func (t *Timer) Activate() {
	t.active = true
	t.start = t.clock.Now()
}

// Deactivate 强制停止计时器，不触发回调
func (t *Timer) Deactivate() {
	t.active = false
	t.start = 0
}

// Update 每帧调用一次
// 若已激活且经过时间 >= duration，先置为未激活再触发回调，
// 因此回调内部可以安全地重新激活计时器
func (t *Timer) Update() {
	if !t.active {
		return
	}
	if t.clock.Now()-t.start < t.duration {
		return
	}
	t.Deactivate()
	if t.callback != nil {
		t.callback()
	}
}

// Active 返回计时器是否处于激活状态
func (t *Timer) Active() bool {
	return t.active
}

// Duration 返回计时时长
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining 返回距离触发的剩余时间，未激活时为 0
func (t *Timer) Remaining() time.Duration {
	if !t.active {
		return 0
	}
	left := t.duration - (t.clock.Now() - t.start)
	if left < 0 {
		return 0
	}
	return left
}
