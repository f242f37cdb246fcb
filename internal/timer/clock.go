package timer

import (
	"math"
	"time"
)

// FrameClock 由帧循环推进的单调时钟
// 每帧用（已裁剪的）帧间隔调用一次 Advance
type FrameClock struct {
	now time.Duration
}

// NewFrameClock 创建从 0 开始的帧时钟
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Advance 推进时钟，负值被忽略
func (c *FrameClock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.now += time.Duration(math.Round(dt * float64(time.Second)))
}

// Now 返回当前时间
func (c *FrameClock) Now() time.Duration {
	return c.now
}
