package components

import "time"

// LifetimeComponent 到时自动销毁的短暂实体（砍树、摘果、收获时的粒子）
//
// 计时以帧时钟为准：LifetimeSystem 第一次看到实体时记下出生时刻，
// 之后用 clock.Now() - SpawnedAt 判断是否到期。
type LifetimeComponent struct {
	Duration  time.Duration // 存活时长
	SpawnedAt time.Duration // 出生时刻（帧时钟）
	Started   bool          // 是否已记下出生时刻
	Expired   bool
}

// Remaining 剩余存活时间（未开始计时时为完整时长）
func (l *LifetimeComponent) Remaining(now time.Duration) time.Duration {
	if !l.Started {
		return l.Duration
	}
	left := l.Duration - (now - l.SpawnedAt)
	if left < 0 {
		return 0
	}
	return left
}
