package systems

import (
	"image/color"

	"github.com/decker502/farmstead/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TransitionPhase 日夜切换阶段
type TransitionPhase int

const (
	TransitionIdle    TransitionPhase = iota // 未切换
	TransitionFadeOut                        // 渐黑
	TransitionFadeIn                         // 渐亮
)

// TransitionSystem 睡觉后的渐黑/渐亮过渡
//
// 渐黑结束（全黑）时调用 onMidpoint（新的一天重置），
// 渐亮结束时调用 onEnd（唤醒玩家）。每次 Start 两个回调各触发一次。
type TransitionSystem struct {
	duration   float64 // 单程时长（秒）
	phase      TransitionPhase
	elapsed    float64
	onMidpoint func()
	onEnd      func()
}

// NewTransitionSystem 创建过渡系统
func NewTransitionSystem(duration float64, onMidpoint, onEnd func()) *TransitionSystem {
	return &TransitionSystem{
		duration:   duration,
		onMidpoint: onMidpoint,
		onEnd:      onEnd,
	}
}

// Start 开始过渡；已在过渡中时忽略
func (t *TransitionSystem) Start() {
	if t.phase != TransitionIdle {
		return
	}
	t.phase = TransitionFadeOut
	t.elapsed = 0
}

// Phase 当前阶段
func (t *TransitionSystem) Phase() TransitionPhase {
	return t.phase
}

// Active 是否正在过渡
func (t *TransitionSystem) Active() bool {
	return t.phase != TransitionIdle
}

// Update 推进过渡
func (t *TransitionSystem) Update(deltaTime float64) {
	if t.phase == TransitionIdle || deltaTime < 0 {
		return
	}

	t.elapsed += deltaTime
	if t.elapsed < t.duration {
		return
	}

	switch t.phase {
	case TransitionFadeOut:
		t.phase = TransitionFadeIn
		t.elapsed = 0
		if t.onMidpoint != nil {
			t.onMidpoint()
		}
	case TransitionFadeIn:
		t.phase = TransitionIdle
		t.elapsed = 0
		if t.onEnd != nil {
			t.onEnd()
		}
	}
}

// Darkness 当前遮罩不透明度 [0, 1]
func (t *TransitionSystem) Darkness() float64 {
	progress := utils.Clamp01(t.elapsed / t.duration)
	switch t.phase {
	case TransitionFadeOut:
		return utils.EaseInQuad(progress)
	case TransitionFadeIn:
		return 1 - utils.EaseOutQuad(progress)
	default:
		return 0
	}
}

// Draw 绘制全屏黑色遮罩
func (t *TransitionSystem) Draw(screen *ebiten.Image) {
	alpha := t.Darkness()
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	c := color.RGBA{A: uint8(utils.Lerp(0, 255, alpha))}
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
