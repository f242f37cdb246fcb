package components

import (
	"github.com/decker502/farmstead/internal/timer"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// 动画状态后缀
const (
	SuffixIdle   = "idle"
	SuffixMoving = "moving"
)

// PlayerStatus 玩家状态 = 朝向 + 后缀
// 后缀取值: idle、moving 或工具名（hoe/axe/water）
type PlayerStatus struct {
	Facing types.Facing
	Suffix string
}

// AnimationKey 返回动画帧集合的键名
// 移动动画直接用朝向名（"down"），其余为 "朝向_后缀"（"down_idle"、"left_axe"）
func (s PlayerStatus) AnimationKey() string {
	if s.Suffix == SuffixMoving {
		return s.Facing.String()
	}
	return s.Facing.String() + "_" + s.Suffix
}

// PlayerTimers 玩家的四个动作门控计时器
type PlayerTimers struct {
	ToolUse    *timer.Timer // 工具使用（到期时执行工具效果）
	ToolSwitch *timer.Timer // 工具切换冷却
	SeedUse    *timer.Timer // 播种（到期时种下种子）
	SeedSwitch *timer.Timer // 种子切换冷却
}

// PlayerComponent 玩家控制器状态
//
// 位置使用连续坐标（亚像素），碰撞盒中心每帧对齐到取整后的位置。
// 计时器由 PlayerSystem 创建并绑定回调。
type PlayerComponent struct {
	Pos       mgl64.Vec2 // 连续位置（碰撞盒中心）
	Direction mgl64.Vec2 // 输入方向（归一化前）
	Status    PlayerStatus
	Action    types.Action
	Sleeping  bool

	// InteractHeld 上一帧交互键是否按下（交互按边沿触发）
	InteractHeld bool

	ToolIndex int // 指向配置中的工具列表
	SeedIndex int // 指向配置中的种子列表

	// Target 工具/种子作用点：碰撞盒中心 + 朝向偏移
	Target mgl64.Vec2

	Timers PlayerTimers
}
