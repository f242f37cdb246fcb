package components

import (
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
)

// BoundsComponent 实体的视觉边界（世界坐标）
// 渲染位置和深度排序都基于它
type BoundsComponent struct {
	Rect utils.Rect
}

// HitboxComponent 实体的碰撞盒（世界坐标）
// 不变量：碰撞盒位于视觉边界之内且居中，
// 使高大的精灵可以在视觉上重叠而不会在整幅轮廓处挡住移动
type HitboxComponent struct {
	Rect utils.Rect
}

// LayerComponent 绘制层级
type LayerComponent struct {
	Z types.Layer
}

// CollidableComponent 标记实体属于碰撞集合
// 玩家移动时会被这些实体的碰撞盒阻挡
type CollidableComponent struct{}

// InteractionComponent 标记实体属于交互集合
// 玩家碰撞盒与其视觉边界重叠并按下交互键时，按 Name 分派
type InteractionComponent struct {
	Name string // "Bed"、"Trader" 等
}

// InteractionBed 床：进入睡眠，触发新的一天
const InteractionBed = "Bed"

// InteractionTrader 商人：切换商店
const InteractionTrader = "Trader"
