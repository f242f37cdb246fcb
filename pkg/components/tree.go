package components

import (
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// FruitSlot 树上的一个果实槽位
type FruitSlot struct {
	Offset mgl64.Vec2   // 相对树木左上角
	Fruit  ecs.EntityID // 占用该槽位的果实实体，0 表示空
}

// Occupied 槽位是否有果实
func (s FruitSlot) Occupied() bool {
	return s.Fruit != 0
}

// TreeComponent 可砍伐、可重新结果的树
//
// 状态机: 存活 →（受伤 × N）→ 死亡（终态）。
// 死亡后生命值和果实不再变化，再次受伤是无操作。
type TreeComponent struct {
	Size   string // "Small" | "Large"
	Health int
	Alive  bool

	Slots []FruitSlot

	FruitImage *ebiten.Image
	StumpImage *ebiten.Image
}

// FruitComponent 标记挂在树上的果实
type FruitComponent struct {
	Tree ecs.EntityID
	Slot int
}
