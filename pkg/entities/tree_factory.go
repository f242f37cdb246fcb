package entities

import (
	"fmt"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// TreeSpec 描述一棵树的生成参数
type TreeSpec struct {
	Size    string // "Small" | "Large"
	TopLeft mgl64.Vec2
	W, H    float64 // 树木图像尺寸

	Image      *ebiten.Image
	StumpImage *ebiten.Image
	FruitImage *ebiten.Image
}

// NewTreeEntity 创建一棵存活的树
//
// 树加入渲染集合与碰撞集合。果实槽位按尺寸从配置读取，初始全部为空，
// 由 TreeSystem.CreateFruit 掷骰填充。
//
// 返回:
//   - error: 配置中没有该尺寸的参数
func NewTreeEntity(em *ecs.EntityManager, cfg *config.GameConfig, spec TreeSpec) (ecs.EntityID, error) {
	sizeCfg, ok := cfg.TreeSize(spec.Size)
	if !ok {
		return 0, fmt.Errorf("unknown tree size %q", spec.Size)
	}

	bounds := utils.NewRect(spec.TopLeft.X(), spec.TopLeft.Y(), spec.W, spec.H)

	slots := make([]components.FruitSlot, len(sizeCfg.FruitSlots))
	for i, offset := range sizeCfg.FruitSlots {
		slots[i] = components.FruitSlot{Offset: offset.Vec()}
	}

	id := NewObjectEntity(em, ObjectSpec{
		Image:         spec.Image,
		Bounds:        bounds,
		Layer:         types.LayerMain,
		HitboxInflate: ObjectHitboxInflate(cfg, spec.W, spec.H),
		Collidable:    true,
	})

	ecs.AddComponent(em, id, &components.TreeComponent{
		Size:       spec.Size,
		Health:     cfg.Tree.Health,
		Alive:      true,
		Slots:      slots,
		FruitImage: spec.FruitImage,
		StumpImage: spec.StumpImage,
	})

	return id, nil
}

// NewFruitEntity 创建挂在树上的果实
//
// 果实只参与渲染（fruit 层），不阻挡移动。
func NewFruitEntity(em *ecs.EntityManager, image *ebiten.Image, bounds utils.Rect, tree ecs.EntityID, slot int) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.SpriteComponent{Image: image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: bounds})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: types.LayerFruit})
	ecs.AddComponent(em, id, &components.FruitComponent{Tree: tree, Slot: slot})

	return id
}
