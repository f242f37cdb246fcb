package entities

import (
	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// ObjectSpec 描述一个静态场景物体
type ObjectSpec struct {
	Image  *ebiten.Image
	Bounds utils.Rect  // 视觉边界（世界坐标）
	Layer  types.Layer // 绘制层级
	// HitboxInflate 碰撞盒相对视觉边界的增量（负值收缩，保持中心不变）
	HitboxInflate mgl64.Vec2
	// Collidable 是否加入碰撞集合
	Collidable bool
}

// NewObjectEntity 创建可见的静态物体（房屋、围栏、野花等）
//
// 实体加入渲染集合；Collidable 为 true 时同时加入碰撞集合。
func NewObjectEntity(em *ecs.EntityManager, spec ObjectSpec) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.SpriteComponent{Image: spec.Image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: spec.Bounds})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: spec.Layer})
	ecs.AddComponent(em, id, &components.HitboxComponent{
		Rect: spec.Bounds.Inflate(spec.HitboxInflate.X(), spec.HitboxInflate.Y()),
	})

	if spec.Collidable {
		ecs.AddComponent(em, id, &components.CollidableComponent{})
	}

	return id
}

// ObjectHitboxInflate 普通物体的碰撞盒增量：按视觉尺寸比例收缩
func ObjectHitboxInflate(cfg *config.GameConfig, w, h float64) mgl64.Vec2 {
	ratio := cfg.Objects.HitboxInflateRatio
	return mgl64.Vec2{w * ratio.X, h * ratio.Y}
}

// WildflowerHitboxInflate 野花的碰撞盒增量：宽度固定收缩，高度按比例收缩
func WildflowerHitboxInflate(cfg *config.GameConfig, h float64) mgl64.Vec2 {
	return mgl64.Vec2{cfg.Objects.WildflowerInflateW, h * cfg.Objects.WildflowerInflateRatioH}
}

// NewColliderEntity 创建不可见的碰撞块
//
// 碰撞块不参与渲染，碰撞盒等于整个矩形。
func NewColliderEntity(em *ecs.EntityManager, rect utils.Rect) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: rect})
	ecs.AddComponent(em, id, &components.HitboxComponent{Rect: rect})
	ecs.AddComponent(em, id, &components.CollidableComponent{})
	return id
}

// NewInteractionEntity 创建交互区（Bed、Trader）
// 交互区不可见，也不阻挡移动
func NewInteractionEntity(em *ecs.EntityManager, name string, rect utils.Rect) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: rect})
	ecs.AddComponent(em, id, &components.InteractionComponent{Name: name})
	return id
}

// NewWaterEntity 创建一块动画水面
//
// 参数:
//   - frames: 水面动画帧（为空时使用占位图 placeholder）
//   - topLeft: 左上角（世界坐标）
//   - tile: 格子边长
//   - fps: 动画帧率
func NewWaterEntity(em *ecs.EntityManager, frames []*ebiten.Image, placeholder *ebiten.Image, topLeft mgl64.Vec2, tile, fps float64) ecs.EntityID {
	id := em.CreateEntity()

	image := placeholder
	if len(frames) > 0 {
		image = frames[0]
	}

	ecs.AddComponent(em, id, &components.SpriteComponent{Image: image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: utils.NewRect(topLeft.X(), topLeft.Y(), tile, tile)})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: types.LayerWater})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Frames: map[string][]*ebiten.Image{WaterAnimation: frames},
		State:  WaterAnimation,
		FPS:    fps,
	})

	return id
}

// WaterAnimation 水面动画状态名
const WaterAnimation = "flow"
