package entities

import (
	"time"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewParticleEntity 创建一个短暂的剪影粒子
//
// 粒子复用源实体的图像和边界，以纯白剪影绘制，duration 之后由 LifetimeSystem 销毁。
//
// 参数:
//   - em: 实体管理器
//   - image: 源图像
//   - bounds: 源实体的视觉边界（粒子出现在其左上角）
//   - layer: 绘制层级
//   - duration: 存活时长
//
// 返回:
//   - ecs.EntityID: 粒子实体ID
func NewParticleEntity(em *ecs.EntityManager, image *ebiten.Image, bounds utils.Rect, layer types.Layer, duration time.Duration) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.SpriteComponent{Image: image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: bounds})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: layer})
	ecs.AddComponent(em, id, &components.ParticleComponent{Silhouette: true})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Duration: duration})

	return id
}
