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

// NewPlayerEntity 创建玩家实体
//
// 玩家的视觉边界以 start 为中心，碰撞盒按配置收缩并居中。
// 初始状态: 朝下、空闲、第一个工具和第一个种子。
// 动作计时器由 PlayerSystem 绑定。
//
// 参数:
//   - frames: 状态名 -> 动画帧（可以缺少部分状态）
//   - placeholder: 缺少帧时显示的图像
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig, start mgl64.Vec2, frames map[string][]*ebiten.Image, placeholder *ebiten.Image) ecs.EntityID {
	id := em.CreateEntity()

	bounds := utils.NewRect(0, 0, cfg.Player.Size.W, cfg.Player.Size.H)
	bounds.SetCenter(start)
	hitbox := bounds.Inflate(cfg.Player.HitboxInflate.W, cfg.Player.HitboxInflate.H)

	status := components.PlayerStatus{Facing: types.FacingDown, Suffix: components.SuffixIdle}

	image := placeholder
	if f := frames[status.AnimationKey()]; len(f) > 0 {
		image = f[0]
	}

	ecs.AddComponent(em, id, &components.PlayerComponent{
		Pos:    hitbox.Center(),
		Status: status,
		Action: types.ActionIdle,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: bounds})
	ecs.AddComponent(em, id, &components.HitboxComponent{Rect: hitbox})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: types.LayerMain})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Frames: frames,
		State:  status.AnimationKey(),
		FPS:    cfg.Player.AnimationFPS,
	})

	return id
}
