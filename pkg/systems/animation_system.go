package systems

import (
	"math"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/ecs"
)

// AnimationSystem 推进循环帧动画（水面等）
//
// 玩家的动画由 PlayerSystem 在移动之后推进，这里跳过玩家实体。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 推进所有非玩家实体的动画
func (s *AnimationSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range ids {
		if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
			continue
		}
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		advanceAnimation(anim, sprite, deltaTime)
	}
}

// advanceAnimation 帧索引按 FPS×dt 前进，越界回到 0，图像取 floor(索引)
// 当前状态没有帧时保持原图像
func advanceAnimation(anim *components.AnimationComponent, sprite *components.SpriteComponent, deltaTime float64) {
	frames := anim.Frames[anim.State]
	if len(frames) == 0 {
		return
	}

	anim.FrameIndex += anim.FPS * deltaTime
	if anim.FrameIndex >= float64(len(frames)) || anim.FrameIndex < 0 {
		anim.FrameIndex = 0
	}

	sprite.Image = frames[int(math.Floor(anim.FrameIndex))]
}
