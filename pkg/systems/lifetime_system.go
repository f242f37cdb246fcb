package systems

import (
	"github.com/decker502/farmstead/internal/timer"
	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/ecs"
)

// LifetimeSystem 让粒子按帧时钟到期
// 粒子在生成后的第一次 Update 开始计时，到期时不再以剪影绘制并标记销毁
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	clock         timer.Clock
}

// NewLifetimeSystem 创建生命周期系统，clock 与玩家计时器共用同一帧时钟
func NewLifetimeSystem(em *ecs.EntityManager, clock timer.Clock) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 检查到期的粒子
func (s *LifetimeSystem) Update(deltaTime float64) {
	now := s.clock.Now()
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if lifetime.Expired {
			continue
		}
		if !lifetime.Started {
			lifetime.SpawnedAt = now
			lifetime.Started = true
		}
		if lifetime.Remaining(now) > 0 {
			continue
		}

		lifetime.Expired = true
		if particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id); ok {
			particle.Silhouette = false
		}
		s.entityManager.DestroyEntity(id)
	}
}

// Active 尚未到期的粒子数量
func (s *LifetimeSystem) Active() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		if lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); !lifetime.Expired {
			count++
		}
	}
	return count
}
