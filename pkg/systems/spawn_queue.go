package systems

import (
	"time"

	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/entities"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpawnRequest 派生实体的生成请求
//
// 系统（树木、收获）不直接把派生实体插入世界，而是排入请求，
// 由帧编排者在同一帧内统一创建。
type SpawnRequest struct {
	Image    *ebiten.Image
	Bounds   utils.Rect
	Layer    types.Layer
	Duration time.Duration
}

// SpawnQueue 生成请求队列
type SpawnQueue struct {
	pending []SpawnRequest
}

// NewSpawnQueue 创建空队列
func NewSpawnQueue() *SpawnQueue {
	return &SpawnQueue{pending: make([]SpawnRequest, 0, 8)}
}

// Push 追加一个请求
func (q *SpawnQueue) Push(req SpawnRequest) {
	q.pending = append(q.pending, req)
}

// Len 待处理请求数
func (q *SpawnQueue) Len() int {
	return len(q.pending)
}

// Drain 取出全部请求并清空队列
func (q *SpawnQueue) Drain() []SpawnRequest {
	out := q.pending
	q.pending = make([]SpawnRequest, 0, cap(out))
	return out
}

// SpawnPending 创建队列中所有的粒子实体，返回新实体ID（按请求顺序）
func (q *SpawnQueue) SpawnPending(em *ecs.EntityManager) []ecs.EntityID {
	reqs := q.Drain()
	ids := make([]ecs.EntityID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, entities.NewParticleEntity(em, req.Image, req.Bounds, req.Layer, req.Duration))
	}
	return ids
}
