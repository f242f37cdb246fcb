package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 深度排序的世界渲染
//
// 渲染集合 = 拥有 Sprite + Bounds + Layer 组件的实体。
// 每帧重新排序：层级为主键（按配置顺序从底到顶），
// 同层内按视觉边界纵向中心升序（画家算法，屏幕上越靠下越后画）。
// 两个键都相同时保持实体ID升序，排序结果稳定。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	layerRank     map[types.Layer]int

	// DebugHitboxes 绘制碰撞盒轮廓
	DebugHitboxes bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.GameConfig) *RenderSystem {
	rank := make(map[types.Layer]int, len(cfg.LayerOrder()))
	for i, layer := range cfg.LayerOrder() {
		rank[layer] = i
	}
	return &RenderSystem{
		entityManager: em,
		config:        cfg,
		layerRank:     rank,
		DebugHitboxes: cfg.Debug.ShowHitboxes,
	}
}

// Offset 滚动偏移 = 焦点实体视觉中心 - 视口半尺寸
// 焦点实体不存在时返回零向量
func (s *RenderSystem) Offset(focus ecs.EntityID) mgl64.Vec2 {
	bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, focus)
	if !ok {
		return mgl64.Vec2{}
	}
	half := mgl64.Vec2{s.config.Screen.W / 2, s.config.Screen.H / 2}
	return bounds.Rect.Center().Sub(half)
}

// DrawOrder 返回本帧的绘制顺序
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[
		*components.SpriteComponent,
		*components.BoundsComponent,
		*components.LayerComponent,
	](s.entityManager)

	type sortKey struct {
		rank    int
		centerY float64
	}
	keys := make(map[ecs.EntityID]sortKey, len(ids))
	for _, id := range ids {
		layer, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		keys[id] = sortKey{rank: s.rank(layer.Z), centerY: bounds.Rect.CenterY()}
	}

	sort.SliceStable(ids, func(i, j int) bool {
		a, b := keys[ids[i]], keys[ids[j]]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.centerY < b.centerY
	})
	return ids
}

// rank 层级在配置顺序中的位置，未配置的层级排在最后
func (s *RenderSystem) rank(layer types.Layer) int {
	if r, ok := s.layerRank[layer]; ok {
		return r
	}
	return len(s.layerRank) + int(layer)
}

// Draw 以 focus 为镜头中心绘制整个世界
// 每个实体的屏幕位置 = 视觉边界左上角 - 偏移
func (s *RenderSystem) Draw(screen *ebiten.Image, focus ecs.EntityID) {
	offset := s.Offset(focus)

	for _, id := range s.DrawOrder() {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		pos := bounds.Rect.TopLeft().Sub(offset)

		if particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id); ok && particle.Silhouette {
			drawSilhouette(screen, sprite.Image, pos)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X(), pos.Y())
		screen.DrawImage(sprite.Image, op)
	}

	if s.DebugHitboxes {
		s.drawHitboxes(screen, offset)
	}
}

// drawSilhouette 以纯白剪影绘制图像（保留原 alpha）
func drawSilhouette(screen, image *ebiten.Image, pos mgl64.Vec2) {
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, 1)
	cm.Translate(1, 1, 1, 0)

	op := &colorm.DrawImageOptions{}
	op.GeoM.Translate(pos.X(), pos.Y())
	colorm.DrawImage(screen, image, cm, op)
}

var hitboxColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}

func (s *RenderSystem) drawHitboxes(screen *ebiten.Image, offset mgl64.Vec2) {
	ids := ecs.GetEntitiesWith1[*components.HitboxComponent](s.entityManager)
	for _, id := range ids {
		hitbox, _ := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)
		r := hitbox.Rect
		vector.StrokeRect(screen,
			float32(r.X-offset.X()), float32(r.Y-offset.Y()),
			float32(r.W), float32(r.H),
			1, hitboxColor, false)
	}
}
