package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/entities"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
)

// TreeSystem 树木生命周期
//
// 状态机: 存活 →（受伤 × health）→ 死亡。死亡是终态：
// 树桩不再受伤、不再结果，也不响应重新结果。
type TreeSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
	items         ItemSink
	sounds        SoundPlayer
	spawns        *SpawnQueue
}

// NewTreeSystem 创建树木系统
//
// 参数:
//   - rng: 果实掷骰和摘果选择使用的随机源（测试中传入固定种子）
//   - items: 接收苹果和木材
//   - sounds: 可为 nil
//   - spawns: 粒子生成队列
func NewTreeSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand, items ItemSink, sounds SoundPlayer, spawns *SpawnQueue) *TreeSystem {
	if sounds == nil {
		sounds = nopSounds{}
	}
	return &TreeSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		items:         items,
		sounds:        sounds,
		spawns:        spawns,
	}
}

// Damage 对树造成一点伤害
//
// 死亡的树或非树实体直接返回。有果实时随机摘下一个（苹果入库并留下剪影粒子），
// 伤害之后立即做死亡检查，所以第 health 次伤害就完成死亡转换。
func (s *TreeSystem) Damage(id ecs.EntityID) {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return
	}

	tree.Health--
	s.sounds.PlaySound(s.config.Sounds.Axe)

	occupied := make([]int, 0, len(tree.Slots))
	for i, slot := range tree.Slots {
		if slot.Occupied() {
			occupied = append(occupied, i)
		}
	}
	if len(occupied) > 0 {
		s.pickFruit(tree, occupied[s.rng.Intn(len(occupied))])
	}

	s.checkDeath(id, tree)
}

// pickFruit 摘下槽位上的果实
func (s *TreeSystem) pickFruit(tree *components.TreeComponent, slot int) {
	fruitID := tree.Slots[slot].Fruit
	tree.Slots[slot].Fruit = 0

	if bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, fruitID); ok {
		var image = tree.FruitImage
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, fruitID); ok {
			image = sprite.Image
		}
		s.spawns.Push(SpawnRequest{
			Image:    image,
			Bounds:   bounds.Rect,
			Layer:    types.LayerFruit,
			Duration: config.Ms(s.config.Particles.FruitMs),
		})
	}

	if s.items != nil {
		s.items.AddItem(types.ItemApple)
	}
	s.entityManager.DestroyEntity(fruitID)
}

// Update 对所有存活的树做死亡检查
func (s *TreeSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager)
	for _, id := range ids {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		if tree.Alive {
			s.checkDeath(id, tree)
		}
	}
}

// checkDeath 生命值耗尽时转换为树桩，由 Alive 保证只执行一次
func (s *TreeSystem) checkDeath(id ecs.EntityID, tree *components.TreeComponent) {
	if !tree.Alive || tree.Health > 0 {
		return
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
	hitbox, _ := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)
	if sprite == nil || bounds == nil || hitbox == nil {
		return
	}

	s.spawns.Push(SpawnRequest{
		Image:    sprite.Image,
		Bounds:   bounds.Rect,
		Layer:    types.LayerFruit,
		Duration: config.Ms(s.config.Particles.TreeMs),
	})

	stump := s.stumpSize(tree)
	sprite.Image = tree.StumpImage
	bounds.Rect = utils.NewRectMidBottom(bounds.Rect.MidBottom(), stump.W, stump.H)
	hitbox.Rect = bounds.Rect.Inflate(
		s.config.Tree.StumpHitboxInflateW,
		bounds.Rect.H*s.config.Tree.StumpHitboxInflateRatio,
	)

	tree.Alive = false
	if s.items != nil {
		s.items.AddItem(types.ItemWood)
	}
	log.Printf("[TreeSystem] Tree %d felled", id)
}

// stumpSize 树桩尺寸：优先取配置，没有配置时用树桩图像尺寸
func (s *TreeSystem) stumpSize(tree *components.TreeComponent) config.SizeConfig {
	if sizeCfg, ok := s.config.TreeSize(tree.Size); ok && sizeCfg.Stump.W > 0 && sizeCfg.Stump.H > 0 {
		return sizeCfg.Stump
	}
	if tree.StumpImage != nil {
		b := tree.StumpImage.Bounds()
		return config.SizeConfig{W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return config.SizeConfig{}
}

// CreateFruit 为每个空槽位独立掷骰，命中则生成果实
func (s *TreeSystem) CreateFruit(id ecs.EntityID) {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return
	}
	bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
	if !ok {
		return
	}

	fruitSize := config.SizeConfig{}
	if sizeCfg, ok := s.config.TreeSize(tree.Size); ok {
		fruitSize = sizeCfg.FruitSize
	}

	for i := range tree.Slots {
		if tree.Slots[i].Occupied() {
			continue
		}
		if s.rng.Float64() >= s.config.Tree.FruitChance {
			continue
		}
		topLeft := bounds.Rect.TopLeft().Add(tree.Slots[i].Offset)
		rect := utils.NewRect(topLeft.X(), topLeft.Y(), fruitSize.W, fruitSize.H)
		tree.Slots[i].Fruit = entities.NewFruitEntity(s.entityManager, tree.FruitImage, rect, id, i)
	}
}

// Regrow 新的一天：清掉所有果实并重新掷骰
// 死亡的树忽略重新结果
func (s *TreeSystem) Regrow(id ecs.EntityID) {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return
	}

	for i := range tree.Slots {
		if tree.Slots[i].Occupied() {
			s.entityManager.DestroyEntity(tree.Slots[i].Fruit)
			tree.Slots[i].Fruit = 0
		}
	}
	s.CreateFruit(id)
}

// RegrowAll 对所有树执行 Regrow
func (s *TreeSystem) RegrowAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager) {
		s.Regrow(id)
	}
}

// FruitCount 树上当前的果实数
func (s *TreeSystem) FruitCount(id ecs.EntityID) int {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok {
		return 0
	}
	n := 0
	for _, slot := range tree.Slots {
		if slot.Occupied() {
			n++
		}
	}
	return n
}
