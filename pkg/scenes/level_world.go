package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/entities"
	"github.com/decker502/farmstead/pkg/game"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// buildWorld 按世界布局创建所有实体，返回玩家实体ID
//
// 创建顺序: 地面 → 水面 → 物体 → 碰撞块 → 交互区 → 树木（并掷骰结果）→ 玩家。
func (s *LevelScene) buildWorld(rm *game.ResourceManager, layout *config.WorldLayout, assets *levelAssets) (ecs.EntityID, error) {
	em := s.entityManager
	cfg := s.config

	entities.NewObjectEntity(em, entities.ObjectSpec{
		Image:  assets.ground,
		Bounds: utils.NewRect(0, 0, layout.Size.W, layout.Size.H),
		Layer:  types.LayerGround,
	})

	for _, cell := range layout.Water {
		topLeft := mgl64.Vec2{float64(cell.Col) * cfg.TileSize, float64(cell.Row) * cfg.TileSize}
		entities.NewWaterEntity(em, assets.water, assets.waterPlaceholder, topLeft, cfg.TileSize, cfg.Objects.WaterAnimationFPS)
	}

	for _, d := range layout.Decorations {
		inflate := entities.ObjectHitboxInflate(cfg, d.W, d.H)
		if d.Kind == "wildflower" {
			inflate = entities.WildflowerHitboxInflate(cfg, d.H)
		}
		entities.NewObjectEntity(em, entities.ObjectSpec{
			Image:         assets.decorationImage(rm, d.Kind, d.W, d.H),
			Bounds:        utils.NewRect(d.X, d.Y, d.W, d.H),
			Layer:         d.DecorationLayer(),
			HitboxInflate: inflate,
			Collidable:    d.Collide,
		})
	}

	for _, c := range layout.Colliders {
		entities.NewColliderEntity(em, utils.NewRect(c.X, c.Y, c.W, c.H))
	}

	for _, zone := range layout.Interactions {
		entities.NewInteractionEntity(em, zone.Name, utils.NewRect(zone.X, zone.Y, zone.W, zone.H))
	}

	for i, t := range layout.Trees {
		id, err := entities.NewTreeEntity(em, cfg, entities.TreeSpec{
			Size:       t.Size,
			TopLeft:    mgl64.Vec2{t.X, t.Y},
			W:          t.Art.W,
			H:          t.Art.H,
			Image:      assets.trees[t.Size],
			StumpImage: assets.stumps[t.Size],
			FruitImage: assets.apple,
		})
		if err != nil {
			return 0, fmt.Errorf("trees[%d]: %w", i, err)
		}
		s.treeSystem.CreateFruit(id)
	}

	playerID := entities.NewPlayerEntity(em, cfg, layout.PlayerStart.Vec(), assets.playerFrames, assets.playerPlaceholder)

	log.Printf("[LevelScene] World built: %d trees, %d colliders, %d interaction zones",
		len(ecs.GetEntitiesWith1[*components.TreeComponent](em)),
		len(ecs.GetEntitiesWith1[*components.CollidableComponent](em)),
		len(layout.Interactions))

	return playerID, nil
}
