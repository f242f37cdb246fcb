package entities

import (
	"testing"
	"time"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// hitboxInsideBounds 碰撞盒必须位于视觉边界之内且共享中心
func hitboxInsideBounds(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) {
	t.Helper()
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](em, id)
	hitbox, _ := ecs.GetComponent[*components.HitboxComponent](em, id)
	if bounds == nil || hitbox == nil {
		t.Fatalf("entity %d: missing bounds or hitbox", id)
	}
	if !bounds.Rect.ContainsRect(hitbox.Rect) {
		t.Errorf("entity %d: hitbox %+v not inside bounds %+v", id, hitbox.Rect, bounds.Rect)
	}
	if !bounds.Rect.Center().ApproxEqual(hitbox.Rect.Center()) {
		t.Errorf("entity %d: hitbox centre %v != bounds centre %v", id, hitbox.Rect.Center(), bounds.Rect.Center())
	}
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	placeholder := ebiten.NewImage(4, 4)

	id := NewPlayerEntity(em, cfg, mgl64.Vec2{500, 500}, nil, placeholder)

	hitboxInsideBounds(t, em, id)
	hitbox, _ := ecs.GetComponent[*components.HitboxComponent](em, id)
	if hitbox.Rect.W != 66 || hitbox.Rect.H != 122 {
		t.Errorf("hitbox size: got %vx%v, want 66x122", hitbox.Rect.W, hitbox.Rect.H)
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !player.Pos.ApproxEqual(mgl64.Vec2{500, 500}) {
		t.Errorf("Pos: got %v, want (500,500)", player.Pos)
	}
	if player.Status.AnimationKey() != "down_idle" || player.Action != types.ActionIdle {
		t.Errorf("initial status: got %s / %v", player.Status.AnimationKey(), player.Action)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Image != placeholder {
		t.Error("player without frames should show the placeholder")
	}

	// 有帧时显示第一帧
	first := ebiten.NewImage(8, 8)
	frames := map[string][]*ebiten.Image{"down_idle": {first, ebiten.NewImage(8, 8)}}
	id = NewPlayerEntity(em, cfg, mgl64.Vec2{0, 0}, frames, placeholder)
	sprite, _ = ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Image != first {
		t.Error("player should show the first idle frame")
	}
}

func TestObjectHitboxes(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name    string
		bounds  utils.Rect
		inflate mgl64.Vec2
		wantW   float64
		wantH   float64
	}{
		{"generic", utils.NewRect(0, 0, 100, 80), ObjectHitboxInflate(cfg, 100, 80), 80, 20},
		{"wildflower", utils.NewRect(0, 0, 32, 40), WildflowerHitboxInflate(cfg, 40), 12, 4},
		{"none", utils.NewRect(10, 10, 50, 50), mgl64.Vec2{}, 50, 50},
	}

	for _, tt := range tests {
		em := ecs.NewEntityManager()
		id := NewObjectEntity(em, ObjectSpec{
			Bounds:        tt.bounds,
			Layer:         types.LayerMain,
			HitboxInflate: tt.inflate,
			Collidable:    true,
		})
		hitboxInsideBounds(t, em, id)

		hitbox, _ := ecs.GetComponent[*components.HitboxComponent](em, id)
		if !mgl64.FloatEqual(hitbox.Rect.W, tt.wantW) || !mgl64.FloatEqual(hitbox.Rect.H, tt.wantH) {
			t.Errorf("%s: hitbox %vx%v, want %vx%v", tt.name, hitbox.Rect.W, hitbox.Rect.H, tt.wantW, tt.wantH)
		}
		if !ecs.HasComponent[*components.CollidableComponent](em, id) {
			t.Errorf("%s: should be collidable", tt.name)
		}
	}
}

func TestNonCollidableObject(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewObjectEntity(em, ObjectSpec{Bounds: utils.NewRect(0, 0, 64, 64), Layer: types.LayerGround})
	if ecs.HasComponent[*components.CollidableComponent](em, id) {
		t.Error("ground object should not block movement")
	}
}

func TestColliderAndInteractionAreInvisible(t *testing.T) {
	em := ecs.NewEntityManager()
	collider := NewColliderEntity(em, utils.NewRect(0, 0, 64, 64))
	zone := NewInteractionEntity(em, components.InteractionBed, utils.NewRect(100, 100, 64, 64))

	for _, id := range []ecs.EntityID{collider, zone} {
		if ecs.HasComponent[*components.SpriteComponent](em, id) {
			t.Errorf("entity %d should not be drawn", id)
		}
	}
	if !ecs.HasComponent[*components.CollidableComponent](em, collider) {
		t.Error("collider should block movement")
	}
	if ecs.HasComponent[*components.CollidableComponent](em, zone) {
		t.Error("interaction zone should not block movement")
	}
	interaction, _ := ecs.GetComponent[*components.InteractionComponent](em, zone)
	if interaction.Name != components.InteractionBed {
		t.Errorf("zone name: got %q", interaction.Name)
	}
}

func TestNewTreeEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewTreeEntity(em, cfg, TreeSpec{Size: "Large", TopLeft: mgl64.Vec2{10, 20}, W: 120, H: 160})
	if err != nil {
		t.Fatalf("NewTreeEntity() error: %v", err)
	}
	hitboxInsideBounds(t, em, id)

	tree, _ := ecs.GetComponent[*components.TreeComponent](em, id)
	if !tree.Alive || tree.Health != cfg.Tree.Health {
		t.Errorf("new tree: Alive %v Health %d", tree.Alive, tree.Health)
	}
	if len(tree.Slots) != len(cfg.Tree.Sizes["Large"].FruitSlots) {
		t.Errorf("slots: got %d, want %d", len(tree.Slots), len(cfg.Tree.Sizes["Large"].FruitSlots))
	}
	for i, slot := range tree.Slots {
		if slot.Occupied() {
			t.Errorf("slot %d should start empty", i)
		}
	}

	if _, err := NewTreeEntity(em, cfg, TreeSpec{Size: "Medium", W: 10, H: 10}); err == nil {
		t.Error("unknown tree size should fail")
	}
}

func TestNewPlantEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewPlantEntity(em, PlantSpec{
		Seed:    types.SeedTomato,
		Row:     2,
		Col:     3,
		Tile:    64,
		W:       32,
		H:       20,
		YOffset: -8,
		MaxAge:  3,
	})

	// 格子 (2,3) 底边中点 (224,192)，加偏移 -8
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](em, id)
	if !bounds.Rect.MidBottom().ApproxEqual(mgl64.Vec2{224, 184}) {
		t.Errorf("plant mid-bottom: got %v, want (224,184)", bounds.Rect.MidBottom())
	}
	layer, _ := ecs.GetComponent[*components.LayerComponent](em, id)
	if layer.Z != types.LayerGroundPlant {
		t.Errorf("layer: got %v, want ground_plant", layer.Z)
	}
}

func TestNewWaterEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	placeholder := ebiten.NewImage(64, 64)

	id := NewWaterEntity(em, nil, placeholder, mgl64.Vec2{128, 64}, 64, 5)

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Image != placeholder {
		t.Error("water without frames should show the placeholder")
	}
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](em, id)
	if bounds.Rect != utils.NewRect(128, 64, 64, 64) {
		t.Errorf("water bounds: got %+v", bounds.Rect)
	}
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.State != WaterAnimation || anim.FPS != 5 {
		t.Errorf("water animation: state %q fps %v", anim.State, anim.FPS)
	}
}

func TestNewParticleEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewParticleEntity(em, nil, utils.NewRect(0, 0, 10, 10), types.LayerFruit, 300*time.Millisecond)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.Duration != 300*time.Millisecond || lifetime.Started {
		t.Errorf("lifetime: got %+v, want 300ms not started", lifetime)
	}
	particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
	if !particle.Silhouette {
		t.Error("particles are drawn as silhouettes")
	}
}
