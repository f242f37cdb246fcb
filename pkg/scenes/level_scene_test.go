package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// testLayout 640×640 的小地图：(1..2, 1..2) 可耕，床和商人各一个交互区
func testLayout() *config.WorldLayout {
	return &config.WorldLayout{
		Size:        config.SizeConfig{W: 640, H: 640},
		PlayerStart: config.OffsetConfig{X: 96, Y: 96},
		Colliders:   []config.RectConfig{{X: 0, Y: 600, W: 640, H: 40}},
		Interactions: []config.InteractionConfig{
			{Name: components.InteractionBed, RectConfig: config.RectConfig{X: 400, Y: 400, W: 100, H: 100}},
			{Name: components.InteractionTrader, RectConfig: config.RectConfig{X: 400, Y: 100, W: 100, H: 100}},
		},
		Trees: []config.TreeSpawnConfig{
			{X: 250, Y: 300, Size: "Small", Art: config.SizeConfig{W: 100, H: 120}},
		},
		Decorations: []config.DecorationConfig{
			{Kind: "wildflower", RectConfig: config.RectConfig{X: 200, Y: 500, W: 32, H: 32}, Collide: true},
		},
		Water:    []config.CellConfig{{Col: 8, Row: 8}},
		Farmable: []config.CellRectConfig{{Col: 1, Row: 1, Cols: 2, Rows: 2}},
	}
}

type levelFixture struct {
	scene *LevelScene
	input *utils.ScriptedInput
}

func newLevelFixture(t *testing.T, rainChance float64) *levelFixture {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Assets.GraphicsDir = t.TempDir()
	cfg.Day.RainChance = rainChance

	input := utils.NewScriptedInput()
	scene, err := NewLevelScene(LevelDeps{
		Config: cfg,
		Layout: testLayout(),
		Input:  input,
		Rand:   rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewLevelScene() error: %v", err)
	}
	return &levelFixture{scene: scene, input: input}
}

// moveTo 把玩家中心直接放到指定位置
func (f *levelFixture) moveTo(center mgl64.Vec2) {
	em := f.scene.EntityManager()
	id := f.scene.Player().PlayerID()
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](em, id)
	hitbox, _ := ecs.GetComponent[*components.HitboxComponent](em, id)
	bounds.Rect.SetCenter(center)
	hitbox.Rect.SetCenter(center)
	f.playerComponent().Pos = center
}

func (f *levelFixture) playerComponent() *components.PlayerComponent {
	player, _ := ecs.GetComponent[*components.PlayerComponent](f.scene.EntityManager(), f.scene.Player().PlayerID())
	return player
}

func TestNewLevelSceneBuildsWorld(t *testing.T) {
	f := newLevelFixture(t, 0)
	em := f.scene.EntityManager()

	if got := len(ecs.GetEntitiesWith1[*components.TreeComponent](em)); got != 1 {
		t.Errorf("trees: got %d, want 1", got)
	}
	if got := len(ecs.GetEntitiesWith1[*components.InteractionComponent](em)); got != 2 {
		t.Errorf("interaction zones: got %d, want 2", got)
	}
	// 碰撞块 + 野花 + 树
	if got := len(ecs.GetEntitiesWith1[*components.CollidableComponent](em)); got != 3 {
		t.Errorf("collidables: got %d, want 3", got)
	}
	if !ecs.HasComponent[*components.PlayerComponent](em, f.scene.Player().PlayerID()) {
		t.Error("player entity missing")
	}
	if f.scene.Day() != 1 || f.scene.Raining() {
		t.Errorf("initial day: got day %d raining %v", f.scene.Day(), f.scene.Raining())
	}
}

func TestNewLevelSceneRejectsBadLayout(t *testing.T) {
	if _, err := NewLevelScene(LevelDeps{Config: config.DefaultGameConfig()}); err == nil {
		t.Error("missing layout should fail")
	}

	layout := testLayout()
	layout.Trees[0].Size = "Huge"
	cfg := config.DefaultGameConfig()
	cfg.Assets.GraphicsDir = t.TempDir()
	if _, err := NewLevelScene(LevelDeps{Config: cfg, Layout: layout}); err == nil {
		t.Error("unknown tree size should fail")
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name     string
		dt, max  float64
		expected float64
	}{
		{"normal", 0.016, 0.1, 0.016},
		{"negative", -1, 0.1, 0},
		{"too large", 5, 0.1, 0.1},
		{"no limit", 5, 0, 5},
	}
	for _, tt := range tests {
		if got := clampDelta(tt.dt, tt.max); got != tt.expected {
			t.Errorf("%s: clampDelta(%v, %v) = %v, want %v", tt.name, tt.dt, tt.max, got, tt.expected)
		}
	}
}

func TestLevelNegativeDeltaIsNoOp(t *testing.T) {
	f := newLevelFixture(t, 0)
	f.input.Set(types.ControlRight)

	before := f.scene.Player().PlayerID()
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](f.scene.EntityManager(), before)
	start := bounds.Rect

	f.scene.Update(-0.5)
	if bounds.Rect != start {
		t.Errorf("negative dt moved the player: %+v -> %+v", start, bounds.Rect)
	}
}

func TestLevelHarvest(t *testing.T) {
	f := newLevelFixture(t, 0)
	soil := f.scene.Soil()
	center := mgl64.Vec2{96, 96}

	soil.Till(center)
	if !soil.PlantSeed(center, types.SeedCorn) {
		t.Fatal("PlantSeed failed")
	}
	id := soil.PlantAt(1, 1)

	// 未成熟时不收获
	f.scene.Update(0.016)
	if f.scene.Inventory().Count(types.ItemCorn) != 0 {
		t.Fatal("unripe plant was harvested")
	}

	plant, _ := ecs.GetComponent[*components.PlantComponent](f.scene.EntityManager(), id)
	plant.Harvestable = true
	f.scene.Update(0.016)

	if got := f.scene.Inventory().Count(types.ItemCorn); got != 1 {
		t.Errorf("corn: got %d, want 1", got)
	}
	if f.scene.EntityManager().Exists(id) {
		t.Error("harvested plant should be removed")
	}
	if soil.PlantAt(1, 1) != 0 {
		t.Error("soil cell should be empty after harvest")
	}

	particles := ecs.GetEntitiesWith1[*components.LifetimeComponent](f.scene.EntityManager())
	if len(particles) != 1 {
		t.Fatalf("particles: got %d, want 1", len(particles))
	}
	layer, _ := ecs.GetComponent[*components.LayerComponent](f.scene.EntityManager(), particles[0])
	if layer.Z != types.LayerMain {
		t.Errorf("harvest particle layer: got %v, want main", layer.Z)
	}

	// 已收获的格子可以重新播种
	if !soil.PlantSeed(center, types.SeedTomato) {
		t.Error("harvested cell should accept a new seed")
	}
}

func TestLevelShopPausesWorld(t *testing.T) {
	f := newLevelFixture(t, 0)
	f.moveTo(mgl64.Vec2{450, 150})

	f.input.Set(types.ControlInteract)
	f.scene.Update(0.016)
	if !f.scene.ShopOpen() {
		t.Fatal("interacting with the trader should open the shop")
	}

	// 按住交互键不会立即关闭，世界暂停
	f.input.Set(types.ControlInteract, types.ControlDown)
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](f.scene.EntityManager(), f.scene.Player().PlayerID())
	start := bounds.Rect
	for i := 0; i < 10; i++ {
		f.scene.Update(0.016)
	}
	if !f.scene.ShopOpen() {
		t.Fatal("holding interact should not close the shop")
	}
	if bounds.Rect != start {
		t.Error("player moved while the shop was open")
	}

	f.input.Set()
	f.scene.Update(0.016)
	f.input.Set(types.ControlInteract)
	f.scene.Update(0.016)
	if f.scene.ShopOpen() {
		t.Error("a fresh interact press should close the shop")
	}
}

func TestLevelSleepStartsNewDay(t *testing.T) {
	for _, tt := range []struct {
		name       string
		rainChance float64
	}{
		{"dry", 0},
		{"rain", 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newLevelFixture(t, tt.rainChance)
			soil := f.scene.Soil()

			center := mgl64.Vec2{96, 96}
			soil.Till(center)
			soil.PlantSeed(center, types.SeedCorn)
			soil.Water(center)
			id := soil.PlantAt(1, 1)

			f.moveTo(mgl64.Vec2{450, 450})
			f.input.Set(types.ControlInteract)
			f.scene.Update(0.016)
			if !f.playerComponent().Sleeping {
				t.Fatal("interacting with the bed should put the player to sleep")
			}
			f.input.Set()

			for i := 0; i < 50; i++ {
				f.scene.Update(0.1)
			}

			if f.scene.Day() != 2 {
				t.Errorf("Day: got %d, want 2", f.scene.Day())
			}
			if f.playerComponent().Sleeping {
				t.Error("player should wake up after the transition")
			}
			plant, _ := ecs.GetComponent[*components.PlantComponent](f.scene.EntityManager(), id)
			if plant == nil || plant.Age != 1 {
				t.Fatalf("plant should have grown one stage, got %+v", plant)
			}
			if soil.Watered(1, 1) != f.scene.Raining() {
				t.Errorf("Watered: got %v, want %v (raining)", soil.Watered(1, 1), f.scene.Raining())
			}
		})
	}
}

func TestLevelDraw(t *testing.T) {
	f := newLevelFixture(t, 0)
	screen := ebiten.NewImage(1280, 720)

	f.scene.Draw(screen)

	f.scene.ToggleShop()
	f.scene.Draw(screen)
}
