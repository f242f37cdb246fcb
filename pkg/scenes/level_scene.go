package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/farmstead/internal/timer"
	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/game"
	"github.com/decker502/farmstead/pkg/systems"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// BackgroundColor 世界之外的底色
var BackgroundColor = color.RGBA{R: 32, G: 48, B: 32, A: 255}

// LevelDeps 关卡场景的依赖
type LevelDeps struct {
	Config    *config.GameConfig
	Layout    *config.WorldLayout
	Resources *game.ResourceManager
	// Audio 可为 nil（静音）
	Audio *game.AudioManager
	Input utils.InputSource
	// Rand 天气和果实的随机源，nil 时按当前时间播种
	Rand *rand.Rand
}

// LevelScene 农场关卡：每帧的编排者
//
// Update 的顺序固定：
//
//	裁剪 dt → 推进帧时钟 → 商店闸门 → 玩家 → 树木 → 动画 → 生命周期
//	→ 收获检测 → 生成派生实体 → 清理已销毁实体 → 睡眠过渡
//
// 商店打开时世界暂停，只处理关闭商店的输入。
type LevelScene struct {
	config *config.GameConfig
	input  utils.InputSource
	audio  *game.AudioManager
	rng    *rand.Rand

	// ECS Framework and Systems
	entityManager   *ecs.EntityManager
	clock           *timer.FrameClock
	spawns          *systems.SpawnQueue
	inventory       *game.Inventory
	playerSystem    *systems.PlayerSystem
	treeSystem      *systems.TreeSystem
	soilSystem      *systems.SoilSystem
	animationSystem *systems.AnimationSystem
	lifetimeSystem  *systems.LifetimeSystem
	renderSystem    *systems.RenderSystem
	overlaySystem   *systems.OverlaySystem
	transition      *systems.TransitionSystem

	shopOpen         bool
	shopInteractHeld bool
	raining          bool
	day              int
}

// NewLevelScene 创建关卡并搭建世界
//
// 返回:
//   - error: 世界布局无法实例化（例如未知的树木尺寸）
func NewLevelScene(deps LevelDeps) (*LevelScene, error) {
	if deps.Config == nil || deps.Layout == nil {
		return nil, fmt.Errorf("level scene requires a game config and a world layout")
	}
	if deps.Resources == nil {
		deps.Resources = game.NewResourceManager(nil)
	}
	if deps.Input == nil {
		deps.Input = utils.NewScriptedInput()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 接口变量必须保持 nil，不能装入 nil 指针
	var sounds systems.SoundPlayer
	if deps.Audio != nil {
		sounds = deps.Audio
	}

	s := &LevelScene{
		config:        deps.Config,
		input:         deps.Input,
		audio:         deps.Audio,
		rng:           deps.Rand,
		entityManager: ecs.NewEntityManager(),
		clock:         timer.NewFrameClock(),
		spawns:        systems.NewSpawnQueue(),
		day:           1,
	}

	s.inventory = game.NewInventory(sounds, deps.Config.Sounds.Success)

	assets := loadLevelAssets(deps.Resources, deps.Config, deps.Layout)

	rows, cols := utils.GridSize(deps.Layout.Size.W, deps.Layout.Size.H, deps.Config.TileSize)
	s.soilSystem = systems.NewSoilSystem(s.entityManager, deps.Config, rows, cols, deps.Layout.Farmable, assets.soil, sounds)
	s.treeSystem = systems.NewTreeSystem(s.entityManager, deps.Config, s.rng, s.inventory, sounds, s.spawns)
	s.animationSystem = systems.NewAnimationSystem(s.entityManager)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager, s.clock)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, deps.Config)

	playerID, err := s.buildWorld(deps.Resources, deps.Layout, assets)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	s.playerSystem = systems.NewPlayerSystem(s.entityManager, deps.Config, s.clock, playerID, systems.PlayerDeps{
		Input:  deps.Input,
		Soil:   s.soilSystem,
		Trees:  s.treeSystem,
		Shop:   s,
		Sounds: sounds,
	})
	s.overlaySystem = systems.NewOverlaySystem(deps.Config, s.playerSystem, s.inventory, assets.tools, assets.seeds)
	s.transition = systems.NewTransitionSystem(deps.Config.Day.TransitionSeconds, s.startNewDay, s.playerSystem.WakeUp)

	s.raining = s.rng.Float64() < deps.Config.Day.RainChance
	s.soilSystem.SetRaining(s.raining)

	log.Printf("[LevelScene] Level ready: %d entities, raining=%v", s.entityManager.EntityCount(), s.raining)
	return s, nil
}

// OnEnter 开始播放背景音乐（实现 game.SceneLifecycle）
func (s *LevelScene) OnEnter() {
	if s.audio != nil {
		s.audio.PlayMusic(s.config.Sounds.Music)
	}
}

// OnExit 停止背景音乐
func (s *LevelScene) OnExit() {
	if s.audio != nil {
		s.audio.StopMusic()
	}
}

// clampDelta 把帧间隔限制在 [0, maxDelta]
// maxDelta <= 0 表示不设上限
func clampDelta(deltaTime, maxDelta float64) float64 {
	if deltaTime < 0 {
		return 0
	}
	if maxDelta > 0 && deltaTime > maxDelta {
		return maxDelta
	}
	return deltaTime
}

// Update 推进一帧
func (s *LevelScene) Update(deltaTime float64) {
	deltaTime = clampDelta(deltaTime, s.config.MaxFrameDelta)
	s.clock.Advance(deltaTime)

	if s.shopOpen {
		s.updateShop()
		return
	}

	s.playerSystem.Update(deltaTime)    // 1. 输入、计时器、移动与碰撞、玩家动画
	s.treeSystem.Update(deltaTime)      // 2. 树木死亡检查
	s.animationSystem.Update(deltaTime) // 3. 水面等循环动画
	s.lifetimeSystem.Update(deltaTime)  // 4. 粒子到期
	s.harvest()                         // 5. 收获成熟作物
	s.spawns.SpawnPending(s.entityManager)
	s.entityManager.RemoveMarkedEntities() // 清理已销毁实体（总是最后）

	if s.playerSleeping() {
		s.transition.Start()
	}
	s.transition.Update(deltaTime)
}

// updateShop 商店打开时只响应关闭（交互键的按下沿）
func (s *LevelScene) updateShop() {
	pressed := s.input.IsPressed(types.ControlInteract)
	if pressed && !s.shopInteractHeld {
		s.ToggleShop()
	}
	s.shopInteractHeld = pressed
}

// ToggleShop 打开或关闭商店（实现 systems.ShopToggler）
func (s *LevelScene) ToggleShop() {
	s.shopOpen = !s.shopOpen
	// 打开商店的那次按键不能立即把商店关上
	s.shopInteractHeld = true
	log.Printf("[LevelScene] Shop open: %v", s.shopOpen)
}

// harvest 收获与玩家碰撞盒重叠的成熟作物
func (s *LevelScene) harvest() {
	hitbox, ok := ecs.GetComponent[*components.HitboxComponent](s.entityManager, s.playerSystem.PlayerID())
	if !ok {
		return
	}

	ids := ecs.GetEntitiesWith2[*components.PlantComponent, *components.BoundsComponent](s.entityManager)
	for _, id := range ids {
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if !plant.Harvestable || !bounds.Rect.Overlaps(hitbox.Rect) || s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		s.inventory.AddItem(plant.Seed.Item())

		var image *ebiten.Image
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			image = sprite.Image
		}
		s.spawns.Push(systems.SpawnRequest{
			Image:    image,
			Bounds:   bounds.Rect,
			Layer:    types.LayerMain,
			Duration: config.Ms(s.config.Particles.HarvestMs),
		})
		s.entityManager.DestroyEntity(id)

		row, col := utils.WorldToCell(bounds.Rect.Center(), s.config.TileSize)
		s.soilSystem.RemovePlant(row, col)
		log.Printf("[LevelScene] Harvested %s at (%d, %d)", plant.Seed, row, col)
	}
}

func (s *LevelScene) playerSleeping() bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerSystem.PlayerID())
	return ok && player.Sleeping
}

// startNewDay 新的一天（过渡全黑时调用）
func (s *LevelScene) startNewDay() {
	s.raining = s.rng.Float64() < s.config.Day.RainChance
	s.soilSystem.SetRaining(s.raining)

	s.soilSystem.AgePlants()
	s.soilSystem.ClearWater()
	if s.raining {
		s.soilSystem.WaterAll()
	}

	s.treeSystem.RegrowAll()

	s.day++
	log.Printf("[LevelScene] Day %d begins (raining=%v)", s.day, s.raining)
}

// Draw 绘制关卡
func (s *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	s.renderSystem.Draw(screen, s.playerSystem.PlayerID())
	s.overlaySystem.Draw(screen)

	if s.shopOpen {
		ebitenutil.DebugPrintAt(screen, "Trader is open (press interact to close)", 8, 24)
	}

	s.transition.Draw(screen)
}

// EntityManager 返回关卡的实体管理器
func (s *LevelScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Inventory 返回玩家背包
func (s *LevelScene) Inventory() *game.Inventory {
	return s.inventory
}

// Player 返回玩家系统
func (s *LevelScene) Player() *systems.PlayerSystem {
	return s.playerSystem
}

// Soil 返回土壤层
func (s *LevelScene) Soil() *systems.SoilSystem {
	return s.soilSystem
}

// Trees 返回树木系统
func (s *LevelScene) Trees() *systems.TreeSystem {
	return s.treeSystem
}

// Render 返回渲染系统
func (s *LevelScene) Render() *systems.RenderSystem {
	return s.renderSystem
}

// ShopOpen 商店是否打开
func (s *LevelScene) ShopOpen() bool {
	return s.shopOpen
}

// Raining 今天是否下雨
func (s *LevelScene) Raining() bool {
	return s.raining
}

// Day 当前天数（从 1 开始）
func (s *LevelScene) Day() int {
	return s.day
}
