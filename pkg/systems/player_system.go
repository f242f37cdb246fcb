package systems

import (
	"log"
	"math"

	"github.com/decker502/farmstead/internal/timer"
	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerDeps 玩家系统的外部协作者
// 除 Input 外都可以为 nil（对应动作静默跳过）
type PlayerDeps struct {
	Input  utils.InputSource
	Soil   SoilLayer
	Trees  TreeDamager
	Shop   ShopToggler
	Sounds SoundPlayer
}

// PlayerSystem 玩家控制器
//
// 每帧按固定顺序执行：输入 → 状态 → 作用点 → 计时器 → 移动与碰撞 → 动画。
// 工具和种子的效果延迟到对应计时器到期时才生效。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	playerID      ecs.EntityID
	deps          PlayerDeps
}

// toolActions 工具 -> 效果
var toolActions = map[types.Tool]func(s *PlayerSystem, target mgl64.Vec2){
	types.ToolHoe:   (*PlayerSystem).useHoe,
	types.ToolAxe:   (*PlayerSystem).useAxe,
	types.ToolWater: (*PlayerSystem).useWater,
}

// NewPlayerSystem 创建玩家系统并为玩家绑定四个动作计时器
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - clock: 计时器时钟（通常是关卡的帧时钟）
//   - playerID: 由 entities.NewPlayerEntity 创建的玩家实体
//   - deps: 外部协作者
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameConfig, clock timer.Clock, playerID ecs.EntityID, deps PlayerDeps) *PlayerSystem {
	if deps.Sounds == nil {
		deps.Sounds = nopSounds{}
	}

	s := &PlayerSystem{
		entityManager: em,
		config:        cfg,
		playerID:      playerID,
		deps:          deps,
	}

	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID); ok {
		player.Timers = components.PlayerTimers{
			ToolUse:    timer.New(config.Ms(cfg.Timers.ToolUseMs), clock, s.useTool),
			ToolSwitch: timer.New(config.Ms(cfg.Timers.ToolSwitchMs), clock, nil),
			SeedUse:    timer.New(config.Ms(cfg.Timers.SeedUseMs), clock, s.useSeed),
			SeedSwitch: timer.New(config.Ms(cfg.Timers.SeedSwitchMs), clock, nil),
		}
	} else {
		log.Printf("[PlayerSystem] WARNING: entity %d has no PlayerComponent", playerID)
	}

	return s
}

// PlayerID 返回玩家实体ID
func (s *PlayerSystem) PlayerID() ecs.EntityID {
	return s.playerID
}

// SelectedTool 当前选中的工具
func (s *PlayerSystem) SelectedTool() types.Tool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return s.config.ToolList()[0]
	}
	return s.config.ToolList()[player.ToolIndex]
}

// SelectedSeed 当前选中的种子
func (s *PlayerSystem) SelectedSeed() types.Seed {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return s.config.SeedList()[0]
	}
	return s.config.SeedList()[player.SeedIndex]
}

// Update 推进玩家一帧
func (s *PlayerSystem) Update(deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	hitbox, _ := ecs.GetComponent[*components.HitboxComponent](s.entityManager, s.playerID)
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, s.playerID)
	if hitbox == nil || bounds == nil {
		return
	}

	s.handleInput(player, hitbox)
	s.updateStatus(player)
	s.updateTarget(player, hitbox)
	s.updateTimers(player)
	s.move(player, hitbox, bounds, deltaTime)
	s.animate(player, deltaTime)
}

// WakeUp 结束睡眠（新的一天开始时由编排者调用）
func (s *PlayerSystem) WakeUp() {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	player.Sleeping = false
	player.Action = types.ActionIdle
}

// handleInput 采样输入
// 工具使用中或睡眠中时完全跳过（朝向和动作冻结，计时器照常推进）
func (s *PlayerSystem) handleInput(player *components.PlayerComponent, hitbox *components.HitboxComponent) {
	in := s.deps.Input
	if in == nil || player.Timers.ToolUse.Active() || player.Sleeping {
		return
	}

	// 方向：垂直轴先于水平轴求值，对角移动时朝向取水平方向
	switch {
	case in.IsPressed(types.ControlUp):
		player.Direction[1] = -1
		player.Status.Facing = types.FacingUp
	case in.IsPressed(types.ControlDown):
		player.Direction[1] = 1
		player.Status.Facing = types.FacingDown
	default:
		player.Direction[1] = 0
	}

	switch {
	case in.IsPressed(types.ControlRight):
		player.Direction[0] = 1
		player.Status.Facing = types.FacingRight
	case in.IsPressed(types.ControlLeft):
		player.Direction[0] = -1
		player.Status.Facing = types.FacingLeft
	default:
		player.Direction[0] = 0
	}

	// 工具
	if in.IsPressed(types.ControlUseTool) && !player.Timers.ToolUse.Active() {
		player.Timers.ToolUse.Activate()
		player.Direction = mgl64.Vec2{}
		s.resetAnimationFrame()
	}

	if in.IsPressed(types.ControlSwitchTool) && !player.Timers.ToolSwitch.Active() {
		player.Timers.ToolSwitch.Activate()
		player.ToolIndex = (player.ToolIndex + 1) % len(s.config.ToolList())
	}

	// 种子
	if in.IsPressed(types.ControlUseSeed) && !player.Timers.SeedUse.Active() {
		player.Timers.SeedUse.Activate()
		player.Direction = mgl64.Vec2{}
		s.resetAnimationFrame()
	}

	if in.IsPressed(types.ControlSwitchSeed) && !player.Timers.SeedSwitch.Active() {
		player.Timers.SeedSwitch.Activate()
		player.SeedIndex = (player.SeedIndex + 1) % len(s.config.SeedList())
	}

	// 播种期间不能移动
	if player.Timers.SeedUse.Active() {
		player.Direction = mgl64.Vec2{}
	}

	// 交互只在按下的那一帧触发，避免按住时反复开关商店
	interact := in.IsPressed(types.ControlInteract)
	if interact && !player.InteractHeld {
		s.interact(player, hitbox)
	}
	player.InteractHeld = interact
}

// interact 与玩家碰撞盒重叠的第一个交互区按名称分派
func (s *PlayerSystem) interact(player *components.PlayerComponent, hitbox *components.HitboxComponent) {
	zones := ecs.GetEntitiesWith2[*components.InteractionComponent, *components.BoundsComponent](s.entityManager)
	for _, id := range zones {
		zone, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
		zoneBounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if !zoneBounds.Rect.Overlaps(hitbox.Rect) {
			continue
		}

		switch zone.Name {
		case components.InteractionBed:
			player.Status = components.PlayerStatus{Facing: types.FacingLeft, Suffix: components.SuffixIdle}
			player.Direction = mgl64.Vec2{}
			player.Sleeping = true
			log.Printf("[PlayerSystem] Player went to bed")
		case components.InteractionTrader:
			if s.deps.Shop != nil {
				s.deps.Shop.ToggleShop()
			}
		default:
			log.Printf("[PlayerSystem] Ignoring interaction zone %q", zone.Name)
		}
		return
	}
}

// updateStatus 根据方向和计时器推导状态后缀与动作模式
func (s *PlayerSystem) updateStatus(player *components.PlayerComponent) {
	switch {
	case player.Timers.ToolUse.Active():
		player.Status.Suffix = s.config.ToolList()[player.ToolIndex].String()
	case player.Direction.Len() == 0:
		player.Status.Suffix = components.SuffixIdle
	default:
		player.Status.Suffix = components.SuffixMoving
	}

	switch {
	case player.Sleeping:
		player.Action = types.ActionSleeping
	case player.Timers.ToolUse.Active():
		player.Action = types.ActionToolUse
	case player.Timers.SeedUse.Active():
		player.Action = types.ActionSeedUse
	case player.Direction.Len() == 0:
		player.Action = types.ActionIdle
	default:
		player.Action = types.ActionMoving
	}
}

// updateTarget 作用点 = 碰撞盒中心 + 朝向偏移
func (s *PlayerSystem) updateTarget(player *components.PlayerComponent, hitbox *components.HitboxComponent) {
	player.Target = hitbox.Rect.Center().Add(s.config.ToolOffset(player.Status.Facing))
}

func (s *PlayerSystem) updateTimers(player *components.PlayerComponent) {
	player.Timers.ToolUse.Update()
	player.Timers.ToolSwitch.Update()
	player.Timers.SeedUse.Update()
	player.Timers.SeedSwitch.Update()
}

// useTool 工具使用计时器到期回调
func (s *PlayerSystem) useTool() {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	tool := s.config.ToolList()[player.ToolIndex]
	if action, ok := toolActions[tool]; ok {
		action(s, player.Target)
	}
}

func (s *PlayerSystem) useHoe(target mgl64.Vec2) {
	if s.deps.Soil != nil {
		s.deps.Soil.Till(target)
	}
}

// useAxe 砍作用点所在的第一棵存活的树
func (s *PlayerSystem) useAxe(target mgl64.Vec2) {
	if s.deps.Trees == nil {
		return
	}
	ids := ecs.GetEntitiesWith2[*components.TreeComponent, *components.BoundsComponent](s.entityManager)
	for _, id := range ids {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if tree.Alive && bounds.Rect.ContainsPoint(target) {
			s.deps.Trees.Damage(id)
			return
		}
	}
}

func (s *PlayerSystem) useWater(target mgl64.Vec2) {
	if s.deps.Soil == nil {
		return
	}
	s.deps.Soil.Water(target)
	s.deps.Sounds.PlaySound(s.config.Sounds.Water)
}

// useSeed 播种计时器到期回调
func (s *PlayerSystem) useSeed() {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok || s.deps.Soil == nil {
		return
	}
	seed := s.config.SeedList()[player.SeedIndex]
	if s.deps.Soil.PlantSeed(player.Target, seed) {
		s.deps.Sounds.PlaySound(s.config.Sounds.Plant)
	}
}

// move 分轴移动并解决碰撞
func (s *PlayerSystem) move(player *components.PlayerComponent, hitbox *components.HitboxComponent, bounds *components.BoundsComponent, deltaTime float64) {
	if player.Direction.Len() > 0 {
		player.Direction = player.Direction.Normalize()
	}
	speed := s.config.Player.Speed

	// 水平
	player.Pos[0] += player.Direction.X() * speed * deltaTime
	hitbox.Rect.SetCenterX(math.Round(player.Pos.X()))
	bounds.Rect.SetCenterX(hitbox.Rect.CenterX())
	s.collide(player, hitbox, bounds, true)

	// 垂直
	player.Pos[1] += player.Direction.Y() * speed * deltaTime
	hitbox.Rect.SetCenterY(math.Round(player.Pos.Y()))
	bounds.Rect.SetCenterY(hitbox.Rect.CenterY())
	s.collide(player, hitbox, bounds, false)
}

// collide 把玩家碰撞盒沿单一轴推出所有重叠的障碍物
// 推出后中心朝远离障碍物的方向取整，下一帧 Round 后仍不重叠
func (s *PlayerSystem) collide(player *components.PlayerComponent, hitbox *components.HitboxComponent, bounds *components.BoundsComponent, horizontal bool) {
	obstacles := ecs.GetEntitiesWith2[*components.CollidableComponent, *components.HitboxComponent](s.entityManager)
	for _, id := range obstacles {
		if id == s.playerID {
			continue
		}
		obstacle, _ := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)
		if !obstacle.Rect.Overlaps(hitbox.Rect) {
			continue
		}

		if horizontal {
			if player.Direction.X() > 0 {
				hitbox.Rect.SetRight(obstacle.Rect.Left())
				hitbox.Rect.SetCenterX(math.Floor(hitbox.Rect.CenterX()))
			} else if player.Direction.X() < 0 {
				hitbox.Rect.SetLeft(obstacle.Rect.Right())
				hitbox.Rect.SetCenterX(math.Ceil(hitbox.Rect.CenterX()))
			}
			bounds.Rect.SetCenterX(hitbox.Rect.CenterX())
			player.Pos[0] = hitbox.Rect.CenterX()
		} else {
			if player.Direction.Y() > 0 {
				hitbox.Rect.SetBottom(obstacle.Rect.Top())
				hitbox.Rect.SetCenterY(math.Floor(hitbox.Rect.CenterY()))
			} else if player.Direction.Y() < 0 {
				hitbox.Rect.SetTop(obstacle.Rect.Bottom())
				hitbox.Rect.SetCenterY(math.Ceil(hitbox.Rect.CenterY()))
			}
			bounds.Rect.SetCenterY(hitbox.Rect.CenterY())
			player.Pos[1] = hitbox.Rect.CenterY()
		}
	}
}

// animate 选择状态对应的帧序列并推进
func (s *PlayerSystem) animate(player *components.PlayerComponent, deltaTime float64) {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	anim.State = player.Status.AnimationKey()
	advanceAnimation(anim, sprite, deltaTime)
}

func (s *PlayerSystem) resetAnimationFrame() {
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, s.playerID); ok {
		anim.FrameIndex = 0
	}
}
