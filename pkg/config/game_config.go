package config

import (
	"fmt"
	"os"
	"time"

	"github.com/decker502/farmstead/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏全局配置
//
// 启动时加载一次，之后只读。所有系统通过指针共享同一实例，
// 任何系统都不应修改其中的字段。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	// Screen 逻辑屏幕尺寸（像素）
	Screen SizeConfig `yaml:"screen"`

	// TileSize 地图格子边长（像素），也用于土壤网格行列换算
	TileSize float64 `yaml:"tileSize"`

	// MaxFrameDelta 单帧最大时间步长（秒），超过的部分被裁掉
	MaxFrameDelta float64 `yaml:"maxFrameDelta"`

	// Layers 绘制层级顺序（从底到顶）
	Layers []string `yaml:"layers"`

	// Tools 工具切换顺序
	Tools []string `yaml:"tools"`

	// Seeds 种子切换顺序
	Seeds []string `yaml:"seeds"`

	// ToolOffsets 工具/种子作用点相对玩家碰撞盒中心的偏移，按朝向索引
	ToolOffsets map[string]OffsetConfig `yaml:"toolOffsets"`

	Player    PlayerConfig    `yaml:"player"`
	Timers    TimerConfig     `yaml:"timers"`
	Tree      TreeConfig      `yaml:"tree"`
	Particles ParticleConfig  `yaml:"particles"`
	Soil      SoilConfig      `yaml:"soil"`
	Day       DayConfig       `yaml:"day"`
	Overlay   OverlayConfig   `yaml:"overlay"`
	Sounds    SoundConfig     `yaml:"sounds"`
	Objects   ObjectConfig    `yaml:"objects"`
	Assets    AssetsConfig    `yaml:"assets"`
	Debug     DebugConfig     `yaml:"debug"`

	// KeyBindings 逻辑按键 -> 键名列表（Ebitengine 键名，如 "ArrowUp"、"Space"）
	KeyBindings map[string][]string `yaml:"keyBindings"`

	// 以下字段由 Validate 解析填充
	layerOrder []types.Layer
	tools      []types.Tool
	seeds      []types.Seed
	offsets    map[types.Facing]mgl64.Vec2
}

// SizeConfig 宽高
type SizeConfig struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// OffsetConfig 二维偏移
type OffsetConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec 转换为向量
func (o OffsetConfig) Vec() mgl64.Vec2 {
	return mgl64.Vec2{o.X, o.Y}
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed        float64    `yaml:"speed"`        // 移动速度（像素/秒）
	AnimationFPS float64    `yaml:"animationFps"` // 动画帧率
	Size         SizeConfig `yaml:"size"`         // 视觉尺寸
	// HitboxInflate 碰撞盒相对视觉边界的增量（必须为负，碰撞盒严格小于视觉边界）
	HitboxInflate SizeConfig `yaml:"hitboxInflate"`
}

// TimerConfig 玩家动作计时器时长（毫秒）
type TimerConfig struct {
	ToolUseMs    int `yaml:"toolUseMs"`
	ToolSwitchMs int `yaml:"toolSwitchMs"`
	SeedUseMs    int `yaml:"seedUseMs"`
	SeedSwitchMs int `yaml:"seedSwitchMs"`
}

// TreeConfig 树木参数
type TreeConfig struct {
	Health int `yaml:"health"`
	// FruitChance 每个果实槽位在生成/重生时被占用的概率
	FruitChance float64 `yaml:"fruitChance"`
	// StumpHitboxInflate 树桩碰撞盒：宽度增量（像素）和高度比例增量
	StumpHitboxInflateW     float64 `yaml:"stumpHitboxInflateW"`
	StumpHitboxInflateRatio float64 `yaml:"stumpHitboxInflateRatio"`
	// Sizes 按树木尺寸（Small/Large）配置的果实槽位与树桩尺寸
	Sizes map[string]TreeSizeConfig `yaml:"sizes"`
}

// TreeSizeConfig 单一树木尺寸的参数
type TreeSizeConfig struct {
	FruitSlots []OffsetConfig `yaml:"fruitSlots"` // 相对树木左上角
	Stump      SizeConfig     `yaml:"stump"`
	FruitSize  SizeConfig     `yaml:"fruitSize"`
}

// ParticleConfig 粒子存活时长（毫秒）
type ParticleConfig struct {
	FruitMs   int `yaml:"fruitMs"`
	TreeMs    int `yaml:"treeMs"`
	HarvestMs int `yaml:"harvestMs"`
}

// SoilConfig 土壤层参数
type SoilConfig struct {
	// GrowSpeed 每次过夜的生长量（按种子名）
	GrowSpeed map[string]float64 `yaml:"growSpeed"`
	// MaxAge 成熟所需的生长阶段数（按种子名）
	MaxAge map[string]int `yaml:"maxAge"`
	// PlantYOffset 植物图像相对格子底部的偏移（按种子名）
	PlantYOffset map[string]float64 `yaml:"plantYOffset"`
}

// DayConfig 日夜切换参数
type DayConfig struct {
	RainChance        float64 `yaml:"rainChance"`        // 新的一天下雨的概率
	TransitionSeconds float64 `yaml:"transitionSeconds"` // 渐黑/渐亮各自的时长
}

// OverlayConfig HUD 图标位置（底边中点，屏幕坐标）
type OverlayConfig struct {
	Tool OffsetConfig `yaml:"tool"`
	Seed OffsetConfig `yaml:"seed"`
}

// SoundConfig 音效资源ID
type SoundConfig struct {
	Axe     string `yaml:"axe"`
	Success string `yaml:"success"`
	Hoe     string `yaml:"hoe"`
	Water   string `yaml:"water"`
	Plant   string `yaml:"plant"`
	Music   string `yaml:"music"`
}

// Effects 所有音效ID（不含音乐），用于预加载
func (s SoundConfig) Effects() []string {
	return []string{s.Axe, s.Success, s.Hoe, s.Water, s.Plant}
}

// ObjectConfig 普通场景物体参数
type ObjectConfig struct {
	// HitboxInflateRatio 普通物体碰撞盒相对视觉边界的比例增量
	HitboxInflateRatio OffsetConfig `yaml:"hitboxInflateRatio"`
	// WildflowerInflateW / WildflowerInflateRatioH 野花碰撞盒
	WildflowerInflateW      float64 `yaml:"wildflowerInflateW"`
	WildflowerInflateRatioH float64 `yaml:"wildflowerInflateRatioH"`
	// WaterAnimationFPS 水面动画帧率
	WaterAnimationFPS float64 `yaml:"waterAnimationFps"`
}

// AssetsConfig 资源目录
type AssetsConfig struct {
	GraphicsDir string `yaml:"graphicsDir"`
	AudioDir    string `yaml:"audioDir"`
}

// DebugConfig 调试选项
type DebugConfig struct {
	ShowHitboxes bool `yaml:"showHitboxes"`
}

// LoadGameConfig 加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 已校验的配置
//   - error: 读取、解析或校验失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从 YAML 数据解析游戏配置（用于嵌入资源）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}

// Validate 校验配置并解析枚举字段
//
// 配置错误在启动时是致命的，调用方不应尝试恢复。
func (c *GameConfig) Validate() error {
	if c.Screen.W <= 0 || c.Screen.H <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.W, c.Screen.H)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %.1f", c.TileSize)
	}
	if c.MaxFrameDelta <= 0 {
		return fmt.Errorf("maxFrameDelta must be positive, got %.3f", c.MaxFrameDelta)
	}

	// 层级：每个层级必须恰好出现一次
	c.layerOrder = make([]types.Layer, 0, len(c.Layers))
	seen := make(map[types.Layer]bool)
	for _, name := range c.Layers {
		layer, err := types.ParseLayer(name)
		if err != nil {
			return fmt.Errorf("layers: %w", err)
		}
		if seen[layer] {
			return fmt.Errorf("layers: %q listed twice", name)
		}
		seen[layer] = true
		c.layerOrder = append(c.layerOrder, layer)
	}
	if len(c.layerOrder) != len(types.AllLayers()) {
		return fmt.Errorf("layers: expected %d layers, got %d", len(types.AllLayers()), len(c.layerOrder))
	}

	if len(c.Tools) == 0 {
		return fmt.Errorf("tools: list is empty")
	}
	c.tools = make([]types.Tool, 0, len(c.Tools))
	for _, name := range c.Tools {
		tool, err := types.ParseTool(name)
		if err != nil {
			return fmt.Errorf("tools: %w", err)
		}
		c.tools = append(c.tools, tool)
	}

	if len(c.Seeds) == 0 {
		return fmt.Errorf("seeds: list is empty")
	}
	c.seeds = make([]types.Seed, 0, len(c.Seeds))
	for _, name := range c.Seeds {
		seed, err := types.ParseSeed(name)
		if err != nil {
			return fmt.Errorf("seeds: %w", err)
		}
		c.seeds = append(c.seeds, seed)
	}

	// 每个朝向都必须有作用点偏移
	c.offsets = make(map[types.Facing]mgl64.Vec2, 4)
	for _, facing := range types.AllFacings() {
		offset, ok := c.ToolOffsets[facing.String()]
		if !ok {
			return fmt.Errorf("toolOffsets: missing offset for facing %q", facing)
		}
		c.offsets[facing] = offset.Vec()
	}
	for name := range c.ToolOffsets {
		if _, err := types.ParseFacing(name); err != nil {
			return fmt.Errorf("toolOffsets: %w", err)
		}
	}

	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %.1f", c.Player.Speed)
	}
	if c.Player.Size.W <= 0 || c.Player.Size.H <= 0 {
		return fmt.Errorf("player.size must be positive")
	}
	if c.Player.HitboxInflate.W >= 0 || c.Player.HitboxInflate.H >= 0 {
		return fmt.Errorf("player.hitboxInflate must shrink both axes, got (%.1f, %.1f)",
			c.Player.HitboxInflate.W, c.Player.HitboxInflate.H)
	}
	if -c.Player.HitboxInflate.W >= c.Player.Size.W || -c.Player.HitboxInflate.H >= c.Player.Size.H {
		return fmt.Errorf("player.hitboxInflate leaves an empty hitbox")
	}

	if c.Timers.ToolUseMs <= 0 || c.Timers.ToolSwitchMs <= 0 || c.Timers.SeedUseMs <= 0 || c.Timers.SeedSwitchMs <= 0 {
		return fmt.Errorf("timers: all durations must be positive")
	}

	if c.Tree.Health <= 0 {
		return fmt.Errorf("tree.health must be positive, got %d", c.Tree.Health)
	}
	if c.Tree.FruitChance < 0 || c.Tree.FruitChance > 1 {
		return fmt.Errorf("tree.fruitChance must be within [0, 1], got %.2f", c.Tree.FruitChance)
	}
	if len(c.Tree.Sizes) == 0 {
		return fmt.Errorf("tree.sizes is empty")
	}
	if c.Tree.StumpHitboxInflateW > 0 {
		return fmt.Errorf("tree.stumpHitboxInflateW must not grow the hitbox, got %.1f", c.Tree.StumpHitboxInflateW)
	}
	if err := checkShrinkRatio("tree.stumpHitboxInflateRatio", c.Tree.StumpHitboxInflateRatio); err != nil {
		return err
	}
	for name, size := range c.Tree.Sizes {
		if size.Stump.W <= 0 || size.Stump.H <= 0 {
			return fmt.Errorf("tree.sizes.%s.stump must be positive", name)
		}
		if -c.Tree.StumpHitboxInflateW >= size.Stump.W {
			return fmt.Errorf("tree.sizes.%s: stumpHitboxInflateW leaves an empty hitbox", name)
		}
		if size.FruitSize.W <= 0 || size.FruitSize.H <= 0 {
			return fmt.Errorf("tree.sizes.%s.fruitSize must be positive", name)
		}
	}

	// 物体碰撞盒只能缩小视觉边界
	if err := checkShrinkRatio("objects.hitboxInflateRatio.x", c.Objects.HitboxInflateRatio.X); err != nil {
		return err
	}
	if err := checkShrinkRatio("objects.hitboxInflateRatio.y", c.Objects.HitboxInflateRatio.Y); err != nil {
		return err
	}
	if c.Objects.WildflowerInflateW > 0 {
		return fmt.Errorf("objects.wildflowerInflateW must not grow the hitbox, got %.1f", c.Objects.WildflowerInflateW)
	}
	if err := checkShrinkRatio("objects.wildflowerInflateRatioH", c.Objects.WildflowerInflateRatioH); err != nil {
		return err
	}

	if c.Day.RainChance < 0 || c.Day.RainChance > 1 {
		return fmt.Errorf("day.rainChance must be within [0, 1], got %.2f", c.Day.RainChance)
	}
	if c.Day.TransitionSeconds <= 0 {
		return fmt.Errorf("day.transitionSeconds must be positive")
	}

	for _, seed := range c.seeds {
		if c.Soil.MaxAge[seed.String()] <= 0 {
			return fmt.Errorf("soil.maxAge missing for seed %q", seed)
		}
	}

	for name := range c.KeyBindings {
		if _, err := types.ParseControl(name); err != nil {
			return fmt.Errorf("keyBindings: %w", err)
		}
	}

	return nil
}

// checkShrinkRatio 比例增量必须在 (-1, 0] 内
func checkShrinkRatio(name string, ratio float64) error {
	if ratio > 0 || ratio <= -1 {
		return fmt.Errorf("%s must be within (-1, 0], got %.2f", name, ratio)
	}
	return nil
}

// LayerOrder 返回绘制层级顺序（从底到顶）
func (c *GameConfig) LayerOrder() []types.Layer {
	return c.layerOrder
}

// ToolList 返回工具切换顺序
func (c *GameConfig) ToolList() []types.Tool {
	return c.tools
}

// SeedList 返回种子切换顺序
func (c *GameConfig) SeedList() []types.Seed {
	return c.seeds
}

// ToolOffset 返回指定朝向的作用点偏移
func (c *GameConfig) ToolOffset(f types.Facing) mgl64.Vec2 {
	return c.offsets[f]
}

// TreeSize 返回指定尺寸的树木参数
func (c *GameConfig) TreeSize(size string) (TreeSizeConfig, bool) {
	s, ok := c.Tree.Sizes[size]
	return s, ok
}

// Ms 将毫秒数转换为 time.Duration
func Ms(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
