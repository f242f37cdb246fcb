package config

import (
	"fmt"
	"os"

	"github.com/decker502/farmstead/pkg/types"
	"gopkg.in/yaml.v3"
)

// WorldLayout 世界布局
//
// 描述一张地图上需要由模拟核心管理的物体：障碍、交互区、树木、水面和可耕地。
// 地图的瓦片绘制不在此处，背景由一张整图（或占位图）提供。
//
// 配置文件位置: data/world.yaml
type WorldLayout struct {
	// Size 世界尺寸（像素）
	Size SizeConfig `yaml:"size"`

	// PlayerStart 玩家初始中心位置
	PlayerStart OffsetConfig `yaml:"playerStart"`

	// Colliders 不可见的碰撞块（围栏、墙体等）
	Colliders []RectConfig `yaml:"colliders"`

	// Interactions 交互区（Bed、Trader）
	Interactions []InteractionConfig `yaml:"interactions"`

	// Trees 树木
	Trees []TreeSpawnConfig `yaml:"trees"`

	// Decorations 可见的静态物体（房屋、野花等）
	Decorations []DecorationConfig `yaml:"decorations"`

	// Water 水面瓦片左上角（格子坐标）
	Water []CellConfig `yaml:"water"`

	// Farmable 可耕种区域（格子坐标矩形）
	Farmable []CellRectConfig `yaml:"farmable"`
}

// RectConfig 像素矩形
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// InteractionConfig 交互区
type InteractionConfig struct {
	Name       string `yaml:"name"`
	RectConfig `yaml:",inline"`
}

// TreeSpawnConfig 树木位置（左上角）与尺寸
type TreeSpawnConfig struct {
	X    float64    `yaml:"x"`
	Y    float64    `yaml:"y"`
	Size string     `yaml:"size"` // "Small" | "Large"
	Art  SizeConfig `yaml:"art"`  // 树木图像尺寸
}

// DecorationConfig 静态物体
type DecorationConfig struct {
	Kind       string `yaml:"kind"`  // "generic" | "wildflower" | "house"
	Layer      string `yaml:"layer"` // 绘制层级，默认 main
	Collide    bool   `yaml:"collide"`
	RectConfig `yaml:",inline"`
}

// CellConfig 格子坐标
type CellConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// CellRectConfig 格子坐标矩形
type CellRectConfig struct {
	Col  int `yaml:"col"`
	Row  int `yaml:"row"`
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// LoadWorldLayout 加载世界布局
func LoadWorldLayout(path string) (*WorldLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world layout: %w", err)
	}
	return ParseWorldLayout(data)
}

// ParseWorldLayout 从 YAML 数据解析世界布局
func ParseWorldLayout(data []byte) (*WorldLayout, error) {
	var layout WorldLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse world layout: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world layout: %w", err)
	}

	return &layout, nil
}

// Validate 校验世界布局
func (w *WorldLayout) Validate() error {
	if w.Size.W <= 0 || w.Size.H <= 0 {
		return fmt.Errorf("size must be positive")
	}
	for i, it := range w.Interactions {
		if it.Name == "" {
			return fmt.Errorf("interactions[%d]: name is empty", i)
		}
		if it.W <= 0 || it.H <= 0 {
			return fmt.Errorf("interactions[%d] (%s): size must be positive", i, it.Name)
		}
	}
	for i, tree := range w.Trees {
		if tree.Size != "Small" && tree.Size != "Large" {
			return fmt.Errorf("trees[%d]: unknown size %q", i, tree.Size)
		}
		if tree.Art.W <= 0 || tree.Art.H <= 0 {
			return fmt.Errorf("trees[%d]: art size must be positive", i)
		}
	}
	for i, d := range w.Decorations {
		if d.Layer == "" {
			continue
		}
		if _, err := types.ParseLayer(d.Layer); err != nil {
			return fmt.Errorf("decorations[%d]: %w", i, err)
		}
	}
	for i, f := range w.Farmable {
		if f.Cols <= 0 || f.Rows <= 0 || f.Col < 0 || f.Row < 0 {
			return fmt.Errorf("farmable[%d]: invalid cell rect", i)
		}
	}
	return nil
}

// DecorationLayer 返回物体的绘制层级，未配置时为 main
func (d DecorationConfig) DecorationLayer() types.Layer {
	if d.Layer == "" {
		return types.LayerMain
	}
	layer, err := types.ParseLayer(d.Layer)
	if err != nil {
		return types.LayerMain
	}
	return layer
}
