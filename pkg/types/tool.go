package types

import "fmt"

// Tool 工具类型（封闭枚举）
type Tool int

const (
	ToolHoe Tool = iota
	ToolAxe
	ToolWater
)

// String 返回工具名称，同时也是工具动画状态后缀（如 "down_axe"）
func (t Tool) String() string {
	switch t {
	case ToolHoe:
		return "hoe"
	case ToolAxe:
		return "axe"
	case ToolWater:
		return "water"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool 将名称转换为 Tool
func ParseTool(name string) (Tool, error) {
	for _, t := range []Tool{ToolHoe, ToolAxe, ToolWater} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// Seed 种子类型（封闭枚举）
type Seed int

const (
	SeedCorn Seed = iota
	SeedTomato
)

// String 返回种子名称
func (s Seed) String() string {
	switch s {
	case SeedCorn:
		return "corn"
	case SeedTomato:
		return "tomato"
	default:
		return fmt.Sprintf("Seed(%d)", int(s))
	}
}

// Item 返回该种子收获后得到的物品
func (s Seed) Item() Item {
	switch s {
	case SeedTomato:
		return ItemTomato
	default:
		return ItemCorn
	}
}

// ParseSeed 将名称转换为 Seed
func ParseSeed(name string) (Seed, error) {
	for _, s := range []Seed{SeedCorn, SeedTomato} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown seed %q", name)
}
