package types

import "fmt"

// Facing 玩家朝向
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// AllFacings 返回全部朝向
func AllFacings() []Facing {
	return []Facing{FacingUp, FacingDown, FacingLeft, FacingRight}
}

// String 返回朝向名称，同时也是动画状态名的前缀（如 "left_idle"）
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return fmt.Sprintf("Facing(%d)", int(f))
	}
}

// ParseFacing 将名称转换为 Facing
func ParseFacing(name string) (Facing, error) {
	for _, f := range AllFacings() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown facing %q", name)
}

// Action 玩家动作模式
type Action int

const (
	ActionIdle Action = iota
	ActionMoving
	ActionToolUse
	ActionSeedUse
	ActionSleeping
)

// String 返回动作模式名称
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionMoving:
		return "moving"
	case ActionToolUse:
		return "tool"
	case ActionSeedUse:
		return "seed"
	case ActionSleeping:
		return "sleeping"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
