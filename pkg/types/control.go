package types

import "fmt"

// Control 玩家可触发的逻辑按键
// 具体按键由配置中的 key_bindings 映射
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlUseTool
	ControlSwitchTool
	ControlUseSeed
	ControlSwitchSeed
	ControlInteract
)

var controlNames = [...]string{
	ControlUp:         "up",
	ControlDown:       "down",
	ControlLeft:       "left",
	ControlRight:      "right",
	ControlUseTool:    "use_tool",
	ControlSwitchTool: "switch_tool",
	ControlUseSeed:    "use_seed",
	ControlSwitchSeed: "switch_seed",
	ControlInteract:   "interact",
}

// AllControls 返回全部逻辑按键
func AllControls() []Control {
	controls := make([]Control, len(controlNames))
	for i := range controlNames {
		controls[i] = Control(i)
	}
	return controls
}

// String 返回按键名称
func (c Control) String() string {
	if c < 0 || int(c) >= len(controlNames) {
		return fmt.Sprintf("Control(%d)", int(c))
	}
	return controlNames[c]
}

// ParseControl 将名称转换为 Control
func ParseControl(name string) (Control, error) {
	for i, n := range controlNames {
		if n == name {
			return Control(i), nil
		}
	}
	return 0, fmt.Errorf("unknown control %q", name)
}
