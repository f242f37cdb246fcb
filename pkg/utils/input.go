// Package utils 提供通用工具函数
package utils

import (
	"fmt"
	"sort"

	"github.com/decker502/farmstead/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource 逻辑按键输入源
//
// 玩家系统只关心逻辑按键是否处于按下状态（按住即生效），
// 具体由键盘还是脚本提供由调用方决定。
type InputSource interface {
	IsPressed(c types.Control) bool
}

// KeyboardInput 基于 Ebitengine 键盘状态的输入源
type KeyboardInput struct {
	bindings map[types.Control][]ebiten.Key
}

// NewKeyboardInput 根据按键绑定创建键盘输入源
//
// 参数:
//   - bindings: 逻辑按键名 -> Ebitengine 键名列表（如 "up": ["ArrowUp", "W"]）
//
// 返回:
//   - error: 逻辑按键名或键名无法识别
func NewKeyboardInput(bindings map[string][]string) (*KeyboardInput, error) {
	ki := &KeyboardInput{bindings: make(map[types.Control][]ebiten.Key, len(bindings))}

	for name, keyNames := range bindings {
		control, err := types.ParseControl(name)
		if err != nil {
			return nil, fmt.Errorf("failed to bind control: %w", err)
		}
		for _, keyName := range keyNames {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("failed to bind %s to key %q: %w", name, keyName, err)
			}
			ki.bindings[control] = append(ki.bindings[control], key)
		}
	}

	return ki, nil
}

// IsPressed 任一绑定键处于按下状态即返回 true
func (ki *KeyboardInput) IsPressed(c types.Control) bool {
	for _, key := range ki.bindings[c] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Keys 返回逻辑按键绑定的键（用于设置界面和测试）
func (ki *KeyboardInput) Keys(c types.Control) []ebiten.Key {
	keys := append([]ebiten.Key(nil), ki.bindings[c]...)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ScriptedInput 可编程的输入源，用于测试和回放
type ScriptedInput struct {
	pressed map[types.Control]bool
}

// NewScriptedInput 创建脚本输入源，初始按下指定按键
func NewScriptedInput(pressed ...types.Control) *ScriptedInput {
	si := &ScriptedInput{pressed: make(map[types.Control]bool)}
	si.Set(pressed...)
	return si
}

// Set 替换当前按下的按键集合
func (si *ScriptedInput) Set(pressed ...types.Control) {
	for c := range si.pressed {
		delete(si.pressed, c)
	}
	for _, c := range pressed {
		si.pressed[c] = true
	}
}

// Press 按下按键
func (si *ScriptedInput) Press(c types.Control) {
	si.pressed[c] = true
}

// Release 松开按键
func (si *ScriptedInput) Release(c types.Control) {
	delete(si.pressed, c)
}

// IsPressed 实现 InputSource
func (si *ScriptedInput) IsPressed(c types.Control) bool {
	return si.pressed[c]
}
