package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneLifecycle 场景可选实现的进入/离开回调
// 例如关卡在进入时开始播放背景音乐，离开时停止
type SceneLifecycle interface {
	OnEnter()
	OnExit()
}

// SceneManager 控制当前活动的场景
// 同一时间只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	frames       uint64 // 当前场景已更新的帧数
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
// 旧场景收到 OnExit，新场景收到 OnEnter（如果实现了 SceneLifecycle）
// 切换到同一个场景时不做任何事
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == sm.currentScene {
		return
	}
	if lc, ok := sm.currentScene.(SceneLifecycle); ok {
		lc.OnExit()
	}

	sm.currentScene = scene
	sm.frames = 0
	log.Printf("[SceneManager] Switched to %T", scene)

	if lc, ok := scene.(SceneLifecycle); ok {
		lc.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Frames 当前场景已更新的帧数
func (sm *SceneManager) Frames() uint64 {
	return sm.frames
}

// Update 更新当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaTime)
	sm.frames++
}

// Draw 绘制当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
