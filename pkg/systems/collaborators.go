package systems

import (
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// SoilLayer 土壤层协作者
//
// 玩家系统和关卡编排者只通过这组窄接口操作农田网格，
// 位置参数均为世界坐标，由实现换算成格子行列。
type SoilLayer interface {
	// Till 翻耕目标位置所在的可耕格子
	Till(pos mgl64.Vec2)
	// Water 给目标位置的已耕格子浇水
	Water(pos mgl64.Vec2)
	// PlantSeed 在目标位置的已耕空格子上播种，成功返回 true
	PlantSeed(pos mgl64.Vec2, seed types.Seed) bool
	// RemovePlant 清除格子上的作物标记（收获后调用）
	RemovePlant(row, col int)
	// AgePlants 过夜生长
	AgePlants()
	// ClearWater 清除所有水迹
	ClearWater()
	// WaterAll 给所有已耕格子浇水（下雨）
	WaterAll()
}

// ItemSink 接收玩家获得的物品（库存）
type ItemSink interface {
	AddItem(item types.Item)
}

// SoundPlayer 音效播放协作者
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// ShopToggler 商店开关协作者
type ShopToggler interface {
	ToggleShop()
}

// TreeDamager 对树木造成一点伤害
type TreeDamager interface {
	Damage(id ecs.EntityID)
}

// nopSounds 未配置音频时使用的静默实现
type nopSounds struct{}

func (nopSounds) PlaySound(string) bool { return false }
