package game

import (
	"log"

	"github.com/decker502/farmstead/pkg/types"
)

// soundPlayer 库存只需要播放提示音
type soundPlayer interface {
	PlaySound(soundID string) bool
}

// Inventory 玩家背包：物品 -> 数量
//
// 数量从 0 开始，只增不减（出售由商店界面负责，不在这里）。
// 单线程访问，不加锁。
type Inventory struct {
	counts       map[types.Item]int
	sounds       soundPlayer
	successSound string
}

// NewInventory 创建空背包
//
// 参数:
//   - sounds: 获得物品时播放提示音，可为 nil
//   - successSound: 提示音资源ID
func NewInventory(sounds soundPlayer, successSound string) *Inventory {
	inv := &Inventory{
		counts:       make(map[types.Item]int, len(types.AllItems())),
		sounds:       sounds,
		successSound: successSound,
	}
	for _, item := range types.AllItems() {
		inv.counts[item] = 0
	}
	return inv
}

// AddItem 物品数量加一并播放提示音
func (inv *Inventory) AddItem(item types.Item) {
	inv.counts[item]++
	log.Printf("[Inventory] +1 %s (total %d)", item, inv.counts[item])

	if inv.sounds != nil && inv.successSound != "" {
		inv.sounds.PlaySound(inv.successSound)
	}
}

// Count 返回物品数量
func (inv *Inventory) Count(item types.Item) int {
	return inv.counts[item]
}

// Snapshot 返回所有物品数量的副本
func (inv *Inventory) Snapshot() map[types.Item]int {
	out := make(map[types.Item]int, len(inv.counts))
	for item, n := range inv.counts {
		out[item] = n
	}
	return out
}
