package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldToCell 将世界坐标转换为网格行列（向下取整）
// 参数:
//   - pos: 世界坐标
//   - tile: 格子边长
//
// 返回:
//   - row, col: 可以为负（调用方负责越界检查）
func WorldToCell(pos mgl64.Vec2, tile float64) (row, col int) {
	row = int(math.Floor(pos.Y() / tile))
	col = int(math.Floor(pos.X() / tile))
	return row, col
}

// CellCenter 返回格子中心的世界坐标
func CellCenter(row, col int, tile float64) mgl64.Vec2 {
	return mgl64.Vec2{
		float64(col)*tile + tile/2,
		float64(row)*tile + tile/2,
	}
}

// GridSize 覆盖给定世界尺寸所需的行列数（向上取整）
func GridSize(worldW, worldH, tile float64) (rows, cols int) {
	return int(math.Ceil(worldH / tile)), int(math.Ceil(worldW / tile))
}
