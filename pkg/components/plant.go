package components

import "github.com/decker502/farmstead/pkg/types"

// PlantComponent 标识实体为土壤上的作物
//
// 作物在每次过夜时按 GrowSpeed 生长（仅在浇过水的格子上），
// Age 达到 MaxAge 时变为可收获。
type PlantComponent struct {
	Seed      types.Seed
	GridRow   int
	GridCol   int
	Age       float64
	MaxAge    int
	GrowSpeed float64
	// Harvestable 是否可被玩家靠近收获
	Harvestable bool
}

// SoilPatchComponent 标记已耕地块
type SoilPatchComponent struct {
	GridRow int
	GridCol int
}

// SoilWaterComponent 标记浇过水的地块
type SoilWaterComponent struct {
	GridRow int
	GridCol int
}
