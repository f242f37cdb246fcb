package entities

import (
	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// CellRect 返回格子 (row, col) 的世界矩形
func CellRect(row, col int, tile float64) utils.Rect {
	return utils.NewRect(float64(col)*tile, float64(row)*tile, tile, tile)
}

// NewSoilPatchEntity 创建已耕地块
func NewSoilPatchEntity(em *ecs.EntityManager, image *ebiten.Image, row, col int, tile float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: CellRect(row, col, tile)})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: types.LayerSoil})
	ecs.AddComponent(em, id, &components.SoilPatchComponent{GridRow: row, GridCol: col})
	return id
}

// NewSoilWaterEntity 创建浇水后的湿润地块
func NewSoilWaterEntity(em *ecs.EntityManager, image *ebiten.Image, row, col int, tile float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: CellRect(row, col, tile)})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: types.LayerSoilWater})
	ecs.AddComponent(em, id, &components.SoilWaterComponent{GridRow: row, GridCol: col})
	return id
}

// PlantSpec 描述一株作物
type PlantSpec struct {
	Seed      types.Seed
	Row, Col  int
	Tile      float64
	Image     *ebiten.Image // 第 0 阶段图像
	W, H      float64       // 图像尺寸
	YOffset   float64       // 图像底边相对格子底边的偏移
	MaxAge    int
	GrowSpeed float64
}

// NewPlantEntity 创建刚播下的作物
//
// 作物底边中点对齐格子底边中点（加上 YOffset），初始位于 ground_plant 层且不阻挡移动。
func NewPlantEntity(em *ecs.EntityManager, spec PlantSpec) ecs.EntityID {
	id := em.CreateEntity()

	cell := CellRect(spec.Row, spec.Col, spec.Tile)
	anchor := cell.MidBottom().Add(mgl64.Vec2{0, spec.YOffset})

	ecs.AddComponent(em, id, &components.SpriteComponent{Image: spec.Image})
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: utils.NewRectMidBottom(anchor, spec.W, spec.H)})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: types.LayerGroundPlant})
	ecs.AddComponent(em, id, &components.PlantComponent{
		Seed:      spec.Seed,
		GridRow:   spec.Row,
		GridCol:   spec.Col,
		MaxAge:    spec.MaxAge,
		GrowSpeed: spec.GrowSpeed,
	})

	return id
}
