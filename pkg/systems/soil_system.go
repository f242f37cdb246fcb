package systems

import (
	"log"
	"math"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/entities"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// SoilImages 土壤层使用的图像
// 任何字段都可以为 nil，实体照常创建但不绘制
type SoilImages struct {
	Patch *ebiten.Image
	Water *ebiten.Image
	// Plants 种子 -> 各生长阶段图像（下标 = 阶段）
	Plants map[types.Seed][]*ebiten.Image
}

// soilCell 网格中一个格子的状态
type soilCell struct {
	farmable bool
	patch    ecs.EntityID
	water    ecs.EntityID
	plant    ecs.EntityID
}

// SoilSystem 农田网格（SoilLayer 的实现）
//
// 每个格子依次经历: 可耕 → 已耕 →（浇水）→ 播种 → 过夜生长 → 成熟可收获。
// 格子上的地块、水迹、作物都是独立实体，网格只保存它们的ID。
type SoilSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	images        SoilImages
	sounds        SoundPlayer

	rows, cols int
	grid       [][]soilCell
	raining    bool
}

// NewSoilSystem 创建土壤层
//
// 参数:
//   - rows, cols: 网格尺寸（通常由世界尺寸 / 格子边长得出）
//   - farmable: 可耕区域（越界部分被忽略）
//   - images: 地块、水迹和作物图像
//   - sounds: 可为 nil
func NewSoilSystem(em *ecs.EntityManager, cfg *config.GameConfig, rows, cols int, farmable []config.CellRectConfig, images SoilImages, sounds SoundPlayer) *SoilSystem {
	if sounds == nil {
		sounds = nopSounds{}
	}

	grid := make([][]soilCell, rows)
	for r := range grid {
		grid[r] = make([]soilCell, cols)
	}

	count := 0
	for _, area := range farmable {
		for r := area.Row; r < area.Row+area.Rows; r++ {
			for c := area.Col; c < area.Col+area.Cols; c++ {
				if r >= 0 && r < rows && c >= 0 && c < cols && !grid[r][c].farmable {
					grid[r][c].farmable = true
					count++
				}
			}
		}
	}
	log.Printf("[SoilSystem] Grid %dx%d with %d farmable cells", rows, cols, count)

	return &SoilSystem{
		entityManager: em,
		config:        cfg,
		images:        images,
		sounds:        sounds,
		rows:          rows,
		cols:          cols,
		grid:          grid,
	}
}

// SetRaining 设置天气；下雨时新翻的地块立即湿润
func (s *SoilSystem) SetRaining(raining bool) {
	s.raining = raining
}

// Raining 当前是否下雨
func (s *SoilSystem) Raining() bool {
	return s.raining
}

// cellAt 位置所在的格子，越界返回 nil
func (s *SoilSystem) cellAt(pos mgl64.Vec2) (*soilCell, int, int) {
	row, col := utils.WorldToCell(pos, s.config.TileSize)
	return s.cell(row, col), row, col
}

func (s *SoilSystem) cell(row, col int) *soilCell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return nil
	}
	return &s.grid[row][col]
}

// Till 翻耕可耕格子
func (s *SoilSystem) Till(pos mgl64.Vec2) {
	cell, row, col := s.cellAt(pos)
	if cell == nil || !cell.farmable {
		return
	}
	s.sounds.PlaySound(s.config.Sounds.Hoe)
	if cell.patch != 0 {
		return
	}

	cell.patch = entities.NewSoilPatchEntity(s.entityManager, s.images.Patch, row, col, s.config.TileSize)
	if s.raining {
		s.waterCell(cell, row, col)
	}
}

// Water 给已耕格子浇水
func (s *SoilSystem) Water(pos mgl64.Vec2) {
	cell, row, col := s.cellAt(pos)
	if cell == nil || cell.patch == 0 {
		return
	}
	s.waterCell(cell, row, col)
}

func (s *SoilSystem) waterCell(cell *soilCell, row, col int) {
	if cell.water != 0 {
		return
	}
	cell.water = entities.NewSoilWaterEntity(s.entityManager, s.images.Water, row, col, s.config.TileSize)
}

// PlantSeed 在已耕的空格子上播种
func (s *SoilSystem) PlantSeed(pos mgl64.Vec2, seed types.Seed) bool {
	cell, row, col := s.cellAt(pos)
	if cell == nil || cell.patch == 0 {
		return false
	}
	// 收获后作物实体已被销毁，即使格子还留着旧ID也视为空
	if cell.plant != 0 && s.entityManager.Exists(cell.plant) {
		return false
	}

	name := seed.String()
	image := s.stageImage(seed, 0)
	w, h := s.imageSize(image)

	cell.plant = entities.NewPlantEntity(s.entityManager, entities.PlantSpec{
		Seed:      seed,
		Row:       row,
		Col:       col,
		Tile:      s.config.TileSize,
		Image:     image,
		W:         w,
		H:         h,
		YOffset:   s.config.Soil.PlantYOffset[name],
		MaxAge:    s.config.Soil.MaxAge[name],
		GrowSpeed: s.config.Soil.GrowSpeed[name],
	})
	return true
}

// RemovePlant 清除格子上的作物记录（作物实体由调用方销毁）
func (s *SoilSystem) RemovePlant(row, col int) {
	if cell := s.cell(row, col); cell != nil {
		cell.plant = 0
	}
}

// AgePlants 浇过水的格子上的作物生长一次
//
// 阶段 ≥ 1 的作物移到 main 层并开始阻挡移动，达到最大阶段后可收获。
func (s *SoilSystem) AgePlants() {
	for r := range s.grid {
		for c := range s.grid[r] {
			cell := &s.grid[r][c]
			if cell.plant == 0 || cell.water == 0 {
				continue
			}
			s.growPlant(cell.plant)
		}
	}
}

func (s *SoilSystem) growPlant(id ecs.EntityID) {
	plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
	if !ok || plant.Harvestable {
		return
	}

	plant.Age += plant.GrowSpeed
	if plant.Age >= float64(plant.MaxAge) {
		plant.Age = float64(plant.MaxAge)
		plant.Harvestable = true
	}
	stage := int(math.Floor(plant.Age))

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
	if sprite == nil || bounds == nil {
		return
	}

	if image := s.stageImage(plant.Seed, stage); image != nil {
		sprite.Image = image
		w, h := s.imageSize(image)
		bounds.Rect = utils.NewRectMidBottom(bounds.Rect.MidBottom(), w, h)
	}

	if stage > 0 {
		if layer, ok := ecs.GetComponent[*components.LayerComponent](s.entityManager, id); ok {
			layer.Z = types.LayerMain
		}
		ecs.AddComponent(s.entityManager, id, &components.HitboxComponent{
			Rect: bounds.Rect.Inflate(-26, -bounds.Rect.H*0.4),
		})
		ecs.AddComponent(s.entityManager, id, &components.CollidableComponent{})
	}
}

// ClearWater 清除所有水迹
func (s *SoilSystem) ClearWater() {
	for r := range s.grid {
		for c := range s.grid[r] {
			cell := &s.grid[r][c]
			if cell.water != 0 {
				s.entityManager.DestroyEntity(cell.water)
				cell.water = 0
			}
		}
	}
}

// WaterAll 给所有已耕格子浇水
func (s *SoilSystem) WaterAll() {
	for r := range s.grid {
		for c := range s.grid[r] {
			cell := &s.grid[r][c]
			if cell.patch != 0 {
				s.waterCell(cell, r, c)
			}
		}
	}
}

// Tilled 格子是否已耕
func (s *SoilSystem) Tilled(row, col int) bool {
	cell := s.cell(row, col)
	return cell != nil && cell.patch != 0
}

// Watered 格子是否湿润
func (s *SoilSystem) Watered(row, col int) bool {
	cell := s.cell(row, col)
	return cell != nil && cell.water != 0
}

// PlantAt 格子上的作物实体，没有时返回 0
func (s *SoilSystem) PlantAt(row, col int) ecs.EntityID {
	cell := s.cell(row, col)
	if cell == nil {
		return 0
	}
	return cell.plant
}

func (s *SoilSystem) stageImage(seed types.Seed, stage int) *ebiten.Image {
	frames := s.images.Plants[seed]
	if len(frames) == 0 {
		return nil
	}
	if stage >= len(frames) {
		stage = len(frames) - 1
	}
	return frames[stage]
}

// imageSize 图像尺寸，没有图像时退化为一个格子
func (s *SoilSystem) imageSize(image *ebiten.Image) (float64, float64) {
	if image == nil {
		return s.config.TileSize, s.config.TileSize
	}
	b := image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
