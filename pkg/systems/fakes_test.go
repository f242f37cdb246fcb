package systems

import (
	"github.com/decker502/farmstead/pkg/ecs"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// recordingSoil 记录玩家对土壤层的所有调用
type recordingSoil struct {
	tilled   []mgl64.Vec2
	watered  []mgl64.Vec2
	planted  []types.Seed
	removed  [][2]int
	aged     int
	cleared  int
	wateredN int
	plantOK  bool
}

func (s *recordingSoil) Till(pos mgl64.Vec2) { s.tilled = append(s.tilled, pos) }
func (s *recordingSoil) Water(pos mgl64.Vec2) { s.watered = append(s.watered, pos) }
func (s *recordingSoil) PlantSeed(pos mgl64.Vec2, seed types.Seed) bool {
	s.planted = append(s.planted, seed)
	return s.plantOK
}
func (s *recordingSoil) RemovePlant(row, col int) { s.removed = append(s.removed, [2]int{row, col}) }
func (s *recordingSoil) AgePlants() { s.aged++ }
func (s *recordingSoil) ClearWater() { s.cleared++ }
func (s *recordingSoil) WaterAll() { s.wateredN++ }

// recordingItems 记录获得的物品
type recordingItems struct {
	counts map[types.Item]int
}

func newRecordingItems() *recordingItems {
	return &recordingItems{counts: make(map[types.Item]int)}
}

func (r *recordingItems) AddItem(item types.Item) { r.counts[item]++ }
func (r *recordingItems) Count(item types.Item) int {
	return r.counts[item]
}

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSounds) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

type recordingShop struct {
	toggles int
}

func (r *recordingShop) ToggleShop() { r.toggles++ }

type recordingTrees struct {
	damaged []ecs.EntityID
}

func (r *recordingTrees) Damage(id ecs.EntityID) { r.damaged = append(r.damaged, id) }
