package systems

import (
	"fmt"
	"strings"

	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SelectionSource 提供当前选中的工具和种子
type SelectionSource interface {
	SelectedTool() types.Tool
	SelectedSeed() types.Seed
}

// ItemCounter 提供物品数量（HUD 显示用）
type ItemCounter interface {
	Count(item types.Item) int
}

// OverlaySystem 屏幕空间 HUD：选中的工具、种子和背包数量
type OverlaySystem struct {
	config    *config.GameConfig
	selection SelectionSource
	items     ItemCounter

	toolImages map[types.Tool]*ebiten.Image
	seedImages map[types.Seed]*ebiten.Image
}

// NewOverlaySystem 创建 HUD
// items 可以为 nil（不显示背包）
func NewOverlaySystem(cfg *config.GameConfig, selection SelectionSource, items ItemCounter, toolImages map[types.Tool]*ebiten.Image, seedImages map[types.Seed]*ebiten.Image) *OverlaySystem {
	return &OverlaySystem{
		config:     cfg,
		selection:  selection,
		items:      items,
		toolImages: toolImages,
		seedImages: seedImages,
	}
}

// IconRects 工具和种子图标的屏幕矩形（底边中点对齐配置位置）
func (o *OverlaySystem) IconRects() (tool, seed utils.Rect) {
	tool = iconRect(o.toolImages[o.selection.SelectedTool()], o.config.Overlay.Tool.Vec())
	seed = iconRect(o.seedImages[o.selection.SelectedSeed()], o.config.Overlay.Seed.Vec())
	return tool, seed
}

func iconRect(image *ebiten.Image, midBottom mgl64.Vec2) utils.Rect {
	if image == nil {
		return utils.NewRectMidBottom(midBottom, 0, 0)
	}
	b := image.Bounds()
	return utils.NewRectMidBottom(midBottom, float64(b.Dx()), float64(b.Dy()))
}

// Draw 绘制 HUD
func (o *OverlaySystem) Draw(screen *ebiten.Image) {
	toolRect, seedRect := o.IconRects()
	drawIcon(screen, o.toolImages[o.selection.SelectedTool()], toolRect)
	drawIcon(screen, o.seedImages[o.selection.SelectedSeed()], seedRect)

	if o.items != nil {
		ebitenutil.DebugPrintAt(screen, o.InventoryText(), 8, 8)
	}
}

// InventoryText 背包文本，按物品枚举顺序
func (o *OverlaySystem) InventoryText() string {
	parts := make([]string, 0, len(types.AllItems()))
	for _, item := range types.AllItems() {
		parts = append(parts, fmt.Sprintf("%s: %d", item, o.items.Count(item)))
	}
	return strings.Join(parts, "  ")
}

func drawIcon(screen, image *ebiten.Image, rect utils.Rect) {
	if image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(image, op)
}
