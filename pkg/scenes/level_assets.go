package scenes

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/decker502/farmstead/pkg/components"
	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/game"
	"github.com/decker502/farmstead/pkg/systems"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// 占位图颜色（缺少美术资源时使用）
var (
	groundColor     = color.RGBA{R: 96, G: 156, B: 72, A: 255}
	playerColor     = color.RGBA{R: 220, G: 180, B: 120, A: 255}
	treeColor       = color.RGBA{R: 40, G: 110, B: 40, A: 255}
	stumpColor      = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	appleColor      = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	soilColor       = color.RGBA{R: 120, G: 90, B: 60, A: 255}
	soilWaterColor  = color.RGBA{R: 70, G: 60, B: 80, A: 160}
	waterColor      = color.RGBA{R: 60, G: 120, B: 200, A: 255}
	plantColor      = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	decorationColor = color.RGBA{R: 150, G: 130, B: 110, A: 255}
	iconColor       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// levelAssets 关卡使用的全部图像
type levelAssets struct {
	ground *ebiten.Image

	playerFrames      map[string][]*ebiten.Image
	playerPlaceholder *ebiten.Image

	trees  map[string]*ebiten.Image // 尺寸 -> 树木图像
	stumps map[string]*ebiten.Image // 尺寸 -> 树桩图像
	apple  *ebiten.Image

	soil systems.SoilImages

	water            []*ebiten.Image
	waterPlaceholder *ebiten.Image

	decorations map[string]*ebiten.Image // kind -> 图像（尺寸随文件）

	tools map[types.Tool]*ebiten.Image
	seeds map[types.Seed]*ebiten.Image
}

// loadLevelAssets 从图像目录加载资源，缺失的部分用占位图代替
//
// 目录结构（相对 cfg.Assets.GraphicsDir）：
//
//	world/ground.png
//	character/<状态名>/*.png     例如 character/up_idle/0.png
//	objects/tree_small.png, objects/tree_large.png, objects/<kind>.png
//	stumps/small.png, stumps/large.png
//	fruit/apple.png, fruit/<种子>/*.png（按生长阶段排序）
//	soil/o.png, soil_water/0.png
//	water/*.png
//	overlay/<工具或种子>.png
func loadLevelAssets(rm *game.ResourceManager, cfg *config.GameConfig, layout *config.WorldLayout) *levelAssets {
	dir := cfg.Assets.GraphicsDir
	path := func(parts ...string) string {
		return filepath.Join(append([]string{dir}, parts...)...)
	}
	tile := cfg.TileSize

	assets := &levelAssets{
		trees:       make(map[string]*ebiten.Image),
		stumps:      make(map[string]*ebiten.Image),
		decorations: make(map[string]*ebiten.Image),
		tools:       make(map[types.Tool]*ebiten.Image),
		seeds:       make(map[types.Seed]*ebiten.Image),
	}

	assets.ground = loadOr(rm, path("world", "ground.png"), layout.Size.W, layout.Size.H, groundColor)

	// 玩家：每个朝向的移动、空闲和各工具状态
	assets.playerPlaceholder = rm.Placeholder(cfg.Player.Size.W, cfg.Player.Size.H, playerColor)
	assets.playerFrames = make(map[string][]*ebiten.Image)
	for _, facing := range types.AllFacings() {
		suffixes := []string{components.SuffixMoving, components.SuffixIdle}
		for _, tool := range cfg.ToolList() {
			suffixes = append(suffixes, tool.String())
		}
		for _, suffix := range suffixes {
			key := components.PlayerStatus{Facing: facing, Suffix: suffix}.AnimationKey()
			if frames := rm.LoadFolder(path("character", key)); len(frames) > 0 {
				assets.playerFrames[key] = frames
			}
		}
	}

	// 树木
	for size, sizeCfg := range cfg.Tree.Sizes {
		name := strings.ToLower(size)
		art := treeArtSize(layout, size)
		assets.trees[size] = loadOr(rm, path("objects", "tree_"+name+".png"), art.W, art.H, treeColor)
		assets.stumps[size] = loadOr(rm, path("stumps", name+".png"), sizeCfg.Stump.W, sizeCfg.Stump.H, stumpColor)
	}
	appleSize := config.SizeConfig{W: 12, H: 12}
	for _, sizeCfg := range cfg.Tree.Sizes {
		if sizeCfg.FruitSize.W > 0 {
			appleSize = sizeCfg.FruitSize
			break
		}
	}
	assets.apple = loadOr(rm, path("fruit", "apple.png"), appleSize.W, appleSize.H, appleColor)

	// 土壤与作物
	assets.soil = systems.SoilImages{
		Patch:  loadOr(rm, path("soil", "o.png"), tile, tile, soilColor),
		Water:  loadOr(rm, path("soil_water", "0.png"), tile, tile, soilWaterColor),
		Plants: make(map[types.Seed][]*ebiten.Image),
	}
	for _, seed := range cfg.SeedList() {
		stages := rm.LoadFolder(path("fruit", seed.String()))
		if len(stages) == 0 {
			stages = plantPlaceholders(rm, tile, cfg.Soil.MaxAge[seed.String()])
		}
		assets.soil.Plants[seed] = stages
	}

	// 水面
	assets.water = rm.LoadFolder(path("water"))
	assets.waterPlaceholder = rm.Placeholder(tile, tile, waterColor)

	for _, d := range layout.Decorations {
		if _, ok := assets.decorations[d.Kind]; ok {
			continue
		}
		if img, err := rm.LoadImage(path("objects", d.Kind+".png")); err == nil {
			assets.decorations[d.Kind] = img
		}
	}

	// HUD 图标
	for _, tool := range cfg.ToolList() {
		assets.tools[tool] = loadOr(rm, path("overlay", tool.String()+".png"), 32, 32, iconColor)
	}
	for _, seed := range cfg.SeedList() {
		assets.seeds[seed] = loadOr(rm, path("overlay", seed.String()+".png"), 24, 24, plantColor)
	}

	return assets
}

// decorationImage 物体图像：有资源时用资源，否则生成与矩形同尺寸的占位图
func (a *levelAssets) decorationImage(rm *game.ResourceManager, kind string, w, h float64) *ebiten.Image {
	if img, ok := a.decorations[kind]; ok {
		return img
	}
	return rm.Placeholder(w, h, decorationColor)
}

// loadOr 加载图像，失败时返回指定颜色的占位图
func loadOr(rm *game.ResourceManager, path string, w, h float64, c color.RGBA) *ebiten.Image {
	if img, err := rm.LoadImage(path); err == nil {
		return img
	}
	return rm.Placeholder(w, h, c)
}

// plantPlaceholders 每个生长阶段一张逐渐变高的占位图
func plantPlaceholders(rm *game.ResourceManager, tile float64, maxAge int) []*ebiten.Image {
	stages := make([]*ebiten.Image, maxAge+1)
	for i := range stages {
		stages[i] = rm.Placeholder(tile/2, tile/4+float64(i)*tile/4, plantColor)
	}
	return stages
}

// treeArtSize 布局中该尺寸树木的图像尺寸（用于占位图）
func treeArtSize(layout *config.WorldLayout, size string) config.SizeConfig {
	for _, tree := range layout.Trees {
		if tree.Size == size {
			return tree.Art
		}
	}
	return config.SizeConfig{W: 64, H: 96}
}
