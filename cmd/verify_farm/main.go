package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/game"
	"github.com/decker502/farmstead/pkg/scenes"
	"github.com/decker502/farmstead/pkg/types"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	hitboxes   = flag.Bool("hitboxes", true, "绘制碰撞盒")
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件")
	worldPath  = flag.String("world", "data/world.yaml", "世界布局文件")
)

// scriptStep 自动演示的一步：按住 controls 持续 frames 帧
type scriptStep struct {
	label    string
	controls []types.Control
	frames   int
}

// demoScript 从出生点向下走进农田，翻地、播种、浇水
var demoScript = []scriptStep{
	{"walk to the field", []types.Control{types.ControlDown}, 60},
	{"wait", nil, 5},
	{"hoe", []types.Control{types.ControlUseTool}, 1},
	{"wait for hoe", nil, 30},
	{"plant corn", []types.Control{types.ControlUseSeed}, 1},
	{"wait for seed", nil, 30},
	{"switch to axe", []types.Control{types.ControlSwitchTool}, 1},
	{"wait", nil, 15},
	{"switch to water", []types.Control{types.ControlSwitchTool}, 1},
	{"wait", nil, 15},
	{"water", []types.Control{types.ControlUseTool}, 1},
	{"wait for water", nil, 30},
}

// autoplayInput 先回放脚本，脚本结束后交给键盘
type autoplayInput struct {
	script   *utils.ScriptedInput
	keyboard utils.InputSource
	steps    []scriptStep
	step     int
	frame    int
}

func (a *autoplayInput) done() bool {
	return a.step >= len(a.steps)
}

// advance 每帧调用一次，推进脚本
func (a *autoplayInput) advance() {
	if a.done() {
		return
	}
	current := a.steps[a.step]
	if a.frame == 0 {
		log.Printf("[VerifyFarm] Step %d: %s", a.step+1, current.label)
	}
	a.script.Set(current.controls...)
	a.frame++
	if a.frame >= current.frames {
		a.step++
		a.frame = 0
	}
}

func (a *autoplayInput) IsPressed(c types.Control) bool {
	if a.done() {
		return a.keyboard.IsPressed(c)
	}
	return a.script.IsPressed(c)
}

// VerifyFarmGame 农场验证程序
type VerifyFarmGame struct {
	config *config.GameConfig
	level  *scenes.LevelScene
	input  *autoplayInput
}

// NewVerifyFarmGame 创建验证程序实例（无音频）
func NewVerifyFarmGame() (*VerifyFarmGame, error) {
	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		return nil, err
	}
	cfg.Debug.ShowHitboxes = *hitboxes

	layout, err := config.LoadWorldLayout(*worldPath)
	if err != nil {
		return nil, err
	}

	keyboard, err := utils.NewKeyboardInput(cfg.KeyBindings)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyboard input: %w", err)
	}
	input := &autoplayInput{
		script:   utils.NewScriptedInput(),
		keyboard: keyboard,
		steps:    demoScript,
	}

	level, err := scenes.NewLevelScene(scenes.LevelDeps{
		Config:    cfg,
		Layout:    layout,
		Resources: game.NewResourceManager(nil),
		Input:     input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}

	return &VerifyFarmGame{config: cfg, level: level, input: input}, nil
}

func (g *VerifyFarmGame) Update() error {
	g.input.advance()
	g.level.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *VerifyFarmGame) Draw(screen *ebiten.Image) {
	g.level.Draw(screen)

	player := g.level.Player()
	mode := "autoplay"
	if g.input.done() {
		mode = "keyboard"
	}
	info := fmt.Sprintf("mode: %s  day: %d  raining: %v\ntool: %s  seed: %s\ninventory: %v",
		mode, g.level.Day(), g.level.Raining(),
		player.SelectedTool(), player.SelectedSeed(),
		g.level.Inventory().Snapshot())
	ebitenutil.DebugPrintAt(screen, info, 8, 40)
}

func (g *VerifyFarmGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.config.Screen.W), int(g.config.Screen.H)
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	g, err := NewVerifyFarmGame()
	if err != nil {
		fmt.Printf("初始化失败: %v\n", err)
		return
	}

	ebiten.SetWindowSize(int(g.config.Screen.W), int(g.config.Screen.H))
	ebiten.SetWindowTitle("Farmstead - 农场验证")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
