// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/farmstead/pkg/config"
	"github.com/decker502/farmstead/pkg/embedded"
	"github.com/decker502/farmstead/pkg/game"
	"github.com/decker502/farmstead/pkg/scenes"
	"github.com/decker502/farmstead/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 默认配置文件位置
const (
	DefaultConfigPath = "data/game.yaml"
	DefaultWorldPath  = "data/world.yaml"
)

// appName gdata 存储使用的应用名
const appName = "farmstead"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件，为空时使用 DefaultConfigPath
	ConfigPath string
	// WorldPath 世界布局文件，为空时使用 DefaultWorldPath
	WorldPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	config          *config.GameConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool
}

// NewApp 创建并初始化游戏应用
//
// 配置文件优先从嵌入资源读取（需先调用 embedded.Init()），否则从磁盘读取。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = DefaultConfigPath
	}
	if cfg.WorldPath == "" {
		cfg.WorldPath = DefaultWorldPath
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	layout, err := loadWorldLayout(cfg.WorldPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Config loaded: %s, %s", cfg.ConfigPath, cfg.WorldPath)

	input, err := utils.NewKeyboardInput(gameConfig.KeyBindings)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyboard input: %w", err)
	}

	// 设置存储失败时降级为内存设置
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: appName}); err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
	} else {
		gdataManager = m
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)
	audioManager := game.NewAudioManager(resourceManager, settingsManager, gameConfig.Assets.AudioDir)
	audioManager.PreloadSounds(gameConfig.Sounds.Effects())
	log.Printf("[App] AudioManager initialized")

	level, err := scenes.NewLevelScene(scenes.LevelDeps{
		Config:    gameConfig,
		Layout:    layout,
		Resources: resourceManager,
		Audio:     audioManager,
		Input:     input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(level)

	return &App{
		config:          gameConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// readConfigFile 嵌入资源中存在时优先读取嵌入版本
func readConfigFile(path string) ([]byte, bool, error) {
	if !embedded.IsInitialized() || !embedded.Exists(path) {
		return nil, false, nil
	}
	data, err := embedded.ReadFile(path)
	return data, true, err
}

func loadGameConfig(path string) (*config.GameConfig, error) {
	data, ok, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	if ok {
		return config.ParseGameConfig(data)
	}
	return config.LoadGameConfig(path)
}

func loadWorldLayout(path string) (*config.WorldLayout, error) {
	data, ok, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world layout: %w", err)
	}
	if ok {
		return config.ParseWorldLayout(data)
	}
	return config.LoadWorldLayout(path)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏，并写回设置
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenSize()
}

// ScreenSize 逻辑屏幕尺寸（来自配置）
func (a *App) ScreenSize() (int, int) {
	return int(a.config.Screen.W), int(a.config.Screen.H)
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
