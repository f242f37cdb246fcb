package main

import (
	"flag"
	"log"

	"github.com/decker502/farmstead/pkg/app"
	"github.com/decker502/farmstead/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", app.DefaultConfigPath, "游戏配置文件")
	worldPath := flag.String("world", app.DefaultWorldPath, "世界布局文件")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		WorldPath:  *worldPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Farmstead")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
