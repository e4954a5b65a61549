package main

import (
	"flag"
	"log"

	"github.com/decker502/zombierush/pkg/app"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	width := flag.Int("width", config.GameWindowWidth, "窗口宽度")
	height := flag.Int("height", config.GameWindowHeight, "窗口高度")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	// 初始化嵌入资源（必须在任何配置加载之前）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Width:   *width,
		Height:  *height,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	gameApp.Shutdown()
}
