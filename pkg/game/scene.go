package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// ViewportAware 是一个可选接口，场景需要知道当前逻辑视口尺寸时实现
//
// 窗口尺寸变化（包括切换全屏）后由 App.Layout 调用。
// 刷怪位置与逃脱判定都读取最新视口。
type ViewportAware interface {
	SetViewport(width, height int)
}
