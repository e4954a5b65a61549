package scenes

import (
	"image/color"

	"github.com/decker502/zombierush/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyTopColor    = color.RGBA{38, 30, 64, 255}
	skyBottomColor = color.RGBA{120, 70, 90, 255}
	moonColor      = color.RGBA{240, 232, 200, 255}
	hillColor      = color.RGBA{44, 52, 48, 255}
	groundColor    = color.RGBA{70, 96, 52, 255}
	roadColor      = color.RGBA{96, 84, 70, 255}
	graveColor     = color.RGBA{120, 120, 128, 255}
)

// skyBands 天空渐变的色带数量
const skyBands = 12

// drawBackground 程序化绘制背景：渐变夜空、月亮、远山、草地和僵尸行进的土路
// 地平线与出生区间上沿对齐，土路覆盖整个出生区间
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	w := float32(s.viewport.Width)
	h := float32(s.viewport.Height)
	horizon := h * config.HorizonRatio

	bandH := horizon / skyBands
	for i := 0; i < skyBands; i++ {
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, w, bandH+1, lerpColor(skyTopColor, skyBottomColor, float64(i)/(skyBands-1)), false)
	}

	vector.DrawFilledCircle(screen, w*0.82, horizon*0.35, horizon*0.12, moonColor, true)

	for i := float32(0); i < 6; i++ {
		vector.DrawFilledCircle(screen, w*(i/5), horizon+horizon*0.15, horizon*0.35, hillColor, true)
	}

	vector.DrawFilledRect(screen, 0, horizon, w, h-horizon, groundColor, false)

	band := s.config.SpawnBand
	roadTop := h * float32(band.Min)
	roadBottom := h*float32(band.Max) + config.ZombieSpriteSize
	vector.DrawFilledRect(screen, 0, roadTop, w, roadBottom-roadTop, roadColor, false)

	// 路边墓碑
	for i := float32(0); i < 5; i++ {
		x := w * (0.1 + i*0.2)
		y := roadBottom + 20
		if y+40 > h {
			break
		}
		vector.DrawFilledRect(screen, x, y+10, 30, 30, graveColor, true)
		vector.DrawFilledCircle(screen, x+15, y+10, 15, graveColor, true)
	}
}

// lerpColor 在两种颜色之间线性插值，t ∈ [0, 1]
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
