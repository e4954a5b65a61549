package systems

import (
	"image/color"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// buttonPalette 一种按钮配色在各状态下的颜色
type buttonPalette struct {
	normal  color.RGBA
	hovered color.RGBA
	pressed color.RGBA
	text    color.RGBA
}

var buttonPalettes = map[components.ButtonStyle]buttonPalette{
	components.ButtonStylePrimary: {
		normal:  color.RGBA{22, 163, 74, 255},
		hovered: color.RGBA{21, 128, 61, 255},
		pressed: color.RGBA{20, 83, 45, 255},
		text:    color.RGBA{255, 255, 255, 255},
	},
	components.ButtonStyleSecondary: {
		normal:  color.RGBA{37, 99, 235, 255},
		hovered: color.RGBA{29, 78, 216, 255},
		pressed: color.RGBA{30, 64, 175, 255},
		text:    color.RGBA{255, 255, 255, 255},
	},
	components.ButtonStyleDestructive: {
		normal:  color.RGBA{220, 38, 38, 255},
		hovered: color.RGBA{185, 28, 28, 255},
		pressed: color.RGBA{153, 27, 27, 255},
		text:    color.RGBA{255, 255, 255, 255},
	},
	components.ButtonStyleGold: {
		normal:  color.RGBA{234, 179, 8, 255},
		hovered: color.RGBA{202, 138, 4, 255},
		pressed: color.RGBA{161, 98, 7, 255},
		text:    color.RGBA{0, 0, 0, 255},
	},
}

// buttonFillColor 根据配色和状态选择背景色
func buttonFillColor(style components.ButtonStyle, state components.UIState) color.RGBA {
	p, ok := buttonPalettes[style]
	if !ok {
		p = buttonPalettes[components.ButtonStylePrimary]
	}
	switch state {
	case components.UIHovered:
		return p.hovered
	case components.UIClicked:
		return p.pressed
	case components.UIDisabled:
		return color.RGBA{p.normal.R / 2, p.normal.G / 2, p.normal.B / 2, 255}
	default:
		return p.normal
	}
}

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有可见按钮实体：纯色圆角背景 + 居中文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
}

// NewButtonRenderSystem 创建按钮渲染系统
// font 可为 nil（只绘制背景）
func NewButtonRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		font:          font,
	}
}

// Draw 渲染所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
// 用于需要精确控制渲染顺序的场景（如覆盖层上的按钮）
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || !button.Visible {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	drawRoundedRect(screen, pos.X, pos.Y, button.Width, button.Height, 8, buttonFillColor(button.Style, button.State))

	if button.Text == "" || s.font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(pos.X+button.Width/2, pos.Y+button.Height/2)
	op.ColorScale.ScaleWithColor(buttonPalettes[button.Style].text)
	text.Draw(screen, button.Text, s.font, op)
}

// drawRoundedRect 用矩形加四个圆角绘制圆角矩形
func drawRoundedRect(screen *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(r)

	vector.DrawFilledRect(screen, fx+fr, fy, fw-2*fr, fh, clr, true)
	vector.DrawFilledRect(screen, fx, fy+fr, fr, fh-2*fr, clr, true)
	vector.DrawFilledRect(screen, fx+fw-fr, fy+fr, fr, fh-2*fr, clr, true)
	vector.DrawFilledCircle(screen, fx+fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(screen, fx+fw-fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(screen, fx+fr, fy+fh-fr, fr, clr, true)
	vector.DrawFilledCircle(screen, fx+fw-fr, fy+fh-fr, fr, clr, true)
}
