package systems

import (
	"image/color"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// zombiePalette 僵尸精灵的配色
type zombiePalette struct {
	skin    color.RGBA
	clothes color.RGBA
	hair    color.RGBA // 男性僵尸不绘制头发
	eyes    color.RGBA
}

// zombiePaletteFor 按种类和存活状态选择配色
// 死亡中的僵尸使用灰暗配色，对应“尸体”精灵
func zombiePaletteFor(kind components.ZombieKind, dying bool) zombiePalette {
	switch {
	case kind == components.ZombieFemale && dying:
		return zombiePalette{
			skin:    color.RGBA{120, 128, 112, 255},
			clothes: color.RGBA{96, 64, 80, 255},
			hair:    color.RGBA{64, 48, 40, 255},
			eyes:    color.RGBA{40, 40, 40, 255},
		}
	case kind == components.ZombieFemale:
		return zombiePalette{
			skin:    color.RGBA{150, 196, 120, 255},
			clothes: color.RGBA{190, 40, 110, 255},
			hair:    color.RGBA{110, 60, 30, 255},
			eyes:    color.RGBA{230, 30, 30, 255},
		}
	case dying:
		return zombiePalette{
			skin:    color.RGBA{112, 120, 104, 255},
			clothes: color.RGBA{72, 72, 88, 255},
			eyes:    color.RGBA{40, 40, 40, 255},
		}
	default:
		return zombiePalette{
			skin:    color.RGBA{132, 176, 96, 255},
			clothes: color.RGBA{70, 90, 150, 255},
			eyes:    color.RGBA{250, 220, 40, 255},
		}
	}
}

var (
	badgeFill   = color.RGBA{234, 179, 8, 255}
	badgeBorder = color.RGBA{120, 80, 0, 255}
	badgeText   = color.RGBA{40, 24, 0, 255}
)

// RenderSystem 管理游戏世界实体的渲染
//
// 每只僵尸绘制为程序化精灵（身体、头部、手臂），
// 配色取决于种类和是否正在死亡，头顶绘制金色 "R" 徽章。
// 悬停中的僵尸以中心为原点放大。
// 绘制顺序按实体ID升序，后生成的僵尸在上层。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	badgeFont     *text.GoTextFace // 可为 nil（不绘制徽章文字）
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, badgeFont *text.GoTextFace) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		badgeFont:     badgeFont,
	}
}

// Draw 绘制所有僵尸
// 返回绘制的僵尸数量
func (s *RenderSystem) Draw(screen *ebiten.Image) int {
	ids := ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](s.entityManager)

	drawn := 0
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		scale := 1.0
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok && clickable.IsHovered {
			scale = config.ZombieHoverScale
		}

		s.drawZombie(screen, pos.X, pos.Y, scale, zombie)
		drawn++
	}
	return drawn
}

// spriteRect 计算缩放后精灵的绘制区域（以精灵中心为缩放原点）
func spriteRect(x, y, scale float64) (left, top, size float64) {
	size = config.ZombieSpriteSize * scale
	offset := (size - config.ZombieSpriteSize) / 2
	return x - offset, y - offset, size
}

// drawZombie 绘制单只僵尸与徽章
func (s *RenderSystem) drawZombie(screen *ebiten.Image, x, y, scale float64, zombie *components.ZombieComponent) {
	left, top, size := spriteRect(x, y, scale)
	p := zombiePaletteFor(zombie.Kind, zombie.Dying)

	l, t, u := float32(left), float32(top), float32(size/96) // u: 1 个设计单位

	if zombie.Dying {
		// 倒地：身体横躺在精灵下半部
		vector.DrawFilledRect(screen, l+8*u, t+60*u, 64*u, 24*u, p.clothes, true)
		vector.DrawFilledCircle(screen, l+78*u, t+70*u, 14*u, p.skin, true)
		if zombie.Kind == components.ZombieFemale {
			vector.DrawFilledRect(screen, l+84*u, t+56*u, 10*u, 30*u, p.hair, true)
		}
		vector.StrokeLine(screen, l+72*u, t+64*u, l+78*u, t+70*u, 2*u, p.eyes, true)
		vector.StrokeLine(screen, l+78*u, t+64*u, l+72*u, t+70*u, 2*u, p.eyes, true)
	} else {
		// 站立：头、躯干、伸向前方（右侧）的双臂、双腿
		vector.DrawFilledRect(screen, l+34*u, t+68*u, 10*u, 26*u, p.clothes, true)
		vector.DrawFilledRect(screen, l+52*u, t+68*u, 10*u, 26*u, p.clothes, true)
		if zombie.Kind == components.ZombieFemale {
			vector.DrawFilledRect(screen, l+26*u, t+36*u, 44*u, 40*u, p.clothes, true)
		} else {
			vector.DrawFilledRect(screen, l+30*u, t+36*u, 36*u, 36*u, p.clothes, true)
		}
		vector.DrawFilledRect(screen, l+60*u, t+40*u, 30*u, 8*u, p.skin, true)
		vector.DrawFilledRect(screen, l+60*u, t+52*u, 28*u, 8*u, p.skin, true)
		if zombie.Kind == components.ZombieFemale {
			vector.DrawFilledRect(screen, l+28*u, t+6*u, 40*u, 40*u, p.hair, true)
		}
		vector.DrawFilledCircle(screen, l+48*u, t+22*u, 16*u, p.skin, true)
		vector.DrawFilledCircle(screen, l+44*u, t+20*u, 3*u, p.eyes, true)
		vector.DrawFilledCircle(screen, l+55*u, t+20*u, 3*u, p.eyes, true)
	}

	s.drawBadge(screen, left+size/2, top+config.BadgeOffsetY*scale, scale)
}

// drawBadge 在 (cx, cy) 绘制金色徽章
func (s *RenderSystem) drawBadge(screen *ebiten.Image, cx, cy, scale float64) {
	r := float32(config.BadgeSize / 2 * scale)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, badgeFill, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), r, 2, badgeBorder, true)

	if s.badgeFont == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(badgeText)
	text.Draw(screen, config.BadgeLabel, s.badgeFont, op)
}
