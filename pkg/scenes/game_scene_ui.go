package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
	"github.com/decker502/zombierush/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 按钮文字
const (
	LabelStartGame  = "Start Game"
	LabelReset      = "Reset"
	LabelPause      = "Pause"
	LabelResume     = "Resume"
	LabelResumeGame = "Resume Game"
	LabelPlayAgain  = "Play Again"
)

// 覆盖层文字
const (
	PauseTitle    = "PAUSED"
	PauseHint     = "Click Resume to continue"
	VictoryTitle  = "VICTORY!"
	VictoryLine1  = "Congratulations, you have won the game!"
	VictoryLine2  = "and you are entitled to claim $Rialo"
	victoryBorder = 4.0
)

var (
	scoreBoardColor   = color.RGBA{0, 0, 0, 178}
	pauseDimColor     = color.RGBA{0, 0, 0, 128}
	victoryDimColor   = color.RGBA{0, 0, 0, 178}
	pausePanelColor   = color.RGBA{0, 0, 0, 230}
	victoryPanelColor = color.RGBA{21, 94, 50, 255}
	victoryGold       = color.RGBA{250, 204, 21, 255}
	victoryLightGold  = color.RGBA{254, 240, 138, 255}
	white             = color.RGBA{255, 255, 255, 255}
)

// sceneButtons 场景中所有按钮的实体ID
type sceneButtons struct {
	pause     ecs.EntityID // 右上角：暂停/继续
	start     ecs.EntityID // 右上角：开始游戏（未开始时）
	reset     ecs.EntityID // 右上角：重置（已开始时）
	resume    ecs.EntityID // 暂停覆盖层：继续游戏
	playAgain ecs.EntityID // 胜利覆盖层：再玩一次
}

// ScoreText 计分板文字，例如 "Rialo: 42$"
func ScoreText(score int) string {
	return fmt.Sprintf("%s: %d$", config.ScoreLabel, score)
}

// initButtons 创建所有按钮实体
func (s *GameScene) initButtons(font *text.GoTextFace) {
	width := func(label string) float64 {
		return buttonWidth(label, font)
	}
	// 暂停按钮按较长的文字定宽，切换文字时不跳动
	pauseWidth := max(width(LabelPause), width(LabelResume))

	s.buttons = sceneButtons{
		pause:     entities.NewButton(s.uiManager, LabelPause, components.ButtonStyleSecondary, pauseWidth, s.TogglePause),
		start:     entities.NewButton(s.uiManager, LabelStartGame, components.ButtonStylePrimary, width(LabelStartGame), s.StartGame),
		reset:     entities.NewButton(s.uiManager, LabelReset, components.ButtonStyleDestructive, width(LabelReset), s.ResetGame),
		resume:    entities.NewButton(s.uiManager, LabelResumeGame, components.ButtonStyleSecondary, width(LabelResumeGame), s.TogglePause),
		playAgain: entities.NewButton(s.uiManager, LabelPlayAgain, components.ButtonStyleGold, width(LabelPlayAgain), s.StartGame),
	}
}

// buttonWidth 按文字宽度加左右留白计算按钮宽度
func buttonWidth(label string, font *text.GoTextFace) float64 {
	var w float64
	if font != nil {
		w, _ = text.Measure(label, font, 0)
	} else {
		w = float64(len(label)) * config.ButtonFontSize * 0.6
	}
	return w + 2*config.ButtonPaddingX
}

// button 获取按钮组件
func (s *GameScene) button(id ecs.EntityID) *components.ButtonComponent {
	b, _ := ecs.GetComponent[*components.ButtonComponent](s.uiManager, id)
	return b
}

// syncButtons 根据当前阶段决定按钮的可见性、文字和可用性
//
// 与覆盖层的关系：暂停/胜利覆盖层遮住整个画面，
// 右上角按钮仍然显示但不可点击，只有覆盖层上的按钮可用。
func (s *GameScene) syncButtons() {
	phase := s.gameState.Phase()
	overlay := phase == game.PhasePaused || phase == game.PhaseWon

	pause := s.button(s.buttons.pause)
	pause.Visible = s.gameState.CanTogglePause()
	pause.Enabled = !overlay
	if phase == game.PhasePaused {
		pause.Text = LabelResume
	} else {
		pause.Text = LabelPause
	}

	start := s.button(s.buttons.start)
	start.Visible = phase == game.PhaseIdle
	start.Enabled = true

	reset := s.button(s.buttons.reset)
	reset.Visible = phase != game.PhaseIdle
	reset.Enabled = !overlay

	s.button(s.buttons.resume).Visible = phase == game.PhasePaused
	s.button(s.buttons.playAgain).Visible = phase == game.PhaseWon

	s.layoutButtons()
}

// layoutButtons 计算按钮位置
// 右上角按钮从右向左排列；覆盖层按钮在面板底部居中
func (s *GameScene) layoutButtons() {
	cursor := s.viewport.Width - config.ButtonMarginRight
	for _, id := range []ecs.EntityID{s.buttons.reset, s.buttons.start, s.buttons.pause} {
		b := s.button(id)
		if !b.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.uiManager, id)
		pos.X = cursor - b.Width
		pos.Y = config.ButtonMarginTop
		cursor = pos.X - config.ButtonGap
	}

	px, py, pw, ph := s.overlayPanelRect()
	for _, id := range []ecs.EntityID{s.buttons.resume, s.buttons.playAgain} {
		b := s.button(id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.uiManager, id)
		pos.X = px + (pw-b.Width)/2
		pos.Y = py + ph - b.Height - 32
	}
}

// overlayPanelRect 覆盖层面板位置（视口居中）
func (s *GameScene) overlayPanelRect() (x, y, w, h float64) {
	w = min(float64(config.OverlayPanelWidth), s.viewport.Width-32)
	h = config.OverlayPanelHeight
	return (s.viewport.Width - w) / 2, (s.viewport.Height - h) / 2, w, h
}

// drawScoreBoard 左上角计分板
func (s *GameScene) drawScoreBoard(screen *ebiten.Image) {
	label := ScoreText(s.gameState.Score)

	tw, th := float64(len(label))*config.HUDFontSize*0.6, config.HUDFontSize
	if s.hudFont != nil {
		tw, th = text.Measure(label, s.hudFont, 0)
	}

	w := tw + 2*config.ScoreBoardPaddingX
	h := th + 2*config.ScoreBoardPaddingY
	vector.DrawFilledRect(screen, float32(config.ScoreBoardX), float32(config.ScoreBoardY), float32(w), float32(h), scoreBoardColor, true)

	if s.hudFont == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScoreBoardX+config.ScoreBoardPaddingX, config.ScoreBoardY+config.ScoreBoardPaddingY)
	op.ColorScale.ScaleWithColor(white)
	text.Draw(screen, label, s.hudFont, op)
}

// drawTopButtons 绘制右上角按钮
func (s *GameScene) drawTopButtons(screen *ebiten.Image) {
	s.buttonRenderSystem.DrawButton(screen, s.buttons.pause)
	s.buttonRenderSystem.DrawButton(screen, s.buttons.start)
	s.buttonRenderSystem.DrawButton(screen, s.buttons.reset)
}

// drawPauseOverlay 暂停覆盖层：半透明遮罩、标题、提示和继续按钮
func (s *GameScene) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.viewport.Width), float32(s.viewport.Height), pauseDimColor, false)

	x, y, w, _ := s.overlayPanelRect()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(config.OverlayPanelHeight), pausePanelColor, true)

	s.drawCenteredText(screen, PauseTitle, s.titleFont, x+w/2, y+70, white)
	s.drawCenteredText(screen, PauseHint, s.bodyFont, x+w/2, y+140, white)

	s.buttonRenderSystem.DrawButton(screen, s.buttons.resume)
}

// drawVictoryOverlay 胜利覆盖层：金色边框面板、祝贺文字和再玩一次按钮
func (s *GameScene) drawVictoryOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.viewport.Width), float32(s.viewport.Height), victoryDimColor, false)

	x, y, w, h := s.overlayPanelRect()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), victoryPanelColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), victoryBorder, victoryGold, true)

	s.drawCenteredText(screen, VictoryTitle, s.titleFont, x+w/2, y+60, victoryGold)
	s.drawCenteredText(screen, VictoryLine1, s.bodyFont, x+w/2, y+130, white)
	s.drawCenteredText(screen, VictoryLine2, s.bodyFont, x+w/2, y+170, victoryLightGold)

	s.buttonRenderSystem.DrawButton(screen, s.buttons.playAgain)
}

// drawCenteredText 以 (cx, cy) 为中心绘制文字；字体为 nil 时跳过
func (s *GameScene) drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
