package systems

import (
	"github.com/decker502/zombierush/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 一帧的输入快照
type InputState struct {
	CursorX float64
	CursorY float64

	MouseJustPressed  bool // 左键本帧按下（击杀僵尸）
	MousePressed      bool // 左键按住（按钮按下效果）
	MouseJustReleased bool // 左键本帧释放（触发按钮）

	PauseJustPressed      bool // Esc
	SoundJustPressed      bool // M
	VolumeDownJustPressed bool // [
	VolumeUpJustPressed   bool // ]
}

// PollInput 从 ebiten 读取当前帧的输入
func PollInput() InputState {
	x, y := ebiten.CursorPosition()
	return InputState{
		CursorX:           float64(x),
		CursorY:           float64(y),
		MouseJustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MousePressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseJustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		PauseJustPressed:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		SoundJustPressed:  inpututil.IsKeyJustPressed(ebiten.KeyM),

		VolumeDownJustPressed: inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft),
		VolumeUpJustPressed:   inpututil.IsKeyJustPressed(ebiten.KeyBracketRight),
	}
}

// InputSystem 处理所有用户输入，包括鼠标点击和键盘输入
//
// 分发顺序：
//  1. 键盘：Esc 切换暂停，M 切换音效，[ ] 调节音量
//  2. 僵尸：鼠标按下且不在按钮上时，击中最上层的僵尸
//  3. 按钮：鼠标释放时触发
type InputSystem struct {
	gameState      *game.GameState
	buttonSystem   *ButtonSystem
	clickSystem    *ZombieClickSystem
	onTogglePause  func()
	onToggleSound  func()
	onAdjustVolume func(delta float64)
}

// NewInputSystem 创建输入系统
// onTogglePause / onToggleSound / onAdjustVolume 可为 nil
func NewInputSystem(gs *game.GameState, bs *ButtonSystem, cs *ZombieClickSystem, onTogglePause, onToggleSound func(), onAdjustVolume func(delta float64)) *InputSystem {
	return &InputSystem{
		gameState:      gs,
		buttonSystem:   bs,
		clickSystem:    cs,
		onTogglePause:  onTogglePause,
		onToggleSound:  onToggleSound,
		onAdjustVolume: onAdjustVolume,
	}
}

// Handle 处理一帧输入
func (s *InputSystem) Handle(in InputState) {
	if in.PauseJustPressed && s.onTogglePause != nil {
		s.onTogglePause()
	}
	if in.SoundJustPressed && s.onToggleSound != nil {
		s.onToggleSound()
	}
	if s.onAdjustVolume != nil {
		if in.VolumeDownJustPressed {
			s.onAdjustVolume(-game.SoundVolumeStep)
		}
		if in.VolumeUpJustPressed {
			s.onAdjustVolume(game.SoundVolumeStep)
		}
	}

	overButton := s.buttonSystem.HitTest(in.CursorX, in.CursorY)

	if in.MouseJustPressed && !overButton {
		s.clickSystem.ClickAt(in.CursorX, in.CursorY)
	}

	s.buttonSystem.HandlePointer(in.CursorX, in.CursorY, in.MousePressed, in.MouseJustReleased)

	// 按钮回调可能改变阶段，悬停按最新阶段计算
	s.clickSystem.UpdateHover(in.CursorX, in.CursorY, s.gameState.IsRunning() && !overButton)
}
