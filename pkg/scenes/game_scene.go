package scenes

import (
	"log"
	"time"

	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/game"
	"github.com/decker502/zombierush/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameScene 游戏主场景：游戏循环与状态机
//
// 阶段：Idle → Running ⇄ Paused，Running/Paused → Won（再玩一次之前保持）。
//
// 所有刷怪、移动、难度和死亡延迟都挂在同一个 Scheduler 上，
// 游戏时间只在 Running 阶段推进：
//   - 离开 Running（暂停、胜利、重置）时取消全部周期计时器
//   - 回到 Running 时以完整间隔重新注册
//   - 开始/重置时取消所有计时器，上一局的死亡延迟不会影响新一局
//
// 每条命令、每个计时器回调之后都会清理已删除实体并检查胜利条件。
type GameScene struct {
	config      *config.RushConfig
	gameState   *game.GameState
	scheduler   *game.Scheduler
	viewport    *systems.Viewport
	settings    *game.SettingsManager // 可为 nil
	volume      game.VolumeControl    // sounds 支持调节音量时非 nil
	pollInput   func() systems.InputState
	periodic    []*game.TimerHandle
	lastPhase   game.Phase

	// ECS：僵尸与界面各用一个实体管理器，重置僵尸不影响按钮
	zombieManager *ecs.EntityManager
	uiManager     *ecs.EntityManager

	spawnSystem        *systems.SpawnSystem
	movementSystem     *systems.MovementSystem
	difficultySystem   *systems.DifficultySystem
	clickSystem        *systems.ZombieClickSystem
	buttonSystem       *systems.ButtonSystem
	inputSystem        *systems.InputSystem
	renderSystem       *systems.RenderSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	buttons sceneButtons

	// 字体（ResourceManager 为 nil 时全部为 nil，只绘制图形）
	hudFont   *text.GoTextFace
	titleFont *text.GoTextFace
	bodyFont  *text.GoTextFace
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - cfg: 数值配置
//   - rm: 资源管理器（提供字体），可为 nil
//   - sounds: 音效播放器，可为 nil
//   - settings: 设置管理器（M 键切换音效），可为 nil
//   - rng: 随机数来源（刷怪位置与速度）
func NewGameScene(cfg *config.RushConfig, rm *game.ResourceManager, sounds game.SoundPlayer, settings *game.SettingsManager, rng systems.RandSource) *GameScene {
	s := &GameScene{
		config:        cfg,
		gameState:     game.NewGameState(),
		scheduler:     game.NewScheduler(),
		viewport:      &systems.Viewport{Width: config.GameWindowWidth, Height: config.GameWindowHeight},
		settings:      settings,
		pollInput:     systems.PollInput,
		zombieManager: ecs.NewEntityManager(),
		uiManager:     ecs.NewEntityManager(),
	}
	s.scheduler.SetAfterFire(s.afterStateChange)
	if vc, ok := sounds.(game.VolumeControl); ok {
		s.volume = vc
	}

	var buttonFont, badgeFont *text.GoTextFace
	if rm != nil {
		s.hudFont = loadFont(rm, config.HUDFontSize)
		s.titleFont = loadFont(rm, config.OverlayTitleFontSize)
		s.bodyFont = loadFont(rm, config.OverlayBodyFontSize)
		buttonFont = loadFont(rm, config.ButtonFontSize)
		badgeFont = loadFont(rm, config.BadgeSize*0.6)
	}

	s.spawnSystem = systems.NewSpawnSystem(s.zombieManager, s.gameState, cfg, rng, s.viewport, sounds)
	s.movementSystem = systems.NewMovementSystem(s.zombieManager, s.gameState, cfg, s.viewport)
	s.difficultySystem = systems.NewDifficultySystem(s.gameState, cfg)
	s.clickSystem = systems.NewZombieClickSystem(s.zombieManager, s.gameState, cfg, s.scheduler, sounds)
	s.buttonSystem = systems.NewButtonSystem(s.uiManager)
	s.inputSystem = systems.NewInputSystem(s.gameState, s.buttonSystem, s.clickSystem, s.TogglePause, s.toggleSound, s.adjustVolume)
	s.renderSystem = systems.NewRenderSystem(s.zombieManager, badgeFont)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(s.uiManager, buttonFont)

	s.initButtons(buttonFont)
	s.lastPhase = s.gameState.Phase()
	s.syncButtons()

	log.Printf("[GameScene] 场景已创建 (视口 %.0fx%.0f, 胜利分数 %d)", s.viewport.Width, s.viewport.Height, cfg.WinScore)
	return s
}

// loadFont 加载字体，失败时返回 nil 并记录警告
func loadFont(rm *game.ResourceManager, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(size)
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to load font (size %.0f): %v", size, err)
		return nil
	}
	return face
}

// ========== 命令 ==========

// StartGame 开始新的一局（任意阶段 → Running）
func (s *GameScene) StartGame() {
	s.scheduler.CancelAll()
	s.periodic = nil
	s.zombieManager.Reset()
	s.gameState.ResetSession(true)
	s.armPeriodicTimers()
	s.afterStateChange()
	log.Printf("[GameScene] 开始游戏")
}

// ResetGame 重置到未开始状态（任意阶段 → Idle）
func (s *GameScene) ResetGame() {
	s.scheduler.CancelAll()
	s.periodic = nil
	s.zombieManager.Reset()
	s.gameState.ResetSession(false)
	s.afterStateChange()
	log.Printf("[GameScene] 重置游戏")
}

// TogglePause 暂停/继续（Running ⇄ Paused），其他阶段无效
func (s *GameScene) TogglePause() {
	if !s.gameState.TogglePause() {
		return
	}
	if s.gameState.IsRunning() {
		s.armPeriodicTimers()
		log.Printf("[GameScene] 继续游戏")
	} else {
		s.cancelPeriodicTimers()
		log.Printf("[GameScene] 暂停游戏")
	}
	s.afterStateChange()
}

// ClickZombie 击中指定僵尸，返回点击是否被接受
func (s *GameScene) ClickZombie(id ecs.EntityID) bool {
	ok := s.clickSystem.ClickZombie(id)
	s.afterStateChange()
	return ok
}

// ========== 计时器 ==========

// armPeriodicTimers 以完整间隔注册所有周期计时器
// 注册顺序决定同一时刻到期时的执行顺序：难度递进先于刷怪
func (s *GameScene) armPeriodicTimers() {
	s.cancelPeriodicTimers()
	cfg := s.config
	s.periodic = []*game.TimerHandle{
		s.scheduler.Every(cfg.Ramps.Global.Interval(), s.difficultySystem.RampGlobal),
		s.scheduler.Every(cfg.Ramps.Female.Interval(), s.difficultySystem.RampFemale),
		s.scheduler.Every(cfg.Spawners.Male.Interval(), func() { s.spawnSystem.SpawnMaleWave() }),
		s.scheduler.Every(cfg.Spawners.Female.Interval(), func() { s.spawnSystem.SpawnFemaleWave() }),
		s.scheduler.Every(cfg.MoveInterval(), func() { s.movementSystem.Step() }),
	}
}

// cancelPeriodicTimers 取消所有周期计时器（死亡延迟不受影响）
func (s *GameScene) cancelPeriodicTimers() {
	for _, h := range s.periodic {
		h.Cancel()
	}
	s.periodic = nil
}

// afterStateChange 每次状态变更后调用：清理实体、检查胜利、同步按钮
func (s *GameScene) afterStateChange() {
	s.zombieManager.RemoveMarkedEntities()

	if s.gameState.CheckVictory(s.config.WinScore) {
		s.cancelPeriodicTimers()
		s.scheduler.Interrupt()
		log.Printf("[GameScene] 胜利！分数 %d", s.gameState.Score)
	}

	if phase := s.gameState.Phase(); phase != s.lastPhase {
		log.Printf("[GameScene] 阶段 %s → %s", s.lastPhase, phase)
		s.lastPhase = phase
	}
	s.syncButtons()
}

// ========== 主循环 ==========

// Tick 推进模拟 dt 的游戏时间
// 只有 Running 阶段游戏时间才会前进；胜利条件在任何阶段都会检查
func (s *GameScene) Tick(dt time.Duration) {
	if s.gameState.IsRunning() {
		s.scheduler.Advance(dt)
	}
	s.afterStateChange()
}

// Update 处理输入并推进模拟
// deltaTime 为上一帧到本帧的秒数
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Handle(s.pollInput())
	s.afterStateChange()
	s.Tick(time.Duration(deltaTime * float64(time.Second)))
}

// Draw 绘制场景：背景、僵尸、计分板、按钮、覆盖层
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.renderSystem.Draw(screen)
	s.drawScoreBoard(screen)
	s.drawTopButtons(screen)

	switch s.gameState.Phase() {
	case game.PhasePaused:
		s.drawPauseOverlay(screen)
	case game.PhaseWon:
		s.drawVictoryOverlay(screen)
	}
}

// SetViewport 更新逻辑视口尺寸（窗口大小变化时由 SceneManager 调用）
func (s *GameScene) SetViewport(width, height int) {
	s.viewport.Width = float64(width)
	s.viewport.Height = float64(height)
	s.layoutButtons()
	log.Printf("[GameScene] 视口更新为 %dx%d", width, height)
}

// ========== 查询（界面与测试使用） ==========

// GameState 返回当前游戏状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// Zombies 返回僵尸实体管理器
func (s *GameScene) Zombies() *ecs.EntityManager {
	return s.zombieManager
}

// toggleSound M 键：切换音效开关并保存设置
func (s *GameScene) toggleSound() {
	if s.settings == nil {
		return
	}
	enabled := s.settings.ToggleSound()
	s.saveSettings()
	if enabled {
		log.Printf("[GameScene] 音效已开启")
	} else {
		log.Printf("[GameScene] 音效已关闭")
	}
}

// adjustVolume [ ] 键：调节音效音量并保存设置
// 优先通过播放器调节（同步已创建的播放器），否则只改设置
func (s *GameScene) adjustVolume(delta float64) {
	switch {
	case s.volume != nil:
		s.volume.SetSoundVolume(s.volume.GetSoundVolume() + delta)
	case s.settings != nil:
		s.settings.SetSoundVolume(s.settings.GetSettings().SoundVolume + delta)
	default:
		return
	}
	s.saveSettings()
	log.Printf("[GameScene] 音量 %.1f", s.soundVolume())
}

// soundVolume 当前音效音量
func (s *GameScene) soundVolume() float64 {
	if s.volume != nil {
		return s.volume.GetSoundVolume()
	}
	if s.settings != nil {
		return s.settings.GetSettings().SoundVolume
	}
	return game.DefaultSettings().SoundVolume
}

// saveSettings 保存设置，失败只记录警告
func (s *GameScene) saveSettings() {
	if s.settings == nil {
		return
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
}
