// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：日志、音频上下文、设置存储、
// 数值配置、音效资源和场景管理器都在 NewApp 中组装。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/embedded"
	"github.com/decker502/zombierush/pkg/game"
	"github.com/decker502/zombierush/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// SettingsAppName gdata 存储使用的应用名
const SettingsAppName = "zombierush"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Width/Height 初始逻辑尺寸，0 表示使用默认窗口尺寸
	Width  int
	Height int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	audioManager             *game.AudioManager
	defaultWidth             int
	defaultHeight            int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 数值配置、设置存储和音效加载失败都会降级运行，只有嵌入资源未初始化时返回错误。
func NewApp(cfg Config) (*App, error) {
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("app: %w", embedded.ErrNotInitialized)
	}

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载数值配置
	rushConfig, err := config.LoadRushConfig(config.RushConfigPath)
	if err != nil {
		log.Printf("[App] Warning: %v (using built-in defaults)", err)
		rushConfig = config.DefaultRushConfig()
	}

	// 设置存储（失败时进入仅内存模式）
	settingsManager := game.NewSettingsManager(openSettingsStore())

	// 初始化音频上下文
	audioContext := audio.NewContext(game.DefaultSampleRate)

	// 创建资源管理器并加载音效
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadSounds(rushConfig.Sounds); err != nil {
		log.Printf("[App] Warning: some sounds failed to load: %v", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] Random seed: %d", seed)

	sceneManager := game.NewSceneManager()
	gameScene := scenes.NewGameScene(rushConfig, resourceManager, audioManager, settingsManager, rng)
	sceneManager.SwitchTo(gameScene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
		log.Printf("[App] Restored fullscreen from settings")
	}

	return newApp(cfg, sceneManager, settingsManager, audioManager), nil
}

// newApp 组装 App，不触碰音频上下文与全局日志
func newApp(cfg Config, sceneManager *game.SceneManager, settingsManager *game.SettingsManager, audioManager *game.AudioManager) *App {
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = config.GameWindowWidth, config.GameWindowHeight
	}
	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		defaultWidth:    width,
		defaultHeight:   height,
	}
}

// openSettingsStore 打开 gdata 存储，失败时返回 nil
func openSettingsStore() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: SettingsAppName,
	})
	if err != nil {
		log.Printf("[App] Warning: settings store unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.defaultWidth, a.defaultHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.defaultWidth, a.defaultHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存到设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	if a.settingsManager != nil {
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
	}
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
//
// 逻辑尺寸跟随窗口尺寸，场景据此决定刷怪高度和逃跑边界。
// 外部尺寸无效时退回启动尺寸。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := outsideWidth, outsideHeight
	if width <= 0 || height <= 0 {
		width, height = a.defaultWidth, a.defaultHeight
	}
	a.sceneManager.SetViewport(width, height)
	return width, height
}

// Shutdown 退出前停止音效并保存设置
func (a *App) Shutdown() {
	if a.audioManager != nil {
		a.audioManager.StopAll()
	}
	if a.settingsManager != nil {
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings on exit: %v", err)
		}
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
