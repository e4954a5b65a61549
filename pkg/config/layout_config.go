package config

// 布局配置常量
// 本文件定义了游戏窗口、僵尸精灵、HUD 和按钮的布局参数
// 所有坐标均为逻辑屏幕坐标（窗口左上角为原点）

// 窗口配置
const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1280
	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 720
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Zombie Rush"
)

// 僵尸精灵配置
// 僵尸的 Position 是精灵左上角，与点击区域一致
const (
	// ZombieSpriteSize 僵尸精灵边长（像素）
	ZombieSpriteSize = 96.0
	// ZombieHoverScale 鼠标悬停时的放大倍数
	ZombieHoverScale = 1.1
	// BadgeSize 僵尸头顶徽章的直径
	BadgeSize = 40.0
	// BadgeOffsetY 徽章中心相对精灵顶部的偏移（负数表示在上方）
	BadgeOffsetY = -24.0
	// BadgeLabel 徽章上的文字
	BadgeLabel = "R"
)

// HUD 配置
const (
	// ScoreLabel 计分板前缀，显示为 "Rialo: 123$"
	ScoreLabel = "Rialo"
	// ScoreBoardX 计分板左上角 X
	ScoreBoardX = 16.0
	// ScoreBoardY 计分板左上角 Y
	ScoreBoardY = 16.0
	// ScoreBoardPaddingX 计分板水平内边距
	ScoreBoardPaddingX = 24.0
	// ScoreBoardPaddingY 计分板垂直内边距
	ScoreBoardPaddingY = 12.0
	// HUDFontSize 计分板字号
	HUDFontSize = 28.0
)

// 按钮配置
const (
	// ButtonHeight 按钮高度
	ButtonHeight = 48.0
	// ButtonPaddingX 按钮文字左右留白
	ButtonPaddingX = 20.0
	// ButtonGap 右上角按钮之间的间距
	ButtonGap = 8.0
	// ButtonMarginTop 右上角按钮距顶部距离
	ButtonMarginTop = 16.0
	// ButtonMarginRight 右上角按钮距右侧距离
	ButtonMarginRight = 16.0
	// ButtonFontSize 按钮字号
	ButtonFontSize = 20.0
)

// 覆盖层配置
const (
	// OverlayTitleFontSize 暂停/胜利标题字号
	OverlayTitleFontSize = 44.0
	// OverlayBodyFontSize 覆盖层正文字号
	OverlayBodyFontSize = 22.0
	// OverlayPanelWidth 覆盖层面板宽度
	OverlayPanelWidth = 620.0
	// OverlayPanelHeight 覆盖层面板高度
	OverlayPanelHeight = 320.0
)

// 背景配置
const (
	// HorizonRatio 地平线位于视口高度的比例，与僵尸出生区间上沿对齐
	HorizonRatio = 0.4
)
