package components

// ButtonStyle 定义按钮配色
type ButtonStyle int

const (
	// ButtonStylePrimary 绿色（开始游戏）
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleSecondary 蓝色（暂停/继续）
	ButtonStyleSecondary
	// ButtonStyleDestructive 红色（重置）
	ButtonStyleDestructive
	// ButtonStyleGold 金色（再玩一次）
	ButtonStyleGold
)

// ButtonComponent 按钮组件（ECS 架构）
// 纯数据组件：文字、尺寸、状态和点击回调
// 位置由 PositionComponent 提供（按钮左上角，屏幕坐标）
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// Style 配色
	Style ButtonStyle

	// Width 按钮总宽度（像素，由布局计算）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Visible 是否显示；隐藏的按钮既不绘制也不响应点击
	Visible bool

	// OnClick 点击回调函数
	OnClick func()
}
