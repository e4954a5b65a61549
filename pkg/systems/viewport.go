package systems

// Viewport 当前逻辑视口尺寸（像素）
// 由场景在窗口尺寸变化时更新；刷怪与逃脱判定实时读取
type Viewport struct {
	Width  float64
	Height float64
}

// RandSource 随机数来源
// *math/rand.Rand 满足该接口；测试中注入固定序列
type RandSource interface {
	Float64() float64
}
