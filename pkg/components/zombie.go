package components

// ZombieKind 僵尸种类
type ZombieKind int

const (
	// ZombieMale 男性僵尸：每 3 秒成批出现，速度较慢
	ZombieMale ZombieKind = iota
	// ZombieFemale 女性僵尸：每 5 秒成批出现，速度随时间加快
	ZombieFemale
)

// String 返回种类名称
func (k ZombieKind) String() string {
	switch k {
	case ZombieMale:
		return "male"
	case ZombieFemale:
		return "female"
	default:
		return "unknown"
	}
}

// ZombieComponent 僵尸的核心数据
//
// Speed 在生成时由当时的难度倍率确定，之后不再改变。
// Dying 为 true 表示已被点击、正在播放死亡表现，不可再次点击。
type ZombieComponent struct {
	Kind  ZombieKind
	Speed float64 // 每个移动帧前进的像素数
	Dying bool
}
