package game

// Phase 游戏阶段，由 GameState 的标志位推导
type Phase int

const (
	// PhaseIdle 未开始
	PhaseIdle Phase = iota
	// PhaseRunning 进行中
	PhaseRunning
	// PhasePaused 已暂停
	PhasePaused
	// PhaseWon 已胜利（同时处于暂停），直到下一次开始
	PhaseWon
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// 难度倍率的基准值
const (
	BaseFemaleSpeedMultiplier = 1.0
	BaseGlobalSpeedMultiplier = 1.0
)

// GameState 存储一局游戏的全部可变状态
//
// 不变量：
//   - Score 永不为负
//   - Won 为 true 时 Paused 必为 true
//   - GlobalSpeedMultiplier 不低于全局递减下限
//   - FemaleSpeedMultiplier 只增不减，没有上限
type GameState struct {
	Score   int
	Started bool
	Paused  bool
	Won     bool

	FemaleSpeedMultiplier float64
	GlobalSpeedMultiplier float64
}

// NewGameState 创建处于 Idle 阶段的游戏状态
func NewGameState() *GameState {
	gs := &GameState{}
	gs.ResetSession(false)
	return gs
}

// ResetSession 清空一局的数据
// started 为 true 对应“开始游戏”，为 false 对应“重置”
func (gs *GameState) ResetSession(started bool) {
	gs.Score = 0
	gs.Started = started
	gs.Paused = false
	gs.Won = false
	gs.FemaleSpeedMultiplier = BaseFemaleSpeedMultiplier
	gs.GlobalSpeedMultiplier = BaseGlobalSpeedMultiplier
}

// Phase 返回当前阶段
func (gs *GameState) Phase() Phase {
	switch {
	case !gs.Started:
		return PhaseIdle
	case gs.Won:
		return PhaseWon
	case gs.Paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// IsRunning 是否处于进行中（刷怪、移动和难度计时器只在此阶段生效）
func (gs *GameState) IsRunning() bool {
	return gs.Phase() == PhaseRunning
}

// CanTogglePause 暂停/继续是否可用（已开始且未胜利）
func (gs *GameState) CanTogglePause() bool {
	return gs.Started && !gs.Won
}

// TogglePause 切换暂停状态
// 返回 false 表示当前阶段不提供该操作（未开始或已胜利），状态不变
func (gs *GameState) TogglePause() bool {
	if !gs.CanTogglePause() {
		return false
	}
	gs.Paused = !gs.Paused
	return true
}

// AddScore 增加分数
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
	if gs.Score < 0 {
		gs.Score = 0
	}
}

// ApplyEscapePenalty 僵尸逃出右侧时扣分，最低为 0
func (gs *GameState) ApplyEscapePenalty(penalty int) {
	gs.Score -= penalty
	if gs.Score < 0 {
		gs.Score = 0
	}
}

// CheckVictory 检查是否达到胜利分数
// 每局只会触发一次：触发后 Won 与 Paused 同时置为 true，返回 true
func (gs *GameState) CheckVictory(winScore int) bool {
	if !gs.Started || gs.Won || gs.Score < winScore {
		return false
	}
	gs.Won = true
	gs.Paused = true
	return true
}

// RampFemaleSpeed 女性僵尸速度倍率递增（无上限）
func (gs *GameState) RampFemaleSpeed(step float64) {
	gs.FemaleSpeedMultiplier += step
}

// RampGlobalSlowdown 全局速度倍率递减，不低于 floor
func (gs *GameState) RampGlobalSlowdown(step, floor float64) {
	gs.GlobalSpeedMultiplier -= step
	if gs.GlobalSpeedMultiplier < floor {
		gs.GlobalSpeedMultiplier = floor
	}
}
