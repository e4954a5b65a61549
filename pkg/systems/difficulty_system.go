package systems

import (
	"log"

	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/game"
)

// DifficultySystem 难度递进
//
// 两条独立的递进曲线：
//   - 女性倍率：每次 +Step，没有上限
//   - 全局倍率：每次 -Step，不低于 Floor
//
// 倍率只在生成时生效，不改变已经在场的僵尸。
type DifficultySystem struct {
	gameState *game.GameState
	config    *config.RushConfig
}

// NewDifficultySystem 创建难度系统
func NewDifficultySystem(gs *game.GameState, cfg *config.RushConfig) *DifficultySystem {
	return &DifficultySystem{
		gameState: gs,
		config:    cfg,
	}
}

// RampFemale 女性僵尸速度倍率递增
func (s *DifficultySystem) RampFemale() {
	s.gameState.RampFemaleSpeed(s.config.Ramps.Female.Step)
	log.Printf("[DifficultySystem] Female speed multiplier -> %.2f", s.gameState.FemaleSpeedMultiplier)
}

// RampGlobal 全局速度倍率递减
func (s *DifficultySystem) RampGlobal() {
	r := s.config.Ramps.Global
	s.gameState.RampGlobalSlowdown(r.Step, r.Floor)
	log.Printf("[DifficultySystem] Global speed multiplier -> %.2f", s.gameState.GlobalSpeedMultiplier)
}
