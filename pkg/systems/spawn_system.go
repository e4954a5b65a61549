package systems

import (
	"log"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
	"github.com/decker502/zombierush/pkg/game"
)

// SpawnSystem 刷怪系统
//
// 职责：
//   - 男性刷怪器：每批 Count 只，速度 (BaseSpeed + U[0,SpeedSpread)) × 全局倍率
//   - 女性刷怪器：每批 Count 只，速度再乘以女性倍率，随后播放出场音效
//   - 出生点：X 固定在屏幕左侧外，Y 在视口高度的出生区间内均匀分布
//
// 速度在生成时确定，之后难度倍率的变化不会影响已生成的僵尸。
// 计时由场景通过 Scheduler 驱动，本系统只负责生成一批。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.RushConfig
	rng           RandSource
	viewport      *Viewport
	sounds        game.SoundPlayer // 可为 nil
}

// NewSpawnSystem 创建刷怪系统
func NewSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.RushConfig, rng RandSource, viewport *Viewport, sounds game.SoundPlayer) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		rng:           rng,
		viewport:      viewport,
		sounds:        sounds,
	}
}

// SpawnMaleWave 生成一批男性僵尸，返回新实体ID（按生成顺序）
func (s *SpawnSystem) SpawnMaleWave() []ecs.EntityID {
	sc := s.config.Spawners.Male
	ids := make([]ecs.EntityID, 0, sc.Count)
	for i := 0; i < sc.Count; i++ {
		speed := (sc.BaseSpeed + s.rng.Float64()*sc.SpeedSpread) * s.gameState.GlobalSpeedMultiplier
		ids = append(ids, s.spawn(components.ZombieMale, speed))
	}
	log.Printf("[SpawnSystem] Spawned %d male zombies (global=%.2f)", len(ids), s.gameState.GlobalSpeedMultiplier)
	return ids
}

// SpawnFemaleWave 生成一批女性僵尸并播放出场音效
func (s *SpawnSystem) SpawnFemaleWave() []ecs.EntityID {
	sc := s.config.Spawners.Female
	ids := make([]ecs.EntityID, 0, sc.Count)
	for i := 0; i < sc.Count; i++ {
		speed := (sc.BaseSpeed + s.rng.Float64()*sc.SpeedSpread) *
			s.gameState.FemaleSpeedMultiplier * s.gameState.GlobalSpeedMultiplier
		ids = append(ids, s.spawn(components.ZombieFemale, speed))
	}

	if s.sounds != nil {
		s.sounds.PlaySound(config.SoundFemaleSpawn)
	}

	log.Printf("[SpawnSystem] Spawned %d female zombies (female=%.2f, global=%.2f)",
		len(ids), s.gameState.FemaleSpeedMultiplier, s.gameState.GlobalSpeedMultiplier)
	return ids
}

// spawn 在出生区间内随机一个 Y 并创建实体
func (s *SpawnSystem) spawn(kind components.ZombieKind, speed float64) ecs.EntityID {
	band := s.config.SpawnBand
	minY := s.viewport.Height * band.Min
	maxY := s.viewport.Height * band.Max
	y := minY + s.rng.Float64()*(maxY-minY)
	return entities.NewZombieEntity(s.entityManager, kind, s.config.SpawnX, y, speed)
}
