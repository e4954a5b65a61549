package systems

import (
	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/game"
)

// MovementSystem 移动与逃脱判定
//
// 每个移动帧：
//  1. 所有僵尸按各自速度向右移动（基于同一快照）
//  2. 越过视口右边界的僵尸被移除，每只扣除逃脱罚分（分数最低为 0）
//
// 正在死亡的僵尸同样会逃脱扣分；它的死亡计时器到期时仍然加分。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.RushConfig
	viewport      *Viewport
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.RushConfig, viewport *Viewport) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		viewport:      viewport,
	}
}

// Step 执行一个移动帧，返回本帧逃脱的僵尸数量
// 逃脱的实体只是被标记删除，由调用者统一清理
func (s *MovementSystem) Step() int {
	ids := ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X += zombie.Speed
	}

	escaped := 0
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos.X <= s.viewport.Width {
			continue
		}
		s.entityManager.DestroyEntity(id)
		s.gameState.ApplyEscapePenalty(s.config.EscapePenalty)
		escaped++
	}

	return escaped
}
