package systems

import (
	"log"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/game"
)

// ZombieClickSystem 处理玩家击杀僵尸
//
// 点击流程：
//  1. 只在进行中阶段接受点击；实体必须存在且未处于死亡状态
//  2. 立即标记 Dying 并禁用点击区域（重复点击无效）
//  3. 按种类播放受击音效（失败忽略）
//  4. 死亡延迟后移除实体并加分
//
// 死亡延迟使用游戏时间：暂停期间冻结，开始/重置时随调度器一起取消。
// 延迟期间僵尸逃出右侧时，逃脱罚分照扣，到期后击杀奖励照加。
type ZombieClickSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.RushConfig
	scheduler     *game.Scheduler
	sounds        game.SoundPlayer // 可为 nil
}

// NewZombieClickSystem 创建点击系统
func NewZombieClickSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.RushConfig, scheduler *game.Scheduler, sounds game.SoundPlayer) *ZombieClickSystem {
	return &ZombieClickSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		scheduler:     scheduler,
		sounds:        sounds,
	}
}

// ClickZombie 击中指定僵尸
// 返回 false 表示点击被忽略（非进行中、实体不存在或已在死亡中）
func (s *ZombieClickSystem) ClickZombie(id ecs.EntityID) bool {
	if !s.gameState.IsRunning() {
		return false
	}
	if s.entityManager.IsMarkedForDestroy(id) {
		return false
	}

	zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id)
	if !ok || zombie.Dying {
		return false
	}

	zombie.Dying = true
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		clickable.IsEnabled = false
		clickable.IsHovered = false
	}

	if s.sounds != nil {
		s.sounds.PlaySound(hitSoundFor(zombie.Kind))
	}

	s.scheduler.After(s.config.DeathDelay(), func() {
		if s.entityManager.Exists(id) {
			s.entityManager.DestroyEntity(id)
		}
		s.gameState.AddScore(s.config.KillReward)
	})

	log.Printf("[ZombieClickSystem] Zombie %d (%s) hit", id, zombie.Kind)
	return true
}

// ZombieAt 返回指针位置下最上层（最后生成）的可点击僵尸
func (s *ZombieClickSystem) ZombieAt(x, y float64) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.entityManager)

	// 查询结果按ID升序，ID越大越晚生成、绘制在越上层
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if clickable.Contains(pos.X, pos.Y, x, y) {
			return id, true
		}
	}
	return 0, false
}

// ClickAt 击中指针位置下最上层的僵尸
func (s *ZombieClickSystem) ClickAt(x, y float64) bool {
	id, ok := s.ZombieAt(x, y)
	if !ok {
		return false
	}
	return s.ClickZombie(id)
}

// UpdateHover 更新悬停状态，只有最上层的僵尸被标记为悬停
// 返回是否有僵尸处于悬停
func (s *ZombieClickSystem) UpdateHover(x, y float64, enabled bool) bool {
	hovered, ok := ecs.EntityID(0), false
	if enabled {
		hovered, ok = s.ZombieAt(x, y)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](s.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		clickable.IsHovered = ok && id == hovered
	}
	return ok
}

// hitSoundFor 按种类选择受击音效
func hitSoundFor(kind components.ZombieKind) string {
	if kind == components.ZombieFemale {
		return config.SoundFemaleHit
	}
	return config.SoundMaleHit
}
