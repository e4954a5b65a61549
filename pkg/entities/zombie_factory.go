package entities

import (
	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
)

// NewZombieEntity 创建僵尸实体
// 僵尸从屏幕左侧外生成，以生成时确定的速度从左向右移动
//
// 参数:
//   - em: 实体管理器
//   - kind: 僵尸种类（男性/女性）
//   - x, y: 精灵左上角的屏幕坐标
//   - speed: 每个移动帧前进的像素数（生成后不再改变）
//
// 返回:
//   - ecs.EntityID: 新僵尸的ID（同一局内单调递增）
func NewZombieEntity(em *ecs.EntityManager, kind components.ZombieKind, x, y, speed float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, id, &components.ZombieComponent{
		Kind:  kind,
		Speed: speed,
	})

	ecs.AddComponent(em, id, &components.ClickableComponent{
		Width:     config.ZombieSpriteSize,
		Height:    config.ZombieSpriteSize,
		IsEnabled: true,
	})

	return id
}
