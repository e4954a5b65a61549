package entities

import (
	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
)

// NewButton 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - text: 按钮文字
//   - style: 配色
//   - width: 按钮宽度（通常由文字宽度加左右留白得出）
//   - onClick: 点击回调函数
//
// 位置初始为 (0, 0)，由场景布局时写入 PositionComponent。
// 按钮默认隐藏，场景根据当前阶段决定是否显示。
//
// 返回：
//   - 按钮实体ID
func NewButton(
	em *ecs.EntityManager,
	text string,
	style components.ButtonStyle,
	width float64,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:    text,
		Style:   style,
		Width:   width,
		Height:  config.ButtonHeight,
		State:   components.UINormal,
		Enabled: true,
		Visible: false,
		OnClick: onClick,
	})

	return entity
}
