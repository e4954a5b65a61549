package systems

import (
	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标释放（触发 OnClick 回调）
//   - 隐藏或禁用的按钮不响应交互
//
// 输入由 InputSystem 采集后传入，本系统不直接读取 ebiten 状态
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// HandlePointer 根据鼠标状态更新按钮并触发回调
// 每帧最多触发一个按钮：回调可能改变其他按钮的可见性，
// 同一位置新出现的按钮不能被同一次释放触发
// 返回是否有按钮被点击
func (s *ButtonSystem) HandlePointer(mouseX, mouseY float64, mousePressed, mouseReleased bool) bool {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	var clicked *components.ButtonComponent
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Visible {
			button.State = components.UINormal
			continue
		}

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !s.isMouseInButton(mouseX, mouseY, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case mousePressed:
			button.State = components.UIClicked
		case mouseReleased && clicked == nil:
			clicked = button
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	if clicked == nil {
		return false
	}
	if clicked.OnClick != nil {
		clicked.OnClick()
	}
	return true
}

// HitTest 判断鼠标是否落在任意可见按钮上
func (s *ButtonSystem) HitTest(mouseX, mouseY float64) bool {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !button.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if s.isMouseInButton(mouseX, mouseY, pos.X, pos.Y, button.Width, button.Height) {
			return true
		}
	}
	return false
}

// isMouseInButton 检测鼠标是否在按钮范围内
func (s *ButtonSystem) isMouseInButton(mouseX, mouseY, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return mouseX >= buttonX &&
		mouseX <= buttonX+buttonWidth &&
		mouseY >= buttonY &&
		mouseY <= buttonY+buttonHeight
}
