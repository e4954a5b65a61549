package systems

import (
	"testing"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
)

// newVisibleButton 创建位于 (x, y) 的可见按钮
func newVisibleButton(em *ecs.EntityManager, x, y float64, onClick func()) (ecs.EntityID, *components.ButtonComponent) {
	id := entities.NewButton(em, "Test", components.ButtonStylePrimary, 100, onClick)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X, pos.Y = x, y
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	button.Visible = true
	return id, button
}

// TestPointInRectCollision 测试点在按钮矩形内的碰撞检测逻辑
func TestPointInRectCollision(t *testing.T) {
	s := NewButtonSystem(ecs.NewEntityManager())

	tests := []struct {
		name      string
		mouseX    float64
		mouseY    float64
		shouldHit bool
	}{
		{"点在矩形内", 150, 120, true},
		{"点在左边界上", 100, 120, true},
		{"点在右边界上", 200, 120, true},
		{"点在上边界上", 150, 100, true},
		{"点在下边界上", 150, 148, true},
		{"点在矩形左侧", 50, 120, false},
		{"点在矩形右侧", 250, 120, false},
		{"点在矩形上方", 150, 50, false},
		{"点在矩形下方", 150, 250, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := s.isMouseInButton(tt.mouseX, tt.mouseY, 100, 100, 100, 48)
			if hit != tt.shouldHit {
				t.Errorf("Expected hit=%v, got %v for point(%v,%v)", tt.shouldHit, hit, tt.mouseX, tt.mouseY)
			}
		})
	}
}

// TestButtonStates 测试悬停、按下和释放
func TestButtonStates(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	_, button := newVisibleButton(em, 100, 100, func() { clicks++ })
	s := NewButtonSystem(em)

	s.HandlePointer(10, 10, false, false)
	if button.State != components.UINormal {
		t.Errorf("State = %v, want normal", button.State)
	}

	s.HandlePointer(120, 120, false, false)
	if button.State != components.UIHovered {
		t.Errorf("State = %v, want hovered", button.State)
	}

	s.HandlePointer(120, 120, true, false)
	if button.State != components.UIClicked || clicks != 0 {
		t.Errorf("State = %v clicks = %d, want clicked without callback", button.State, clicks)
	}

	if !s.HandlePointer(120, 120, false, true) {
		t.Error("Release over button should report a click")
	}
	if clicks != 1 || button.State != components.UIHovered {
		t.Errorf("clicks = %d state = %v after release", clicks, button.State)
	}
}

// TestHiddenAndDisabledButtons 测试隐藏和禁用按钮不响应
func TestHiddenAndDisabledButtons(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	_, button := newVisibleButton(em, 0, 0, func() { clicks++ })
	s := NewButtonSystem(em)

	button.Visible = false
	if s.HandlePointer(10, 10, false, true) || s.HitTest(10, 10) {
		t.Error("Hidden button should not respond")
	}

	button.Visible = true
	button.Enabled = false
	if s.HandlePointer(10, 10, false, true) {
		t.Error("Disabled button should not respond")
	}
	if button.State != components.UIDisabled {
		t.Errorf("State = %v, want disabled", button.State)
	}
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

// TestOneButtonPerRelease 测试回调显示的同位置按钮不会被同一次释放触发
func TestOneButtonPerRelease(t *testing.T) {
	em := ecs.NewEntityManager()
	var calls []string

	_, start := newVisibleButton(em, 0, 0, nil)
	_, reset := newVisibleButton(em, 0, 0, func() { calls = append(calls, "reset") })
	reset.Visible = false
	start.OnClick = func() {
		calls = append(calls, "start")
		start.Visible = false
		reset.Visible = true
	}

	NewButtonSystem(em).HandlePointer(10, 10, false, true)

	if len(calls) != 1 || calls[0] != "start" {
		t.Errorf("callbacks = %v, want [start]", calls)
	}
}
