package entities

import (
	"testing"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
)

// TestNewZombieEntity 测试僵尸实体创建
func TestNewZombieEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	tests := []struct {
		name  string
		kind  components.ZombieKind
		y     float64
		speed float64
	}{
		{"男性僵尸", components.ZombieMale, 300, 1.5},
		{"女性僵尸", components.ZombieFemale, 450, 3.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewZombieEntity(em, tt.kind, -100, tt.y, tt.speed)
			if id == 0 {
				t.Fatal("Expected valid entity ID, got 0")
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok {
				t.Fatal("Zombie should have PositionComponent")
			}
			if pos.X != -100 || pos.Y != tt.y {
				t.Errorf("Position = (%v, %v), want (-100, %v)", pos.X, pos.Y, tt.y)
			}

			zombie, ok := ecs.GetComponent[*components.ZombieComponent](em, id)
			if !ok {
				t.Fatal("Zombie should have ZombieComponent")
			}
			if zombie.Kind != tt.kind || zombie.Speed != tt.speed || zombie.Dying {
				t.Errorf("Unexpected zombie component: %+v", zombie)
			}

			clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, id)
			if !ok {
				t.Fatal("Zombie should have ClickableComponent")
			}
			if !clickable.IsEnabled || clickable.Width != config.ZombieSpriteSize {
				t.Errorf("Unexpected clickable component: %+v", clickable)
			}
		})
	}
}

// TestNewZombieEntityIDsAreMonotonic 测试同一局内僵尸ID递增
func TestNewZombieEntityIDsAreMonotonic(t *testing.T) {
	em := ecs.NewEntityManager()

	var last ecs.EntityID
	for i := 0; i < 5; i++ {
		id := NewZombieEntity(em, components.ZombieMale, -100, 0, 1)
		if id <= last {
			t.Fatalf("ID %d is not greater than previous %d", id, last)
		}
		last = id
	}
}

// TestNewButton 测试按钮实体创建
func TestNewButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false

	id := NewButton(em, "Start Game", components.ButtonStylePrimary, 140, func() { clicked = true })

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("Button should have ButtonComponent")
	}
	if !ecs.HasComponent[*components.PositionComponent](em, id) {
		t.Error("Button should have PositionComponent")
	}
	if button.Visible {
		t.Error("Buttons should start hidden")
	}
	if button.Height != config.ButtonHeight || button.Width != 140 {
		t.Errorf("Unexpected button size %vx%v", button.Width, button.Height)
	}

	button.OnClick()
	if !clicked {
		t.Error("OnClick should invoke the callback")
	}
}
