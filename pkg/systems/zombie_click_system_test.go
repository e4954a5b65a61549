package systems

import (
	"testing"
	"time"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/entities"
)

// TestClickZombieDeathDelay 测试点击后立即进入死亡状态，300ms 后移除并加分
func TestClickZombieDeathDelay(t *testing.T) {
	w := newTestWorld()
	id := entities.NewZombieEntity(w.em, components.ZombieMale, 100, 500, 2)
	cs := w.clickSystem()

	if !cs.ClickZombie(id) {
		t.Fatal("Click should be accepted")
	}

	zombie, _ := ecs.GetComponent[*components.ZombieComponent](w.em, id)
	clickable, _ := ecs.GetComponent[*components.ClickableComponent](w.em, id)
	if !zombie.Dying || clickable.IsEnabled {
		t.Error("Zombie should be dying and no longer clickable")
	}
	if len(w.sounds.played) != 1 || w.sounds.played[0] != config.SoundMaleHit {
		t.Errorf("Expected %s cue, got %v", config.SoundMaleHit, w.sounds.played)
	}

	w.scheduler.Advance(299 * time.Millisecond)
	w.em.RemoveMarkedEntities()
	if !w.em.Exists(id) || w.gs.Score != 0 {
		t.Fatal("Zombie removed before the death delay elapsed")
	}

	w.scheduler.Advance(time.Millisecond)
	w.em.RemoveMarkedEntities()
	if w.em.Exists(id) {
		t.Error("Zombie should be removed after 300ms")
	}
	if w.gs.Score != 1 {
		t.Errorf("Score = %d, want 1", w.gs.Score)
	}
}

// TestClickZombieTwiceScoresOnce 测试死亡延迟内重复点击无效
func TestClickZombieTwiceScoresOnce(t *testing.T) {
	w := newTestWorld()
	id := entities.NewZombieEntity(w.em, components.ZombieFemale, 100, 500, 2)
	cs := w.clickSystem()

	if !cs.ClickZombie(id) {
		t.Fatal("First click should be accepted")
	}
	w.scheduler.Advance(100 * time.Millisecond)
	if cs.ClickZombie(id) {
		t.Error("Second click should be ignored")
	}

	w.scheduler.Advance(time.Second)
	if w.gs.Score != 1 {
		t.Errorf("Score = %d, want 1", w.gs.Score)
	}
	if len(w.sounds.played) != 1 || w.sounds.played[0] != config.SoundFemaleHit {
		t.Errorf("Expected a single %s cue, got %v", config.SoundFemaleHit, w.sounds.played)
	}
}

// TestClickZombieIgnoredOutsideRunning 测试非进行中阶段的点击被忽略
func TestClickZombieIgnoredOutsideRunning(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *testWorld)
	}{
		{"idle", func(w *testWorld) { w.gs.ResetSession(false) }},
		{"paused", func(w *testWorld) { w.gs.TogglePause() }},
		{"won", func(w *testWorld) { w.gs.Score = 1000; w.gs.CheckVictory(1000) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			id := entities.NewZombieEntity(w.em, components.ZombieMale, 100, 500, 2)
			tt.setup(w)

			if w.clickSystem().ClickZombie(id) {
				t.Error("Click should be ignored")
			}
			zombie, _ := ecs.GetComponent[*components.ZombieComponent](w.em, id)
			if zombie.Dying {
				t.Error("Zombie should not be dying")
			}
		})
	}
}

// TestClickZombieUnknownID 测试点击不存在的实体
func TestClickZombieUnknownID(t *testing.T) {
	w := newTestWorld()
	if w.clickSystem().ClickZombie(42) {
		t.Error("Click on unknown entity should be ignored")
	}
}

// TestClickZombieSoundFailureIgnored 测试音效失败不影响击杀
func TestClickZombieSoundFailureIgnored(t *testing.T) {
	w := newTestWorld()
	w.sounds.fail = true
	id := entities.NewZombieEntity(w.em, components.ZombieMale, 100, 500, 2)

	if !w.clickSystem().ClickZombie(id) {
		t.Fatal("Click should be accepted despite audio failure")
	}
	w.scheduler.Advance(300 * time.Millisecond)
	if w.gs.Score != 1 {
		t.Errorf("Score = %d, want 1", w.gs.Score)
	}
}

// TestZombieAtPicksTopmost 测试重叠时选中最后生成的僵尸
func TestZombieAtPicksTopmost(t *testing.T) {
	w := newTestWorld()
	first := entities.NewZombieEntity(w.em, components.ZombieMale, 100, 100, 1)
	second := entities.NewZombieEntity(w.em, components.ZombieFemale, 150, 120, 1)
	cs := w.clickSystem()

	if id, ok := cs.ZombieAt(160, 130); !ok || id != second {
		t.Errorf("ZombieAt overlap = %d, want %d", id, second)
	}
	if id, ok := cs.ZombieAt(110, 110); !ok || id != first {
		t.Errorf("ZombieAt = %d, want %d", id, first)
	}
	if _, ok := cs.ZombieAt(10, 10); ok {
		t.Error("Expected no zombie at empty spot")
	}

	// 上层僵尸进入死亡状态后，点击穿透到下层
	cs.ClickZombie(second)
	if id, ok := cs.ZombieAt(160, 130); !ok || id != first {
		t.Errorf("ZombieAt after kill = %d, want %d", id, first)
	}

	if !cs.ClickAt(160, 130) {
		t.Error("ClickAt should hit the remaining zombie")
	}
	if cs.ClickAt(160, 130) {
		t.Error("ClickAt should find nothing clickable")
	}
}

// TestUpdateHover 测试只有最上层僵尸被标记悬停
func TestUpdateHover(t *testing.T) {
	w := newTestWorld()
	first := entities.NewZombieEntity(w.em, components.ZombieMale, 100, 100, 1)
	second := entities.NewZombieEntity(w.em, components.ZombieMale, 150, 120, 1)
	cs := w.clickSystem()

	if !cs.UpdateHover(160, 130, true) {
		t.Fatal("Expected a hovered zombie")
	}
	c1, _ := ecs.GetComponent[*components.ClickableComponent](w.em, first)
	c2, _ := ecs.GetComponent[*components.ClickableComponent](w.em, second)
	if c1.IsHovered || !c2.IsHovered {
		t.Errorf("hover flags = %v/%v, want false/true", c1.IsHovered, c2.IsHovered)
	}

	// 禁用悬停时清空所有标记
	if cs.UpdateHover(160, 130, false) {
		t.Error("Hover disabled should report none")
	}
	if c2.IsHovered {
		t.Error("Hover flag should be cleared")
	}
}
