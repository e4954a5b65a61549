package systems

import (
	"testing"
)

// TestDifficultyRampFemaleUnbounded 测试女性倍率持续增长
func TestDifficultyRampFemaleUnbounded(t *testing.T) {
	w := newTestWorld()
	ds := NewDifficultySystem(w.gs, w.cfg)

	for i := 0; i < 100; i++ {
		ds.RampFemale()
	}
	if !almostEqual(w.gs.FemaleSpeedMultiplier, 21) {
		t.Errorf("FemaleSpeedMultiplier = %v, want 21", w.gs.FemaleSpeedMultiplier)
	}
}

// TestDifficultyRampGlobalFloor 测试全局倍率不低于 0.3
func TestDifficultyRampGlobalFloor(t *testing.T) {
	w := newTestWorld()
	ds := NewDifficultySystem(w.gs, w.cfg)

	for i := 0; i < 7; i++ {
		ds.RampGlobal()
	}
	if !almostEqual(w.gs.GlobalSpeedMultiplier, 0.3) {
		t.Errorf("After 7 ramps: %v, want 0.3", w.gs.GlobalSpeedMultiplier)
	}

	for i := 0; i < 20; i++ {
		ds.RampGlobal()
		if w.gs.GlobalSpeedMultiplier < 0.3 {
			t.Fatalf("GlobalSpeedMultiplier fell below floor: %v", w.gs.GlobalSpeedMultiplier)
		}
	}
	if w.gs.GlobalSpeedMultiplier != 0.3 {
		t.Errorf("GlobalSpeedMultiplier = %v, want exactly 0.3 at the floor", w.gs.GlobalSpeedMultiplier)
	}
}
