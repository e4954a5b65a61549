package game

import "testing"

// TestNewGameStateIsIdle 测试初始状态
func TestNewGameStateIsIdle(t *testing.T) {
	gs := NewGameState()

	if gs.Phase() != PhaseIdle {
		t.Errorf("Expected PhaseIdle, got %v", gs.Phase())
	}
	if gs.Score != 0 {
		t.Errorf("Expected score 0, got %d", gs.Score)
	}
	if gs.FemaleSpeedMultiplier != 1 || gs.GlobalSpeedMultiplier != 1 {
		t.Errorf("Expected multipliers 1/1, got %v/%v", gs.FemaleSpeedMultiplier, gs.GlobalSpeedMultiplier)
	}
}

// TestPhaseDerivation 测试标志位到阶段的推导
func TestPhaseDerivation(t *testing.T) {
	tests := []struct {
		name                 string
		started, paused, won bool
		want                 Phase
	}{
		{"idle", false, false, false, PhaseIdle},
		{"idle ignores pause", false, true, false, PhaseIdle},
		{"running", true, false, false, PhaseRunning},
		{"paused", true, true, false, PhasePaused},
		{"won", true, true, true, PhaseWon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := &GameState{Started: tt.started, Paused: tt.paused, Won: tt.won}
			if got := gs.Phase(); got != tt.want {
				t.Errorf("Phase() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestResetSessionClearsEverything 测试开始/重置的清理
func TestResetSessionClearsEverything(t *testing.T) {
	gs := &GameState{
		Score:                 1234,
		Started:               true,
		Paused:                true,
		Won:                   true,
		FemaleSpeedMultiplier: 5.4,
		GlobalSpeedMultiplier: 0.3,
	}

	gs.ResetSession(true)

	if gs.Phase() != PhaseRunning {
		t.Errorf("Expected PhaseRunning after ResetSession(true), got %v", gs.Phase())
	}
	if gs.Score != 0 || gs.FemaleSpeedMultiplier != 1 || gs.GlobalSpeedMultiplier != 1 {
		t.Errorf("Session not cleared: %+v", gs)
	}

	gs.ResetSession(false)
	if gs.Phase() != PhaseIdle {
		t.Errorf("Expected PhaseIdle after ResetSession(false), got %v", gs.Phase())
	}
}

// TestTogglePause 测试暂停切换及其可用性
func TestTogglePause(t *testing.T) {
	gs := NewGameState()

	if gs.TogglePause() {
		t.Error("TogglePause should be unavailable while idle")
	}
	if gs.Paused {
		t.Error("Idle state should not become paused")
	}

	gs.ResetSession(true)
	if !gs.TogglePause() || gs.Phase() != PhasePaused {
		t.Errorf("Expected PhasePaused, got %v", gs.Phase())
	}
	if !gs.TogglePause() || gs.Phase() != PhaseRunning {
		t.Errorf("Expected PhaseRunning, got %v", gs.Phase())
	}

	gs.Score = 1000
	gs.CheckVictory(1000)
	if gs.TogglePause() {
		t.Error("TogglePause should be unavailable after victory")
	}
	if !gs.Paused || !gs.Won {
		t.Error("Victory must keep the game paused")
	}
}

// TestApplyEscapePenaltyFloor 测试扣分下限
func TestApplyEscapePenaltyFloor(t *testing.T) {
	tests := []struct {
		start, penalty, want int
	}{
		{10, 2, 8},
		{2, 2, 0},
		{1, 2, 0},
		{0, 2, 0},
	}

	for _, tt := range tests {
		gs := &GameState{Score: tt.start}
		gs.ApplyEscapePenalty(tt.penalty)
		if gs.Score != tt.want {
			t.Errorf("score %d - %d: got %d, want %d", tt.start, tt.penalty, gs.Score, tt.want)
		}
	}
}

// TestCheckVictoryFiresOnce 测试胜利每局只触发一次
func TestCheckVictoryFiresOnce(t *testing.T) {
	gs := NewGameState()
	gs.Score = 5000
	if gs.CheckVictory(1000) {
		t.Error("Victory must not fire before the game is started")
	}

	gs.ResetSession(true)
	gs.Score = 999
	if gs.CheckVictory(1000) {
		t.Error("Victory must not fire below the threshold")
	}

	gs.Score = 1000
	if !gs.CheckVictory(1000) {
		t.Fatal("Victory should fire at the threshold")
	}
	if !gs.Won || !gs.Paused {
		t.Error("Victory should set Won and Paused")
	}

	for i := 0; i < 10; i++ {
		gs.Score++
		if gs.CheckVictory(1000) {
			t.Fatal("Victory fired twice in one session")
		}
	}

	gs.ResetSession(true)
	if gs.Won {
		t.Error("A new session should clear Won")
	}
	if gs.CheckVictory(1000) {
		t.Error("Victory must not re-fire until the score crosses the threshold again")
	}
}

// TestRamps 测试难度倍率的递进
func TestRamps(t *testing.T) {
	gs := NewGameState()

	for i := 0; i < 50; i++ {
		gs.RampFemaleSpeed(0.2)
		gs.RampGlobalSlowdown(0.1, 0.3)
		if gs.GlobalSpeedMultiplier < 0.3 {
			t.Fatalf("Global multiplier dropped below floor: %v", gs.GlobalSpeedMultiplier)
		}
	}

	if gs.GlobalSpeedMultiplier != 0.3 {
		t.Errorf("Expected global multiplier to settle at 0.3, got %v", gs.GlobalSpeedMultiplier)
	}
	// 女性倍率没有上限：1 + 50*0.2
	if gs.FemaleSpeedMultiplier < 10.99 || gs.FemaleSpeedMultiplier > 11.01 {
		t.Errorf("Expected female multiplier ~11, got %v", gs.FemaleSpeedMultiplier)
	}
}
