package systems

import (
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/ecs"
	"github.com/decker502/zombierush/pkg/game"
)

// fakeRand 按顺序返回预设的随机数，用完后循环
type fakeRand struct {
	values []float64
	next   int
}

func (r *fakeRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// fakeSoundPlayer 记录播放过的音效
type fakeSoundPlayer struct {
	played []string
	fail   bool
}

func (p *fakeSoundPlayer) PlaySound(soundID string) bool {
	p.played = append(p.played, soundID)
	return !p.fail
}

// testWorld 组装系统测试需要的共享状态
type testWorld struct {
	em        *ecs.EntityManager
	gs        *game.GameState
	cfg       *config.RushConfig
	scheduler *game.Scheduler
	viewport  *Viewport
	sounds    *fakeSoundPlayer
	rng       *fakeRand
}

// newTestWorld 创建处于进行中阶段的测试环境
func newTestWorld() *testWorld {
	gs := game.NewGameState()
	gs.ResetSession(true)
	return &testWorld{
		em:        ecs.NewEntityManager(),
		gs:        gs,
		cfg:       config.DefaultRushConfig(),
		scheduler: game.NewScheduler(),
		viewport:  &Viewport{Width: 1920, Height: 1000},
		sounds:    &fakeSoundPlayer{},
		rng:       &fakeRand{values: []float64{0.5}},
	}
}

func (w *testWorld) spawnSystem() *SpawnSystem {
	return NewSpawnSystem(w.em, w.gs, w.cfg, w.rng, w.viewport, w.sounds)
}

func (w *testWorld) movementSystem() *MovementSystem {
	return NewMovementSystem(w.em, w.gs, w.cfg, w.viewport)
}

func (w *testWorld) clickSystem() *ZombieClickSystem {
	return NewZombieClickSystem(w.em, w.gs, w.cfg, w.scheduler, w.sounds)
}
