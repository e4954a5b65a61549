package config

import (
	"fmt"
	"time"

	"github.com/decker502/zombierush/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// RushConfigPath 内置数值配置文件路径
const RushConfigPath = "data/zombie_rush.yaml"

// SpawnBand 僵尸出生的纵向区间（相对视口高度的比例）
type SpawnBand struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SpawnerConfig 单个刷怪器的配置
// 速度公式：baseSpeed + rand[0, speedSpread)，再乘以对应的难度倍率
type SpawnerConfig struct {
	IntervalMs  int     `yaml:"intervalMs"`
	Count       int     `yaml:"count"`
	BaseSpeed   float64 `yaml:"baseSpeed"`
	SpeedSpread float64 `yaml:"speedSpread"`
}

// Interval 返回刷怪间隔
func (c SpawnerConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// RampConfig 难度递进配置
// Floor 只对递减的全局倍率有意义；女性倍率没有上限
type RampConfig struct {
	IntervalMs int     `yaml:"intervalMs"`
	Step       float64 `yaml:"step"`
	Floor      float64 `yaml:"floor,omitempty"`
}

// Interval 返回递进间隔
func (c RampConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// SoundConfig 音效来源配置
type SoundConfig struct {
	Path  string `yaml:"path,omitempty"` // 可选的音频文件（.wav/.mp3/.ogg）
	Synth string `yaml:"synth"`          // 文件缺失时使用的合成配方
}

// RushConfig 游戏内置数值
type RushConfig struct {
	WinScore       int       `yaml:"winScore"`
	KillReward     int       `yaml:"killReward"`
	EscapePenalty  int       `yaml:"escapePenalty"`
	DeathDelayMs   int       `yaml:"deathDelayMs"`
	MoveIntervalMs int       `yaml:"moveIntervalMs"`
	SpawnX         float64   `yaml:"spawnX"`
	SpawnBand      SpawnBand `yaml:"spawnBand"`

	Spawners struct {
		Male   SpawnerConfig `yaml:"male"`
		Female SpawnerConfig `yaml:"female"`
	} `yaml:"spawners"`

	Ramps struct {
		Female RampConfig `yaml:"female"`
		Global RampConfig `yaml:"global"`
	} `yaml:"ramps"`

	Sounds map[string]SoundConfig `yaml:"sounds"`
}

// DeathDelay 返回点击后到移除僵尸的延迟
func (c *RushConfig) DeathDelay() time.Duration {
	return time.Duration(c.DeathDelayMs) * time.Millisecond
}

// MoveInterval 返回移动帧间隔
func (c *RushConfig) MoveInterval() time.Duration {
	return time.Duration(c.MoveIntervalMs) * time.Millisecond
}

// DefaultRushConfig 返回与 data/zombie_rush.yaml 一致的内置数值
// 嵌入配置无法读取时作为降级使用，测试也直接使用它
func DefaultRushConfig() *RushConfig {
	cfg := &RushConfig{
		WinScore:       1000,
		KillReward:     1,
		EscapePenalty:  2,
		DeathDelayMs:   300,
		MoveIntervalMs: 16,
		SpawnX:         -100,
		SpawnBand:      SpawnBand{Min: 0.4, Max: 0.7},
		Sounds: map[string]SoundConfig{
			SoundMaleHit:     {Path: "assets/sounds/zombie_groan.wav", Synth: "groan"},
			SoundFemaleHit:   {Path: "assets/sounds/female_zombie.mp3", Synth: "shriek"},
			SoundFemaleSpawn: {Path: "assets/sounds/female_zombie.mp3", Synth: "shriek"},
		},
	}
	cfg.Spawners.Male = SpawnerConfig{IntervalMs: 3000, Count: 3, BaseSpeed: 1, SpeedSpread: 2}
	cfg.Spawners.Female = SpawnerConfig{IntervalMs: 5000, Count: 2, BaseSpeed: 2, SpeedSpread: 2}
	cfg.Ramps.Female = RampConfig{IntervalMs: 5000, Step: 0.2}
	cfg.Ramps.Global = RampConfig{IntervalMs: 10000, Step: 0.1, Floor: 0.3}
	return cfg
}

// LoadRushConfig 从嵌入资源加载数值配置
// 参数：
//
//	path - 嵌入资源路径（以 data/ 开头）
//
// 返回：
//
//	*RushConfig - 解析并校验后的配置
//	error - 读取、解析或校验失败
func LoadRushConfig(path string) (*RushConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rush config %s: %w", path, err)
	}

	cfg, err := ParseRushConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseRushConfig 解析 YAML 数值配置并校验
func ParseRushConfig(data []byte) (*RushConfig, error) {
	var cfg RushConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rush config YAML: %w", err)
	}

	if err := validateRushConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid rush config: %w", err)
	}

	return &cfg, nil
}

// validateRushConfig 验证数值配置的合法性
func validateRushConfig(cfg *RushConfig) error {
	if cfg.WinScore <= 0 {
		return fmt.Errorf("winScore must be positive, got %d", cfg.WinScore)
	}
	if cfg.KillReward <= 0 {
		return fmt.Errorf("killReward must be positive, got %d", cfg.KillReward)
	}
	if cfg.EscapePenalty < 0 {
		return fmt.Errorf("escapePenalty cannot be negative, got %d", cfg.EscapePenalty)
	}
	if cfg.DeathDelayMs < 0 {
		return fmt.Errorf("deathDelayMs cannot be negative, got %d", cfg.DeathDelayMs)
	}
	if cfg.MoveIntervalMs <= 0 {
		return fmt.Errorf("moveIntervalMs must be positive, got %d", cfg.MoveIntervalMs)
	}
	if cfg.SpawnBand.Min < 0 || cfg.SpawnBand.Max > 1 || cfg.SpawnBand.Min >= cfg.SpawnBand.Max {
		return fmt.Errorf("spawnBand must satisfy 0 <= min < max <= 1, got [%v, %v)", cfg.SpawnBand.Min, cfg.SpawnBand.Max)
	}

	spawners := map[string]SpawnerConfig{
		"male":   cfg.Spawners.Male,
		"female": cfg.Spawners.Female,
	}
	for name, s := range spawners {
		if s.IntervalMs <= 0 {
			return fmt.Errorf("spawner %s: intervalMs must be positive, got %d", name, s.IntervalMs)
		}
		if s.Count <= 0 {
			return fmt.Errorf("spawner %s: count must be positive, got %d", name, s.Count)
		}
		if s.BaseSpeed <= 0 {
			return fmt.Errorf("spawner %s: baseSpeed must be positive, got %v", name, s.BaseSpeed)
		}
		if s.SpeedSpread < 0 {
			return fmt.Errorf("spawner %s: speedSpread cannot be negative, got %v", name, s.SpeedSpread)
		}
	}

	if cfg.Ramps.Female.IntervalMs <= 0 || cfg.Ramps.Female.Step < 0 {
		return fmt.Errorf("ramp female: intervalMs must be positive and step non-negative")
	}
	if cfg.Ramps.Global.IntervalMs <= 0 || cfg.Ramps.Global.Step < 0 {
		return fmt.Errorf("ramp global: intervalMs must be positive and step non-negative")
	}
	if cfg.Ramps.Global.Floor <= 0 || cfg.Ramps.Global.Floor > 1 {
		return fmt.Errorf("ramp global: floor must be in (0, 1], got %v", cfg.Ramps.Global.Floor)
	}

	for _, id := range []string{SoundMaleHit, SoundFemaleHit, SoundFemaleSpawn} {
		sound, ok := cfg.Sounds[id]
		if !ok {
			return fmt.Errorf("sound %s is not configured", id)
		}
		if sound.Synth == "" {
			return fmt.Errorf("sound %s: synth recipe is required", id)
		}
	}

	return nil
}
