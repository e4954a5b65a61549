package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundPlayer 播放一次性音效
// 返回值表示是否真正开始播放；游戏逻辑从不依赖它，失败直接忽略
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// VolumeControl 可调节音效音量的播放器
type VolumeControl interface {
	GetSoundVolume() float64
	SetSoundVolume(volume float64)
}

// SoundVolumeStep 每次按键调整的音量
const SoundVolumeStep = 0.1

var (
	_ SoundPlayer   = (*AudioManager)(nil)
	_ VolumeControl = (*AudioManager)(nil)
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制和静音（从 SettingsManager 读取设置）
//   - 播放失败时静默返回 false，不记录日志，不影响游戏状态
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于创建播放器）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（音效需已通过 LoadSounds 加载）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 从头播放音效
// 同一音效再次播放时会重新开始
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		return false
	}
	player.Play()
	return true
}

// StopAll 停止所有正在播放的音效
func (am *AudioManager) StopAll() {
	for _, player := range am.soundPlayers {
		player.Pause()
	}
}

// SetSoundVolume 设置音效音量并同步到设置
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(am.getSoundVolume())
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.NewSoundPlayer(soundID)
	if err != nil {
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
