package config

// 音效资源ID
const (
	// SoundMaleHit 点击男性僵尸时的呻吟
	SoundMaleHit = "SOUND_MALE_HIT"
	// SoundFemaleHit 点击女性僵尸时的尖叫
	SoundFemaleHit = "SOUND_FEMALE_HIT"
	// SoundFemaleSpawn 女性僵尸出现时的提示音
	SoundFemaleSpawn = "SOUND_FEMALE_SPAWN"
)
