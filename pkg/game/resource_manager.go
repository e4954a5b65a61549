package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/zombierush/internal/audio"
	"github.com/decker502/zombierush/pkg/config"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSampleRate 音频上下文的采样率
const DefaultSampleRate = 48000

// ErrNoAudioContext 在没有音频上下文时创建播放器返回
var ErrNoAudioContext = errors.New("audio context is not available")

// ResourceManager 集中管理游戏资源：音效 PCM 与字体
//
// 音效优先从磁盘上的可选素材（.wav/.mp3/.ogg）解码，
// 文件不存在或解码失败时回退到程序化合成。
// 所有资源只加载一次并缓存。
//
// 非线程安全：只在游戏主循环的 goroutine 上使用。
type ResourceManager struct {
	audioContext *ebitenaudio.Context // 可为 nil（测试或无声环境）
	sampleRate   int

	soundPCM    map[string][]byte // 音效ID -> 16 位立体声 PCM
	soundOrigin map[string]string // 音效ID -> 来源描述（日志/调试）

	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace

	readFile func(path string) ([]byte, error)
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - audioContext: 全局音频上下文，可为 nil（此时只能解码/合成，不能创建播放器）
func NewResourceManager(audioContext *ebitenaudio.Context) *ResourceManager {
	sampleRate := DefaultSampleRate
	if audioContext != nil {
		sampleRate = audioContext.SampleRate()
	}
	return &ResourceManager{
		audioContext:  audioContext,
		sampleRate:    sampleRate,
		soundPCM:      make(map[string][]byte),
		soundOrigin:   make(map[string]string),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		readFile:      os.ReadFile,
	}
}

// LoadSounds 按配置加载全部音效
// 单个音效失败不会中断其他音效，返回合并后的错误
func (rm *ResourceManager) LoadSounds(sounds map[string]config.SoundConfig) error {
	ids := make([]string, 0, len(sounds))
	for id := range sounds {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		if err := rm.LoadSound(id, sounds[id]); err != nil {
			errs = append(errs, err)
		}
	}
	log.Printf("[ResourceManager] Loaded %d/%d sounds", len(rm.soundPCM), len(sounds))
	return errors.Join(errs...)
}

// LoadSound 加载单个音效
// 先尝试素材文件，再回退到合成配方
func (rm *ResourceManager) LoadSound(id string, sc config.SoundConfig) error {
	if _, ok := rm.soundPCM[id]; ok {
		return nil
	}

	if sc.Path != "" {
		pcm, err := rm.decodeAudioFile(sc.Path)
		if err == nil {
			rm.soundPCM[id] = pcm
			rm.soundOrigin[id] = "file:" + sc.Path
			log.Printf("[ResourceManager] Sound %s loaded from %s", id, sc.Path)
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[ResourceManager] Warning: Failed to decode %s for %s: %v (falling back to synth)", sc.Path, id, err)
		}
	}

	pcm, err := audio.Render(sc.Synth, rm.sampleRate)
	if err != nil {
		return fmt.Errorf("failed to synthesize sound %s: %w", id, err)
	}
	rm.soundPCM[id] = pcm
	rm.soundOrigin[id] = "synth:" + sc.Synth
	log.Printf("[ResourceManager] Sound %s synthesized (%s)", id, sc.Synth)
	return nil
}

// decodeAudioFile 解码音频文件为上下文采样率的 PCM
func (rm *ResourceManager) decodeAudioFile(path string) ([]byte, error) {
	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV %s: %w", path, err)
		}
		stream = s
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rm.sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return pcm, nil
}

// SoundPCM 返回已加载音效的 PCM 数据
func (rm *ResourceManager) SoundPCM(id string) ([]byte, bool) {
	pcm, ok := rm.soundPCM[id]
	return pcm, ok
}

// SoundOrigin 返回音效来源描述，如 "synth:groan"
func (rm *ResourceManager) SoundOrigin(id string) string {
	return rm.soundOrigin[id]
}

// NewSoundPlayer 为已加载的音效创建播放器
func (rm *ResourceManager) NewSoundPlayer(id string) (*ebitenaudio.Player, error) {
	pcm, ok := rm.soundPCM[id]
	if !ok {
		return nil, fmt.Errorf("sound not loaded: %s", id)
	}
	if rm.audioContext == nil {
		return nil, ErrNoAudioContext
	}
	return rm.audioContext.NewPlayerFromBytes(pcm), nil
}

// LoadFont 返回指定字号的界面字体（Go Regular），按字号缓存
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to load UI font: %w", err)
		}
		rm.fontSource = src
	}

	face := &text.GoTextFace{Source: rm.fontSource, Size: size}
	rm.fontFaceCache[size] = face
	return face, nil
}
