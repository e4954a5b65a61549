// Package audio 程序化合成游戏音效
//
// 没有音频素材时，用 beep 的 Streamer 组合出僵尸呻吟和尖叫，
// 再渲染成 16 位小端立体声 PCM，交给 Ebitengine 的 audio.Context 播放。
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Recipe 一个音效的合成配方
type Recipe struct {
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64 // effects.Volume 的指数（以 2 为底），0 为原始音量
	Voices   []Voice
}

// Voice 配方中的一个声部
type Voice struct {
	Wave      WaveType
	StartFreq float64 // 起始频率（Hz）
	EndFreq   float64 // 结束频率（Hz），线性滑音
	Vibrato   float64 // 颤音频率（Hz），0 表示无颤音
	Depth     float64 // 颤音深度（相对频率的比例）
	Gain      float64
}

// 内置配方
var recipes = map[string]Recipe{
	// 低沉的男性呻吟：锯齿波下滑 + 轻微噪声
	"groan": {
		Duration: 650 * time.Millisecond,
		Attack:   60 * time.Millisecond,
		Release:  250 * time.Millisecond,
		Volume:   -1,
		Voices: []Voice{
			{Wave: WaveSaw, StartFreq: 140, EndFreq: 85, Vibrato: 6, Depth: 0.04, Gain: 0.5},
			{Wave: WaveSquare, StartFreq: 70, EndFreq: 45, Gain: 0.2},
			{Wave: WaveNoise, Gain: 0.08},
		},
	},
	// 尖锐的女性尖叫：高频正弦上扬 + 快速颤音
	"shriek": {
		Duration: 480 * time.Millisecond,
		Attack:   20 * time.Millisecond,
		Release:  200 * time.Millisecond,
		Volume:   -1.5,
		Voices: []Voice{
			{Wave: WaveSine, StartFreq: 780, EndFreq: 1180, Vibrato: 11, Depth: 0.06, Gain: 0.6},
			{Wave: WaveSaw, StartFreq: 390, EndFreq: 590, Gain: 0.15},
			{Wave: WaveNoise, Gain: 0.05},
		},
	},
	// 短促提示音，用于调试与无配方时的兜底
	"blip": {
		Duration: 120 * time.Millisecond,
		Attack:   5 * time.Millisecond,
		Release:  60 * time.Millisecond,
		Voices: []Voice{
			{Wave: WaveSine, StartFreq: 880, EndFreq: 880, Gain: 0.5},
		},
	},
}

// Recipes 返回所有内置配方名称（已排序）
func Recipes() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render 按名称渲染配方
// 返回 16 位有符号小端立体声 PCM，可直接交给 audio.Context.NewPlayerFromBytes
func Render(name string, sampleRate int) ([]byte, error) {
	recipe, ok := recipes[name]
	if !ok {
		return nil, fmt.Errorf("unknown synth recipe %q", name)
	}
	return RenderRecipe(recipe, sampleRate, rand.New(rand.NewSource(int64(len(name)))))
}

// RenderRecipe 渲染任意配方；rng 只用于噪声声部
func RenderRecipe(recipe Recipe, sampleRate int, rng *rand.Rand) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if recipe.Duration <= 0 || len(recipe.Voices) == 0 {
		return nil, fmt.Errorf("recipe needs a positive duration and at least one voice")
	}

	sr := beep.SampleRate(sampleRate)
	total := sr.N(recipe.Duration)

	voices := make([]beep.Streamer, 0, len(recipe.Voices))
	for _, v := range recipe.Voices {
		s, err := newVoice(v, recipe.Duration, sr, rng)
		if err != nil {
			return nil, err
		}
		voices = append(voices, s)
	}

	var streamer beep.Streamer = beep.Mix(voices...)
	streamer = newEnvelope(streamer, total, sr.N(recipe.Attack), sr.N(recipe.Release))
	streamer = &effects.Volume{Streamer: streamer, Base: 2, Volume: recipe.Volume}
	streamer = beep.Take(total, streamer)

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	out := make([]byte, 0, total*format.Width())
	frame := make([]byte, format.Width())
	buf := make([][2]float64, 512)

	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			buf[i][0] = clampSample(buf[i][0])
			buf[i][1] = clampSample(buf[i][1])
			format.EncodeSigned(frame, buf[i])
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}

	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("synth stream failed: %w", err)
	}
	return out, nil
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// newVoice 创建单个声部；恒定频率的正弦直接使用 beep 自带的生成器
func newVoice(v Voice, duration time.Duration, sr beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	var s beep.Streamer
	if v.Wave == WaveSine && v.StartFreq == v.EndFreq && v.Vibrato == 0 {
		tone, err := generators.SineTone(sr, v.StartFreq)
		if err != nil {
			return nil, fmt.Errorf("sine voice at %.1fHz: %w", v.StartFreq, err)
		}
		s = beep.Take(sr.N(duration), tone)
	} else {
		s = &oscillator{
			voice:    v,
			rate:     sr,
			duration: sr.N(duration),
			rng:      rng,
		}
	}
	return &effects.Gain{Streamer: s, Gain: v.Gain - 1}, nil
}

// oscillator 滑音振荡器，支持颤音
type oscillator struct {
	voice    Voice
	rate     beep.SampleRate
	duration int
	position int
	phase    float64
	rng      *rand.Rand
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		t := float64(o.position) / float64(o.duration)
		freq := o.voice.StartFreq + (o.voice.EndFreq-o.voice.StartFreq)*t
		if o.voice.Vibrato > 0 {
			sec := float64(o.position) / float64(o.rate)
			freq *= 1 + o.voice.Depth*math.Sin(2*math.Pi*o.voice.Vibrato*sec)
		}

		var val float64
		switch o.voice.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
