package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType names a sound effect.
type SoundType int

const (
	SoundSelect SoundType = iota
	SoundMove
	SoundCapture
	SoundInvalid
	SoundNewGame
)

const sampleRate = 44100

// AudioManager plays short synthesized effects. Every sound is rendered to
// PCM once at startup.
type AudioManager struct {
	context *audio.Context
	pcm     map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager renders the effects; enabled is the initial mute state.
func NewAudioManager(enabled bool) *AudioManager {
	return &AudioManager{
		context: audio.NewContext(sampleRate),
		pcm: map[SoundType][]byte{
			SoundSelect:  synth(0.04, tap(660, 0.15)),
			SoundMove:    synth(0.08, tap(440, 0.3)),
			SoundCapture: synth(0.12, tap(330, 0.5)),
			SoundInvalid: synth(0.1, buzz(150, 0.15)),
			SoundNewGame: synth(0.4, chord(0.4, 261.63, 329.63, 392.00)),
		},
		enabled: enabled,
		volume:  0.5,
	}
}

// wave gives the amplitude at time t seconds; p is t over the duration.
type wave func(t, p float64) float64

// synth renders w as 16-bit little-endian stereo.
func synth(duration float64, w wave) []byte {
	n := int(sampleRate * duration)
	pcm := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := int16(math.Max(-1, math.Min(1, w(t, t/duration))) * math.MaxInt16)
		pcm = append(pcm, byte(v), byte(v>>8), byte(v), byte(v>>8))
	}
	return pcm
}

// tap is a sine with a little noise and a fast exponential decay, like a
// piece set down on wood.
func tap(freq, gain float64) wave {
	return func(t, _ float64) float64 {
		noise := 0.3 * (math.Sin(t*sampleRate*0.3) + math.Sin(t*sampleRate*0.7))
		return (math.Sin(2*math.Pi*freq*t) + noise) * math.Exp(-30*t) * gain
	}
}

// buzz is a low tone with its octave, fading linearly.
func buzz(freq, gain float64) wave {
	return func(t, p float64) float64 {
		return (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)) * (1 - p) * gain
	}
}

// chord averages the given notes under a short attack and a long release.
func chord(gain float64, freqs ...float64) wave {
	return func(t, p float64) float64 {
		env := 1.0
		switch {
		case p < 0.1:
			env = p / 0.1
		case p > 0.7:
			env = (1 - p) / 0.3
		}
		var sum float64
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		return sum / float64(len(freqs)) * env * gain
	}
}

// Play starts sound on its own player so effects can overlap.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	pcm, ok := am.pcm[sound]
	if !ok {
		return
	}
	p := am.context.NewPlayerFromBytes(pcm)
	p.SetVolume(am.volume)
	p.Play()
}

func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
