// Package sound plays short synthesized effects through ebiten's audio
// context.
package sound

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

type Effect int

const (
	EffectEat Effect = iota
	EffectGameOver
	EffectRestart
)

type tone struct {
	freq   float64
	dur    float64
	decay  float64
	volume float64
}

var tones = map[Effect]tone{
	EffectEat:      {freq: 880, dur: 0.1, decay: 3, volume: 6000},
	EffectGameOver: {freq: 220, dur: 0.5, decay: 3, volume: 7000},
	EffectRestart:  {freq: 660, dur: 0.15, decay: 4, volume: 5000},
}

// Beep renders a decaying sine as 16-bit little-endian stereo PCM.
func Beep(freq, durSec, decay, volume float64) []byte {
	n := int(float64(SampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		envelope := math.Exp(-decay * t)
		v := int16(math.Sin(2*math.Pi*freq*t) * volume * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

// Player owns the audio context. A muted player never touches the audio
// device, so it is safe to use headless.
type Player struct {
	mu      sync.Mutex
	muted   bool
	players map[Effect]*audio.Player
}

func NewPlayer(muted bool) *Player {
	p := &Player{muted: muted}
	if muted {
		return p
	}

	ctx := audio.NewContext(SampleRate)
	p.players = make(map[Effect]*audio.Player, len(tones))
	for effect, t := range tones {
		p.players[effect] = ctx.NewPlayerFromBytes(Beep(t.freq, t.dur, t.decay, t.volume))
	}
	return p
}

func (p *Player) Play(effect Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	player, ok := p.players[effect]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		return
	}
	player.Play()
}

// SetMuted silences a player built unmuted. A player built muted stays silent.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted || p.players == nil
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}
