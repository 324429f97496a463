// Package sfx synthesizes the game's sound cues as short PCM beeps.
//
// Output is 16-bit signed little-endian stereo, the format ebiten's audio
// package plays from bytes.
package sfx

import (
	"math"
	"time"

	"github.com/vovakirdan/parkour/internal/games/parkour"
)

// DefaultSampleRate is the sample rate used by the graphical front end.
const DefaultSampleRate = 44100

const bytesPerFrame = 4 // 2 channels * 16 bit

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Sawtooth
)

// Tone is one enveloped oscillator note.
type Tone struct {
	Freq  float64
	Dur   time.Duration
	Delay time.Duration // Offset from the start of the cue
	Wave  Wave
	Vol   float64
}

// floor is the level the exponential decay envelope reaches at the end of a tone.
const floor = 0.001

// Tones returns the notes that make up a cue.
func Tones(c parkour.Cue) []Tone {
	switch c {
	case parkour.CueJump:
		return []Tone{{Freq: 520, Dur: 120 * time.Millisecond, Vol: 0.08}}
	case parkour.CueDoubleJump:
		return []Tone{{Freq: 680, Dur: 150 * time.Millisecond, Vol: 0.08}}
	case parkour.CueCollect, parkour.CueDuplicate:
		return []Tone{
			{Freq: 880, Dur: 100 * time.Millisecond, Vol: 0.1},
			{Freq: 1100, Dur: 150 * time.Millisecond, Delay: 60 * time.Millisecond, Vol: 0.08},
		}
	case parkour.CueNewItem, parkour.CueLevelUp:
		return arpeggio(5, 600, 100, 80*time.Millisecond, 200*time.Millisecond)
	case parkour.CueFall:
		return []Tone{{Freq: 200, Dur: 400 * time.Millisecond, Wave: Sawtooth, Vol: 0.08}}
	case parkour.CueVictory:
		return arpeggio(6, 523, 80, 120*time.Millisecond, 300*time.Millisecond)
	default:
		return nil
	}
}

// arpeggio builds n rising notes starting at base Hz, each step higher and
// later than the previous one.
func arpeggio(n int, base, step float64, spacing, dur time.Duration) []Tone {
	tones := make([]Tone, n)
	for i := range tones {
		tones[i] = Tone{
			Freq:  base + float64(i)*step,
			Dur:   dur,
			Delay: time.Duration(i) * spacing,
			Vol:   0.1,
		}
	}
	return tones
}

// Duration returns the length of a cue.
func Duration(c parkour.Cue) time.Duration {
	var end time.Duration
	for _, t := range Tones(c) {
		end = max(end, t.Delay+t.Dur)
	}
	return end
}

// Synth renders a cue to PCM at the given sample rate. Unknown cues render
// to an empty buffer.
func Synth(c parkour.Cue, sampleRate int) []byte {
	tones := Tones(c)
	if len(tones) == 0 || sampleRate <= 0 {
		return nil
	}

	frames := samples(Duration(c), sampleRate)
	mix := make([]float64, frames)
	for _, t := range tones {
		start := samples(t.Delay, sampleRate)
		n := samples(t.Dur, sampleRate)
		decay := math.Log(floor/t.Vol) / float64(n)
		for i := 0; i < n && start+i < frames; i++ {
			phase := float64(i) * t.Freq / float64(sampleRate)
			mix[start+i] += oscillate(t.Wave, phase) * t.Vol * math.Exp(decay*float64(i))
		}
	}

	buf := make([]byte, frames*bytesPerFrame)
	for i, v := range mix {
		putStereo16(buf, i, v)
	}
	return buf
}

func samples(d time.Duration, sampleRate int) int {
	return int(d.Seconds() * float64(sampleRate))
}

// oscillate returns the wave value at phase, measured in cycles.
func oscillate(w Wave, phase float64) float64 {
	switch w {
	case Sawtooth:
		_, frac := math.Modf(phase)
		return 2*frac - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// putStereo16 writes a [-1,1] sample as int16 LE to both channels of frame i.
func putStereo16(buf []byte, i int, sample float64) {
	sample = max(-1, min(1, sample))
	v := uint16(int16(sample * math.MaxInt16)) //#nosec G115 -- clamped above
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}

// Bank holds every cue pre-rendered at one sample rate.
type Bank struct {
	sampleRate int
	clips      map[parkour.Cue][]byte
}

// NewBank renders all cues.
func NewBank(sampleRate int) *Bank {
	b := &Bank{sampleRate: sampleRate, clips: make(map[parkour.Cue][]byte, len(parkour.Cues))}
	for _, c := range parkour.Cues {
		b.clips[c] = Synth(c, sampleRate)
	}
	return b
}

// Clip returns the rendered PCM for a cue. The slice must not be modified.
func (b *Bank) Clip(c parkour.Cue) []byte {
	return b.clips[c]
}

// SampleRate returns the rate the bank was rendered at.
func (b *Bank) SampleRate() int {
	return b.sampleRate
}
