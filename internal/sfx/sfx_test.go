package sfx

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/vovakirdan/parkour/internal/games/parkour"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		cue      parkour.Cue
		expected time.Duration
	}{
		{parkour.CueJump, 120 * time.Millisecond},
		{parkour.CueDoubleJump, 150 * time.Millisecond},
		{parkour.CueCollect, 210 * time.Millisecond},
		{parkour.CueLevelUp, 520 * time.Millisecond},
		{parkour.CueFall, 400 * time.Millisecond},
		{parkour.CueVictory, 900 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			if got := Duration(tt.cue); got != tt.expected {
				t.Errorf("Duration() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSynthLength(t *testing.T) {
	for _, c := range parkour.Cues {
		t.Run(c.String(), func(t *testing.T) {
			buf := Synth(c, 8000)
			want := int(Duration(c).Seconds()*8000) * 4
			if len(buf) != want {
				t.Errorf("len(Synth()) = %d, expected %d", len(buf), want)
			}
		})
	}
}

func TestSynthStereoAndAudible(t *testing.T) {
	buf := Synth(parkour.CueCollect, DefaultSampleRate)

	peak := 0
	for i := 0; i+3 < len(buf); i += 4 {
		l := int16(binary.LittleEndian.Uint16(buf[i:]))
		r := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
		peak = max(peak, int(l), -int(l))
	}
	if peak == 0 {
		t.Fatal("cue is silent")
	}
	if peak > 8000 {
		t.Errorf("peak %d louder than the cue volumes allow", peak)
	}
}

func TestSynthInvalid(t *testing.T) {
	if buf := Synth(parkour.Cue(99), DefaultSampleRate); buf != nil {
		t.Errorf("Synth(unknown) = %d bytes, expected nil", len(buf))
	}
	if buf := Synth(parkour.CueJump, 0); buf != nil {
		t.Errorf("Synth(rate 0) = %d bytes, expected nil", len(buf))
	}
}

func TestDuplicateSharesCollect(t *testing.T) {
	a := Synth(parkour.CueCollect, 8000)
	b := Synth(parkour.CueDuplicate, 8000)
	if string(a) != string(b) {
		t.Error("duplicate pickup should sound like a normal pickup")
	}
	if string(Synth(parkour.CueNewItem, 8000)) == string(a) {
		t.Error("new item should use the level-up fanfare")
	}
}

func TestBank(t *testing.T) {
	b := NewBank(8000)
	if b.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, expected 8000", b.SampleRate())
	}
	for _, c := range parkour.Cues {
		if len(b.Clip(c)) == 0 {
			t.Errorf("Clip(%v) is empty", c)
		}
	}
}
