package gui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/parkour/internal/games/parkour"
	"github.com/vovakirdan/parkour/internal/sfx"
)

// sound plays pre-rendered cues through Ebiten's audio context.
type sound struct {
	ctx    *audio.Context
	bank   *sfx.Bank
	logger *log.Logger
}

var _ parkour.Audio = (*sound)(nil)

func newSound(logger *log.Logger) *sound {
	bank := sfx.NewBank(sfx.DefaultSampleRate)
	return &sound{
		ctx:    audio.NewContext(bank.SampleRate()),
		bank:   bank,
		logger: logger,
	}
}

// Play starts a cue and returns immediately. Overlapping cues mix.
func (s *sound) Play(c parkour.Cue) {
	clip := s.bank.Clip(c)
	if len(clip) == 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.Play()
	s.logger.Debug("sound", "cue", c)
}
