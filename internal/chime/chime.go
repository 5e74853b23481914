// Package chime plays the short tone the clock sounds on the hour.
package chime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 880
	toneLength = 300 * time.Millisecond
)

// Chimer sounds the hourly chime.
type Chimer interface {
	Chime()
}

// Speaker plays a sine tone through the default audio device. The speaker
// is initialized lazily on the first chime; if the device is unavailable the
// chime degrades to a logged warning and the clock keeps running.
type Speaker struct {
	initOnce sync.Once
	initErr  error
	log      *slog.Logger
}

// NewSpeaker returns a Speaker that logs playback problems to log.
func NewSpeaker(log *slog.Logger) *Speaker {
	return &Speaker{log: log}
}

// Chime plays the tone. Non-blocking; playback happens on the speaker's own
// goroutine.
func (s *Speaker) Chime() {
	s.initOnce.Do(func() {
		s.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	})
	if s.initErr != nil {
		s.log.Warn("audio device unavailable, skipping chime", "err", s.initErr)
		return
	}

	tone, err := generators.SinTone(sampleRate, toneHz)
	if err != nil {
		s.log.Warn("tone generation failed", "err", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), tone))
}
