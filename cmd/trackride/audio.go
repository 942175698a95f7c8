package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate = beep.SampleRate(44100)
	chimeFreq = 660
	chimeLen  = 120 * time.Millisecond
)

// chime plays a short tone on every lap. A chime whose speaker failed to
// initialize stays silent.
type chime struct {
	ok bool
}

func newChime() (*chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return &chime{}, err
	}
	return &chime{ok: true}, nil
}

func (c *chime) play() {
	if !c.ok {
		return
	}
	sine, err := generators.SineTone(chimeRate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(chimeLen), sine))
}

func (c *chime) close() {
	if c.ok {
		speaker.Close()
	}
}
