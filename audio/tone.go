package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickFreq     = 880
	releaseFreq   = 660
	clickDuration = 40 * time.Millisecond
)

// Tone returns a sine tone of freq Hz lasting d, fading out linearly to silence
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0fHz: %w", freq, err)
	}
	n := sampleRate.N(d)
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	return beep.Take(n, newFade(quiet, n)), nil
}

// fade scales samples from full amplitude down to zero over total samples
type fade struct {
	s     beep.Streamer
	pos   int
	total int
}

func newFade(s beep.Streamer, total int) *fade {
	return &fade{s: s, total: max(total, 1)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := range samples[:n] {
		gain := max(0, 1-float64(f.pos)/float64(f.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}
