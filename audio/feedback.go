package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Feedback plays short UI sounds through a shared mixer
// Every method is a no-op until Initialize succeeds
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewFeedback creates an uninitialized feedback player
func NewFeedback() *Feedback {
	return &Feedback{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}

	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	f.initialized = false
}

// PlayClick plays the press tone
func (f *Feedback) PlayClick() {
	f.play(clickFreq)
}

// PlayRelease plays the lower release tone
func (f *Feedback) PlayRelease() {
	f.play(releaseFreq)
}

func (f *Feedback) play(freq float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}

	tone, err := Tone(freq, clickDuration)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	speaker.Lock()
	f.mixer.Add(tone)
	speaker.Unlock()
}

// Active returns the number of tones still playing
func (f *Feedback) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return f.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return f.mixer.Len()
}
