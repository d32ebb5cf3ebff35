package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Output owns the process-wide speaker. It initializes the device on first use
// and re-initializes it whenever a track with another sample rate arrives.
type Output struct {
	mu   sync.Mutex
	init bool
	rate beep.SampleRate

	// sink replaces speaker.Play when set.
	sink func(beep.Streamer)
}

// Prepare makes the speaker ready for format, stopping anything still playing.
func (o *Output) Prepare(format beep.Format) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !o.init:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		o.init = true
	case o.rate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("reinit speaker at %d Hz: %w", format.SampleRate, err)
		}
	default:
		speaker.Clear()
	}
	o.rate = format.SampleRate
	return nil
}

// Play hands s to the speaker. A nil Output discards it.
func (o *Output) Play(s beep.Streamer) {
	if o == nil {
		return
	}
	if o.sink != nil {
		o.sink(s)
		return
	}
	speaker.Play(s)
}

// Locked runs fn under the speaker lock once the speaker is initialized.
func (o *Output) Locked(fn func()) {
	if o == nil || !o.initialized() {
		fn()
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

func (o *Output) initialized() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.init
}
