package audio

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/google/uuid"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
)

// Track is a decoded audio asset ready for playback and analysis.
type Track struct {
	ID     uuid.UUID
	Path   string
	Format beep.Format

	streamer beep.StreamSeekCloser
	tap      *Tap
	ctrl     *beep.Ctrl
	analyser *Analyser
	out      *Output

	playing atomic.Bool
	started bool
	window  []float64
}

func newTrack(path string, s beep.StreamSeekCloser, format beep.Format, out *Output, volume float64, loop bool, analyser *Analyser) *Track {
	var src beep.Streamer = s
	if loop {
		src = beep.Loop(-1, s)
	}
	gain := &effects.Gain{Streamer: src, Gain: volume - 1}
	tap := NewTap(gain, config.VisualRingSize)
	return &Track{
		ID:       uuid.New(),
		Path:     path,
		Format:   format,
		streamer: s,
		tap:      tap,
		ctrl:     &beep.Ctrl{Streamer: tap},
		analyser: analyser,
		out:      out,
	}
}

// Play starts the track from the beginning.
func (t *Track) Play() error {
	if t.started {
		var err error
		t.out.Locked(func() { err = t.streamer.Seek(0) })
		if err != nil {
			return err
		}
	}
	t.started = true
	t.tap.Reset()
	t.analyser.Reset()
	t.playing.Store(true)
	t.out.Play(beep.Seq(t.ctrl, beep.Callback(func() {
		t.playing.Store(false)
	})))
	log.Printf("[audio] session %s playing %s (%s)", t.ID, t.Path, t.Duration().Round(time.Second))
	return nil
}

// Playing reports whether the speaker is still consuming the track.
func (t *Track) Playing() bool {
	return t.playing.Load()
}

// Amplitude returns the average byte-scaled frequency magnitude of the most
// recently played window.
func (t *Track) Amplitude() float64 {
	t.window = t.tap.Snapshot(t.window, t.analyser.Size())
	return t.analyser.Average(t.window)
}

// Duration is the decoded length of the track.
func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.streamer.Len())
}

// Close stops playback and releases the decoder and file.
func (t *Track) Close() error {
	var err error
	t.out.Locked(func() {
		t.ctrl.Streamer = nil
		err = t.streamer.Close()
	})
	t.playing.Store(false)
	return err
}
