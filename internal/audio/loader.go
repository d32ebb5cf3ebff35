package audio

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/faiface/beep"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
)

// Loader fetches and decodes audio assets into playable tracks, retrying
// transient fetch failures a bounded number of times.
type Loader struct {
	Output  *Output
	Volume  float64
	Loop    bool
	Retries int

	// Open fetches the raw asset. Defaults to os.Open.
	Open func(path string) (io.ReadCloser, error)
	// Decode turns the raw asset into a stream. Defaults to Decode.
	Decode func(path string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)
	// Backoff returns the retry schedule. Defaults to exponential backoff.
	Backoff func() backoff.BackOff
}

// NewLoader returns a loader configured from cfg.
func NewLoader(out *Output, cfg config.Config) *Loader {
	return &Loader{
		Output:  out,
		Volume:  cfg.Volume,
		Loop:    cfg.Loop,
		Retries: cfg.LoadRetries,
	}
}

// Load fetches and decodes path. Fetch failures are retried; decode failures
// and unsupported formats are not.
func (l *Loader) Load(ctx context.Context, path string) (*Track, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	op := func() error {
		rc, err := l.open(path)
		if err != nil {
			return &LoadError{Path: path, Err: err}
		}
		s, f, err := l.decode(path, rc)
		if err != nil {
			_ = rc.Close()
			if errors.Is(err, ErrUnsupportedFormat) {
				return backoff.Permanent(err)
			}
			return backoff.Permanent(&DecodeError{Path: path, Err: err})
		}
		stream, format = s, f
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(l.backoff(), uint64(max(l.Retries, 0))), ctx)
	notify := func(err error, wait time.Duration) {
		log.Printf("[audio] %v, retrying in %s", err, wait.Round(time.Millisecond))
	}
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, err
	}

	if l.Output != nil {
		if err := l.Output.Prepare(format); err != nil {
			_ = stream.Close()
			return nil, err
		}
	}

	analyser := NewAnalyser(config.FFTSize, config.Smoothing, config.MinDB, config.MaxDB)
	t := newTrack(path, stream, format, l.Output, l.Volume, l.Loop, analyser)
	log.Printf("[audio] loaded %s: %d Hz, %d channels", path, format.SampleRate, format.NumChannels)
	return t, nil
}

func (l *Loader) open(path string) (io.ReadCloser, error) {
	if l.Open != nil {
		return l.Open(path)
	}
	return os.Open(path)
}

func (l *Loader) decode(path string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	if l.Decode != nil {
		return l.Decode(path, rc)
	}
	return Decode(path, rc)
}

func (l *Loader) backoff() backoff.BackOff {
	if l.Backoff != nil {
		return l.Backoff()
	}
	return backoff.NewExponentialBackOff()
}
