// Package driver runs the per-frame animation of the visualizer. A Driver owns
// every piece of mutable animation state and is advanced by exactly one caller,
// once per frame, through Step.
package driver

import (
	"context"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
	"github.com/iburimskiy/spiral-visualizer/internal/playback"
	"github.com/iburimskiy/spiral-visualizer/internal/scene"
	"github.com/iburimskiy/spiral-visualizer/internal/tween"
)

// Player is a loaded audio session.
type Player interface {
	Play() error
	Playing() bool
	// Amplitude returns the current raw amplitude sample.
	Amplitude() float64
}

// Source loads the player for a session. Load runs off the frame loop.
type Source interface {
	Load(ctx context.Context) (Player, error)
}

// LoadResult is the outcome of an asynchronous Source.Load.
type LoadResult struct {
	Player Player
	Err    error
}

// Driver advances the scene once per frame from elapsed time and audio amplitude.
type Driver struct {
	ctx    context.Context
	mode   config.DeltaMode
	scene  *scene.Scene
	source Source

	time      TimeState
	angle     AngleState
	amplitude float64

	machine *playback.Machine
	player  Player
	running bool
	pending chan LoadResult
	restore *tween.Timeline

	lastErr error
}

// New returns a driver animating sc, loading audio from src when first clicked.
// ctx bounds background loads.
func New(ctx context.Context, sc *scene.Scene, src Source, mode config.DeltaMode) *Driver {
	return &Driver{
		ctx:     ctx,
		mode:    mode,
		scene:   sc,
		source:  src,
		time:    TimeState{Frequency: config.Frequency},
		machine: playback.NewMachine(),
	}
}

// Time returns a copy of the timing state.
func (d *Driver) Time() TimeState { return d.time }

// Angle returns a copy of the camera path angles.
func (d *Driver) Angle() AngleState { return d.angle }

// Amplitude returns the compressed amplitude used by the last frame.
func (d *Driver) Amplitude() float64 { return d.amplitude }

// Status returns the playback status.
func (d *Driver) Status() playback.Status { return d.machine.Status() }

// Control returns the playback button state.
func (d *Driver) Control() *playback.Control { return d.machine.Control() }

// Err returns the last load or playback error, if any.
func (d *Driver) Err() error { return d.lastErr }

// SetSource replaces the audio source. It only applies while idle or finished
// and drops the current session.
func (d *Driver) SetSource(src Source) error {
	if err := d.machine.Reset(); err != nil {
		return err
	}
	d.source = src
	d.restore.Kill()
	d.restore = nil
	if c, ok := d.player.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("[driver] close session: %v", err)
		}
	}
	d.player = nil
	d.running = false
	d.lastErr = nil
	return nil
}

// Click forwards a button press to the playback state machine.
func (d *Driver) Click() {
	switch d.machine.Click() {
	case playback.Load:
		d.startLoad()
	case playback.Replay:
		d.restore.Kill()
		if err := d.player.Play(); err != nil {
			d.fail(err)
			return
		}
		d.beginSession()
	}
}

func (d *Driver) startLoad() {
	d.lastErr = nil
	d.pending = make(chan LoadResult, 1)
	go func(ctx context.Context, src Source, out chan<- LoadResult) {
		p, err := src.Load(ctx)
		out <- LoadResult{Player: p, Err: err}
	}(d.ctx, d.source, d.pending)
}

// pollLoad applies a completed load without blocking the frame.
func (d *Driver) pollLoad() {
	if d.pending == nil {
		return
	}
	select {
	case res := <-d.pending:
		d.pending = nil
		if res.Err == nil {
			res.Err = res.Player.Play()
		}
		if res.Err != nil {
			d.fail(res.Err)
			return
		}
		d.player = res.Player
		if err := d.machine.Loaded(); err != nil {
			log.Printf("[driver] %v", err)
		}
		d.beginSession()
	default:
	}
}

func (d *Driver) beginSession() {
	d.time.SessionStart = d.time.Elapsed
	d.amplitude = 0
	d.running = true
}

func (d *Driver) fail(err error) {
	log.Printf("[driver] playback failed: %v", err)
	d.lastErr = err
	d.running = false
	if d.machine.Status() == playback.Loading {
		d.player = nil
		if ferr := d.machine.Failed(); ferr != nil {
			log.Printf("[driver] %v", ferr)
		}
		return
	}
	// A replay that could not start leaves the session finished.
	if ferr := d.machine.Finish(); ferr != nil {
		log.Printf("[driver] %v", ferr)
	}
	d.machine.Control().FadeTo(1, config.ControlFade)
}

// Step advances one frame at elapsed seconds since start.
func (d *Driver) Step(elapsed float64) {
	tick := elapsed - d.time.Previous
	d.time.Elapsed = elapsed
	d.pollLoad()

	delta := d.time.advance(elapsed, d.mode)
	cam := d.scene.Camera

	d.restore.Update(tick)
	d.machine.Control().Update(tick)

	if d.player != nil && d.running {
		d.time.Playback = elapsed - d.time.SessionStart + d.time.CarryOver
		d.amplitude = CompressAmplitude(d.player.Amplitude())
		d.angle.advance(delta)

		if !d.player.Playing() {
			d.finish()
		} else {
			cam.Position[0], cam.Position[2] = CameraPath(d.angle)
		}
	}

	cam.LookAt(mgl64.Vec3{})

	spiralStep := SpiralAdvance(delta, d.time.Frequency, d.amplitude)
	for _, s := range d.scene.Spirals {
		s.Material.Time += spiralStep
	}
	d.scene.Sphere.Material.Time += delta * d.time.Frequency

	spin := PolyhedronSpin(delta, d.amplitude)
	for _, o := range d.scene.Octas.Children {
		o.RotateY(spin)
	}
	d.scene.Octas.RotateY(-config.GroupRate * delta)
	d.scene.Sphere.RotateY(config.SphereRate * delta)

	d.time.Previous = elapsed
}

// finish ends the running session: the playback clock carries over, the
// camera eases back to rest and the control fades back in.
func (d *Driver) finish() {
	d.time.CarryOver = d.time.Playback
	d.running = false
	d.angle.reset()
	if err := d.machine.Finish(); err != nil {
		log.Printf("[driver] %v", err)
	}

	cam := d.scene.Camera
	ctrl := d.machine.Control()
	ctrl.StopFade()
	d.restore = tween.New().
		To(config.CameraReturn, tween.ExpoIn,
			tween.Prop{Get: func() float64 { return cam.Position[0] }, Set: func(v float64) { cam.Position[0] = v }, End: config.RestX},
			tween.Prop{Get: func() float64 { return cam.Position[2] }, Set: func(v float64) { cam.Position[2] = v }, End: config.RestZ},
		).
		To(config.ControlFade, tween.Power1Out, ctrl.OpacityTo(1))
	log.Printf("[driver] playback finished after %.1fs", d.time.Playback)
}

// Restoring reports whether the camera/control return animation is running.
func (d *Driver) Restoring() bool {
	return !d.restore.Done()
}
