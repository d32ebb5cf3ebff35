// Package tween sequences eased property animations.
//
// A Timeline is an ordered list of steps; each step animates one or more
// properties from their value at the moment the step starts to a fixed end
// value over a shared duration. Steps run one after another.
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing functions used by the visualizer.
var (
	ExpoIn    ease.TweenFunc = ease.InExpo
	Power1Out ease.TweenFunc = ease.OutQuad
)

// Prop is an animatable float property.
type Prop struct {
	Get func() float64
	Set func(float64)
	End float64
}

type track struct {
	prop  Prop
	tween *gween.Tween
}

type step struct {
	duration float32
	easing   ease.TweenFunc
	props    []Prop
	tracks   []track
	started  bool
	elapsed  float32
}

func (s *step) start() {
	s.tracks = make([]track, 0, len(s.props))
	for _, p := range s.props {
		s.tracks = append(s.tracks, track{
			prop:  p,
			tween: gween.New(float32(p.Get()), float32(p.End), s.duration, s.easing),
		})
	}
	s.started = true
}

// update advances the step by dt and reports whether it has finished, along
// with the part of dt left over past its end.
func (s *step) update(dt float32) (bool, float32) {
	if !s.started {
		s.start()
	}
	if s.duration <= 0 {
		for _, tr := range s.tracks {
			tr.prop.Set(tr.prop.End)
		}
		return true, dt
	}
	s.elapsed += dt
	done := true
	for _, tr := range s.tracks {
		v, finished := tr.tween.Update(dt)
		if finished {
			tr.prop.Set(tr.prop.End)
			continue
		}
		tr.prop.Set(float64(v))
		done = false
	}
	if !done {
		return false, 0
	}
	return true, max(s.elapsed-s.duration, 0)
}

// Timeline runs steps sequentially.
type Timeline struct {
	steps  []*step
	cursor int
	killed bool
}

// New returns an empty timeline.
func New() *Timeline {
	return &Timeline{}
}

// To appends a step animating props to their End values over d.
func (tl *Timeline) To(d time.Duration, easing ease.TweenFunc, props ...Prop) *Timeline {
	tl.steps = append(tl.steps, &step{
		duration: float32(d.Seconds()),
		easing:   easing,
		props:    props,
	})
	return tl
}

// Update advances the timeline by dt seconds. Time left over when a step ends
// flows into the next one. It returns true once every step has completed or
// the timeline was killed.
func (tl *Timeline) Update(dt float64) bool {
	if tl.Done() {
		return true
	}
	left := float32(max(dt, 0))
	for !tl.Done() {
		done, rest := tl.steps[tl.cursor].update(left)
		if !done {
			break
		}
		tl.cursor++
		// A step only starts once time actually reaches it.
		if rest <= 0 {
			break
		}
		left = rest
	}
	return tl.Done()
}

// Done reports whether the timeline has nothing left to animate.
func (tl *Timeline) Done() bool {
	return tl == nil || tl.killed || tl.cursor >= len(tl.steps)
}

// Kill stops the timeline, leaving properties at their current values.
func (tl *Timeline) Kill() {
	if tl != nil {
		tl.killed = true
	}
}
