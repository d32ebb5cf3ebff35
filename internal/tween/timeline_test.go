package tween

import (
	"math"
	"testing"
	"time"
)

type box struct{ v float64 }

func (b *box) prop(end float64) Prop {
	return Prop{
		Get: func() float64 { return b.v },
		Set: func(v float64) { b.v = v },
		End: end,
	}
}

func TestTimelineReachesEndValue(t *testing.T) {
	b := &box{v: 2}
	tl := New().To(time.Second, Power1Out, b.prop(0))

	for i := 0; i < 200 && !tl.Done(); i++ {
		tl.Update(1.0 / 60)
	}

	if !tl.Done() {
		t.Fatal("expected timeline to finish")
	}
	if b.v != 0 {
		t.Errorf("value = %f, want 0", b.v)
	}
}

func TestTimelineStepsAreSequential(t *testing.T) {
	cam := &box{v: 3}
	opacity := &box{v: 0}
	tl := New().
		To(4*time.Second, ExpoIn, cam.prop(4.5)).
		To(time.Second, Power1Out, opacity.prop(1))

	// 3 seconds in, the first step is still running and the second has not started.
	for i := 0; i < 180; i++ {
		tl.Update(1.0 / 60)
	}
	if opacity.v != 0 {
		t.Errorf("opacity = %f during first step, want 0", opacity.v)
	}
	if cam.v == 4.5 {
		t.Error("camera reached end value too early")
	}

	for i := 0; i < 400 && !tl.Done(); i++ {
		tl.Update(1.0 / 60)
	}
	if cam.v != 4.5 {
		t.Errorf("camera = %f, want 4.5", cam.v)
	}
	if opacity.v != 1 {
		t.Errorf("opacity = %f, want 1", opacity.v)
	}
}

func TestTimelineStartValueCapturedLazily(t *testing.T) {
	first := &box{v: 0}
	second := &box{v: 0}
	tl := New().
		To(0, Power1Out, first.prop(1)).
		To(time.Second, Power1Out, second.prop(10))

	tl.Update(0) // completes the zero-length step
	second.v = 5 // moved by someone else before the second step starts
	tl.Update(0.5)

	if first.v != 1 {
		t.Errorf("first = %f, want 1", first.v)
	}
	if second.v < 5 || second.v > 10 {
		t.Errorf("second = %f, want within [5, 10]", second.v)
	}
}

func TestTimelineKill(t *testing.T) {
	b := &box{v: 0}
	tl := New().To(time.Second, Power1Out, b.prop(1))
	tl.Update(0.25)
	at := b.v
	tl.Kill()
	tl.Update(0.5)

	if !tl.Done() {
		t.Error("killed timeline should be done")
	}
	if math.Abs(b.v-at) > 1e-9 {
		t.Errorf("value moved after kill: %f -> %f", at, b.v)
	}
}

func TestNilTimelineIsDone(t *testing.T) {
	var tl *Timeline
	if !tl.Done() {
		t.Error("nil timeline should be done")
	}
	tl.Kill()
}

func TestTimelineCarriesLeftoverTime(t *testing.T) {
	cam := &box{v: 3}
	opacity := &box{v: 0}
	tl := New().
		To(4*time.Second, ExpoIn, cam.prop(4.5)).
		To(time.Second, Power1Out, opacity.prop(1))

	// One update overshooting the first step by half a second.
	tl.Update(4.5)

	if cam.v != 4.5 {
		t.Errorf("camera = %f, want 4.5", cam.v)
	}
	// power1.out at half time: 1 - (1-0.5)^2
	if math.Abs(opacity.v-0.75) > 1e-6 {
		t.Errorf("opacity = %f, want 0.75", opacity.v)
	}
	if tl.Done() {
		t.Error("second step should still be running")
	}
}
