package playback

import (
	"time"

	"github.com/iburimskiy/spiral-visualizer/internal/tween"
)

// Control is the single interactive button: a label, an enabled flag and an
// animatable opacity.
type Control struct {
	Label   string
	Enabled bool

	opacity float64
	fade    *tween.Timeline
}

// NewControl returns a visible, enabled control.
func NewControl(label string) *Control {
	return &Control{Label: label, Enabled: true, opacity: 1}
}

// Opacity returns the current opacity in [0, 1].
func (c *Control) Opacity() float64 { return c.opacity }

// SetOpacity sets the opacity, clamped to [0, 1].
func (c *Control) SetOpacity(v float64) {
	c.opacity = min(max(v, 0), 1)
}

// OpacityTo returns a tween property driving the opacity towards end.
func (c *Control) OpacityTo(end float64) tween.Prop {
	return tween.Prop{Get: c.Opacity, Set: c.SetOpacity, End: end}
}

// FadeTo starts a power1-out fade to target over d, replacing any running fade.
func (c *Control) FadeTo(target float64, d time.Duration) {
	c.fade.Kill()
	c.fade = tween.New().To(d, tween.Power1Out, c.OpacityTo(target))
}

// Fading reports whether a fade started by FadeTo is still running.
func (c *Control) Fading() bool {
	return !c.fade.Done()
}

// Update advances a running fade by dt seconds.
func (c *Control) Update(dt float64) {
	if !c.fade.Done() {
		c.fade.Update(dt)
	}
}

// Visible reports whether the control can be seen at all.
func (c *Control) Visible() bool {
	return c.opacity > 0
}

// StopFade cancels a running fade, leaving the opacity where it is.
func (c *Control) StopFade() {
	c.fade.Kill()
}
