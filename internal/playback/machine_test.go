package playback

import (
	"errors"
	"testing"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
)

func settle(c *Control) {
	for i := 0; i < 600 && c.Fading(); i++ {
		c.Update(1.0 / 60)
	}
}

func TestNewMachine(t *testing.T) {
	m := NewMachine()

	if m.Status() != Idle {
		t.Errorf("expected Idle, got %s", m.Status())
	}
	c := m.Control()
	if !c.Enabled {
		t.Error("expected control to be enabled initially")
	}
	if c.Label != config.ButtonLabel {
		t.Errorf("expected label %q, got %q", config.ButtonLabel, c.Label)
	}
	if c.Opacity() != 1 {
		t.Errorf("expected opacity 1, got %f", c.Opacity())
	}
}

func TestIdleOnlyLeavesOnClick(t *testing.T) {
	m := NewMachine()

	if err := m.Loaded(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Loaded from Idle: expected ErrInvalidTransition, got %v", err)
	}
	if err := m.Finish(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Finish from Idle: expected ErrInvalidTransition, got %v", err)
	}
	if err := m.Failed(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Failed from Idle: expected ErrInvalidTransition, got %v", err)
	}
	if m.Status() != Idle {
		t.Fatalf("expected Idle after non-click events, got %s", m.Status())
	}

	if a := m.Click(); a != Load {
		t.Errorf("expected Load action, got %d", a)
	}
	if m.Status() != Loading {
		t.Errorf("expected Loading, got %s", m.Status())
	}
	if m.Control().Enabled {
		t.Error("expected control disabled while loading")
	}
	if m.Control().Label != config.LoadingLabel {
		t.Errorf("expected label %q, got %q", config.LoadingLabel, m.Control().Label)
	}
}

func TestClicksIgnoredWhileDisabled(t *testing.T) {
	m := NewMachine()
	m.Click()

	if a := m.Click(); a != None {
		t.Errorf("click while loading: expected None, got %d", a)
	}
	if err := m.Loaded(); err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	if a := m.Click(); a != None {
		t.Errorf("click while playing: expected None, got %d", a)
	}
	if m.Status() != Playing {
		t.Errorf("expected Playing, got %s", m.Status())
	}
}

func TestFullCycle(t *testing.T) {
	m := NewMachine()
	m.Click()
	if err := m.Loaded(); err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	settle(m.Control())
	if m.Control().Opacity() != 0 {
		t.Errorf("expected control faded out while playing, opacity %f", m.Control().Opacity())
	}

	if err := m.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if m.Status() != Finished {
		t.Errorf("expected Finished, got %s", m.Status())
	}
	if !m.Control().Enabled {
		t.Error("expected control enabled after finish")
	}
	if m.Control().Label != config.PlayAgainLabel {
		t.Errorf("expected label %q, got %q", config.PlayAgainLabel, m.Control().Label)
	}

	// Finished -> Playing directly, never through Loading.
	if a := m.Click(); a != Replay {
		t.Errorf("expected Replay action, got %d", a)
	}
	if m.Status() != Playing {
		t.Errorf("expected Playing, got %s", m.Status())
	}
	if m.Control().Enabled {
		t.Error("expected control disabled while playing")
	}
}

func TestLoadFailure(t *testing.T) {
	m := NewMachine()
	m.Click()
	settle(m.Control())

	if err := m.Failed(); err != nil {
		t.Fatalf("Failed: %v", err)
	}
	settle(m.Control())
	if m.Status() != Idle {
		t.Errorf("expected Idle, got %s", m.Status())
	}
	if !m.Control().Enabled {
		t.Error("expected control re-enabled after failure")
	}
	if m.Control().Label != config.LoadFailedLabel {
		t.Errorf("expected label %q, got %q", config.LoadFailedLabel, m.Control().Label)
	}
	if m.Control().Opacity() != 1 {
		t.Errorf("expected control visible, opacity %f", m.Control().Opacity())
	}

	if a := m.Click(); a != Load {
		t.Errorf("retry click: expected Load, got %d", a)
	}
}

func TestReset(t *testing.T) {
	m := NewMachine()
	m.Click()
	if err := m.Reset(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Reset while loading: expected ErrInvalidTransition, got %v", err)
	}
	m.Loaded()
	m.Finish()

	if err := m.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if m.Status() != Idle {
		t.Errorf("expected Idle, got %s", m.Status())
	}
	if m.Control().Label != config.ButtonLabel {
		t.Errorf("expected label %q, got %q", config.ButtonLabel, m.Control().Label)
	}
}

func TestControlOpacityClamped(t *testing.T) {
	c := NewControl("x")
	c.SetOpacity(3)
	if c.Opacity() != 1 {
		t.Errorf("opacity = %f, want 1", c.Opacity())
	}
	c.SetOpacity(-1)
	if c.Opacity() != 0 || c.Visible() {
		t.Errorf("opacity = %f, want 0 and invisible", c.Opacity())
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Idle, "idle"},
		{Loading, "loading"},
		{Playing, "playing"},
		{Finished, "finished"},
		{Status(9), "Status(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
