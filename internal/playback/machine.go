// Package playback implements the button-driven playback state machine:
//
//	Idle --click--> Loading --loaded--> Playing --stopped--> Finished --click--> Playing
//
// Loading falls back to Idle when the asset cannot be loaded. Transition side
// effects are limited to the control's label, enabled flag and opacity.
package playback

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
)

// ErrInvalidTransition is returned when an event does not apply to the current status.
var ErrInvalidTransition = errors.New("invalid playback transition")

// Status is the playback session state.
type Status int

const (
	Idle Status = iota
	Loading
	Playing
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Action tells the caller what a click requires it to do.
type Action int

const (
	// None means the click was ignored.
	None Action = iota
	// Load means a new asset fetch must be started.
	Load
	// Replay means the existing session must be restarted.
	Replay
)

// Machine owns the status and the control it drives.
type Machine struct {
	status  Status
	control *Control
}

// NewMachine returns a machine in Idle with a visible "Play" control.
func NewMachine() *Machine {
	return &Machine{control: NewControl(config.ButtonLabel)}
}

// Status returns the current status.
func (m *Machine) Status() Status { return m.status }

// Control returns the driven control.
func (m *Machine) Control() *Control { return m.control }

// Click handles a user click. Clicks on a disabled control are ignored.
func (m *Machine) Click() Action {
	if !m.control.Enabled {
		return None
	}
	switch m.status {
	case Idle:
		m.status = Loading
		m.control.Enabled = false
		m.control.Label = config.LoadingLabel
		return Load
	case Finished:
		m.status = Playing
		m.control.Enabled = false
		m.control.FadeTo(0, config.ControlFade)
		return Replay
	default:
		return None
	}
}

// Loaded moves Loading to Playing and fades the control out.
func (m *Machine) Loaded() error {
	if err := m.expect(Loading, Playing); err != nil {
		return err
	}
	m.status = Playing
	m.control.FadeTo(0, config.ControlFade)
	return nil
}

// Failed moves Loading back to Idle with an error label.
func (m *Machine) Failed() error {
	if err := m.expect(Loading, Idle); err != nil {
		return err
	}
	m.status = Idle
	m.control.Label = config.LoadFailedLabel
	m.control.Enabled = true
	m.control.FadeTo(1, config.ControlFade)
	return nil
}

// Finish moves Playing to Finished, re-enabling the control for replay. The
// caller schedules the fade back in.
func (m *Machine) Finish() error {
	if err := m.expect(Playing, Finished); err != nil {
		return err
	}
	m.status = Finished
	m.control.Label = config.PlayAgainLabel
	m.control.Enabled = true
	return nil
}

// Reset drops a finished session, returning to Idle.
func (m *Machine) Reset() error {
	if m.status != Idle && m.status != Finished {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.status, Idle)
	}
	m.status = Idle
	m.control.Label = config.ButtonLabel
	m.control.Enabled = true
	m.control.FadeTo(1, config.ControlFade)
	return nil
}

func (m *Machine) expect(from, to Status) error {
	if m.status != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.status, to)
	}
	return nil
}
