package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	VisualRingSize = 8192

	// Button dimensions
	ButtonWidth  = 140
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 40

	ButtonLabel      = "Play"
	LoadingLabel     = "Loading..."
	PlayAgainLabel   = "Play again"
	LoadFailedLabel  = "Load failed, retry"
	DefaultTrackPath = "res/Mistletoe.mp3"

	// Camera
	FieldOfView = 85.0
	NearPlane   = 0.1
	FarPlane    = 100.0
	RestX       = 0.0
	RestZ       = 4.5

	// Spiral
	ParticleCount = 2000
	SpiralMaxPhi  = 92.5 * 3.141592653589793
	SpiralSize    = 0.045
	SpiralTurn    = 2.25

	// Wireframe sphere
	SphereRadius   = 6.0
	SphereSegments = 24

	// Octahedra
	OctahedronRadius = 0.2

	// Animation driver
	Frequency        = 0.0005
	MaxDeltaMillis   = 60.0
	AngleRateX       = 0.00063
	AngleRateZ       = 0.00039
	RadiusA          = 2.0
	RadiusC          = 4.5
	AmplitudeDivisor = 2000.0
	AmplitudeBoost   = 0.2
	PolyhedronRate   = 0.001
	GroupRate        = 0.0002
	SphereRate       = 0.0001

	CameraReturn = 4 * time.Second
	ControlFade  = 1 * time.Second

	// Audio analysis
	FFTSize   = 32
	Volume    = 0.1
	Smoothing = 0.8
	MinDB     = -100.0
	MaxDB     = -30.0
)

// DeltaMode selects the sign convention of the per-frame delta.
type DeltaMode string

const (
	// DeltaReference computes previous minus current, so delta is usually negative.
	DeltaReference DeltaMode = "reference"
	// DeltaForward computes current minus previous.
	DeltaForward DeltaMode = "forward"
)

// Config holds runtime configuration, loaded from environment variables.
type Config struct {
	TrackPath   string
	Volume      float64
	Loop        bool
	DeltaMode   DeltaMode
	LoadRetries int

	Seed           uint64
	Particles      int
	SphereSegments int

	Width  int
	Height int
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		TrackPath:   envStr("VISUALIZER_TRACK", DefaultTrackPath),
		Volume:      envFloat("VISUALIZER_VOLUME", Volume),
		Loop:        envBool("VISUALIZER_LOOP", false),
		DeltaMode:   DeltaMode(strings.ToLower(envStr("VISUALIZER_DELTA_MODE", string(DeltaReference)))),
		LoadRetries: envInt("VISUALIZER_LOAD_RETRIES", 3),

		Seed:           uint64(envInt("VISUALIZER_SEED", 1)),
		Particles:      envInt("VISUALIZER_PARTICLES", ParticleCount),
		SphereSegments: envInt("VISUALIZER_SPHERE_SEGMENTS", SphereSegments),

		Width:  envInt("VISUALIZER_WIDTH", WindowWidth),
		Height: envInt("VISUALIZER_HEIGHT", WindowHeight),
	}
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	if c.DeltaMode != DeltaForward {
		c.DeltaMode = DeltaReference
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.LoadRetries < 0 {
		c.LoadRetries = 0
	}
	if c.Particles <= 0 {
		c.Particles = ParticleCount
	}
	if c.SphereSegments < 3 {
		c.SphereSegments = SphereSegments
	}
	if c.Width <= 0 {
		c.Width = WindowWidth
	}
	if c.Height <= 0 {
		c.Height = WindowHeight
	}
}

// Aspect returns the window aspect ratio.
func (c Config) Aspect() float64 {
	return float64(c.Width) / float64(c.Height)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
