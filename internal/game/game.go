package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spiral-visualizer/internal/audio"
	"github.com/iburimskiy/spiral-visualizer/internal/config"
	"github.com/iburimskiy/spiral-visualizer/internal/driver"
	"github.com/iburimskiy/spiral-visualizer/internal/playback"
	"github.com/iburimskiy/spiral-visualizer/internal/scene"
)

// trackSource loads one audio file for the driver.
type trackSource struct {
	loader *audio.Loader
	path   string
}

func (s trackSource) Load(ctx context.Context) (driver.Player, error) {
	t, err := s.loader.Load(ctx, s.path)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Game is the ebiten.Game running the visualizer.
type Game struct {
	ctx    context.Context
	cfg    config.Config
	scene  *scene.Scene
	driver *driver.Driver
	loader *audio.Loader
	render *renderer

	start time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// New builds the scene, the driver and the renderer. Background loads stop
// when ctx is cancelled.
func New(ctx context.Context, cfg config.Config) (*Game, error) {
	r, err := newRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	sc := scene.Build(cfg)
	loader := audio.NewLoader(&audio.Output{}, cfg)
	return &Game{
		ctx:     ctx,
		cfg:     cfg,
		scene:   sc,
		driver:  driver.New(ctx, sc, trackSource{loader: loader, path: cfg.TrackPath}, cfg.DeltaMode),
		loader:  loader,
		render:  r,
		start:   time.Now(),
		prevKey: map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = inButton(mouseX, mouseY)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.driver.Click()
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.driver.Click()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.chooseTrack(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.driver.Step(time.Since(g.start).Seconds())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.drawBackground(screen, g.scene, g.driver.Amplitude())
	g.render.drawScene(screen, g.scene)

	hue := g.scene.Sphere.Material.Time * 60
	g.render.drawButton(screen, g.driver.Control(), g.buttonHovered, g.buttonPressed, hue)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) status() string {
	t := g.driver.Time()
	var status string
	switch g.driver.Status() {
	case playback.Idle:
		status = "Click Play or press Space to start, O to open another file"
	case playback.Loading:
		status = "Loading " + g.cfg.TrackPath
	case playback.Playing:
		status = fmt.Sprintf("Playing %s", formatDuration(time.Duration(t.Playback*float64(time.Second))))
	case playback.Finished:
		status = "Finished - Space to play again, O to open another file"
	}

	err := g.lastErr
	if err == nil {
		err = g.driver.Err()
	}
	if err != nil {
		status += " | Error: " + err.Error()
	}
	return status
}

// chooseTrack opens a file dialog and, unless cancelled, starts playing the
// chosen file in a fresh session.
func (g *Game) chooseTrack() error {
	switch g.driver.Status() {
	case playback.Loading, playback.Playing:
		return nil
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Extensions,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	log.Printf("[game] selected %s", filename)
	if err := g.driver.SetSource(trackSource{loader: g.loader, path: filename}); err != nil {
		return err
	}
	g.cfg.TrackPath = filename
	g.lastErr = nil
	g.driver.Click()
	return nil
}

func inButton(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}
