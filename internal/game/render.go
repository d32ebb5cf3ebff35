package game

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
	"github.com/iburimskiy/spiral-visualizer/internal/playback"
	"github.com/iburimskiy/spiral-visualizer/internal/scene"
)

const dotSize = 16

var (
	wireColor   = color.RGBA{R: 90, G: 130, B: 255, A: 255}
	borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

type renderer struct {
	width, height int

	background *ebiten.Shader
	dot        *ebiten.Image
	button     *ebiten.Image
}

func newRenderer(width, height int) (*renderer, error) {
	bg, err := ebiten.NewShader([]byte(backgroundShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile background shader: %w", err)
	}

	// Soft round sprite: stacked translucent discs give a bright core.
	dot := ebiten.NewImage(dotSize, dotSize)
	for i := 0; i < 4; i++ {
		r := float32(dotSize/2) * float32(4-i) / 4
		vector.DrawFilledCircle(dot, dotSize/2, dotSize/2, r, color.RGBA{R: 64, G: 64, B: 64, A: 64}, true)
	}

	return &renderer{
		width:      width,
		height:     height,
		background: bg,
		dot:        dot,
		button:     ebiten.NewImage(config.ButtonWidth, config.ButtonHeight),
	}, nil
}

func (r *renderer) drawBackground(screen *ebiten.Image, sc *scene.Scene, amplitude float64) {
	uniforms := sc.Sphere.Material.Uniforms()
	uniforms["Boost"] = float32(amplitude)
	uniforms["Resolution"] = []float32{float32(r.width), float32(r.height)}
	screen.DrawRectShader(r.width, r.height, r.background, &ebiten.DrawRectShaderOptions{
		Uniforms: uniforms,
	})
}

func (r *renderer) drawScene(screen *ebiten.Image, sc *scene.Scene) {
	proj := sc.Camera.Projector(r.width, r.height)
	r.drawSphere(screen, proj, sc.Sphere)
	for _, s := range sc.Spirals {
		r.drawSpiral(screen, proj, s)
	}
	r.drawOctahedra(screen, proj, sc.Octas)
}

func (r *renderer) drawSphere(screen *ebiten.Image, proj scene.Projector, s *scene.Sphere) {
	model := s.Matrix()
	glow := s.Glow()
	for _, e := range s.Edges() {
		r.strokeEdge(screen, proj, model, e, wireColor, glow, 1)
	}
}

func (r *renderer) drawSpiral(screen *ebiten.Image, proj scene.Projector, s *scene.Spiral) {
	model := s.Matrix()
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	for _, p := range s.Particles {
		world := model.Mul4x1(s.Position(p).Vec4(1)).Vec3()
		x, y, depth, ok := proj.Project(world)
		if !ok {
			continue
		}
		px := proj.PixelSize(s.Size(p), depth)
		if px < 0.5 {
			continue
		}
		scale := px / dotSize

		op.GeoM.Reset()
		op.GeoM.Translate(-dotSize/2, -dotSize/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(p.Color)
		op.ColorScale.ScaleAlpha(float32(depthFade(depth)))
		screen.DrawImage(r.dot, op)
	}
}

func (r *renderer) drawOctahedra(screen *ebiten.Image, proj scene.Projector, g *scene.Group) {
	group := g.Matrix()
	for _, o := range g.Children {
		model := group.Mul4(o.Matrix())
		for _, e := range o.Edges() {
			r.strokeEdge(screen, proj, model, e, o.Color, 1, 1.5)
		}
	}
}

func (r *renderer) strokeEdge(screen *ebiten.Image, proj scene.Projector, model mgl64.Mat4, e scene.Edge, c color.RGBA, alpha float64, width float32) {
	x0, y0, d0, ok0 := proj.Project(model.Mul4x1(e.A.Vec4(1)).Vec3())
	x1, y1, d1, ok1 := proj.Project(model.Mul4x1(e.B.Vec4(1)).Vec3())
	if !ok0 || !ok1 {
		return
	}
	a := alpha * depthFade((d0+d1)/2)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, withAlpha(c, a), true)
}

func (r *renderer) drawButton(screen *ebiten.Image, ctrl *playback.Control, hovered, pressed bool, hue float64) {
	if !ctrl.Visible() {
		return
	}

	var bgColor color.Color
	switch {
	case !ctrl.Enabled:
		bgColor = color.RGBA{R: 60, G: 64, B: 80, A: 255} // Disabled
	case pressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	b := r.button
	b.Fill(bgColor)
	border := borderColor
	if ctrl.Enabled {
		border = hsvToRgb(hue, 0.5, 0.95)
	}
	vector.StrokeRect(b, 1, 1, config.ButtonWidth-2, config.ButtonHeight-2, 2, border, false)

	textWidth := len(ctrl.Label) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(b, ctrl.Label, (config.ButtonWidth-textWidth)/2, (config.ButtonHeight-16)/2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.ButtonX, config.ButtonY)
	op.ColorScale.ScaleAlpha(float32(ctrl.Opacity()))
	screen.DrawImage(b, op)
}
