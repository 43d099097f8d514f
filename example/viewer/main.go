package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oomph-ac/drape/cloth"
	"github.com/oomph-ac/drape/mesh"
	"github.com/oomph-ac/drape/scene"
	"github.com/oomph-ac/drape/settings"
	"github.com/oomph-ac/drape/wind"
	"github.com/sirupsen/logrus"
)

const (
	screenW = 960
	screenH = 720
	// tilt is the rotation of the view about the X axis, in radians.
	tilt = -1.1
)

var background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

type Game struct {
	log   *logrus.Logger
	scene *scene.Scene
	cloth *cloth.Cloth
	mode  cloth.SolverMode
	dt    float64

	preset  string
	builder mesh.Builder
	view    mgl32.Mat4
	scale   float32
	centre  mgl32.Vec3
	paused  bool
}

var presetKeys = map[ebiten.Key]string{
	ebiten.Key1: "calm",
	ebiten.Key2: "breeze",
	ebiten.Key3: "updraft",
}

func (g *Game) Update() error {
	for key, name := range presetKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		src, err := wind.Preset(name)
		if err != nil {
			return err
		}
		if err := g.scene.SetWind("cloth", src); err != nil {
			return err
		}
		g.preset = name
		g.log.Infof("wind set to %s", name)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.mode = cloth.SolverModeFor(g.mode == cloth.SolverSpring)
		g.log.Infof("solver set to %s", g.mode)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.scene.Step(g.dt, g.mode)
	if err := g.cloth.Validate(); err != nil {
		return fmt.Errorf("cloth diverged: %w", err)
	}
	return nil
}

func (g *Game) project(p mgl32.Vec3) (float32, float32) {
	v := g.view.Mul4x1(p.Sub(g.centre).Vec4(1))
	return screenW/2 + v.X()*g.scale, screenH/2 - v.Y()*g.scale
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	m := g.builder.Build(g.cloth)
	for _, l := range m.Lines {
		x0, y0 := g.project(l.A)
		x1, y1 := g.project(l.B)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, l.Colour, true)
	}
	for i, p := range m.Points {
		if !g.cloth.Particle(i).Locked {
			continue
		}
		x, y := g.project(p)
		vector.DrawFilledCircle(screen, x, y, 4, mesh.White, true)
	}

	st := g.scene.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"solver: %s (space)\nwind: %s (1/2/3)\ntick: %d\nstep: %v\nmax strain: %.3f\nTPS: %.0f",
		g.mode, g.preset, g.cloth.Tick(), st.FrameMean, g.cloth.MaxStrain(), ebiten.ActualTPS()))
}

func (g *Game) Layout(outW, outH int) (int, int) {
	return screenW, screenH
}

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	path := "settings.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	s, err := settings.Load(path)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if s.Debug.Verbose {
		log.Level = logrus.DebugLevel
	}

	cfg, err := s.ClothConfig()
	if err != nil {
		log.Fatal(err)
	}
	src, err := s.WindSource()
	if err != nil {
		log.Fatal(err)
	}
	mode, err := s.SolverMode()
	if err != nil {
		log.Fatal(err)
	}

	sc := scene.New(log, nil)
	c, err := sc.Create("cloth", cfg, src)
	if err != nil {
		log.Fatal(err)
	}

	g := &Game{
		log:    log,
		scene:  sc,
		cloth:  c,
		mode:   mode,
		dt:     s.TickSeconds(),
		preset: s.Wind.Preset,
		view:   mgl32.HomogRotate3DX(tilt),
	}
	// Frame the cloth as it was built so that its fall stays visible.
	bounds := g.builder.Build(c).Bounds
	g.centre = bounds.Min().Add(bounds.Max()).Mul(0.5)
	if w := bounds.Max().Sub(bounds.Min()).Len(); w > 0 {
		g.scale = 0.6 * screenW / w
	}

	ebiten.SetTPS(s.Simulation.TickRate)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("drape")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
