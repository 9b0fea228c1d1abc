// Command escapeview is an interactive front end for the escape solver.
//
// Click to place vertices, Enter to close the polygon and start solving,
// Backspace to undo a vertex, R to reset. One generation runs per frame and
// the worst-case escape of the current best path is drawn live.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/escapepath/config"
	"github.com/katalvlaran/escapepath/escape"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/internal/session"
	"github.com/katalvlaran/escapepath/render"
	"github.com/katalvlaran/escapepath/runner"
)

const (
	screenWidth  = 900
	screenHeight = 700
	padding      = 30
)

type Game struct {
	sess    *session.Session
	view    render.Viewport
	palette render.Palette
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sess.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.sess.Undo()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if err := g.sess.Close(); err != nil {
			log.Printf("close polygon: %v", err)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		mx, my := ebiten.CursorPosition()
		g.sess.AddVertex(g.view.ToWorld(float64(mx), float64(my)))
	}

	g.sess.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.palette
	screen.Fill(pal.Background)

	if b := g.sess.Boundary(); b != nil {
		for _, s := range b {
			g.line(screen, s.Start(), s.End(), 2, pal.Boundary)
		}
	} else {
		vs := g.sess.Vertices()
		for i := 1; i < len(vs); i++ {
			g.line(screen, vs[i-1], vs[i], 2, pal.Pending)
		}
		for _, v := range vs {
			g.dot(screen, v, 3, pal.Pending)
		}
	}

	for _, s := range g.sess.BadEdges() {
		g.line(screen, s.Start(), s.End(), 3, pal.Invalid)
	}

	if gen, ok := g.sess.Last(); ok && len(gen.Trace) > 1 {
		for i := 1; i < len(gen.Trace); i++ {
			g.line(screen, gen.Trace[i-1], gen.Trace[i], 1.5, pal.Trace)
		}
		g.dot(screen, gen.Trace[0], 5, pal.Start)
		g.dot(screen, gen.Trace[len(gen.Trace)-1], 5, pal.Exit)
	}

	ebitenutil.DebugPrintAt(screen, g.sess.Status(), 8, 8)
}

func (g *Game) line(dst *ebiten.Image, a, b geom.Point, width float32, clr color.Color) {
	x1, y1 := g.view.ToScreen(a)
	x2, y2 := g.view.ToScreen(b)
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), width, clr, true)
}

func (g *Game) dot(dst *ebiten.Image, p geom.Point, r float32, clr color.Color) {
	x, y := g.view.ToScreen(p)
	vector.DrawFilledCircle(dst, float32(x), float32(y), r, clr, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "JSON or YAML file whose boundary is solved on start")
	seed := flag.Int64("seed", 0, "RNG seed")
	verbose := flag.Bool("v", false, "log every generation")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	escape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := escape.DefaultOptions()
	policy := runner.DefaultPolicy()
	world := geom.Rect{Max: geom.Pt(screenWidth, screenHeight)}
	var preload geom.Boundary

	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		if preload, err = f.BoundaryValue(); err != nil {
			log.Fatalf("load config: %v", err)
		}
		opts, policy = f.Options(), f.RunPolicy()
		world = preload.Bounds()
	}
	if *seed != 0 {
		opts.Seed = *seed
	}

	view := render.NewViewport(world, screenWidth, screenHeight, 0)
	if preload != nil {
		view = render.NewViewport(world, screenWidth, screenHeight, padding)
	}

	game := &Game{
		sess:    session.New(opts, policy),
		view:    view,
		palette: render.DefaultPalette(),
	}
	if preload != nil {
		if err := game.sess.Load(preload); err != nil {
			log.Printf("preloaded boundary rejected: %v", err)
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("escapeview - seed %d", opts.Seed))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
