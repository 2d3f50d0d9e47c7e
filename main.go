package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/tableau/config"
	"github.com/OpticalFlyer/tableau/render"
	"github.com/OpticalFlyer/tableau/scene"
	_ "github.com/OpticalFlyer/tableau/ui"
	"github.com/OpticalFlyer/tableau/view"
)

//go:embed views/*.toml
var views embed.FS

// Tableau implements ebiten.Game interface.
type Tableau struct {
	cfg       *config.Config
	ctx       *render.Context
	input     render.Input
	scene     *scene.Scene
	next      string
	debugMode bool
}

func (g *Tableau) Update() error {
	if err := g.update(); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return ebiten.Termination
		}
		slog.Error("frame failed", "scene", g.scene.Name(), "err", err)
		return err
	}
	return nil
}

func (g *Tableau) update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.saveView()
	}

	ev := g.input.Poll()
	for _, sig := range ev.Down {
		if err := g.scene.ButtonDown(sig); err != nil {
			return err
		}
	}
	for _, sig := range ev.Up {
		if err := g.scene.ButtonUp(sig); err != nil {
			return err
		}
	}
	if err := g.scene.FireHeld(ev.Held); err != nil {
		return err
	}
	if err := g.handlePresses(); err != nil {
		return err
	}
	if err := g.scene.Update(); err != nil {
		return err
	}

	// Scene changes requested by actions take effect between frames.
	if g.next != "" {
		name := g.next
		g.next = ""
		return g.enter(name)
	}
	return nil
}

func (g *Tableau) Draw(screen *ebiten.Image) {
	g.scene.Draw()
	g.ctx.Flush(screen)

	if g.debugMode {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Scene: %s\nModels: %d\nTPS: %0.1f",
			g.scene.Name(), len(g.scene.Models()), ebiten.ActualTPS()))
	}
}

func (g *Tableau) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctx.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// enter replaces the current scene with the one declared in views/<name>.toml.
func (g *Tableau) enter(name string) error {
	f, err := views.Open(path.Join("views", name+".toml"))
	if err != nil {
		return fmt.Errorf("scene %s: %w", name, err)
	}
	defer f.Close()

	entries, err := view.Load(f)
	if err != nil {
		return fmt.Errorf("scene %s: %w", name, err)
	}
	s := scene.New(name)
	g.handleActions(s)
	if err := view.Build(s, entries); err != nil {
		return err
	}
	// Attach after building so every model sees a complete scene.
	if err := s.Attach(g.ctx); err != nil {
		return err
	}
	slog.Info("entered scene", "scene", name, "models", len(entries))
	g.scene = s
	return nil
}

func (g *Tableau) handleActions(s *scene.Scene) {
	goTo := func(name string) func() error {
		return func() error {
			g.next = name
			return nil
		}
	}
	s.Handle("start", goTo("play"))
	s.Handle("options", goTo("options"))
	s.Handle("back", goTo(g.cfg.FirstScene))
	s.Handle("quit", func() error { return ebiten.Termination })
	s.Handle("toggle_fullscreen", func() error {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		return nil
	})
}

// saveView writes the saveable models of the current scene to <scene>.toml.
func (g *Tableau) saveView() {
	name := g.scene.Name() + ".toml"
	f, err := os.Create(name)
	if err != nil {
		slog.Error("saving view", "file", name, "err", err)
		return
	}
	defer f.Close()
	if err := view.Save(f, g.scene.View()); err != nil {
		slog.Error("saving view", "file", name, "err", err)
		return
	}
	slog.Info("saved view", "file", name)
}

func main() {
	cfg, err := config.Load("tableau.toml")
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	if _, err := fs.Stat(views, path.Join("views", cfg.FirstScene+".toml")); err != nil {
		log.Fatalf("first scene %q: %v", cfg.FirstScene, err)
	}

	app := &Tableau{
		cfg: cfg,
		ctx: render.NewContext(cfg.Width, cfg.Height),
	}
	if err := app.enter(cfg.FirstScene); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
