package neonstreet

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window; the street reflows.
	Resizable bool
}

type game struct {
	*Scene
	fps *fpsCounter
}

func (g *game) Update() error {
	if err := g.Scene.Update(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.Scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Run opens a window and blocks until it is closed. It is a convenience
// wrapper around ebiten.RunGame.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		vp := scene.layout.Viewport()
		cfg.Width, cfg.Height = int(vp.Width), int(vp.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{Scene: scene}
	if cfg.ShowFPS {
		g.fps = &fpsCounter{}
	}
	logger.Info("window opening", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
