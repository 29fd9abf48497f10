package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/canopy/physics"
)

// RunConfig configures the window and loop started by Run. Zero values fall
// back to sensible defaults.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the fixed tick rate; each tick advances the scene by 1/TPS
	// seconds. Zero keeps Ebitengine's default of 60.
	TPS int
	// Physics replaces the scene's tunables when non-zero.
	Physics physics.Config
	// ShowColliders turns on the collider overlay.
	ShowColliders bool
	// ShowFPS prints FPS, TPS and physics counters in the top-left corner.
	ShowFPS bool
	// Debug enables Scene debug mode.
	Debug bool
}

// Run opens a window and drives scene until the window is closed. For full
// control, implement ebiten.Game yourself and call Scene.Update and
// Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Physics != (physics.Config{}) {
		if err := scene.world.SetConfig(cfg.Physics); err != nil {
			return fmt.Errorf("canopy: %w", err)
		}
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ShowColliders {
		scene.ShowColliders = true
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&gameShell{scene: scene, cfg: cfg})
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
	stats physics.Stats
}

func (g *gameShell) Update() error {
	g.scene.Update(1 / float64(ebiten.TPS()))
	g.stats = g.scene.world.Stats()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nTPS: %.1f\nBodies: %d\nContacts: %d\nColliders: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.stats.Bodies, g.stats.Contacts, g.scene.world.Registry().Len()))
	}
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
