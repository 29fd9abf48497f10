package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/canopy/physics"
)

// Overlay colors for DrawColliders.
var (
	ColliderColor = Color{R: 0.2, G: 1, B: 0.3, A: 0.9}
	TriggerColor  = Color{R: 1, G: 0.8, B: 0.1, A: 0.9}
)

// DrawColliders outlines every registered collider of s onto screen. Solid
// colliders use ColliderColor and triggers TriggerColor. Zero-sized shapes
// are skipped.
func DrawColliders(screen *ebiten.Image, s *Scene) {
	solid := ColliderColor.RGBA()
	trigger := TriggerColor.RGBA()
	s.world.Registry().Each(func(_ physics.ColliderID, c *physics.Collider) bool {
		b := s.world.Bounds(c)
		if b.Empty() {
			return true
		}
		clr := solid
		if c.Trigger {
			clr = trigger
		}
		switch b.Kind {
		case physics.ShapeCircle:
			vector.StrokeCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), 1, clr, true)
		default:
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, clr, true)
		}
		return true
	})
}
