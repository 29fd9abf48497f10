// physics drops bouncing bodies onto a floor with a patrolling platform and
// a row of coins. Coins are triggers that destroy themselves when touched.
// Colliders are drawn as outlines; no textures are needed.
package main

import (
	_ "embed"
	"log"
	"math/rand/v2"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/physics"
)

const (
	windowTitle = "Canopy - Physics Demo"
	screenW     = 960
	screenH     = 540
	ballCount   = 12
	gravity     = 600
)

//go:embed physics.yaml
var physicsYAML []byte

// coin counts pickups and removes itself on the first trigger contact.
type coin struct {
	canopy.BaseComponent
	score *int
}

func (c *coin) OnTriggerEnter(other *canopy.GameObject) {
	if other == nil || other.Tag != "ball" {
		return
	}
	*c.score++
	c.GameObject().Destroy()
}

func wall(scene *canopy.Scene, name string, x, y, w, h float64) {
	o := canopy.NewGameObject(name)
	o.SetPosition(x, y)
	canopy.AddComponent(o, canopy.NewBoxCollider(w, h))
	scene.Root().AddChild(o)
}

func main() {
	cfg, err := physics.LoadConfig(physicsYAML)
	if err != nil {
		log.Fatal(err)
	}
	scene, err := canopy.NewSceneWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	scene.ClearColor = canopy.Color{R: 0.06, G: 0.06, B: 0.09, A: 1}

	wall(scene, "floor", screenW/2, screenH-10, screenW, 20)
	wall(scene, "left", 10, screenH/2, 20, screenH)
	wall(scene, "right", screenW-10, screenH/2, 20, screenH)

	platform := canopy.NewGameObject("platform")
	platform.SetPosition(200, 360)
	canopy.AddComponent(platform, canopy.NewBoxCollider(160, 16))
	canopy.AddComponent(platform, canopy.NewPatrol(520, 0, 3))
	scene.Root().AddChild(platform)

	score := 0
	coins := canopy.NewGameObject("coins")
	scene.Root().AddChild(coins)
	for i := 0; i < 8; i++ {
		c := canopy.NewGameObject("coin")
		c.SetPosition(120+float64(i)*100, 440)
		col := canopy.AddComponent(c, canopy.NewCircleCollider(10))
		col.Trigger = true
		canopy.AddComponent(c, &coin{score: &score})
		coins.AddChild(c)
	}

	for i := 0; i < ballCount; i++ {
		b := canopy.NewGameObject("ball")
		b.Tag = "ball"
		b.SetPosition(60+rand.Float64()*(screenW-120), 20+rand.Float64()*120)
		canopy.AddComponent(b, canopy.NewCircleCollider(8+rand.Float64()*8))
		rb := canopy.AddComponent(b, canopy.NewRigidBody())
		rb.GravityScale = gravity
		rb.Bounciness = 0.3 + rand.Float64()*0.5
		rb.Velocity = physics.V((rand.Float64()-0.5)*200, 0)
		scene.Root().AddChild(b)
	}

	collected := 0
	scene.SetUpdateFunc(func(dt float64) {
		if score != collected {
			collected = score
			log.Printf("coins collected: %d", collected)
		}
	})

	if err := canopy.Run(scene, canopy.RunConfig{
		Title:         windowTitle,
		Width:         screenW,
		Height:        screenH,
		ShowColliders: true,
		ShowFPS:       true,
	}); err != nil {
		log.Fatal(err)
	}
}
