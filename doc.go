// Package canopy is a lightweight 2D game engine for [Ebitengine] with a
// GameObject/Component object model and built-in collision physics.
//
// Objects form a tree rooted at [Scene.Root]. Behavior is attached as
// components, and the provided [Collider] and [RigidBody] components hook
// objects into the scene's physics world (package physics).
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := canopy.NewScene()
//	// ... add objects ...
//	canopy.Run(scene, canopy.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *canopy.Scene }
//
//	func (g *Game) Update() error        { g.scene.Update(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Objects and components
//
//	ground := canopy.NewGameObject("ground")
//	ground.X, ground.Y = 320, 460
//	canopy.AddComponent(ground, canopy.NewBoxCollider(640, 20))
//	scene.Root().AddChild(ground)
//
//	ball := canopy.NewGameObject("ball")
//	ball.X, ball.Y = 320, 40
//	canopy.AddComponent(ball, canopy.NewCircleCollider(12))
//	rb := canopy.AddComponent(ball, canopy.NewRigidBody())
//	rb.GravityScale = 400
//	rb.Bounciness = 0.6
//	scene.Root().AddChild(ball)
//
// Components implement only what they need: [Starter], [Updater],
// [Destroyer], and the collision handler interfaces such as
// [CollisionEnterHandler]. Objects also expose callback fields
// ([GameObject.OnCollisionEnter], [GameObject.OnTriggerEnter], ...).
//
// # Collisions
//
// Every scene update steps each live RigidBody in tree order. Movement is
// split into substeps no longer than physics.Config.StepLimit, so fast bodies
// do not tunnel through thin colliders. The first solid contact rolls the
// body back one substep and bounces it on the dominant axis; triggers are
// reported but never block. Enter, stay and exit events are delivered after
// the body has finished moving for the tick. A partner that has no RigidBody
// of its own receives the mirrored event.
//
// Set [Scene.ShowColliders] to outline every collider, and
// [Scene.SetDebugMode] to log per-tick physics counters.
//
// # ECS
//
// The ecs subpackage republishes collision events into a [Donburi] world.
//
// Tweens (via [gween]) move objects kinematically; see [TweenPosition] and
// [Patrol].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [gween]: https://github.com/tanema/gween
package canopy
