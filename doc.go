// Package neonstreet is a side-scrolling street of shops for [Ebitengine].
//
// An avatar stands in front of one shop at a time. Arrow buttons, keys,
// horizontal swipes and clicks on a shop move it along the street; a
// dropdown or the up/down keys switch between streets. Every request past
// either end is absorbed: indices saturate and never wrap.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, err := neonstreet.NewScene(neonstreet.DefaultConfig(),
//		neonstreet.Viewport{Width: 1280, Height: 720})
//	if err != nil {
//		log.Fatal(err)
//	}
//	neonstreet.Run(scene, neonstreet.RunConfig{Title: "Neon Street", Resizable: true})
//
// [Scene] implements [ebiten.Game] directly, so it can also be handed to
// ebiten.RunGame or embedded in a larger game.
//
// # Components
//
// Data flows one way each tick:
//
//	InputRouter → Navigator → Layout → Motion → Decorator
//
// [Navigator] owns the active shop and street indices. [Layout] maps a shop
// index to a world coordinate for the current viewport, in either of two
// modes: fixed fractions of the screen width, or a wider scrolling world
// followed by the [Camera]. [Motion] animates the avatar toward the slot of
// the active shop, either as a gween tween or as a damped follow, and a new
// request always retargets from wherever the avatar currently is.
//
// [InputRouter] turns level-triggered device state into edge-triggered
// actions, so holding a key moves one shop. [Bridge] is the narrow surface
// an overlay UI uses to query and command the street without touching the
// scene internals.
//
// # Decoration
//
// A [Decorator] draws the backdrop, the shops and the avatar. The scene
// only tells it where things are. [PlaceholderDecorator] draws neon boxes
// and labels and needs no assets.
//
// # Configuration
//
// [LoadConfig] reads YAML over [DefaultConfig]. Streets without their own
// shop list reuse the scene-wide list.
//
// # Automated testing
//
// [LoadTestScript] drives a scene from a JSON script of clicks, swipes,
// keys, navigation commands, waits and screenshots, one action per frame.
//
// # ECS integration
//
// [Navigator.SetEventStore] forwards every change to an [EventStore]. The
// ecs subpackage provides a Donburi-backed store.
//
// [Ebitengine]: https://ebitengine.org
package neonstreet
