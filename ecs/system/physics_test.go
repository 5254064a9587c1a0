package system

import (
	"math"
	"testing"

	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"github.com/milk9111/wipsidescroller/ecs/entity"
)

func addTestSolid(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:    width,
		Height:   height,
		Friction: 0.9,
		Static:   true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SolidTagComponent, component.SolidTag{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	player, err := entity.NewPlayerFromSpec(w, testPlayerSpec(), nil)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if err := entity.SetEntityTransform(w, player, x, y); err != nil {
		t.Fatalf("place player: %v", err)
	}
	return player
}

func TestPhysicsLanding(t *testing.T) {
	w := ecs.NewWorld()
	addTestSolid(t, w, 400, 656, 800, 32)
	player := addTestPlayer(t, w, 200, 500)

	physics := NewPhysicsSystem()
	movement := NewCharacterMovementSystem()

	landed := 0
	for i := 0; i < 120; i++ {
		movement.Update(w)
		physics.Update(w)
		for _, evt := range w.Events().Drain() {
			if evt.Kind == ecs.EventLanded && evt.Entity == player {
				landed++
			}
		}
	}

	mv, _ := ecs.Get(w, player, component.CharacterMovementComponent)
	if !mv.Grounded {
		t.Fatalf("expected player to be grounded")
	}
	if landed != 1 {
		t.Fatalf("expected exactly one landing event, got %d", landed)
	}
	transform, _ := ecs.Get(w, player, component.TransformComponent)
	// resting contact stays within Chipmunk's collision slop
	if want := 640.0 - 48; math.Abs(transform.Y-want) > 0.5 {
		t.Fatalf("expected player resting at y=%v, got %v", want, transform.Y)
	}
}

func TestPhysicsGravityScale(t *testing.T) {
	cases := []struct {
		name     string
		override bool
		wantVelY float64
	}{
		{"scaled_free_fall", false, common.Gravity * 2 * 30 * common.TickSeconds},
		{"override_suspends_gravity", true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := addTestPlayer(t, w, 200, 100)
			physics := NewPhysicsSystem()
			movement := NewCharacterMovementSystem()

			for i := 0; i < 30; i++ {
				mv, _ := ecs.GetPtr(w, player, component.CharacterMovementComponent)
				mv.VelocityOverride = c.override
				movement.Update(w)
				physics.Update(w)
			}

			body, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
			if got := body.Body.Velocity().Y; math.Abs(got-c.wantVelY) > 1e-6 {
				t.Fatalf("expected vertical velocity %v, got %v", c.wantVelY, got)
			}
			if c.override {
				if tr, _ := ecs.Get(w, player, component.TransformComponent); tr.Y != 100 {
					t.Fatalf("expected overridden character to hold height, got %v", tr.Y)
				}
			}
		})
	}
}

func TestPhysicsRebuildsReloadedCollider(t *testing.T) {
	w := ecs.NewWorld()
	player := addTestPlayer(t, w, 200, 100)
	physics := NewPhysicsSystem()
	physics.Update(w)

	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
	oldShape := body.Shape
	vel := body.Body.Velocity()

	spec := testPlayerSpec()
	spec.Collider.Width = 64
	if err := entity.ApplyPlayerSpec(w, player, spec); err != nil {
		t.Fatalf("apply: %v", err)
	}
	physics.Update(w)

	body, _ = ecs.Get(w, player, component.PhysicsBodyComponent)
	if body.Body == nil || body.Shape == oldShape {
		t.Fatalf("expected a rebuilt body")
	}
	if _, ok := physics.shapeEntities[oldShape]; ok {
		t.Fatalf("expected old shape removed")
	}
	if bb := body.Shape.BB(); math.Abs((bb.R-bb.L)-64) > 1e-6 {
		t.Fatalf("expected collider width 64, got %v", bb.R-bb.L)
	}
	if got := len(physics.entities[player].shapes); got != 3 {
		t.Fatalf("expected body plus two sensors, got %d shapes", got)
	}
	// one more step of scaled gravity on top of the carried velocity
	want := vel.Y + common.Gravity*testMovement().GravityScale*common.TickSeconds
	if got := body.Body.Velocity().Y; math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected velocity carried across rebuild, got %v want %v", got, want)
	}
	sprite, _ := ecs.Get(w, player, component.SpriteComponent)
	if sprite.Width != 64 {
		t.Fatalf("expected sprite resized, got %v", sprite.Width)
	}
}

func TestPhysicsWallOverlapEvents(t *testing.T) {
	w := ecs.NewWorld()
	wall := addTestSolid(t, w, 116, 300, 32, 400)
	// The collider is 42 wide, so the wall sensor reaches the wall face at 132.
	player := addTestPlayer(t, w, 154, 300)
	mv, _ := ecs.GetPtr(w, player, component.CharacterMovementComponent)
	mv.GravityScale = 0

	physics := NewPhysicsSystem()
	physics.Update(w)

	begin := w.Events().Drain()
	if len(begin) != 1 || begin[0].Kind != ecs.EventOverlapBegin || begin[0].Entity != player || begin[0].Other != wall {
		t.Fatalf("expected overlap begin against wall, got %+v", begin)
	}

	if err := entity.SetEntityTransform(w, player, 400, 300); err != nil {
		t.Fatal(err)
	}
	physics.Update(w)

	end := w.Events().Drain()
	if len(end) != 1 || end[0].Kind != ecs.EventOverlapEnd || end[0].Other != wall {
		t.Fatalf("expected overlap end against wall, got %+v", end)
	}
}

func TestPhysicsRemovesDestroyedBodies(t *testing.T) {
	w := ecs.NewWorld()
	solid := addTestSolid(t, w, 100, 100, 32, 32)
	physics := NewPhysicsSystem()
	physics.Update(w)

	if _, ok := physics.entities[solid]; !ok {
		t.Fatalf("expected body for solid")
	}
	w.DestroyEntity(solid)
	physics.Update(w)
	if _, ok := physics.entities[solid]; ok {
		t.Fatalf("expected body removed after destroy")
	}
}
