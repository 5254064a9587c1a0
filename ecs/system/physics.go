package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeGroundSensor
	collisionTypeWallSensor
	collisionTypeSolid
)

const (
	// wallReach is how far past the body the wall sensor extends.
	wallReach = 2.0
	// wallInset keeps the wall sensor clear of floors and ceilings.
	wallInset = 0.2
)

// PhysicsSystem steps the Chipmunk2D space, keeps bodies in sync with ECS
// components and turns sensor contacts into ground state plus overlap and
// landing events.
type PhysicsSystem struct {
	space         *cp.Space
	dt            float64
	handlersReady bool

	entities      map[ecs.Entity]*bodyInfo
	shapeEntities map[*cp.Shape]ecs.Entity
	groundSensors map[*cp.Shape]ecs.Entity
	wallSensors   map[*cp.Shape]ecs.Entity
	groundCounts  map[ecs.Entity]int
	gravityScales map[ecs.Entity]float64

	pending []ecs.Event
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return &PhysicsSystem{
		space:         space,
		dt:            common.TickSeconds,
		entities:      make(map[ecs.Entity]*bodyInfo),
		shapeEntities: make(map[*cp.Shape]ecs.Entity),
		groundSensors: make(map[*cp.Shape]ecs.Entity),
		wallSensors:   make(map[*cp.Shape]ecs.Entity),
		groundCounts:  make(map[ecs.Entity]int),
		gravityScales: make(map[ecs.Entity]float64),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.syncGravity(w)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys := userData.(*PhysicsSystem)
		if e, _, ok := sys.sensorContact(arb, sys.groundSensors); ok {
			sys.groundCounts[e]++
		}
		return true
	}
	groundHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys := userData.(*PhysicsSystem)
		if e, _, ok := sys.sensorContact(arb, sys.groundSensors); ok && sys.groundCounts[e] > 0 {
			sys.groundCounts[e]--
		}
	}

	wallHandler := ps.space.NewCollisionHandler(collisionTypeWallSensor, collisionTypeSolid)
	wallHandler.UserData = ps
	wallHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys := userData.(*PhysicsSystem)
		if e, other, ok := sys.sensorContact(arb, sys.wallSensors); ok {
			sys.pending = append(sys.pending, ecs.Event{Kind: ecs.EventOverlapBegin, Entity: e, Other: other})
		}
		return true
	}
	wallHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys := userData.(*PhysicsSystem)
		if e, other, ok := sys.sensorContact(arb, sys.wallSensors); ok {
			sys.pending = append(sys.pending, ecs.Event{Kind: ecs.EventOverlapEnd, Entity: e, Other: other})
		}
	}

	ps.handlersReady = true
}

// sensorContact resolves which side of arb is the sensor and returns its
// owner plus the entity on the other side.
func (ps *PhysicsSystem) sensorContact(arb *cp.Arbiter, sensors map[*cp.Shape]ecs.Entity) (owner, other ecs.Entity, ok bool) {
	shapeA, shapeB := arb.Shapes()
	if e, found := sensors[shapeA]; found {
		return e, ps.shapeEntities[shapeB], true
	}
	if e, found := sensors[shapeB]; found {
		return e, ps.shapeEntities[shapeA], true
	}
	return 0, 0, false
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.GetPtr(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		// a cleared Body asks for the shapes to be rebuilt from the component
		var vel cp.Vector
		if old, exists := ps.entities[e]; exists {
			if bodyComp.Body != nil {
				continue
			}
			if !old.static {
				vel = old.body.Velocity()
			}
			ps.removeBodyInfo(e, old)
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		isCharacter := ecs.Has(w, e, component.CharacterMovementComponent)
		info := ps.createBodyInfo(e, transform, *bodyComp, isCharacter)
		if !info.static {
			info.body.SetVelocityVector(vel)
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform component.Transform, bodyComp component.PhysicsBody, isCharacter bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = common.TileSize
		height = common.TileSize
	}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		ps.shapeEntities[shape] = e

		return &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	moment := cp.MomentForBox(mass, width, height)
	if isCharacter {
		// characters never tip over
		moment = math.Inf(1)
	}
	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	if isCharacter {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity.Mult(ps.gravityScales[e]), damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if isCharacter {
		shape.SetCollisionType(collisionTypeCharacter)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	ps.shapeEntities[shape] = e

	info := &bodyInfo{body: body, shapes: []*cp.Shape{shape}}
	if isCharacter {
		ground := groundSensorShape(body, width, height)
		wall := wallSensorShape(body, width, height)
		ps.space.AddShape(ground)
		ps.space.AddShape(wall)
		ps.groundSensors[ground] = e
		ps.wallSensors[wall] = e
		ps.shapeEntities[ground] = e
		ps.shapeEntities[wall] = e
		info.shapes = append(info.shapes, ground, wall)
	}
	return info
}

func groundSensorShape(body *cp.Body, width, height float64) *cp.Shape {
	groundBB := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + 2,
	}
	shape := cp.NewBox2(body, groundBB, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeGroundSensor)
	return shape
}

func wallSensorShape(body *cp.Body, width, height float64) *cp.Shape {
	inset := height * wallInset
	wallBB := cp.BB{
		L: -width/2 - wallReach,
		B: -height/2 + inset,
		R: width/2 + wallReach,
		T: height/2 - inset,
	}
	shape := cp.NewBox2(body, wallBB, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeWallSensor)
	return shape
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent)
	if !ok {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}

	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		ps.shapeEntities[shape] = boundsEntity
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

// syncGravity copies each character's gravity scale for its velocity update.
// A frame with a velocity override gets no gravity.
func (ps *PhysicsSystem) syncGravity(w *ecs.World) {
	ecs.ForEach(w, component.CharacterMovementComponent, func(e ecs.Entity, mv *component.CharacterMovement) {
		scale := mv.GravityScale
		if mv.SkipGravity {
			scale = 0
		}
		ps.gravityScales[e] = scale
	})
}

// flushContacts publishes ground state and queued overlap/landing events.
func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	ecs.ForEach(w, component.CharacterMovementComponent, func(e ecs.Entity, mv *component.CharacterMovement) {
		grounded := ps.groundCounts[e] > 0
		if grounded && !mv.Grounded {
			mv.JumpCurrentCount = 0
			ps.pending = append(ps.pending, ecs.Event{Kind: ecs.EventLanded, Entity: e})
		}
		mv.Grounded = grounded
	})

	for _, evt := range ps.pending {
		w.Events().Push(evt)
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent) || ecs.Has(w, e, component.LevelBoundsComponent)) {
			continue
		}
		ps.removeBodyInfo(e, info)
		delete(ps.gravityScales, e)
	}
}

func (ps *PhysicsSystem) removeBodyInfo(e ecs.Entity, info *bodyInfo) {
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
		delete(ps.shapeEntities, shape)
		delete(ps.groundSensors, shape)
		delete(ps.wallSensors, shape)
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}

	delete(ps.entities, e)
	delete(ps.groundCounts, e)
}
