package system

import (
	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
)

// CameraSystem moves the camera's look-at point toward its target. The
// camera transform is the world point drawn at the center of the screen.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	snapped      bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.targetEntity = 0
		cs.snapped = false
	}

	cam, ok := ecs.GetPtr(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
		cs.snapped = false
	}

	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.GetPtr(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}

	cam.Zoom = cameraZoom(cam.ArmLength)
	goalX := target.X
	goalY := target.Y - cam.SocketOffset
	if bounds, ok := levelBounds(w); ok {
		goalX, goalY = clampView(goalX, goalY, cam.Zoom, bounds)
	}

	if !cs.snapped || cam.Smoothness <= 0 {
		camTransform.X = goalX
		camTransform.Y = goalY
		cs.snapped = true
		return
	}

	t := common.Clamp(1-cam.Smoothness, 0, 1)
	camTransform.X = common.Lerp(camTransform.X, goalX, t)
	camTransform.Y = common.Lerp(camTransform.Y, goalY, t)
}

// cameraZoom scales the view so that the reference arm length shows the
// base resolution one to one.
func cameraZoom(armLength float64) float64 {
	if armLength <= 0 {
		return 1
	}
	return common.ReferenceArmLength / armLength
}

// clampView keeps the view inside the level; a level smaller than the view
// on an axis is centered on that axis instead.
func clampView(x, y, zoom float64, bounds component.LevelBounds) (float64, float64) {
	halfW := common.BaseWidth / 2 / zoom
	halfH := common.BaseHeight / 2 / zoom
	if bounds.Width <= halfW*2 {
		x = bounds.Width / 2
	} else {
		x = common.Clamp(x, halfW, bounds.Width-halfW)
	}
	if bounds.Height <= halfH*2 {
		y = bounds.Height / 2
	} else {
		y = common.Clamp(y, halfH, bounds.Height-halfH)
	}
	return x, y
}

func levelBounds(w *ecs.World) (component.LevelBounds, bool) {
	e, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	return ecs.Get(w, e, component.LevelBoundsComponent)
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
