package entity

import (
	"fmt"

	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"github.com/milk9111/wipsidescroller/prefabs"
)

const (
	defaultArmLength  = common.ReferenceArmLength
	defaultSmoothness = 0.15
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent, component.Transform{
		X: cameraSpec.Transform.X,
		Y: cameraSpec.Transform.Y,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	arm := cameraSpec.ArmLength
	if arm <= 0 {
		arm = defaultArmLength
	}
	smooth := cameraSpec.Smoothness
	if smooth == 0 {
		smooth = defaultSmoothness
	}
	if err := ecs.Add(w, camera, component.CameraComponent, component.Camera{
		TargetName:   cameraSpec.Target,
		ArmLength:    arm,
		SocketOffset: cameraSpec.SocketOffset,
		Smoothness:   smooth,
		Zoom:         common.ReferenceArmLength / arm,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	camera, err := NewCamera(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
