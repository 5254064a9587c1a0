package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
)

const stickDeadzone = 0.2

type InputSystem struct {
	touchIDs []ebiten.TouchID
	touches  map[ebiten.TouchID]component.TouchEdge
}

func NewInputSystem() *InputSystem {
	return &InputSystem{touches: make(map[ebiten.TouchID]component.TouchEdge)}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace)
	dashPressed := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyK)
	dashReleased := inpututil.IsKeyJustReleased(ebiten.KeyShiftLeft) || inpututil.IsKeyJustReleased(ebiten.KeyK)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}

		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpReleased = jumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
		dashPressed = dashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		dashReleased = dashReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightLeft)
	}

	touchesPressed, touchesReleased := i.pollTouches()

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.Jump = jump
		input.JumpPressed = jumpPressed
		input.JumpReleased = jumpReleased
		input.DashPressed = dashPressed
		input.DashReleased = dashReleased
		input.TouchesPressed = touchesPressed
		input.TouchesReleased = touchesReleased
	})
}

// pollTouches reports touches that began or ended this frame. Released
// touches keep the last position seen while they were down.
func (i *InputSystem) pollTouches() (pressed, released []component.TouchEdge) {
	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		x, y := ebiten.TouchPosition(id)
		edge := component.TouchEdge{ID: int(id), X: float64(x), Y: float64(y)}
		i.touches[id] = edge
		pressed = append(pressed, edge)
	}

	for id := range i.touches {
		if !inpututil.IsTouchJustReleased(id) {
			x, y := ebiten.TouchPosition(id)
			i.touches[id] = component.TouchEdge{ID: int(id), X: float64(x), Y: float64(y)}
			continue
		}
		released = append(released, i.touches[id])
		delete(i.touches, id)
	}
	return pressed, released
}
