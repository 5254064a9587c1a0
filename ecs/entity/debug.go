package entity

import (
	"fmt"

	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
)

// NewDebugLog creates the entity that holds on-screen debug messages.
func NewDebugLog(w *ecs.World) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.DebugMessagesComponent, component.DebugMessages{}); err != nil {
		return 0, fmt.Errorf("debug log: add messages: %w", err)
	}
	return e, nil
}
