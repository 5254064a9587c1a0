package system

import (
	"image/color"

	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
)

const maxDebugMessages = 8

// PostDebugMessage shows text on screen for seconds. Newest messages are
// drawn first; the oldest are dropped past maxDebugMessages.
func PostDebugMessage(w *ecs.World, text string, c color.RGBA, seconds float64) {
	if w == nil {
		return
	}
	e, ok := w.First(component.DebugMessagesComponent.Kind())
	if !ok {
		return
	}
	log, ok := ecs.GetPtr(w, e, component.DebugMessagesComponent)
	if !ok {
		return
	}
	log.Messages = append([]component.DebugMessage{{Text: text, Color: c, Remaining: seconds}}, log.Messages...)
	if len(log.Messages) > maxDebugMessages {
		log.Messages = log.Messages[:maxDebugMessages]
	}
}

// DebugMessageSystem ages on-screen messages and drops expired ones.
type DebugMessageSystem struct {
	dt float64
}

func NewDebugMessageSystem() *DebugMessageSystem {
	return &DebugMessageSystem{dt: common.TickSeconds}
}

func (d *DebugMessageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.DebugMessagesComponent, func(e ecs.Entity, log *component.DebugMessages) {
		kept := log.Messages[:0]
		for _, m := range log.Messages {
			m.Remaining -= d.dt
			if m.Remaining > 0 {
				kept = append(kept, m)
			}
		}
		log.Messages = kept
	})
}
