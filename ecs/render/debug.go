package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const (
	debugMessageX      = 10
	debugMessageY      = 120
	debugMessageHeight = 16
)

var debugFace = ebtext.NewGoXFace(basicfont.Face7x13)

// DrawDebugMessages prints the on-screen debug log, newest first.
func DrawDebugMessages(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	e, ok := w.First(component.DebugMessagesComponent.Kind())
	if !ok {
		return
	}
	log, ok := ecs.Get(w, e, component.DebugMessagesComponent)
	if !ok {
		return
	}
	for i, m := range log.Messages {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(debugMessageX, float64(debugMessageY+i*debugMessageHeight))
		op.ColorScale.ScaleWithColor(m.Color)
		ebtext.Draw(screen, m.Text, debugFace, op)
	}
}
