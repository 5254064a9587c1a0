package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"golang.org/x/image/colornames"
)

var facingMarkColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Midnightblue)

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	view := cameraView(w, r.camEntity)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if e == r.camEntity {
			continue
		}

		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Color == nil || s.Width <= 0 || s.Height <= 0 {
			continue
		}

		x, y := view.toScreen(t.X-s.Width/2, t.Y-s.Height/2)
		sw := float32(s.Width * view.zoom)
		sh := float32(s.Height * view.zoom)
		vector.FillRect(screen, float32(x), float32(y), sw, sh, s.Color, false)

		if ecs.Has(w, e, component.CharacterMovementComponent) {
			drawFacingMark(screen, float32(x), float32(y), sw, sh, s.FacingLeft)
		}
	}
}

// drawFacingMark draws a narrow strip on the side of the sprite the
// character is facing.
func drawFacingMark(screen *ebiten.Image, x, y, w, h float32, left bool) {
	mark := w / 6
	if !left {
		x += w - mark
	}
	vector.FillRect(screen, x, y+h/5, mark, h/5, facingMarkColor, false)
}

type view struct {
	camX float64
	camY float64
	zoom float64
}

func cameraView(w *ecs.World, camEntity ecs.Entity) view {
	v := view{zoom: 1}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		v.camX = camTransform.X
		v.camY = camTransform.Y
	} else {
		v.camX = common.BaseWidth / 2
		v.camY = common.BaseHeight / 2
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && camComp.Zoom > 0 {
		v.zoom = camComp.Zoom
	}
	return v
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return (x-v.camX)*v.zoom + common.BaseWidth/2, (y-v.camY)*v.zoom + common.BaseHeight/2
}
