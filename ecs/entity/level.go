package entity

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"github.com/milk9111/wipsidescroller/levels"
	"golang.org/x/image/colornames"
)

const solidFriction = 0.9

// TileRect is a run of solid tiles, in tile units.
type TileRect struct {
	X, Y int
	W, H int
}

// LoadLevelToWorld adds the level bounds, one static solid per merged tile
// rectangle, and the player at the level's spawn point. It returns the
// player entity.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, logger *slog.Logger) (ecs.Entity, error) {
	if world == nil {
		return 0, component.ErrNilWorld
	}
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}

	tileSize := common.TileSize
	boundsEntity := world.CreateEntity()
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent, component.LevelBounds{
		Width:  float64(lvl.Width) * tileSize,
		Height: float64(lvl.Height) * tileSize,
	}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}

	solids := 0
	for layerIdx, layer := range lvl.Layers {
		if !lvl.HasPhysics(layerIdx) {
			continue
		}
		for _, r := range MergeTiles(layer, lvl.Width, lvl.Height) {
			if err := addSolid(world, r, tileSize, layerIdx); err != nil {
				return 0, fmt.Errorf("level: add solid: %w", err)
			}
			solids++
		}
	}

	x, y, ok := lvl.SpawnPosition()
	if !ok {
		x, y = float64(lvl.Width)*tileSize/2, float64(lvl.Height)*tileSize/2
	}
	player, err := NewPlayerAt(world, x, y, logger)
	if err != nil {
		return 0, err
	}

	if logger != nil {
		logger.Info("level loaded",
			"width", lvl.Width,
			"height", lvl.Height,
			"solids", solids,
			"spawn_x", x,
			"spawn_y", y,
		)
	}
	return player, nil
}

func addSolid(world *ecs.World, r TileRect, tileSize float64, layer int) error {
	w := float64(r.W) * tileSize
	h := float64(r.H) * tileSize

	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent, component.Transform{
		X: float64(r.X)*tileSize + w/2,
		Y: float64(r.Y)*tileSize + h/2,
	}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:    w,
		Height:   h,
		Friction: solidFriction,
		Static:   true,
	}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.SolidTagComponent, component.SolidTag{}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.SpriteComponent, component.Sprite{
		Width:  w,
		Height: h,
		Color:  colornames.Slategray,
	}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.RenderLayerComponent, component.RenderLayer{Index: layer})
}

// MergeTiles greedily covers the solid tiles of a layer with rectangles,
// widest run first, then extended downward while every row below matches.
// Tall walls come out as a single rectangle.
func MergeTiles(layer []int, width, height int) []TileRect {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	solid := func(x, y int) bool {
		idx := index(x, y)
		return idx < len(layer) && !visited[idx] && layer[idx] > 0
	}

	var rects []TileRect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !solid(x, y) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && solid(x2, y); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !solid(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			rects = append(rects, TileRect{X: x, Y: y, W: maxW, H: maxH})
		}
	}
	return rects
}
