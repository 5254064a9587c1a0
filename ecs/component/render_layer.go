package component

// RenderLayer orders drawing: lower indices first, ties broken by entity.
// Level solids use their tile layer; the player prefab picks its own.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
