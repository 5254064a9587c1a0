package levels

import "testing"

func TestLoadDefaultLevel(t *testing.T) {
	for _, name := range []string{"", "wall_run", "wall_run.json"} {
		lvl, err := LoadLevelFromFS(name)
		if err != nil {
			t.Fatalf("load %q: %v", name, err)
		}
		if lvl.Width <= 0 || lvl.Height <= 0 || len(lvl.Layers) == 0 {
			t.Fatalf("unexpected level shape %dx%d layers=%d", lvl.Width, lvl.Height, len(lvl.Layers))
		}
		if !lvl.HasPhysics(0) {
			t.Fatalf("expected first layer to collide")
		}
		if _, _, ok := lvl.SpawnPosition(); !ok {
			t.Fatalf("expected a player spawn")
		}
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := LoadLevelFromFS("nope"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}

func TestValidateLayerSize(t *testing.T) {
	lvl := &Level{Width: 2, Height: 2, Layers: [][]int{{1, 0, 1}}}
	if err := lvl.validate(); err == nil {
		t.Fatalf("expected layer size error")
	}
}
