package entity

import (
	"testing"

	"github.com/milk9111/wipsidescroller/ability"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"github.com/milk9111/wipsidescroller/levels"
	"github.com/milk9111/wipsidescroller/prefabs"
)

func TestMergeTiles(t *testing.T) {
	cases := []struct {
		name   string
		layer  []int
		width  int
		height int
		want   []TileRect
	}{
		{
			name:   "empty",
			layer:  []int{0, 0, 0, 0},
			width:  2,
			height: 2,
			want:   nil,
		},
		{
			name:   "full_block",
			layer:  []int{1, 1, 1, 1},
			width:  2,
			height: 2,
			want:   []TileRect{{X: 0, Y: 0, W: 2, H: 2}},
		},
		{
			name: "tall_wall_is_one_rect",
			layer: []int{
				1, 0, 0,
				1, 0, 0,
				1, 0, 0,
				1, 1, 1,
			},
			width:  3,
			height: 4,
			want: []TileRect{
				{X: 0, Y: 0, W: 1, H: 4},
				{X: 1, Y: 3, W: 2, H: 1},
			},
		},
		{
			name: "row_stops_at_gap",
			layer: []int{
				1, 1, 0, 1,
			},
			width:  4,
			height: 1,
			want: []TileRect{
				{X: 0, Y: 0, W: 2, H: 1},
				{X: 3, Y: 0, W: 1, H: 1},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MergeTiles(c.layer, c.width, c.height)
			if len(got) != len(c.want) {
				t.Fatalf("expected %d rects, got %v", len(c.want), got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("rect %d: expected %+v, got %+v", i, c.want[i], got[i])
				}
			}
		})
	}
}

func TestMergeTilesCoversEverySolidOnce(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	layer := lvl.Layers[0]
	covered := make([]int, len(layer))
	for _, r := range MergeTiles(layer, lvl.Width, lvl.Height) {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				covered[y*lvl.Width+x]++
			}
		}
	}
	for i, v := range layer {
		want := 0
		if v > 0 {
			want = 1
		}
		if covered[i] != want {
			t.Fatalf("tile %d covered %d times, want %d", i, covered[i], want)
		}
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	prev := prefabs.DiskDir
	prefabs.DiskDir = t.TempDir()
	t.Cleanup(func() { prefabs.DiskDir = prev })

	lvl, err := levels.LoadLevelFromFS("")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}

	w := ecs.NewWorld()
	player, err := LoadLevelToWorld(w, lvl, nil)
	if err != nil {
		t.Fatalf("load level to world: %v", err)
	}

	if first, ok := w.First(component.PlayerTagComponent.Kind()); !ok || first != player {
		t.Fatalf("expected tagged player %v, got %v ok=%v", player, first, ok)
	}
	transform, _ := ecs.Get(w, player, component.TransformComponent)
	x, y, _ := lvl.SpawnPosition()
	if transform.X != x || transform.Y != y {
		t.Fatalf("expected player at spawn (%v,%v), got (%v,%v)", x, y, transform.X, transform.Y)
	}

	ab, ok := ecs.Get(w, player, component.AbilitiesComponent)
	if !ok || ab.Character == nil {
		t.Fatalf("expected player abilities")
	}
	if ab.Character.State().Direction() != 1 {
		t.Fatalf("expected initial direction 1")
	}
	if ab.Character.State().Config() == (ability.Config{}) {
		t.Fatalf("expected ability tuning from prefab")
	}

	mv, ok := ecs.Get(w, player, component.CharacterMovementComponent)
	if !ok || mv.JumpMaxCount < 1 || mv.JumpZVelocity <= 0 {
		t.Fatalf("unexpected movement tuning %+v", mv)
	}

	solids := w.Query(component.SolidTagComponent.Kind(), component.PhysicsBodyComponent.Kind())
	if want := len(MergeTiles(lvl.Layers[0], lvl.Width, lvl.Height)); len(solids) != want {
		t.Fatalf("expected %d solids, got %d", want, len(solids))
	}
	for _, e := range solids {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !body.Static {
			t.Fatalf("solid %v should be static", e)
		}
	}

	if _, ok := w.First(component.LevelBoundsComponent.Kind()); !ok {
		t.Fatalf("expected level bounds")
	}
}

func TestNewCameraAndDebugLog(t *testing.T) {
	prev := prefabs.DiskDir
	prefabs.DiskDir = t.TempDir()
	t.Cleanup(func() { prefabs.DiskDir = prev })

	w := ecs.NewWorld()
	cam, err := NewCameraAt(w, 10, 20)
	if err != nil {
		t.Fatalf("new camera: %v", err)
	}
	c, ok := ecs.Get(w, cam, component.CameraComponent)
	if !ok || c.TargetName != "player" || c.Zoom <= 0 {
		t.Fatalf("unexpected camera %+v", c)
	}
	if tr, _ := ecs.Get(w, cam, component.TransformComponent); tr.X != 10 || tr.Y != 20 {
		t.Fatalf("expected camera at (10,20), got %+v", tr)
	}

	if _, err := NewDebugLog(w); err != nil {
		t.Fatalf("new debug log: %v", err)
	}
	if _, ok := w.First(component.DebugMessagesComponent.Kind()); !ok {
		t.Fatalf("expected debug messages entity")
	}
}

func TestApplyPlayerSpec(t *testing.T) {
	prev := prefabs.DiskDir
	prefabs.DiskDir = t.TempDir()
	t.Cleanup(func() { prefabs.DiskDir = prev })

	w := ecs.NewWorld()
	player, err := NewPlayer(w, nil)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	mv, _ := ecs.GetPtr(w, player, component.CharacterMovementComponent)
	mv.Grounded = true
	mv.JumpCurrentCount = 1
	ab, _ := ecs.GetPtr(w, player, component.AbilitiesComponent)
	ab.Started = true

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	spec.Movement.JumpMaxCount = 3
	spec.Abilities.DashSpeed = 42

	if err := ApplyPlayerSpec(w, player, spec); err != nil {
		t.Fatalf("apply: %v", err)
	}

	mv, _ = ecs.GetPtr(w, player, component.CharacterMovementComponent)
	if mv.JumpMaxCount != 3 || !mv.Grounded || mv.JumpCurrentCount != 1 {
		t.Fatalf("expected new tuning with runtime state kept, got %+v", mv)
	}
	ab, _ = ecs.GetPtr(w, player, component.AbilitiesComponent)
	if ab.Started {
		t.Fatalf("expected abilities to restart play")
	}
	if ab.Character.State().Config().DashSpeed != 42 {
		t.Fatalf("expected new dash speed")
	}

	if err := ApplyPlayerSpec(w, w.CreateEntity(), spec); err == nil {
		t.Fatalf("expected error for entity without movement")
	}
}
