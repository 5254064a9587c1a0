package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/entity"
	"github.com/milk9111/wipsidescroller/ecs/input"
	"github.com/milk9111/wipsidescroller/ecs/render"
	"github.com/milk9111/wipsidescroller/ecs/system"
	"github.com/milk9111/wipsidescroller/levels"
	"github.com/milk9111/wipsidescroller/prefabs"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *render.RenderSystem
	player    ecs.Entity

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	debug   bool

	watcher *prefabs.Watcher
	logger  *slog.Logger
}

func NewGame(levelName string, debug, watch bool, logger *slog.Logger) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", levelName, err)
	}

	world := ecs.NewWorld()
	if _, err := entity.NewDebugLog(world); err != nil {
		return nil, err
	}
	player, err := entity.LoadLevelToWorld(world, lvl, logger)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", levelName, err)
	}
	if _, err := entity.NewCamera(world); err != nil {
		return nil, err
	}

	physics := system.NewPhysicsSystem()
	g := &Game{
		world:   world,
		physics: physics,
		render:  render.NewRenderSystem(),
		player:  player,
		debug:   debug,
		logger:  logger,
	}
	g.scheduler = ecs.NewScheduler(
		input.NewInputSystem(),
		system.NewAbilitySystem(logger),
		system.NewCharacterMovementSystem(),
		physics,
		system.NewCameraSystem(),
		system.NewDebugMessageSystem(),
	)
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			logger.Warn("prefab hot reload disabled", "dir", prefabs.DiskDir, "err", err)
		} else {
			g.watcher = w
			logger.Info("watching prefabs", "dir", prefabs.DiskDir)
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadPrefabs()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		if name != "player.yaml" {
			continue
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			g.logger.Error("reload player prefab", "err", err)
			continue
		}
		if err := entity.ApplyPlayerSpec(g.world, g.player, spec); err != nil {
			g.logger.Error("apply player prefab", "err", err)
			continue
		}
		g.logger.Info("reloaded prefab", "name", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		render.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		render.DrawAbilityDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d\nFPS: %.2f", g.scheduler.Frames(), ebiten.ActualFPS()), common.BaseWidth-120, 10)
	}
	render.DrawDebugMessages(g.world, screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
