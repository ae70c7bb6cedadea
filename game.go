package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/data"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/systems"
)

// gameState tracks which screen the shell is showing.
type gameState int

const (
	stateTitle gameState = iota
	statePlaying
	stateGameOver
)

// Game implements ebiten.Game interface. It owns the simulation world
// and the fixed-step clock; all drawing state lives in the scene view.
type Game struct {
	cfg     *config.Config
	enemies *data.EnemyTable
	log     *zap.Logger

	world  *ecs.World
	pipe   *systems.Pipeline
	player ecs.Entity
	view   *sceneView

	state gameState
	dt    float64
	ticks int
}

// NewGame creates a new game instance sitting on the title screen.
func NewGame(cfg *config.Config, enemies *data.EnemyTable, log *zap.Logger) *Game {
	return &Game{
		cfg:     cfg,
		enemies: enemies,
		log:     log,
		dt:      1.0 / float64(cfg.Sim.TicksPerSecond),
		state:   stateTitle,
	}
}

// startRun builds a fresh world; restarting throws the old one away.
func (g *Game) startRun() {
	g.world = ecs.NewWorld()
	g.view = newSceneView(g.cfg.Window)
	deps := systems.Deps{
		Config:  g.cfg,
		Enemies: g.enemies,
		Input:   &inputAdapter{},
		View:    g.view,
		Log:     g.log,
	}
	g.pipe = systems.RegisterAll(g.world, deps)
	g.player = systems.SeedWorld(g.world, deps, g.pipe)
	g.ticks = 0
	g.state = statePlaying
	g.log.Info("run started")
}

// Update advances the game state one tick.
func (g *Game) Update() error {
	switch g.state {
	case stateTitle, stateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startRun()
		}
	case statePlaying:
		g.world.Update(g.dt)
		g.ticks++
		if pos, ok := ecs.Get[components.Position](g.world, g.player); ok {
			g.view.follow(pos.X, pos.Y)
		}
		if !g.world.Alive(g.player) {
			g.state = stateGameOver
			g.log.Info("run over",
				zap.Int("kills", g.pipe.Cleanup.Kills()),
				zap.Float64("seconds", float64(g.ticks)*g.dt))
		}
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	switch g.state {
	case stateTitle:
		ebitenutil.DebugPrint(screen, "MSTORY\n\nWASD / arrows to move, guns fire on their own.\nPress SPACE to start.")
	case statePlaying:
		g.view.draw(screen)
		g.drawHUD(screen)
	case stateGameOver:
		// Leave the last frame of the run visible behind the text.
		g.view.draw(screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"YOU DIED\n\nkills %d, survived %s\nPress SPACE to go again.",
			g.pipe.Cleanup.Kills(), g.clock()))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hp := 0.0
	if h, ok := ecs.Get[components.Health](g.world, g.player); ok {
		hp = h.Current
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"HP %.0f  kills %d  enemies %d  %s  FPS %.0f",
		hp,
		g.pipe.Cleanup.Kills(),
		ecs.StoreFor[components.EnemyTag](g.world).Len(),
		g.clock(),
		ebiten.ActualFPS()))
}

// clock formats elapsed simulation time as m:ss.
func (g *Game) clock() string {
	sec := int(float64(g.ticks) * g.dt)
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
