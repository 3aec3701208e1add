package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/physics"
	"github.com/milk9111/ledgeclimb/prefabs"
	"github.com/milk9111/ledgeclimb/progression"
	"github.com/milk9111/ledgeclimb/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tickRate   = 60
	appName    = "ledgeclimb"
	toastTime  = 2.0
)

type Options struct {
	Level        string
	Debug        bool
	AllAbilities bool
	ResetSave    bool
	Logger       *slog.Logger
}

type Game struct {
	opts   Options
	logger *slog.Logger

	scene  *scene.Scene
	camera *Camera

	store   *progression.Store
	watcher *prefabs.Watcher

	paused bool
	ui     *ebitenui.UI

	toast      string
	toastTimer float64
}

func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if filepath.Ext(opts.Level) == "" {
		opts.Level += ".yaml"
	}

	g := &Game{
		opts:   opts,
		logger: logger,
		camera: NewCamera(baseWidth, baseHeight, 0.6),
	}

	store, err := progression.OpenStore(appName)
	if err != nil {
		logger.Warn("persistence disabled", "err", err)
	}
	g.store = store
	if opts.ResetSave {
		if err := g.store.Clear(); err != nil {
			logger.Warn("could not clear saved abilities", "err", err)
		}
	}

	if err := g.spawn(true); err != nil {
		return nil, err
	}

	if w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")); err != nil {
		logger.Debug("hot reload disabled", "err", err)
	} else {
		g.watcher = w
	}

	g.ui = NewPauseUI(g)
	ebiten.SetTPS(tickRate)
	return g, nil
}

// spawn builds a fresh scene from the current specs and swaps it in. A failed
// build keeps the running scene. With carry set, abilities from the save and
// from the running character are granted again.
func (g *Game) spawn(carry bool) error {
	var abilities []character.AbilityKind
	if g.opts.AllAbilities {
		abilities = append(abilities, character.AbilityDoubleJump, character.AbilitySprint)
	}
	if carry {
		abilities = append(abilities, g.carriedAbilities()...)
	}

	next, err := scene.Replace(g.scene, scene.Options{
		Level:     g.opts.Level,
		Abilities: abilities,
		Store:     g.store,
		Logger:    g.logger,
		Input:     NewInputSystem(),
	})
	if err != nil {
		return err
	}
	g.scene = next
	g.camera.Snap(next.Level.SpawnPoint())
	return nil
}

func (g *Game) carriedAbilities() []character.AbilityKind {
	saved, err := g.store.Load()
	if err != nil {
		g.logger.Warn("could not load saved abilities", "err", err)
	}
	out := append([]character.AbilityKind(nil), saved...)
	if actor := g.actor(); actor != nil {
		state := actor.Abilities()
		for _, kind := range []character.AbilityKind{character.AbilityDoubleJump, character.AbilitySprint} {
			if state.Has(kind) {
				out = append(out, kind)
			}
		}
	}
	return out
}

func (g *Game) actor() *character.Character {
	return g.scene.Actor()
}

func (g *Game) motor() *physics.Motor {
	return g.scene.Motor()
}

// resetProgress forgets saved grants and respawns without them.
func (g *Game) resetProgress() {
	if err := g.store.Clear(); err != nil {
		g.logger.Warn("could not clear saved abilities", "err", err)
	}
	if err := g.spawn(false); err != nil {
		g.logger.Error("respawn failed, keeping current world", "err", err)
	}
	g.paused = false
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.reload()

	dt := 1.0 / float64(ebiten.TPS())
	g.scene.Step(dt)

	for _, evt := range g.scene.World.Events().Drain(ecs.EventAbilityGranted) {
		g.toast = fmt.Sprintf("unlocked %s", strings.ReplaceAll(evt.Data, "_", " "))
		g.toastTimer = toastTime
	}
	if g.toastTimer > 0 {
		g.toastTimer -= dt
	}

	if m := g.motor(); m != nil {
		g.camera.Follow(m.Position())
	}
	return nil
}

// reload respawns the world when a spec or script changed on disk. A broken
// spec keeps the running world.
func (g *Game) reload() {
	changes := g.watcher.Poll()
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		g.logger.Info("prefab changed", "path", c.Path)
	}
	if err := g.spawn(true); err != nil {
		g.logger.Error("reload failed, keeping current world", "err", err)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.scene.Close()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawLevel(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
