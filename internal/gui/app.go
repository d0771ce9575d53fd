package gui

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/seilespill/internal/assets"
	"github.com/appengine-ltd/seilespill/internal/gui/theme"
	"github.com/appengine-ltd/seilespill/internal/settings"
	"github.com/appengine-ltd/seilespill/internal/tuning"
	"github.com/appengine-ltd/seilespill/internal/world"
)

// maxFrameStep caps the simulated time of one frame after a stall.
const maxFrameStep = 0.1

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Settings  *settings.Settings
	Log       *zap.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

type gameUI struct {
	cfg AppConfig
	log *zap.Logger

	width  int32
	height int32

	assets   *assets.Server
	store    *tuning.Store
	scene    *world.Scene
	renderer *sceneRenderer
	panel    *debugPanel
	dock     dockPanel

	showSensors bool
	lastTick    time.Time
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	if cfg.Settings == nil {
		return nil, fmt.Errorf("gui: settings are required")
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	root := cfg.Settings.Assets.Root
	store := tuning.Open(root, log.Named("tuning"))
	return &gameUI{
		cfg:      cfg,
		log:      log,
		width:    cfg.Settings.Window.Width,
		height:   cfg.Settings.Window.Height,
		assets:   assets.NewServer(root, log.Named("assets")),
		store:    store,
		renderer: newSceneRenderer(log.Named("render")),
		panel:    newDebugPanel(store, log.Named("panel")),
	}, nil
}

func (ui *gameUI) Run() error {
	win := ui.cfg.Settings.Window
	flags := uint32(rl.FlagWindowResizable)
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(ui.width, ui.height, win.Title)
	rl.SetTargetFPS(win.TargetFPS)
	initTypography()
	theme.InitSkin(ui.cfg.Settings.Assets.Root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ui.assets.Start(ctx, ui.cfg.Settings.Assets.Layout)
	ui.log.Info("window open",
		zap.Int32("width", ui.width),
		zap.Int32("height", ui.height),
		zap.String("version", ui.cfg.Version))

	ui.lastTick = time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(theme.BG)
		ui.draw()
		rl.EndDrawing()
	}

	ui.renderer.unload()
	theme.UnloadSkin()
	releaseFont()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(delta time.Duration) {
	state := ui.assets.Poll()
	if state == assets.Loaded && ui.scene == nil {
		ui.spawn(ui.assets.Bundle())
	}

	keys := readHotkeys()
	if keys.togglePanel {
		ui.panel.visible = !ui.panel.visible
	}
	if keys.toggleSensors {
		ui.showSensors = !ui.showSensors
	}
	if keys.save {
		ui.panel.save()
	}
	ui.panel.handle(readPointer(), ui.height)

	if ui.scene == nil {
		return
	}
	if keys.nextCard {
		ui.dock.next()
	}
	ui.scene.Steer = readSteer()
	ui.scene.Step(frameStep(delta))
}

// spawn uploads the loaded models and starts the world.
func (ui *gameUI) spawn(b *assets.Bundle) {
	ui.renderer.load(b)
	if useFont(b.Font) {
		ui.log.Debug("font loaded", zap.String("path", b.Font))
	}
	ui.scene = world.NewScene(b.Layout, ui.store.Values, ui.log.Named("world"))
	ui.dock.subscribe(ui.scene)
	ui.log.Info("scene spawned",
		zap.Int("islands", len(b.Layout.Islands)),
		zap.Int("boat_scene", b.BoatScene),
		zap.Int("map_scene", b.MapScene))
}

func (ui *gameUI) draw() {
	if ui.scene != nil {
		ui.renderer.draw(ui.scene, ui.store.Values(), ui.showSensors)
		hint := fmt.Sprintf("%s   F1 panel  F2 sensors", ui.scene.DockState())
		theme.DrawHintText(hint, ui.width-int32(theme.MeasureText(hint, theme.Type.Small))-16, ui.height-int32(theme.Type.Small)-10)
	}
	ui.panel.draw(ui.height, ui.assets.State())
	ui.dock.draw(ui.width, ui.height)
}

func frameStep(delta time.Duration) float32 {
	dt := float32(delta.Seconds())
	if dt > maxFrameStep {
		return maxFrameStep
	}
	return dt
}
