package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/driftcircuit/assets"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/input"
	"github.com/automoto/driftcircuit/sim"
	"github.com/automoto/driftcircuit/systems/draw"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// RaceScene drives the simulation from player input and renders it
type RaceScene struct {
	ecs          *ecs.ECS
	sim          *sim.Simulation
	sceneChanger SceneChanger
	services     *Services
	once         sync.Once

	// frame holds the rendered world while the screen flash shader runs
	frame *ebiten.Image
}

// NewRaceScene creates a new race scene on the configured track
func NewRaceScene(sc SceneChanger, services *Services) *RaceScene {
	return &RaceScene{sceneChanger: sc, services: services}
}

func (rs *RaceScene) Update() {
	rs.once.Do(rs.configure)

	in := input.UpdateInput(rs.ecs)
	if input.DebugTogglePressed() {
		cfg.Debug.ShowSpace = !cfg.Debug.ShowSpace
	}
	if in.JustPressed(cfg.ActionMenuBack) {
		rs.services.StyleIndex = rs.sim.Snapshot().Session.StyleIndex
		rs.sceneChanger.ChangeScene(NewGarageScene(rs.sceneChanger, rs.services))
		return
	}

	dt := 1 / float64(cfg.Race.TickRate)
	if err := rs.sim.Tick(components.ControlFromInput(in), dt); err != nil {
		log.Error().Err(err).Msg("simulation tick failed")
	}
}

func (rs *RaceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}

	brightness := rs.flashBrightness()
	if brightness <= 1 || assets.FlashShader == nil {
		rs.ecs.Draw(screen)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if rs.frame == nil || rs.frame.Bounds().Dx() != w || rs.frame.Bounds().Dy() != h {
		rs.frame = ebiten.NewImage(w, h)
	}
	rs.frame.Clear()
	rs.ecs.Draw(rs.frame)

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = rs.frame
	op.Uniforms = map[string]any{"Brightness": brightness}
	screen.DrawRectShader(w, h, assets.FlashShader, op)
}

func (rs *RaceScene) flashBrightness() float32 {
	entry, ok := components.ScreenFlash.First(rs.ecs.World)
	if !ok {
		return 1
	}
	return components.ScreenFlash.Get(entry).Brightness
}

func (rs *RaceScene) configure() {
	track := rs.services.Track
	rs.sim = sim.New(sim.Options{
		Rand:       rs.services.newRand(),
		Store:      rs.services.Store,
		Track:      &track,
		StyleIndex: rs.services.StyleIndex,
	})

	rs.ecs = ecs.NewECS(rs.sim.World())

	// Track surface and everything lying on it
	rs.ecs.AddRenderer(draw.LayerWorld, draw.DrawTrack)
	rs.ecs.AddRenderer(draw.LayerWorld, draw.DrawDecorations)
	rs.ecs.AddRenderer(draw.LayerWorld, draw.DrawStartLine)
	rs.ecs.AddRenderer(draw.LayerWorld, draw.DrawSkidMarks)
	rs.ecs.AddRenderer(draw.LayerWorld, draw.DrawCheckpoints)
	rs.ecs.AddRenderer(draw.LayerWorld, draw.DrawTrail)
	rs.ecs.AddRenderer(draw.LayerWorld, draw.DrawVehicle)

	rs.ecs.AddRenderer(draw.LayerFX, draw.DrawParticles)
	rs.ecs.AddRenderer(draw.LayerFX, draw.DrawSpace)

	rs.ecs.AddRenderer(draw.LayerHUD, draw.DrawHUD)
	rs.ecs.AddRenderer(draw.LayerHUD, draw.DrawMinimap)
	rs.ecs.AddRenderer(draw.LayerHUD, draw.DrawBanner)
	rs.ecs.AddRenderer(draw.LayerHUD, draw.DrawOverlay)

	if cfg.Debug.SkipMenu {
		rs.sim.StartRace()
	}
}
