package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/input"
	"github.com/automoto/driftcircuit/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GarageScene lets the player pick a car and review past races
type GarageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	garageUI     *ui.GarageUI
	once         sync.Once

	shouldRace bool
	shouldQuit bool
}

// NewGarageScene creates a new garage scene
func NewGarageScene(sc SceneChanger, services *Services) *GarageScene {
	return &GarageScene{sceneChanger: sc, services: services}
}

func (gs *GarageScene) Update() {
	gs.once.Do(gs.configure)

	in := input.UpdateInput(gs.ecs)
	if in.JustPressed(cfg.ActionStartRace) {
		gs.shouldRace = true
	}
	if in.JustPressed(cfg.ActionChangeCar) {
		gs.changeCar()
	}
	if in.JustPressed(cfg.ActionMenuBack) {
		gs.shouldQuit = true
	}

	gs.garageUI.Update()

	switch {
	case gs.shouldQuit:
		gs.sceneChanger.Quit()
	case gs.shouldRace:
		gs.sceneChanger.ChangeScene(NewRaceScene(gs.sceneChanger, gs.services))
	}
}

func (gs *GarageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.garageUI == nil {
		return
	}
	gs.garageUI.UI.Draw(screen)
}

func (gs *GarageScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.garageUI = ui.NewGarageUI(
		func() { gs.shouldRace = true },
		func() { gs.changeCar() },
		func() { gs.shouldQuit = true },
	)
	gs.garageUI.SetTrack(gs.services.Track.Name)
	gs.garageUI.SetCar(cfg.Style(gs.services.StyleIndex).Name)
	gs.refreshRecords()
}

func (gs *GarageScene) changeCar() {
	gs.services.StyleIndex = cfg.StyleIndex(gs.services.StyleIndex + 1)
	gs.garageUI.SetCar(cfg.Style(gs.services.StyleIndex).Name)
}

func (gs *GarageScene) refreshRecords() {
	store := gs.services.Store

	best, ok, err := store.BestTime()
	if err != nil {
		log.Warn().Err(err).Msg("could not load best time")
	}
	gs.garageUI.SetBestTime(best, ok)

	results, err := store.Results(cfg.Race.RecentResults)
	if err != nil {
		log.Warn().Err(err).Msg("could not load race results")
	}
	gs.garageUI.SetResults(results)
}

