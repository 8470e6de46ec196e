package main

import (
	"errors"
	"flag"
	"image"
	"net/http"
	"os"

	"github.com/automoto/driftcircuit/assets"
	"github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/fonts"
	"github.com/automoto/driftcircuit/records"
	"github.com/automoto/driftcircuit/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const appName = "driftcircuit"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(services *scenes.Services) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewRaceScene(g, services)
	} else {
		g.scene = scenes.NewGarageScene(g, services)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func loadFonts() error {
	return errors.Join(
		fonts.LoadFont(fonts.Regular, goregular.TTF),
		fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, 20),
		fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 32),
		fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11),
	)
}

func loadTrack(name string) config.TrackConfig {
	track, err := assets.LoadTrack(name)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to the built-in oval")
		return config.Track
	}
	return track
}

func openStore() records.Store {
	store, err := records.Open(config.Debug.RecordsStore, appName, config.Debug.DataDir)
	if err != nil {
		log.Warn().Err(err).Str("store", config.Debug.RecordsStore).Msg("records kept in memory only")
		return records.NewMemoryStore()
	}
	return store
}

func serveRecords(addr string, store records.Store) {
	log.Info().Str("addr", addr).Msg("records API listening")
	if err := http.ListenAndServe(addr, records.NewHandler(store)); err != nil {
		log.Err(err).Msg("records API stopped")
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Skip the garage and start racing")
	flag.Uint64Var(&config.Debug.Seed, "seed", 0, "Random seed for checkpoints and effects (0 = random)")
	flag.StringVar(&config.Debug.RecordsStore, "store", config.Debug.RecordsStore, "Records backend: gdata, badger or memory")
	flag.StringVar(&config.Debug.DataDir, "data-dir", "", "Badger directory (empty = in-memory)")
	flag.StringVar(&config.Debug.RecordsAddr, "records-addr", "", "Serve the records API on this address")
	flag.BoolVar(&config.Debug.FixedTrack, "fixed-track", false, "Use the track's checkpoint layout instead of random placement")
	trackName := flag.String("track", assets.DefaultTrack, "Track layout to race")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := loadFonts(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}
	if err := assets.LoadShaders(); err != nil {
		log.Warn().Err(err).Msg("screen flash disabled")
	}

	store := openStore()
	defer func() {
		if err := store.Close(); err != nil {
			log.Err(err).Msg("failed to close records store")
		}
	}()

	if config.Debug.RecordsAddr != "" {
		go serveRecords(config.Debug.RecordsAddr, store)
	}

	services := &scenes.Services{
		Store: store,
		Track: loadTrack(*trackName),
		Seed:  config.Debug.Seed,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Drift Circuit")
	ebiten.SetTPS(config.Race.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(services)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Err(err).Msg("game stopped")
	}
}
