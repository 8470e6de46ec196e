// Package sim owns the race world and advances it one tick at a time.
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/records"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/automoto/driftcircuit/systems"
	"github.com/automoto/driftcircuit/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// ErrInvalidDelta is returned by Tick for a negative or non-finite dt.
var ErrInvalidDelta = errors.New("sim: invalid delta time")

// Options configures a new Simulation. Zero values pick defaults.
type Options struct {
	Rand  *rand.Rand
	Store records.Store
	Track *cfg.TrackConfig
	// StyleIndex is the car style the session starts with
	StyleIndex int
}

// FinishHandler is called after a race ends and its records were written.
type FinishHandler func(result records.Result, outcome components.RaceOutcome)

// Simulation is the single-threaded race core. It is not safe for
// concurrent use; the caller's frame loop owns it.
type Simulation struct {
	world   donburi.World
	store   records.Store
	rng     *rand.Rand
	racing  []systems.System
	onFinal []FinishHandler
}

func New(opts Options) *Simulation {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	store := opts.Store
	if store == nil {
		store = records.NewMemoryStore()
	}
	trackCfg := cfg.Track
	if opts.Track != nil {
		trackCfg = *opts.Track
	}

	s := &Simulation{
		world: donburi.NewWorld(),
		store: store,
		rng:   rng,
	}

	track := components.Track.Get(factory.CreateTrack(s.world, trackCfg))
	factory.CreateTrackSpace(s.world, track)
	factory.CreateSession(s.world, rng)
	factory.MustSession(s.world).StyleIndex = cfg.StyleIndex(opts.StyleIndex)
	factory.CreateVehicle(s.world, track)
	s.layoutCheckpoints()
	s.loadBestTime()

	s.racing = []systems.System{
		systems.WhileRacing(systems.UpdateVehicle),
		systems.WhileRacing(systems.UpdateCollisions),
		systems.WhileRacing(systems.UpdateCheckpoints),
	}

	components.RaceFinishedEvent.Subscribe(s.world, s.onRaceFinished)
	systems.SubscribeBanners(s.world)

	return s
}

// World exposes the entity world to renderers and the input poller. Callers
// may add their own singletons but must not touch race entities.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Store returns the records backend the simulation writes to.
func (s *Simulation) Store() records.Store {
	return s.store
}

// OnRaceFinished registers a hook for terminal race outcomes.
func (s *Simulation) OnRaceFinished(fn FinishHandler) {
	s.onFinal = append(s.onFinal, fn)
}

// Tick advances the world by one frame using the control snapshot. Session
// commands in ctrl are applied before any physics runs.
func (s *Simulation) Tick(ctrl components.ControlData, dt float64) error {
	if dt < 0 || !gamemath.IsFinite(dt) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	if dt > cfg.Race.MaxDelta {
		dt = cfg.Race.MaxDelta
	}

	if ctrl.ResetRequested {
		s.ResetRace()
	}
	if ctrl.ChangeCarRequested {
		s.ChangeVehicle()
	}
	if ctrl.StartRequested {
		s.StartRace()
	}

	sessionEntry, _ := components.Session.First(s.world)
	components.Control.SetValue(sessionEntry, ctrl)

	systems.AdvanceClock(s.world, dt)
	for _, system := range s.racing {
		system(s.world)
	}

	systems.UpdateEffects(s.world)
	systems.UpdateScreenFlash(s.world, dt)
	systems.UpdateBanner(s.world)
	systems.ProcessEvents(s.world)

	return nil
}

// StartRace puts the car on the grid and starts the clock. It does nothing
// while a race is already running.
func (s *Simulation) StartRace() {
	session := factory.MustSession(s.world)
	if session.Running {
		return
	}

	track := factory.MustTrack(s.world)
	factory.ResetVehicle(factory.MustVehicle(s.world), track, cfg.Race.StartSpeed)
	s.layoutCheckpoints()
	factory.ClearSkidMarks(s.world)

	s.resetSession(session)
	session.Running = true

	if !track.Decorated() {
		factory.GenerateDecorations(track, s.rng)
	}
	s.loadBestTime()

	factory.SpawnRaceStart(s.world, track.FinishX, track.FinishY)

	log.Info().
		Str("track", track.Name).
		Str("car", cfg.Style(session.StyleIndex).Name).
		Int("laps", session.MaxLaps).
		Msg("race started")
}

// ResetRace stops the race and returns every piece of race state to its
// initial value.
func (s *Simulation) ResetRace() {
	session := factory.MustSession(s.world)
	s.resetSession(session)

	factory.ResetVehicle(factory.MustVehicle(s.world), factory.MustTrack(s.world), 0)
	factory.ResetCheckpoints(s.world)
	factory.ClearSkidMarks(s.world)
	factory.ClearParticles(s.world)
}

// ChangeVehicle cycles to the next car style with a burst and a flash.
func (s *Simulation) ChangeVehicle() {
	session := factory.MustSession(s.world)
	session.StyleIndex = (session.StyleIndex + 1) % len(cfg.CarStyles)

	style := cfg.Style(session.StyleIndex)
	v := components.Vehicle.Get(factory.MustVehicle(s.world))
	factory.SpawnCarChange(s.world, v.X, v.Y, style.Primary)
	factory.StartScreenFlash(s.world)
	systems.ShowBanner(s.world, style.Name)

	log.Debug().Str("car", style.Name).Msg("vehicle changed")
}

func (s *Simulation) resetSession(session *components.SessionData) {
	session.Running = false
	session.Elapsed = 0
	session.Lap = 1
	session.MaxLaps = cfg.Race.MaxLaps
	session.LapSplits = nil
	session.LapStart = 0
	session.Outcome = components.OutcomeNone
}

// layoutCheckpoints places a fresh checkpoint ring with every flag clear.
func (s *Simulation) layoutCheckpoints() {
	track := factory.MustTrack(s.world)
	if cfg.Race.RandomCheckpoints && !cfg.Debug.FixedTrack {
		factory.RandomizeCheckpoints(s.world, s.rng)
		return
	}
	factory.PlaceCheckpoints(s.world, track.Layout)
}

// loadBestTime merges the stored best time into the session. The session
// keeps its own best unless the store holds a lower one, so a failed write
// never raises the best time.
func (s *Simulation) loadBestTime() {
	best, ok, err := s.store.BestTime()
	if err != nil {
		log.Warn().Err(err).Msg("could not load best time")
		return
	}
	if !ok {
		return
	}
	session := factory.MustSession(s.world)
	if !session.HasBest || best < session.BestTime {
		session.BestTime = best
		session.HasBest = true
	}
}

func (s *Simulation) onRaceFinished(w donburi.World, e components.RaceFinishedEventData) {
	newRecord := e.Outcome == components.OutcomeNewRecord
	if newRecord {
		if err := s.store.SetBestTime(e.Time); err != nil {
			log.Warn().Err(err).Msg("could not save best time")
		}
	}

	result := records.NewResult(e.Time, e.LapSplits, cfg.Style(e.StyleIndex).Name, newRecord)
	if err := s.store.SaveResult(result); err != nil {
		log.Warn().Err(err).Msg("could not save race result")
	}

	log.Info().
		Str("outcome", e.Outcome.String()).
		Float64("race_time", e.Time).
		Floats64("splits", e.LapSplits).
		Msg("race finished")

	for _, fn := range s.onFinal {
		fn(result, e.Outcome)
	}
}
