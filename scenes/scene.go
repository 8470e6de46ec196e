package scenes

import (
	"math/rand/v2"

	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/records"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Services holds what every scene shares for the lifetime of the game
type Services struct {
	Store records.Store
	Track cfg.TrackConfig
	// Seed fixes the race random source; zero picks a fresh one per race
	Seed uint64
	// StyleIndex is the car last chosen in the garage or on track
	StyleIndex int
}

func (s *Services) newRand() *rand.Rand {
	if s.Seed != 0 {
		return rand.New(rand.NewPCG(s.Seed, s.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
