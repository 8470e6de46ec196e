package components

import (
	"math/rand/v2"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broadphase used for checkpoint proximity queries
var Space = donburi.NewComponentType[resolv.Space]()

// RandomData is the seeded source shared by every stochastic system
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

var fallbackRand = rand.New(rand.NewPCG(1, 2))

// Rand returns the world's shared random source.
func Rand(w donburi.World) *rand.Rand {
	if e, ok := Random.First(w); ok {
		if r := Random.Get(e); r.Rand != nil {
			return r.Rand
		}
	}
	return fallbackRand
}
