package archetypes

import (
	"github.com/automoto/driftcircuit/components"
	"github.com/automoto/driftcircuit/tags"
	"github.com/yohamta/donburi"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
		components.Object,
	)
	Track = newArchetype(
		components.Track,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Particle = newArchetype(
		components.Particle,
	)
	SkidMark = newArchetype(
		components.SkidMark,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	Banner = newArchetype(
		components.Banner,
	)
	Session = newArchetype(
		components.Session,
		components.Control,
		components.Random,
		components.ScreenFlash,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
