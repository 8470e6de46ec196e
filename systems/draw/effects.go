package draw

import (
	"math"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSkidMarks renders tire marks under everything else on the road.
func DrawSkidMarks(e *ecs.ECS, screen *ebiten.Image) {
	components.SkidMark.Each(e.World, func(entry *donburi.Entry) {
		s := components.SkidMark.Get(entry)
		c := fade(cfg.HUD.SkidColor, s.Alpha(cfg.Effects.SkidFadeFrames))
		fillRotatedRect(screen, s.X, s.Y, s.Width, 2, s.Angle, c)
	})
}

// DrawTrail renders the speed trail behind the car.
func DrawTrail(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(entry)
	if math.Abs(v.Speed) <= 3 || len(v.Trail) < 2 {
		return
	}

	style := cfg.Style(styleIndex(e))
	alpha := math.Min(0.6, math.Abs(v.Speed)/cfg.Vehicle.MaxSpeed)
	n := len(v.Trail)
	for i := 1; i < n; i++ {
		a, b := v.Trail[i-1], v.Trail[i]
		c := fade(style.Primary, alpha*float64(i)/float64(n))
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, c, true)
	}
}

// DrawParticles renders every live particle by kind.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		c := fade(p.Color, p.Alpha())
		x, y := p.Position.X, p.Position.Y

		switch p.Kind {
		case components.ParticleSmoke:
			vector.FillCircle(screen, float32(x), float32(y), float32(p.Size), c, true)
		case components.ParticleSpark:
			fillRotatedRect(screen, x, y, p.Size, p.Size/2, p.Rotation, c)
		case components.ParticleDebris:
			fillRotatedRect(screen, x, y, p.Size, p.Size, p.Rotation, c)
		default:
			vector.FillRect(screen, float32(x-p.Size/2), float32(y-p.Size/2), float32(p.Size), float32(p.Size), c, false)
		}
	})
}

func styleIndex(e *ecs.ECS) int {
	if entry, ok := components.Session.First(e.World); ok {
		return components.Session.Get(entry).StyleIndex
	}
	return 0
}
