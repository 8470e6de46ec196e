package systems

import (
	"image/color"
	"math"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/automoto/driftcircuit/systems/factory"
	"github.com/automoto/driftcircuit/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions tests the car footprint against the track edges.
func UpdateCollisions(w donburi.World) {
	tags.Vehicle.Each(w, func(e *donburi.Entry) {
		if ResolveCollision(w, e) {
			factory.SyncVehicleObject(e)
		}
	})
}

// ResolveCollision checks the four rotated footprint corners against the
// track. When any corner is off the surface the car takes damage scaled by
// its speed, bounces backwards at half speed and is pushed away from the
// track center by the shallowest corner penetration, capped. It reports
// whether a collision occurred.
func ResolveCollision(w donburi.World, e *donburi.Entry) bool {
	track := factory.MustTrack(w)
	v := components.Vehicle.Get(e)
	cc := cfg.Collision

	corners := gamemath.FootprintCorners(v.X, v.Y, cfg.Vehicle.Width, cfg.Vehicle.Height, v.Heading)

	hit := false
	nearest := math.Inf(1)
	for _, c := range corners {
		if track.ContainsPoint(c.X, c.Y) {
			continue
		}
		hit = true
		if d := track.EdgeDistance(c.X, c.Y); math.Abs(d) < math.Abs(nearest) {
			nearest = d
		}
	}
	if !hit {
		return false
	}

	impact := math.Abs(v.Speed) * cc.ImpactScale
	damage := math.Min(cc.MaxDamage, impact)
	v.Health = math.Max(0, v.Health-damage)
	v.DamageFlash = cfg.Vehicle.DamageFlashFrames

	factory.SpawnCrash(w, v.X, v.Y, impact, bodyColor(w))

	cx, cy := track.Center()
	bounce := math.Atan2(v.Y-cy, v.X-cx)
	v.Speed = -v.Speed * cc.BounceScale

	push := math.Min(cc.MaxPushback, math.Abs(nearest))
	v.X += math.Cos(bounce) * push
	v.Y += math.Sin(bounce) * push

	components.CollisionEvent.Publish(w, components.CollisionEventData{
		Impact: impact,
		Damage: damage,
		Health: v.Health,
	})

	return true
}

func bodyColor(w donburi.World) color.RGBA {
	style := 0
	if e, ok := components.Session.First(w); ok {
		style = components.Session.Get(e).StyleIndex
	}
	return cfg.Style(style).Primary
}
