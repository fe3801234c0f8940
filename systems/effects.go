package systems

import (
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// UpdateEffects advances the cosmetic entities: particles, the
// smart-bomb shockwave and floating score texts. Screen shake decays
// here too.
func UpdateEffects(e *ecs.ECS) {
	session := GetSession(e)
	ts := session.TimeScale

	particleQuery := donburi.NewQuery(filter.Contains(components.Particle))
	particleQuery.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Shockwave {
			p.Size += cfg.Combat.ShockwaveGrowth * ts
			if p.Size >= cfg.Combat.ShockwaveMax {
				p.Life = 0
			}
		} else {
			p.X += p.VelX * ts
			p.Y += p.VelY * ts
		}
		p.Life -= p.Decay * ts
		if p.Life <= 0 && !entry.HasComponent(components.Death) {
			donburi.Add(entry, components.Death, &components.DeathData{})
		}
	})

	textQuery := donburi.NewQuery(filter.Contains(components.FloatingText))
	textQuery.Each(e.World, func(entry *donburi.Entry) {
		t := components.FloatingText.Get(entry)
		t.Y -= cfg.Combat.FloatingTextRise * ts
		t.Life -= ts
		if t.Life <= 0 && !entry.HasComponent(components.Death) {
			donburi.Add(entry, components.Death, &components.DeathData{})
		}
	})

	if session.ShakeFrames > 0 {
		session.ShakeFrames -= ts
		if session.ShakeFrames < 0 {
			session.ShakeFrames = 0
		}
	}
}
