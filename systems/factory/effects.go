package factory

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/skystrike/archetypes"
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/yohamta/donburi/ecs"
)

// SpawnExplosion scatters debris particles from (x, y).
func SpawnExplosion(ecs *ecs.ECS, session *components.SessionData, x, y float64, tint color.RGBA) {
	for i := 0; i < cfg.Combat.ExplosionParticles; i++ {
		angle := session.Rand.Float64() * 2 * math.Pi
		speed := 0.8 + session.Rand.Float64()*2.4
		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			X:     x,
			Y:     y,
			VelX:  math.Cos(angle) * speed,
			VelY:  math.Sin(angle) * speed,
			Life:  1,
			Decay: cfg.Combat.ParticleDecay * (0.7 + session.Rand.Float64()*0.6),
			Size:  2 + session.Rand.Float64()*3,
			Color: tint,
		})
	}
}

// SpawnShockwave spawns the smart bomb's expanding ring.
func SpawnShockwave(ecs *ecs.ECS, x, y float64) {
	p := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(p, components.ParticleData{
		X:         x,
		Y:         y,
		Life:      1,
		Decay:     1 / (cfg.Combat.ShockwaveMax / cfg.Combat.ShockwaveGrowth),
		Size:      8,
		Shockwave: true,
		Color:     cfg.White,
	})
}

// SpawnTrailPuff leaves a fading engine exhaust dot behind the craft.
func SpawnTrailPuff(ecs *ecs.ECS, session *components.SessionData, x, y float64) {
	p := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(p, components.ParticleData{
		X:     x + (session.Rand.Float64()-0.5)*4,
		Y:     y,
		VelY:  1.2,
		Life:  0.6,
		Decay: 0.045,
		Size:  2,
		Color: cfg.Cyan,
	})
}

// SpawnScoreText pops a "+N" floating text at (x, y).
func SpawnScoreText(ecs *ecs.ECS, points int, x, y float64, clr color.RGBA) {
	t := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.SetValue(t, components.FloatingTextData{
		X:     x,
		Y:     y,
		Text:  fmt.Sprintf("+%d", points),
		Life:  cfg.Combat.FloatingTextLife,
		Color: clr,
	})
}

// SpawnLabelText pops an arbitrary label (HEAL, JAMMED, BOMB) at (x, y).
func SpawnLabelText(ecs *ecs.ECS, label string, x, y float64, clr color.RGBA) {
	t := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.SetValue(t, components.FloatingTextData{
		X:     x,
		Y:     y,
		Text:  label,
		Life:  cfg.Combat.FloatingTextLife,
		Color: clr,
	})
}
