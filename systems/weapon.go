package systems

import (
	"math"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/automoto/skystrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EffectiveDamage is the per-bullet damage after debuffs: halved (floored
// at 1) while jammed, then scaled by the endless-mode efficiency penalty.
func EffectiveDamage(session *components.SessionData, weapon *components.WeaponData, jammed bool) int {
	damage := weapon.Damage
	if jammed {
		damage = damage / 2
		if damage < 1 {
			damage = 1
		}
	}
	damage = int(math.Floor(float64(damage) * session.Tier.DamageEfficiency))
	if damage < 1 {
		damage = 1
	}
	return damage
}

// ApplyUpgrade runs the weapon-upgrade policy for a pickup. At the
// difficulty cap the pickup converts into a smart bomb instead of a stat
// gain; otherwise a weighted random choice raises whichever of
// spread/damage is behind, and the fire delay shrinks toward its floor.
func ApplyUpgrade(e *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry) {
	weapon := components.Weapon.Get(playerEntry)

	if weapon.AtCap() {
		SmartBomb(e, session)
		return
	}

	canSpread := weapon.SpreadLevel < weapon.MaxSpread
	canDamage := weapon.Damage < weapon.MaxDamage

	switch {
	case canSpread && canDamage:
		// Prefer balancing the two stats; ties go to a coin flip.
		pickSpread := weapon.SpreadLevel < weapon.Damage-1 ||
			(weapon.SpreadLevel <= weapon.Damage && session.Rand.Float64() < 0.5)
		if pickSpread {
			weapon.SpreadLevel++
		} else {
			weapon.Damage++
		}
	case canSpread:
		weapon.SpreadLevel++
	case canDamage:
		weapon.Damage++
	}

	weapon.FireDelay = math.Max(cfg.Weapon.MinFireDelay, weapon.FireDelay-cfg.Weapon.DelayStep)

	if weapon.SpreadLevel > weapon.MaxSpread {
		weapon.SpreadLevel = weapon.MaxSpread
	}
	if weapon.Damage > weapon.MaxDamage {
		weapon.Damage = weapon.MaxDamage
	}
}

// SmartBomb is the overflow action when the weapon is already capped:
// flat damage to every enemy on the field and all enemy bullets cleared.
func SmartBomb(e *ecs.ECS, session *components.SessionData) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		hp.Current -= cfg.Weapon.SmartBombDamage
		if hp.Current <= 0 && !entry.HasComponent(components.Death) {
			KillEnemy(e, session, entry)
		}
	})
	clearShots := func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Death) {
			donburi.Add(entry, components.Death, &components.DeathData{})
		}
	}
	tags.EnemyBullet.Each(e.World, clearShots)
	tags.EnemyMissile.Each(e.World, clearShots)

	if playerEntry, ok := components.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		factory.SpawnShockwave(e, obj.X+obj.W/2, obj.Y+obj.H/2)
		factory.SpawnLabelText(e, "BOMB", obj.X+obj.W/2, obj.Y-12, cfg.Yellow)
	}
	TriggerScreenShake(session, cfg.ScreenShake.SmartBombIntensity, cfg.ScreenShake.SmartBombDuration)
}
