package systems

import (
	"math"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/gamemath"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SetPlayerTarget feeds the desired craft position from the host's
// pointer. The movement system clamps it into the play field.
func SetPlayerTarget(e *ecs.ECS, x, y float64) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	player.TargetX = x
	player.TargetY = y
}

// UpdatePlayer tracks the pointer target, runs down the grace/debuff
// timers and emits the auto-fire volleys.
func UpdatePlayer(e *ecs.ECS) {
	session := GetSession(e)
	ts := session.TimeScale

	playerEntry, ok := components.Player.First(e.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Timers never go below zero.
	player.InvulnFrames = math.Max(0, player.InvulnFrames-ts)
	player.JammedFrames = math.Max(0, player.JammedFrames-ts)

	// Track the pointer: fixed vertical offset, clamped into the field.
	targetX := gamemath.Clamp(player.TargetX, obj.W/2, session.Width-obj.W/2)
	targetY := gamemath.Clamp(player.TargetY-cfg.Player.VerticalOffset, session.Height*0.2, session.Height-obj.H)
	step := gamemath.Clamp(cfg.Player.TrackSpeed*ts, 0, 1)
	obj.X += (targetX - obj.W/2 - obj.X) * step
	obj.Y += (targetY - obj.Y) * step

	// Auto-fire. Jam doubles the delay between volleys.
	weapon := components.Weapon.Get(playerEntry)
	delay := weapon.FireDelay
	if player.Jammed() {
		delay *= 2
	}
	player.FireClock += ts
	for player.FireClock >= delay {
		player.FireClock -= delay
		fireVolley(e, session, player, weapon, obj.X+obj.W/2, obj.Y)
	}

	// Engine trail cadence.
	player.TrailClock += ts
	for player.TrailClock >= cfg.Player.EngineTrailCadence {
		player.TrailClock -= cfg.Player.EngineTrailCadence
		factory.SpawnTrailPuff(e, session, obj.X+obj.W/2, obj.Y+obj.H)
	}
}

// fireVolley emits the center shot plus symmetric spread shots per spread
// level. Spread is suppressed entirely while jammed.
func fireVolley(e *ecs.ECS, session *components.SessionData, player *components.PlayerData, weapon *components.WeaponData, x, y float64) {
	damage := EffectiveDamage(session, weapon, player.Jammed())

	factory.CreatePlayerBullet(e, x, y, 0, damage)
	if player.Jammed() {
		return
	}
	for i := 1; i <= weapon.SpreadLevel; i++ {
		angle := float64(i) * cfg.Weapon.SpreadAngle
		factory.CreatePlayerBullet(e, x, y, angle, damage)
		factory.CreatePlayerBullet(e, x, y, -angle, damage)
	}
}
