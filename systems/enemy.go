package systems

import (
	"math"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/gamemath"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/automoto/skystrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every live enemy and runs its attack cadence.
func UpdateEnemies(e *ecs.ECS) {
	session := GetSession(e)
	ts := session.TimeScale

	var playerObj *resolv.Object
	if playerEntry, ok := components.Player.First(e.World); ok && !playerEntry.HasComponent(components.Death) {
		playerObj = components.Object.Get(playerEntry).Object
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)

		switch enemy.TypeConfig.Kind {
		case cfg.EnemyKamikaze:
			updateKamikaze(enemy, obj.Object, playerObj, ts)
		case cfg.EnemyMissileDrone:
			updateDrone(session, enemy, obj.Object, ts)
		default:
			obj.X += enemy.VelX * ts
			obj.Y += enemy.VelY * ts
		}

		if enemy.TypeConfig.ShootInterval > 0 && playerObj != nil && obj.Y > 0 {
			enemy.ShootClock += ts
			for enemy.ShootClock >= enemy.TypeConfig.ShootInterval {
				enemy.ShootClock -= enemy.TypeConfig.ShootInterval
				fireEnemyAttack(e, enemy, obj.Object, playerObj)
			}
		}
	})
}

// updateKamikaze steers toward the player with a bounded turn rate and a
// slight continuous speed-up. A degenerate (zero-length) aim vector skips
// the steering update for the frame.
func updateKamikaze(enemy *components.EnemyData, obj, playerObj *resolv.Object, ts float64) {
	speed := math.Hypot(enemy.VelX, enemy.VelY)
	if speed == 0 {
		speed = enemy.TypeConfig.Speed
	}

	if playerObj != nil {
		desired, ok := gamemath.AngleTo(obj.X+obj.W/2, obj.Y+obj.H/2,
			playerObj.X+playerObj.W/2, playerObj.Y+playerObj.H/2)
		if ok {
			enemy.Rotation = gamemath.TurnToward(enemy.Rotation, desired, enemy.TypeConfig.TurnRate*ts)
		}
	} else {
		enemy.Rotation = math.Pi / 2 // straight down
	}

	speed += enemy.TypeConfig.Accel * ts
	enemy.VelX = math.Cos(enemy.Rotation) * speed
	enemy.VelY = math.Sin(enemy.Rotation) * speed
	obj.X += enemy.VelX * ts
	obj.Y += enemy.VelY * ts
}

// updateDrone descends to its hover line, then drifts sideways while
// launching homing missiles from the shoot cadence.
func updateDrone(session *components.SessionData, enemy *components.EnemyData, obj *resolv.Object, ts float64) {
	if obj.Y < cfg.Enemy.DroneHoverY {
		obj.Y += enemy.VelY * ts
		return
	}
	if enemy.VelX == 0 {
		enemy.VelX = enemy.TypeConfig.Speed * 0.7
		if session.Rand.Float64() < 0.5 {
			enemy.VelX = -enemy.VelX
		}
	}
	obj.X += enemy.VelX * ts
	if obj.X <= 0 || obj.X+obj.W >= session.Width {
		enemy.VelX = -enemy.VelX
	}
}

// fireEnemyAttack emits the variant's projectile: aimed shot, spread,
// missile or jam wave.
func fireEnemyAttack(e *ecs.ECS, enemy *components.EnemyData, obj, playerObj *resolv.Object) {
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H

	aim, ok := gamemath.AngleTo(cx, cy, playerObj.X+playerObj.W/2, playerObj.Y+playerObj.H/2)
	if !ok {
		return
	}

	switch enemy.TypeConfig.Kind {
	case cfg.EnemyShooter:
		factory.CreateEnemyShot(e, cx, cy,
			math.Cos(aim)*cfg.Enemy.BulletSpeed,
			math.Sin(aim)*cfg.Enemy.BulletSpeed, false)
	case cfg.EnemyElite:
		for _, off := range []float64{-0.35, 0, 0.35} {
			factory.CreateEnemyShot(e, cx, cy,
				math.Cos(aim+off)*cfg.Enemy.BulletSpeed,
				math.Sin(aim+off)*cfg.Enemy.BulletSpeed, false)
		}
	case cfg.EnemyMissileDrone:
		factory.CreateMissile(e, cx, cy, aim)
	case cfg.EnemyJammer:
		factory.CreateWave(e, cx, obj.Y+obj.H/2)
	}
}
