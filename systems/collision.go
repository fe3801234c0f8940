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
	"github.com/yohamta/donburi/filter"
)

// UpdateCollisions resolves all contact this frame. The passes run in a
// fixed order so a bullet that kills an enemy spends its damage before
// the crash pass can, and an item grabbed on the same frame as a hit
// still applies.
func UpdateCollisions(e *ecs.ECS) {
	session := GetSession(e)

	playerEntry, ok := components.Player.First(e.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		playerEntry = nil
	}

	if playerEntry != nil {
		collectItems(e, session, playerEntry)
	}
	resolvePlayerBullets(e, session)
	if playerEntry != nil {
		resolveCrashes(e, session, playerEntry)
		resolveEnemyFire(e, session, playerEntry)
		resolveLaser(e, session, playerEntry)
	}
}

// collectItems: item pickups against the full player box.
func collectItems(e *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry) {
	playerObj := components.Object.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	for _, col := range checkAll(playerObj.Object, tags.ResolvItem) {
		itemEntry, ok := col.Data.(*donburi.Entry)
		if !ok || !itemEntry.Valid() || itemEntry.HasComponent(components.Death) {
			continue
		}
		item := components.Item.Get(itemEntry)
		cx, cy := center(col)

		switch item.Type {
		case components.ItemHeal:
			if health.Current < health.Max {
				health.Current += cfg.Combat.HealAmount
				if health.Current > health.Max {
					health.Current = health.Max
				}
			}
			factory.SpawnLabelText(e, "+HP", cx, cy, cfg.Green)
		case components.ItemWeaponUpgrade, components.ItemBossReward:
			ApplyUpgrade(e, session, playerEntry)
			AddScore(session, cfg.Weapon.UpgradeScore)
			factory.SpawnScoreText(e, cfg.Weapon.UpgradeScore, cx, cy, cfg.Cyan)
		}

		donburi.Add(itemEntry, components.Death, &components.DeathData{})
	}
}

// resolvePlayerBullets: player fire against enemies, the boss, and
// incoming missiles. A bullet is spent on its first hit.
func resolvePlayerBullets(e *ecs.ECS, session *components.SessionData) {
	bulletQuery := donburi.NewQuery(filter.Contains(tags.PlayerBullet))
	bulletQuery.Each(e.World, func(bulletEntry *donburi.Entry) {
		if bulletEntry.HasComponent(components.Death) {
			return
		}
		bullet := components.Bullet.Get(bulletEntry)
		obj := components.Object.Get(bulletEntry)

		if hit := firstHit(obj.Object, tags.ResolvMissile); hit != nil {
			if missileEntry, ok := hit.Data.(*donburi.Entry); ok && missileEntry.Valid() && !missileEntry.HasComponent(components.Death) {
				cx, cy := center(hit)
				donburi.Add(missileEntry, components.Death, &components.DeathData{})
				points := cfg.Enemy.MissileScore
				if session.BossActive {
					points = int(float64(points) * cfg.Combat.BossMinionScoreScale)
				}
				AddScore(session, points)
				factory.SpawnExplosion(e, session, cx, cy, cfg.Orange)
				factory.SpawnScoreText(e, points, cx, cy, cfg.White)
				donburi.Add(bulletEntry, components.Death, &components.DeathData{})
				return
			}
		}

		if hit := firstHit(obj.Object, tags.ResolvBoss); hit != nil {
			if bossEntry, ok := hit.Data.(*donburi.Entry); ok && bossEntry.Valid() && !bossEntry.HasComponent(components.Death) {
				boss := components.Boss.Get(bossEntry)
				// The descent is a cinematic; the boss is not a target yet.
				if boss.EntryDone {
					health := components.Health.Get(bossEntry)
					health.Current -= bullet.Damage
					if health.Current <= 0 {
						KillBoss(e, session, bossEntry)
					}
					donburi.Add(bulletEntry, components.Death, &components.DeathData{})
					return
				}
			}
		}

		if hit := firstHit(obj.Object, tags.ResolvEnemy); hit != nil {
			if enemyEntry, ok := hit.Data.(*donburi.Entry); ok && enemyEntry.Valid() && !enemyEntry.HasComponent(components.Death) {
				health := components.Health.Get(enemyEntry)
				health.Current -= bullet.Damage
				if health.Current <= 0 {
					KillEnemy(e, session, enemyEntry)
				}
				donburi.Add(bulletEntry, components.Death, &components.DeathData{})
			}
		}
	})
}

// resolveCrashes: body contact with enemies and the boss hull. The crash
// box is shrunk so grazes near the sprite edge do not count.
func resolveCrashes(e *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	scale := cfg.Player.CrashHitboxScale
	cw := playerObj.W * scale
	ch := playerObj.H * scale
	cx := playerObj.X + (playerObj.W-cw)/2
	cy := playerObj.Y + (playerObj.H-ch)/2

	crashed := false
	enemyQuery := donburi.NewQuery(filter.Contains(tags.Enemy))
	enemyQuery.Each(e.World, func(enemyEntry *donburi.Entry) {
		if crashed || enemyEntry.HasComponent(components.Death) {
			return
		}
		o := components.Object.Get(enemyEntry).Object
		if gamemath.AABBOverlap(cx, cy, cw, ch, o.X, o.Y, o.W, o.H) {
			crashed = true
			KillEnemy(e, session, enemyEntry)
			damagePlayer(e, session, playerEntry, cfg.Player.CrashDamage, cfg.Player.InvulnFrames)
		}
	})
	if crashed {
		return
	}

	if bossEntry, ok := components.Boss.First(e.World); ok && !bossEntry.HasComponent(components.Death) {
		boss := components.Boss.Get(bossEntry)
		o := components.Object.Get(bossEntry).Object
		if boss.EntryDone && gamemath.AABBOverlap(cx, cy, cw, ch, o.X, o.Y, o.W, o.H) {
			damagePlayer(e, session, playerEntry, cfg.Player.CrashDamage, cfg.Player.InvulnFrames)
		}
	}
}

// resolveEnemyFire: enemy shots and missiles against the full player
// box, then the jammer wave annulus. Waves never die on contact and
// deal no hull damage, they only refresh the jam debuff.
func resolveEnemyFire(e *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry).Object

	if player.InvulnFrames <= 0 {
		for _, colTag := range []string{tags.ResolvEnemyShot, tags.ResolvMissile} {
			hit := firstHit(playerObj, colTag)
			if hit == nil {
				continue
			}
			if shotEntry, ok := hit.Data.(*donburi.Entry); ok && shotEntry.Valid() && !shotEntry.HasComponent(components.Death) {
				donburi.Add(shotEntry, components.Death, &components.DeathData{})
				damagePlayer(e, session, playerEntry, cfg.Player.ShotDamage, cfg.Player.InvulnFrames)
				break
			}
		}
	}

	px := playerObj.X + playerObj.W/2
	py := playerObj.Y + playerObj.H/2
	waveQuery := donburi.NewQuery(filter.Contains(tags.EnemyWave))
	waveQuery.Each(e.World, func(waveEntry *donburi.Entry) {
		if waveEntry.HasComponent(components.Death) {
			return
		}
		wave := components.Wave.Get(waveEntry)
		if gamemath.InAnnulus(px, py, wave.X, wave.Y, wave.Radius, wave.Thickness) {
			player.JammedFrames = cfg.Player.JamDuration
		}
	})
}

// resolveLaser: the tier-3 rotating beam, tested as point-to-segment
// distance from the player center. Heavier damage, longer grace.
func resolveLaser(e *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry) {
	bossEntry, ok := components.Boss.First(e.World)
	if !ok || bossEntry.HasComponent(components.Death) {
		return
	}
	boss := components.Boss.Get(bossEntry)
	if !boss.LaserActive() {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 {
		return
	}

	bossObj := components.Object.Get(bossEntry).Object
	playerObj := components.Object.Get(playerEntry).Object

	ox := bossObj.X + bossObj.W/2
	oy := bossObj.Y + bossObj.H/2
	ex := ox + math.Cos(boss.LaserAngle)*cfg.Boss.LaserLength
	ey := oy + math.Sin(boss.LaserAngle)*cfg.Boss.LaserLength
	px := playerObj.X + playerObj.W/2
	py := playerObj.Y + playerObj.H/2

	reach := cfg.Boss.BeamWidth/2 + playerObj.W/3
	if gamemath.PointSegmentDistance(px, py, ox, oy, ex, ey) < reach {
		damagePlayer(e, session, playerEntry, cfg.Player.LaserDamage, cfg.Player.LaserInvulnFrames)
	}
}

// KillEnemy soft-deletes an enemy, pays out its kill score (halved while
// a boss holds the field), and rolls the supply drop.
func KillEnemy(e *ecs.ECS, session *components.SessionData, enemyEntry *donburi.Entry) {
	if enemyEntry.HasComponent(components.Death) {
		return
	}
	enemy := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry).Object
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	donburi.Add(enemyEntry, components.Death, &components.DeathData{})

	points := enemy.Score
	if session.BossActive {
		points = int(float64(points) * cfg.Combat.BossMinionScoreScale)
	}
	AddScore(session, points)

	factory.SpawnExplosion(e, session, cx, cy, enemy.TypeConfig.Color)
	factory.SpawnScoreText(e, points, cx, cy, cfg.White)

	if itemType, ok := factory.RollDrop(session); ok {
		factory.CreateItem(e, itemType, cx, cy)
	}
}

// damagePlayer applies hull damage behind the invulnerability gate and
// kills the player when the segments run out.
func damagePlayer(e *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry, damage int, invuln float64) {
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	if player.InvulnFrames > 0 || health.Current <= 0 {
		return
	}

	health.Current -= damage
	player.InvulnFrames = invuln
	TriggerScreenShake(session, cfg.ScreenShake.PlayerHitIntensity, cfg.ScreenShake.PlayerHitDuration)

	if health.Current <= 0 {
		killPlayer(e, session, playerEntry)
	}
}

// killPlayer runs the terminal transition exactly once. The hp sentinel
// keeps any same-frame pass from re-entering, and the death timer delays
// the game-over callback so the destruction plays out.
func killPlayer(e *ecs.ECS, session *components.SessionData, playerEntry *donburi.Entry) {
	health := components.Health.Get(playerEntry)
	if health.Current == cfg.Player.DeadHP {
		return
	}
	health.Current = cfg.Player.DeadHP

	obj := components.Object.Get(playerEntry).Object
	factory.SpawnExplosion(e, session, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Orange)
	factory.SpawnShockwave(e, obj.X+obj.W/2, obj.Y+obj.H/2)
	TriggerScreenShake(session, cfg.ScreenShake.BossDeathIntensity, cfg.ScreenShake.BossDeathDuration)

	donburi.Add(playerEntry, components.Death, &components.DeathData{Timer: cfg.Player.GameOverDelay})
	session.GameOver = true
}

// Check(0,0,tag) only narrows to objects sharing a grid cell; a hit
// counts only when the boxes actually overlap.
func firstHit(obj *resolv.Object, tag string) *resolv.Object {
	if col := obj.Check(0, 0, tag); col != nil {
		for _, o := range col.Objects {
			if gamemath.AABBOverlap(obj.X, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
				return o
			}
		}
	}
	return nil
}

func checkAll(obj *resolv.Object, tag string) []*resolv.Object {
	var hits []*resolv.Object
	if col := obj.Check(0, 0, tag); col != nil {
		for _, o := range col.Objects {
			if gamemath.AABBOverlap(obj.X, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
				hits = append(hits, o)
			}
		}
	}
	return hits
}

func center(o *resolv.Object) (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}
