package systems

import (
	"math"

	"github.com/automoto/skystrike/components"
	"github.com/automoto/skystrike/gamemath"
	"github.com/automoto/skystrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile pool: player bullets, enemy
// shots (with wall bounces), homing missiles and expanding jam waves.
// Items drift down here too.
func UpdateProjectiles(e *ecs.ECS) {
	session := GetSession(e)
	ts := session.TimeScale

	tags.PlayerBullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		obj := components.Object.Get(entry)
		obj.X += bullet.VelX * ts
		obj.Y += bullet.VelY * ts
	})

	tags.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		shot := components.Shot.Get(entry)
		obj := components.Object.Get(entry)
		obj.X += shot.VelX * ts
		obj.Y += shot.VelY * ts
		if shot.Bouncing {
			if obj.X <= 0 && shot.VelX < 0 {
				shot.VelX = -shot.VelX
			}
			if obj.X+obj.W >= session.Width && shot.VelX > 0 {
				shot.VelX = -shot.VelX
			}
		}
	})

	var playerObj *resolv.Object
	if playerEntry, ok := components.Player.First(e.World); ok && !playerEntry.HasComponent(components.Death) {
		playerObj = components.Object.Get(playerEntry).Object
	}

	tags.EnemyMissile.Each(e.World, func(entry *donburi.Entry) {
		missile := components.Missile.Get(entry)
		obj := components.Object.Get(entry)

		missile.Fuse -= ts
		if missile.Fuse <= 0 {
			if !entry.HasComponent(components.Death) {
				donburi.Add(entry, components.Death, &components.DeathData{})
			}
			return
		}

		if playerObj != nil {
			desired, ok := gamemath.AngleTo(obj.X+obj.W/2, obj.Y+obj.H/2,
				playerObj.X+playerObj.W/2, playerObj.Y+playerObj.H/2)
			if ok {
				missile.Heading = gamemath.TurnToward(missile.Heading, desired, missile.TurnRate*ts)
			}
		}
		obj.X += math.Cos(missile.Heading) * missile.Speed * ts
		obj.Y += math.Sin(missile.Heading) * missile.Speed * ts
	})

	tags.EnemyWave.Each(e.World, func(entry *donburi.Entry) {
		wave := components.Wave.Get(entry)
		wave.Radius += wave.Growth * ts
		if wave.Radius >= wave.MaxRadius && !entry.HasComponent(components.Death) {
			donburi.Add(entry, components.Death, &components.DeathData{})
		}
	})

	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		obj := components.Object.Get(entry)
		obj.Y += item.VelY * ts
	})
}
