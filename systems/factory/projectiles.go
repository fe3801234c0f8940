package factory

import (
	"math"

	"github.com/automoto/skystrike/archetypes"
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerBullet spawns one player shot centered on (x, y) travelling
// at the given angle (radians off straight up).
func CreatePlayerBullet(ecs *ecs.ECS, x, y, angle float64, damage int) *donburi.Entry {
	bullet := archetypes.PlayerBullet.Spawn(ecs)

	// Bullet size grows with the damage tier.
	w := cfg.Weapon.BulletWidth + float64(damage-1)
	h := cfg.Weapon.BulletHeight + float64(damage-1)*1.5

	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvPlayerBullet)
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})

	components.Bullet.SetValue(bullet, components.BulletData{
		VelX:   math.Sin(angle) * cfg.Weapon.BulletSpeed,
		VelY:   -math.Cos(angle) * cfg.Weapon.BulletSpeed,
		Damage: damage,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return bullet
}

// CreateEnemyShot spawns an enemy/boss bullet with an explicit velocity.
func CreateEnemyShot(ecs *ecs.ECS, x, y, vx, vy float64, bouncing bool) *donburi.Entry {
	shot := archetypes.EnemyBullet.Spawn(ecs)

	size := cfg.Enemy.BulletSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvEnemyShot)
	obj.Data = shot
	components.Object.SetValue(shot, components.ObjectData{Object: obj})

	components.Shot.SetValue(shot, components.ShotData{
		VelX:     vx,
		VelY:     vy,
		Bouncing: bouncing,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return shot
}

// CreateMissile spawns a homing missile already pointed along heading.
func CreateMissile(ecs *ecs.ECS, x, y, heading float64) *donburi.Entry {
	missile := archetypes.EnemyMissile.Spawn(ecs)

	size := cfg.Enemy.BulletSize + 2
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvEnemyShot, tags.ResolvMissile)
	obj.Data = missile
	components.Object.SetValue(missile, components.ObjectData{Object: obj})

	components.Missile.SetValue(missile, components.MissileData{
		Heading:  heading,
		Speed:    cfg.Enemy.MissileSpeed,
		TurnRate: cfg.Enemy.MissileTurn,
		Fuse:     cfg.Enemy.MissileLife,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return missile
}

// CreateWave spawns the jammer's expanding ring centered on (x, y).
// Waves carry no resolv object; the annulus test is pure math.
func CreateWave(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	wave := archetypes.EnemyWave.Spawn(ecs)
	components.Wave.SetValue(wave, components.WaveData{
		X:         x,
		Y:         y,
		Radius:    4,
		Growth:    cfg.Enemy.WaveGrowth,
		MaxRadius: cfg.Enemy.WaveMax,
		Thickness: cfg.Enemy.WaveThickness,
	})
	return wave
}
