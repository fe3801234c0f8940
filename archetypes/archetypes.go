package archetypes

import (
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Weapon,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
		components.Health,
	)
	PlayerBullet = newArchetype(
		tags.PlayerBullet,
		components.Bullet,
		components.Object,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Shot,
		components.Object,
	)
	EnemyMissile = newArchetype(
		tags.EnemyMissile,
		components.Missile,
		components.Object,
	)
	EnemyWave = newArchetype(
		tags.EnemyWave,
		components.Wave,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	FloatingText = newArchetype(
		tags.FloatingText,
		components.FloatingText,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
