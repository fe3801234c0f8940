package systems

import (
	"image/color"

	"github.com/automoto/skystrike/components"
	"github.com/automoto/skystrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EntityView is one renderable box in a frame snapshot.
type EntityView struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Snapshot is the per-frame renderable state handed to an external
// renderer: entity pools, score, weapon level and boss-alert state.
type Snapshot struct {
	Score       int
	WeaponLevel int
	PlayerHP    int
	PlayerMaxHP int
	Jammed      bool

	BossActive  bool
	BossAlert   bool
	BossHPRatio float64

	Player       *EntityView
	Enemies      []EntityView
	Bullets      []EntityView
	EnemyShots   []EntityView
	Items        []EntityView
}

// TakeSnapshot assembles the renderable view of the current frame.
func TakeSnapshot(e *ecs.ECS) Snapshot {
	var snap Snapshot
	session := GetSession(e)
	if session == nil {
		return snap
	}
	snap.Score = session.Score
	snap.BossActive = session.BossActive
	snap.BossAlert = session.AlertFrames > 0

	if playerEntry, ok := components.Player.First(e.World); ok && !playerEntry.HasComponent(components.Death) {
		hp := components.Health.Get(playerEntry)
		weapon := components.Weapon.Get(playerEntry)
		obj := components.Object.Get(playerEntry)
		snap.PlayerHP = hp.Current
		snap.PlayerMaxHP = hp.Max
		snap.WeaponLevel = weapon.Level()
		snap.Jammed = components.Player.Get(playerEntry).Jammed()
		snap.Player = &EntityView{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(entry)
		en := components.Enemy.Get(entry)
		snap.Enemies = append(snap.Enemies, EntityView{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H, Color: en.TypeConfig.Color})
	})
	tags.PlayerBullet.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(entry)
		snap.Bullets = append(snap.Bullets, EntityView{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
	})
	tags.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(entry)
		snap.EnemyShots = append(snap.EnemyShots, EntityView{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
	})
	tags.EnemyMissile.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(entry)
		snap.EnemyShots = append(snap.EnemyShots, EntityView{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
	})
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(entry)
		snap.Items = append(snap.Items, EntityView{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
	})

	if bossEntry, ok := components.Boss.First(e.World); ok && !bossEntry.HasComponent(components.Death) {
		hp := components.Health.Get(bossEntry)
		if hp.Max > 0 {
			snap.BossHPRatio = float64(hp.Current) / float64(hp.Max)
		}
	}

	return snap
}
