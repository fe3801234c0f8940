package factory

import (
	"github.com/automoto/skystrike/archetypes"
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, session *components.SessionData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := session.Width/2 - cfg.Player.Width/2
	y := session.Height - cfg.Player.Height*3

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		TargetX: x + cfg.Player.Width/2,
		TargetY: y + cfg.Player.VerticalOffset,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: session.Tier.PlayerMaxHP,
		Max:     session.Tier.PlayerMaxHP,
	})
	components.Weapon.SetValue(player, components.WeaponData{
		SpreadLevel: 0,
		Damage:      1,
		FireDelay:   cfg.Weapon.BaseFireDelay,
		MaxSpread:   session.Tier.MaxSpread,
		MaxDamage:   session.Tier.MaxDamage,
		MaxLevel:    session.Tier.MaxLevel,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
