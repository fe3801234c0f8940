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

const itemSize = 20.0

// CreateItem spawns a pickup drifting down from (x, y).
func CreateItem(ecs *ecs.ECS, itemType components.ItemType, x, y float64) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	obj := resolv.NewObject(x-itemSize/2, y-itemSize/2, itemSize, itemSize)
	obj.SetShape(resolv.NewRectangle(0, 0, itemSize, itemSize))
	obj.AddTags(tags.ResolvItem)
	obj.Data = item
	components.Object.SetValue(item, components.ObjectData{Object: obj})

	components.Item.SetValue(item, components.ItemData{
		Type: itemType,
		VelY: cfg.Spawn.ItemFallSpeed,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return item
}

// RollDrop decides whether a non-boss kill leaves an item behind, and
// which kind. Returns false when the roll fails.
func RollDrop(session *components.SessionData) (components.ItemType, bool) {
	if session.Rand.Float64() >= cfg.Spawn.DropChance {
		return 0, false
	}
	if session.Rand.Float64() < cfg.Spawn.HealWeight {
		return components.ItemHeal, true
	}
	return components.ItemWeaponUpgrade, true
}
