package components

import "github.com/yohamta/donburi"

// ItemType identifies a pickup's effect.
type ItemType int

const (
	ItemHeal ItemType = iota
	ItemWeaponUpgrade
	ItemBossReward
)

type ItemData struct {
	Type ItemType
	VelY float64
}

var Item = donburi.NewComponentType[ItemData]()
