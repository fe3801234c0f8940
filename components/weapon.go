package components

import "github.com/yohamta/donburi"

type WeaponData struct {
	SpreadLevel int
	Damage      int
	FireDelay   float64

	// Caps fixed at run start from the difficulty tier.
	MaxSpread int
	MaxDamage int
	MaxLevel  int
}

// Level is the combined upgrade level shown on the HUD.
func (w *WeaponData) Level() int {
	return w.SpreadLevel + w.Damage
}

// AtCap reports whether the next upgrade should become a smart bomb.
func (w *WeaponData) AtCap() bool {
	return w.SpreadLevel+w.Damage >= w.MaxLevel
}

var Weapon = donburi.NewComponentType[WeaponData]()
