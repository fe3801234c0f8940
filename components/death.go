package components

import "github.com/yohamta/donburi"

// DeathData marks an entity for removal at the end of the frame. Timer
// counts down in frame-equivalents; most entities die with Timer zero,
// the player keeps ticking so the destruction VFX can play out.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
