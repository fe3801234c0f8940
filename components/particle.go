package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is a cosmetic entity: explosion debris, engine trail puffs
// and the smart-bomb shockwave. Particles never enter the collision space.
type ParticleData struct {
	X    float64
	Y    float64
	VelX float64
	VelY float64

	Life  float64 // 1..0
	Decay float64 // Life lost per frame-equivalent
	Size  float64

	Shockwave bool // Expanding ring instead of a dot
	Color     color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
