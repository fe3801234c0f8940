package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// FloatingTextData is a score popup drifting up from a kill or pickup.
type FloatingTextData struct {
	X    float64
	Y    float64
	Text string
	Life float64
	Color color.RGBA
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()
