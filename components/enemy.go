package components

import (
	"github.com/automoto/skystrike/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeConfig *config.EnemyTypeConfig

	VelX float64
	VelY float64

	ShootClock float64 // Per-entity attack cadence accumulator

	// Kamikaze steering; rotation doubles as the visual heading.
	Rotation float64

	Score int // Kill reward, cached at spawn
}

var Enemy = donburi.NewComponentType[EnemyData]()
