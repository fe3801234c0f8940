package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Tier       int // 1..3
	Phase      int // 0..PhaseCount-1
	PhaseCount int

	// Entry descent; attacking starts only once the tween finishes.
	Entry     *gween.Tween
	EntryDone bool

	PatternClock float64 // Drives phase cycling and hover oscillation
	AttackClock  float64 // Discrete-volley cadence accumulator
	AttackRate   float64 // Frames between volleys, tier- and difficulty-scaled

	CenterX    float64 // Hover oscillation midpoint
	SpiralStep float64 // Advancing angle for the spiral barrage

	// Tier-3 rotating laser
	LaserAngle float64

	MinionClock float64 // Tier 2+ escort spawn accumulator
}

// LaserActive reports whether the continuous laser phase is running.
// Only the final boss has it, as its fifth phase.
func (b *BossData) LaserActive() bool {
	return b.Tier == 3 && b.Phase == 4 && b.EntryDone
}

var Boss = donburi.NewComponentType[BossData]()
