package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// Desired position fed by the pointer, clamped by the movement system.
	TargetX float64
	TargetY float64

	InvulnFrames float64 // Post-hit grace period
	JammedFrames float64 // Wave debuff: halved fire rate/damage, no spread

	FireClock  float64 // Auto-fire accumulator
	TrailClock float64 // Engine trail VFX accumulator
}

// Jammed reports whether the wave debuff is active.
func (p *PlayerData) Jammed() bool {
	return p.JammedFrames > 0
}

var Player = donburi.NewComponentType[PlayerData]()
