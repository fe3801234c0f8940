package components

import "github.com/yohamta/donburi"

// BulletData is the player-owned projectile.
type BulletData struct {
	VelX   float64
	VelY   float64
	Damage int
}

var Bullet = donburi.NewComponentType[BulletData]()

// ShotData is a plain enemy/boss projectile. Bouncing shots reflect off
// the side walls instead of leaving the field.
type ShotData struct {
	VelX     float64
	VelY     float64
	Bouncing bool
}

var Shot = donburi.NewComponentType[ShotData]()

// MissileData is a homing enemy projectile with a bounded turn rate and
// a fuse so it cannot chase forever.
type MissileData struct {
	Heading  float64 // Radians, 0 = +x
	Speed    float64
	TurnRate float64
	Fuse     float64 // Frame-equivalents until self-destruct
}

var Missile = donburi.NewComponentType[MissileData]()

// WaveData is the jammer's expanding ring. It does not die on contact;
// it applies the jam debuff and keeps growing.
type WaveData struct {
	X         float64
	Y         float64
	Radius    float64
	Growth    float64
	MaxRadius float64
	Thickness float64
}

var Wave = donburi.NewComponentType[WaveData]()
