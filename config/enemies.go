package config

import "image/color"

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyShooter
	EnemyElite
	EnemyKamikaze
	EnemyMissileDrone
	EnemyJammer
)

// EnemyTypeConfig contains configuration for a specific enemy type
type EnemyTypeConfig struct {
	Name   string
	Kind   EnemyKind
	Health int     // Base HP before difficulty/score scaling
	Speed  float64 // Base downward speed before score scaling
	Score  int     // Kill reward
	Weight int     // Weighted-random selection weight

	// Milestone gating: the type enters the spawn pool at this score
	UnlockScore int

	// Attack cadence (0 = never shoots)
	ShootInterval float64

	// Kamikaze steering
	TurnRate float64
	Accel    float64

	// Dimensions
	Width  float64
	Height float64

	// Visual
	Color color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types []EnemyTypeConfig

	// Projectiles
	BulletSpeed   float64
	BulletSize    float64
	MissileSpeed  float64
	MissileTurn   float64 // Radians per frame-equivalent
	MissileLife   float64 // Frame-equivalents before self-destruct
	MissileScore  int
	WaveGrowth    float64 // Ring expansion per frame-equivalent
	WaveMax       float64
	WaveThickness float64
	DroneHoverY   float64 // Drones level off above this line
}

var Enemy EnemyConfig

func init() {
	Enemy = EnemyConfig{
		Types: []EnemyTypeConfig{
			{
				Name:   "Dart",
				Kind:   EnemyBasic,
				Health: 3,
				Speed:  2.2,
				Score:  100,
				Weight: 45,
				Width:  26,
				Height: 26,
				Color:  color.RGBA{R: 230, G: 80, B: 80, A: 255},
			},
			{
				Name:          "Gunner",
				Kind:          EnemyShooter,
				Health:        5,
				Speed:         1.4,
				Score:         150,
				Weight:        20,
				UnlockScore:   800,
				ShootInterval: 90,
				Width:         30,
				Height:        30,
				Color:         color.RGBA{R: 240, G: 150, B: 60, A: 255},
			},
			{
				Name:        "Lancer",
				Kind:        EnemyKamikaze,
				Health:      2,
				Speed:       2.6,
				Score:       120,
				Weight:      15,
				UnlockScore: 1500,
				TurnRate:    0.045,
				Accel:       0.05,
				Width:       24,
				Height:      28,
				Color:       color.RGBA{R: 255, G: 220, B: 70, A: 255},
			},
			{
				Name:          "Bulwark",
				Kind:          EnemyElite,
				Health:        14,
				Speed:         1.0,
				Score:         250,
				Weight:        10,
				UnlockScore:   2500,
				ShootInterval: 120,
				Width:         40,
				Height:        38,
				Color:         color.RGBA{R: 170, G: 60, B: 220, A: 255},
			},
			{
				Name:          "Hive",
				Kind:          EnemyMissileDrone,
				Health:        8,
				Speed:         1.1,
				Score:         200,
				Weight:        8,
				UnlockScore:   4000,
				ShootInterval: 140,
				Width:         34,
				Height:        30,
				Color:         color.RGBA{R: 90, G: 200, B: 120, A: 255},
			},
			{
				Name:          "Static",
				Kind:          EnemyJammer,
				Health:        6,
				Speed:         1.2,
				Score:         180,
				Weight:        7,
				UnlockScore:   6000,
				ShootInterval: 160,
				Width:         32,
				Height:        32,
				Color:         color.RGBA{R: 80, G: 170, B: 255, A: 255},
			},
		},
		BulletSpeed:   3.6,
		BulletSize:    8,
		MissileSpeed:  3.0,
		MissileTurn:   0.035,
		MissileLife:   420,
		MissileScore:  25,
		WaveGrowth:    2.4,
		WaveMax:       220,
		WaveThickness: 14,
		DroneHoverY:   140,
	}
}
