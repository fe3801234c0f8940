package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer used by every system and renderer.
const Default = ecs.LayerDefault

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	TrackSpeed     float64 // How fast the craft closes on the pointer target per frame
	VerticalOffset float64 // Fixed distance the craft hovers above the pointer

	// Combat
	InvulnFrames      float64 // Grace window after a bullet/crash hit
	LaserInvulnFrames float64 // Longer grace window after a laser hit
	CrashDamage       int     // HP segments lost on body contact
	ShotDamage        int     // HP segments lost to an enemy bullet/missile
	LaserDamage       int     // HP segments lost to the boss laser
	JamDuration       float64 // Frames the jam debuff lasts

	// Crash hitbox is smaller than the sprite
	CrashHitboxScale float64

	// Dimensions
	Width  float64
	Height float64

	// Death
	DeadHP             int     // Sentinel written once when the craft is destroyed
	GameOverDelay      float64 // Frames between death and the game-over callback
	EngineTrailCadence float64 // Frames between engine trail puffs
}

// WeaponConfig contains auto-fire and bullet configuration
type WeaponConfig struct {
	BaseFireDelay float64 // Frames between volleys at level zero
	MinFireDelay  float64 // Fire delay floor reached through upgrades
	DelayStep     float64 // Fire delay reduction per eligible upgrade

	BulletSpeed     float64
	BulletWidth     float64
	BulletHeight    float64
	SpreadAngle     float64 // Radians between adjacent spread shots
	SmartBombDamage int     // Flat damage applied to every enemy by the overflow bomb
	UpgradeScore    int     // Score awarded for grabbing an upgrade item
}

// SpawnConfig contains enemy/item spawn cadence configuration
type SpawnConfig struct {
	BaseInterval  float64 // Frames between enemy spawns before density scaling
	MinInterval   float64 // Spawn interval floor
	SupplyDrop    float64 // Frames between guaranteed weapon-upgrade drops
	DropChance    float64 // Item drop probability on a non-boss kill
	HealWeight    float64 // Share of drops that are heals rather than upgrades
	ItemFallSpeed float64
	SpawnMargin   float64 // How far above the viewport entities spawn
}

// BossConfig contains boss encounter configuration
type BossConfig struct {
	ScoreInterval int // Boss every N score once the first threshold passes
	FirstScore    int // Score at which the first boss appears
	Tier2Score    int // Absolute score threshold for tier 2 encounters
	Tier3Score    int // Absolute score threshold for the final boss

	BaseHP      [3]int // Indexed by tier-1
	ScoreHPDiv  int    // Additive HP bonus is score divided by this
	Widths      [3]float64
	Heights     [3]float64
	HoverY      float64 // Y the boss descends to before attacking
	EntryFrames float64 // Frame-equivalents the entry descent takes

	PhasePeriod  float64    // Frames per attack phase
	AttackRates  [3]float64 // Base frames between volleys, by tier
	OscAmplitude float64    // Horizontal hover sweep in pixels
	OscFrequency float64    // Radians per accumulator unit

	BulletSpeed   float64
	SniperSpeed   float64
	FanCount      int
	SprayCount    int
	SpiralCount   int
	MinionPeriod  float64 // Frames between minion spawns (tier 2+)
	RewardScore   int     // Score bonus per tier on defeat
	AlertFrames   float64 // How long the WARNING banner shows

	// Tier-3 rotating laser
	LaserLength   float64
	BeamWidth     float64
	LaserSpinRate float64 // Radians per frame-equivalent
}

// CombatConfig contains collision/damage bookkeeping configuration
type CombatConfig struct {
	BossMinionScoreScale float64 // Kill score multiplier while a boss is alive
	ExplosionParticles   int
	ParticleDecay        float64
	ShockwaveGrowth      float64
	ShockwaveMax         float64
	FloatingTextLife     float64
	FloatingTextRise     float64
	HealAmount           int
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	BossDeathIntensity float64 // pixels
	BossDeathDuration  float64 // frames
	SmartBombIntensity float64
	SmartBombDuration  float64
	PlayerHitIntensity float64
	PlayerHitDuration  float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	WinColor        color.RGBA
	TextColor       color.RGBA
	TitleY          float64
}

// ClockConfig bounds the frame-delta normalization
type ClockConfig struct {
	BaseFrameMs   float64 // 60 Hz baseline
	MinTimeScale  float64
	MaxTimeScale  float64
	FirstDeltaMs  float64 // Assumed delta on the very first frame
}

// Config holds general game configuration
type Config struct {
	Width           int
	Height          int
	Title           string
	BackgroundColor color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Weapon WeaponConfig
var Spawn SpawnConfig
var Boss BossConfig
var Combat CombatConfig
var ScreenShake ScreenShakeConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Clock ClockConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	PlayerHullColor = color.RGBA{R: 200, G: 220, B: 255, A: 255}
	BossHullColor   = color.RGBA{R: 120, G: 40, B: 50, A: 255}
	JamWaveColor    = color.RGBA{R: 80, G: 170, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:           640,
		Height:          480,
		Title:           "SKYSTRIKE",
		BackgroundColor: color.RGBA{R: 8, G: 10, B: 24, A: 255},
	}

	Clock = ClockConfig{
		BaseFrameMs:  1000.0 / 60.0,
		MinTimeScale: 0.1,
		MaxTimeScale: 4.0,
		FirstDeltaMs: 16.0,
	}

	Player = PlayerConfig{
		TrackSpeed:         0.35,
		VerticalOffset:     30,
		InvulnFrames:       60,
		LaserInvulnFrames:  90,
		CrashDamage:        1,
		ShotDamage:         1,
		LaserDamage:        2,
		JamDuration:        180,
		CrashHitboxScale:   0.6,
		Width:              30,
		Height:             34,
		DeadHP:             -100,
		GameOverDelay:      60,
		EngineTrailCadence: 4,
	}

	Weapon = WeaponConfig{
		BaseFireDelay:   12,
		MinFireDelay:    4,
		DelayStep:       0.5,
		BulletSpeed:     9,
		BulletWidth:     4,
		BulletHeight:    12,
		SpreadAngle:     0.16,
		SmartBombDamage: 50,
		UpgradeScore:    50,
	}

	Spawn = SpawnConfig{
		BaseInterval:  50,
		MinInterval:   12,
		SupplyDrop:    900,
		DropChance:    0.15,
		HealWeight:    0.3,
		ItemFallSpeed: 1.4,
		SpawnMargin:   40,
	}

	Boss = BossConfig{
		ScoreInterval: 5000,
		FirstScore:    5000,
		Tier2Score:    15000,
		Tier3Score:    30000,
		BaseHP:        [3]int{300, 600, 1200},
		ScoreHPDiv:    10,
		Widths:        [3]float64{90, 110, 150},
		Heights:       [3]float64{70, 85, 110},
		HoverY:        90,
		EntryFrames:   120,
		PhasePeriod:   300,
		AttackRates:   [3]float64{55, 45, 35},
		OscAmplitude:  140,
		OscFrequency:  0.012,
		BulletSpeed:   3.2,
		SniperSpeed:   6.5,
		FanCount:      9,
		SprayCount:    5,
		SpiralCount:   4,
		MinionPeriod:  240,
		RewardScore:   1000,
		AlertFrames:   150,
		LaserLength:   1200,
		BeamWidth:     26,
		LaserSpinRate: 0.009,
	}

	Combat = CombatConfig{
		BossMinionScoreScale: 0.5,
		ExplosionParticles:   12,
		ParticleDecay:        0.03,
		ShockwaveGrowth:      6,
		ShockwaveMax:         260,
		FloatingTextLife:     45,
		FloatingTextRise:     0.8,
		HealAmount:           1,
	}

	ScreenShake = ScreenShakeConfig{
		BossDeathIntensity: 8,
		BossDeathDuration:  30,
		SmartBombIntensity: 6,
		SmartBombDuration:  20,
		PlayerHitIntensity: 4,
		PlayerHitDuration:  12,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 10, G: 12, B: 24, A: 255},
		TitleColor:      White,
		Title:           "SKYSTRIKE",
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 10, G: 12, B: 24, A: 255},
		TitleColor:      Red,
		WinColor:        LightGreen,
		TextColor:       White,
		TitleY:          140,
	}
}
