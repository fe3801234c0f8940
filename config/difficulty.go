package config

import "math"

// Difficulty selects the tier-wide scaling profile for a run.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hardcore
	Endless
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Normal:
		return "NORMAL"
	case Hardcore:
		return "HARDCORE"
	case Endless:
		return "ENDLESS"
	default:
		return "UNKNOWN"
	}
}

// DifficultyConfig contains all per-tier scaling values
type DifficultyConfig struct {
	Name string

	// Spawn/enemy pressure
	Aggressiveness float64 // Multiplies density and speed growth with score
	EnemyHPScaling float64 // HP bonus units per 600 score
	BaseEnemyHP    float64 // Multiplier on each type's base HP

	// Player
	PlayerMaxHP int

	// Weapon caps
	MaxSpread int
	MaxDamage int
	MaxLevel  int

	// Boss
	BossHPMultiplier float64
	BossAttackScale  float64 // <1 fires faster, >1 slower
	FinalBossCeiling int     // Tier 3 never spawns at/above this score (0 = no tier 3)

	// Endless-mode efficiency penalty on effective damage (1 = none)
	DamageEfficiency float64
}

// Difficulties is the per-tier table, indexed by Difficulty.
var Difficulties = [4]DifficultyConfig{
	Easy: {
		Name:             "EASY",
		Aggressiveness:   0.7,
		EnemyHPScaling:   1.0,
		BaseEnemyHP:      0.8,
		PlayerMaxHP:      6,
		MaxSpread:        5,
		MaxDamage:        8,
		MaxLevel:         13,
		BossHPMultiplier: 0.75,
		BossAttackScale:  1.3,
		FinalBossCeiling: 60000,
		DamageEfficiency: 1.0,
	},
	Normal: {
		Name:             "NORMAL",
		Aggressiveness:   1.0,
		EnemyHPScaling:   1.5,
		BaseEnemyHP:      1.0,
		PlayerMaxHP:      5,
		MaxSpread:        5,
		MaxDamage:        8,
		MaxLevel:         13,
		BossHPMultiplier: 1.0,
		BossAttackScale:  1.0,
		FinalBossCeiling: 60000,
		DamageEfficiency: 1.0,
	},
	Hardcore: {
		Name:             "HARDCORE",
		Aggressiveness:   1.5,
		EnemyHPScaling:   2.0,
		BaseEnemyHP:      1.2,
		PlayerMaxHP:      4,
		MaxSpread:        4,
		MaxDamage:        7,
		MaxLevel:         11,
		BossHPMultiplier: 1.4,
		BossAttackScale:  0.7,
		FinalBossCeiling: 60000,
		DamageEfficiency: 1.0,
	},
	Endless: {
		Name:             "ENDLESS",
		Aggressiveness:   1.5,
		EnemyHPScaling:   2.5,
		BaseEnemyHP:      1.2,
		PlayerMaxHP:      4,
		MaxSpread:        4,
		MaxDamage:        7,
		MaxLevel:         11,
		BossHPMultiplier: 1.4,
		BossAttackScale:  0.7,
		FinalBossCeiling: 0, // No final boss, the run never ends on a win
		DamageEfficiency: 0.8,
	},
}

// Overrides allows the host to replace selected HP scaling constants.
// Zero values leave the table entry untouched.
type Overrides struct {
	EnemyHPScaling float64
	PlayerMaxHP    int
	BaseEnemyHP    float64
}

// Get returns the tier config with any overrides applied.
func (d Difficulty) Get(o Overrides) DifficultyConfig {
	c := Difficulties[d]
	if o.EnemyHPScaling > 0 {
		c.EnemyHPScaling = o.EnemyHPScaling
	}
	if o.PlayerMaxHP > 0 {
		c.PlayerMaxHP = o.PlayerMaxHP
	}
	if o.BaseEnemyHP > 0 {
		c.BaseEnemyHP = o.BaseEnemyHP
	}
	return c
}

// DensityFactor grows spawn pressure with score.
func (c DifficultyConfig) DensityFactor(score int) float64 {
	return 1 + float64(score)/15000*c.Aggressiveness
}

// SpeedFactor scales enemy velocity with score, capped at 2x.
func (c DifficultyConfig) SpeedFactor(score int) float64 {
	return math.Min(2.0, 1+float64(score)/25000*c.Aggressiveness)
}

// HPBonus is the flat HP added to every spawned enemy at the given score.
func (c DifficultyConfig) HPBonus(score int) int {
	return int(float64(score/600) * c.EnemyHPScaling)
}

// SpawnInterval is the frame-equivalents between enemy spawns at the given
// score, floored so the field stays playable.
func (c DifficultyConfig) SpawnInterval(score int, base, min float64) float64 {
	return math.Max(min, base/c.DensityFactor(score))
}

// BossTier picks the encounter tier for a boss spawning at the given score.
// The final boss (tier 3) appears only past the tier-3 threshold, below the
// tier ceiling, and never in endless mode; otherwise tier 1/2 encounters
// repeat on the score interval.
func (c DifficultyConfig) BossTier(score int) int {
	if c.FinalBossCeiling > 0 && score >= Boss.Tier3Score && score < c.FinalBossCeiling {
		return 3
	}
	if score >= Boss.Tier2Score {
		return 2
	}
	return 1
}

// NextBossScore is the next multiple of the boss interval strictly above
// the given score.
func NextBossScore(score int) int {
	return (score/Boss.ScoreInterval + 1) * Boss.ScoreInterval
}
