package components

import (
	"math/rand"

	"github.com/automoto/skystrike/config"
	"github.com/yohamta/donburi"
)

// SessionData is the run-wide simulation state: clock, score, spawn
// accumulators and terminal callbacks. Exactly one session entity exists
// per run.
type SessionData struct {
	Difficulty config.Difficulty
	Tier       config.DifficultyConfig // Resolved tier table with overrides applied

	// Viewport bounds; resize swaps these without touching entity state.
	Width  float64
	Height float64

	// Clock
	TimeScale  float64
	FirstFrame bool

	Score int

	// Spawner accumulators
	SpawnClock  float64
	SupplyClock float64

	// Boss encounter bookkeeping
	BossActive    bool
	NextBossScore int
	AlertFrames   float64 // WARNING banner countdown

	// Terminal state
	GameOver      bool
	GameOverClock float64
	WinFired      bool

	OnGameOver func(finalScore int)
	OnGameWin  func(finalScore int)

	// Cosmetic screen shake
	ShakeFrames    float64
	ShakeIntensity float64

	// Seedable source for spawn selection, drop rolls and particle scatter.
	Rand *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()
