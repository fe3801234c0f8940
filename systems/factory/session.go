package factory

import (
	"math/rand"

	"github.com/automoto/skystrike/archetypes"
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton run-state entity. The random source
// is seedable so spawn selection and drop rolls stay reproducible in tests.
func CreateSession(ecs *ecs.ECS, difficulty cfg.Difficulty, overrides cfg.Overrides, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Difficulty:    difficulty,
		Tier:          difficulty.Get(overrides),
		Width:         float64(cfg.C.Width),
		Height:        float64(cfg.C.Height),
		TimeScale:     1,
		FirstFrame:    true,
		NextBossScore: cfg.Boss.FirstScore,
		Rand:          rand.New(rand.NewSource(seed)),
	})
	return session
}
