package systems

import (
	"math"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner drives the enemy spawn, supply drop and boss encounter
// accumulators. Accumulators subtract their threshold on trigger rather
// than resetting, so cadence never drifts across frames.
func UpdateSpawner(e *ecs.ECS) {
	session := GetSession(e)
	ts := session.TimeScale

	// Enemy pressure scales with score and difficulty.
	interval := session.Tier.SpawnInterval(session.Score, cfg.Spawn.BaseInterval, cfg.Spawn.MinInterval)
	session.SpawnClock += ts
	for session.SpawnClock >= interval {
		session.SpawnClock -= interval
		factory.CreateRandomEnemy(e, session)
	}

	// Guaranteed periodic weapon upgrade, independent of kill drops.
	session.SupplyClock += ts
	for session.SupplyClock >= cfg.Spawn.SupplyDrop {
		session.SupplyClock -= cfg.Spawn.SupplyDrop
		x := itemHalf + session.Rand.Float64()*(session.Width-itemHalf*2)
		factory.CreateItem(e, components.ItemWeaponUpgrade, x, -cfg.Spawn.SpawnMargin)
	}

	// Boss encounters: monotonic thresholds, at most one boss at a time.
	if !session.BossActive && session.Score >= session.NextBossScore {
		tier := session.Tier.BossTier(session.Score)
		factory.CreateBoss(e, session, tier)
		session.BossActive = true
		session.AlertFrames = cfg.Boss.AlertFrames
	}
	session.AlertFrames = math.Max(0, session.AlertFrames-ts)
}

const itemHalf = 10.0
