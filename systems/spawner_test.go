package systems

import (
	"math"
	"testing"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/tags"
	"github.com/yohamta/donburi"
)

func TestSpawnCadence(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	for i := 0; i < int(cfg.Spawn.BaseInterval)-1; i++ {
		UpdateSpawner(e)
	}
	if got := countTag(e, tags.Enemy); got != 0 {
		t.Fatalf("spawned %d enemies before the interval elapsed", got)
	}

	UpdateSpawner(e)
	if got := countTag(e, tags.Enemy); got != 1 {
		t.Errorf("enemies after one interval = %d, want 1", got)
	}
}

func TestSpawnAccumulatorKeepsRemainder(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 4

	// 13 frames at 4x is 52 frame-equivalents against a 50-frame
	// interval: one spawn, two units carried over.
	for i := 0; i < 13; i++ {
		UpdateSpawner(e)
	}
	if got := countTag(e, tags.Enemy); got != 1 {
		t.Fatalf("enemies = %d, want 1", got)
	}
	if math.Abs(session.SpawnClock-2) > 1e-9 {
		t.Errorf("spawn accumulator = %v, want 2 (remainder, not reset)", session.SpawnClock)
	}
}

func TestBossTriggersOnceAtThreshold(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1
	session.Score = cfg.Boss.FirstScore

	UpdateSpawner(e)

	if !session.BossActive {
		t.Fatal("boss should activate at the score threshold")
	}
	if session.AlertFrames <= 0 {
		t.Error("alert banner should start with the encounter")
	}
	if _, ok := components.Boss.First(e.World); !ok {
		t.Fatal("no boss entity spawned")
	}

	// More score while the boss lives never stacks encounters.
	session.Score += cfg.Boss.ScoreInterval
	for i := 0; i < 10; i++ {
		UpdateSpawner(e)
	}
	bosses := 0
	components.Boss.Each(e.World, func(entry *donburi.Entry) { bosses++ })
	if bosses != 1 {
		t.Errorf("boss entities = %d, want 1", bosses)
	}
}

func TestSupplyDropCadence(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = cfg.Spawn.SupplyDrop // one full period per step

	UpdateSpawner(e)

	found := false
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		if components.Item.Get(entry).Type == components.ItemWeaponUpgrade {
			found = true
		}
	})
	if !found {
		t.Error("supply drop did not spawn a weapon upgrade")
	}
}
