package systems

import (
	"testing"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/yohamta/donburi"
)

func TestBossEntryDescentCompletes(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	bossEntry := factory.CreateBoss(e, session, 1)
	boss := components.Boss.Get(bossEntry)
	obj := components.Object.Get(bossEntry)

	if boss.EntryDone {
		t.Fatal("entry should start unfinished")
	}
	for i := 0; i < int(cfg.Boss.EntryFrames)+2; i++ {
		UpdateBoss(e)
	}
	if !boss.EntryDone {
		t.Fatal("entry descent never completed")
	}
	if obj.Y != cfg.Boss.HoverY {
		t.Errorf("boss hover y = %v, want %v", obj.Y, cfg.Boss.HoverY)
	}
}

func TestBossPhaseStaysInRange(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1.7 // deliberately not a divisor of the period

	bossEntry := factory.CreateBoss(e, session, 3)
	boss := components.Boss.Get(bossEntry)
	boss.EntryDone = true

	seen := map[int]bool{}
	for i := 0; i < 3000; i++ {
		UpdateBoss(e)
		if boss.Phase < 0 || boss.Phase >= boss.PhaseCount {
			t.Fatalf("phase %d out of range [0,%d)", boss.Phase, boss.PhaseCount)
		}
		seen[boss.Phase] = true
	}
	if len(seen) != boss.PhaseCount {
		t.Errorf("cycled through %d phases, want all %d", len(seen), boss.PhaseCount)
	}
}

func TestBossPhaseEdgeIsTickExact(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	bossEntry := factory.CreateBoss(e, session, 1)
	boss := components.Boss.Get(bossEntry)
	boss.EntryDone = true

	for i := 0; i < int(cfg.Boss.PhasePeriod)-1; i++ {
		UpdateBoss(e)
	}
	if boss.Phase != 0 {
		t.Fatalf("phase advanced early: %d", boss.Phase)
	}
	UpdateBoss(e)
	if boss.Phase != 1 {
		t.Errorf("phase after one period = %d, want 1", boss.Phase)
	}
}

func TestBossDefeatSchedulesNextEncounter(t *testing.T) {
	e, session, _ := newTestRun(cfg.Hardcore)
	session.Score = 10050
	session.BossActive = true

	bossEntry := factory.CreateBoss(e, session, 1)
	KillBoss(e, session, bossEntry)

	if session.BossActive {
		t.Error("encounter should end on defeat")
	}
	wantScore := 10050 + 1*cfg.Boss.RewardScore
	if session.Score != wantScore {
		t.Errorf("score after bonus = %d, want %d", session.Score, wantScore)
	}
	if session.NextBossScore != 15000 {
		t.Errorf("next encounter at %d, want 15000", session.NextBossScore)
	}
	if !bossEntry.HasComponent(components.Death) {
		t.Error("boss should be marked dead")
	}
}

func TestFinalBossWinLatch(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.Score = cfg.Boss.Tier3Score
	session.BossActive = true

	wins := 0
	session.OnGameWin = func(int) { wins++ }

	bossEntry := factory.CreateBoss(e, session, 3)
	KillBoss(e, session, bossEntry)

	if wins != 1 {
		t.Fatalf("win callback fired %d times, want 1", wins)
	}
	if !session.WinFired || !session.GameOver {
		t.Error("win should latch and end the run")
	}

	// A second tier-3 defeat can never refire the latch.
	session.BossActive = true
	second := factory.CreateBoss(e, session, 3)
	KillBoss(e, session, second)
	if wins != 1 {
		t.Errorf("win callback refired: %d", wins)
	}
}

func TestEndlessNeverWins(t *testing.T) {
	e, session, _ := newTestRun(cfg.Endless)
	session.Score = cfg.Boss.Tier3Score
	session.BossActive = true

	wins := 0
	session.OnGameWin = func(int) { wins++ }

	// Even a hand-built tier-3 defeat is not a win in endless mode.
	bossEntry := factory.CreateBoss(e, session, 3)
	KillBoss(e, session, bossEntry)

	if wins != 0 {
		t.Errorf("endless mode fired the win callback %d times", wins)
	}
	if session.GameOver {
		t.Error("endless run should continue after the defeat")
	}
}

func TestBossRewardItemDrops(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.BossActive = true

	bossEntry := factory.CreateBoss(e, session, 2)
	KillBoss(e, session, bossEntry)

	found := false
	components.Item.Each(e.World, func(entry *donburi.Entry) {
		if components.Item.Get(entry).Type == components.ItemBossReward {
			found = true
		}
	})
	if !found {
		t.Error("boss defeat should drop the reward item")
	}
}
