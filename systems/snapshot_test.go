package systems

import (
	"testing"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
)

func TestSnapshotReflectsField(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.Score = 777
	session.AlertFrames = 30

	dart := &cfg.Enemy.Types[0]
	factory.CreateEnemy(e, session, dart, 100, 100)
	factory.CreateEnemy(e, session, dart, 200, 100)
	factory.CreatePlayerBullet(e, 320, 200, 0, 1)
	factory.CreateItem(e, components.ItemHeal, 50, 50)

	snap := TakeSnapshot(e)

	if snap.Score != 777 {
		t.Errorf("snapshot score = %d", snap.Score)
	}
	if !snap.BossAlert {
		t.Error("alert state lost in snapshot")
	}
	if len(snap.Enemies) != 2 {
		t.Errorf("snapshot enemies = %d, want 2", len(snap.Enemies))
	}
	if len(snap.Bullets) != 1 {
		t.Errorf("snapshot bullets = %d, want 1", len(snap.Bullets))
	}
	if len(snap.Items) != 1 {
		t.Errorf("snapshot items = %d, want 1", len(snap.Items))
	}
	if snap.Player == nil {
		t.Fatal("snapshot lost the player")
	}

	hp := components.Health.Get(playerEntry)
	if snap.PlayerHP != hp.Current || snap.PlayerMaxHP != hp.Max {
		t.Error("snapshot hull state mismatch")
	}
}

func TestSnapshotWithoutSession(t *testing.T) {
	e := newBareECS()
	snap := TakeSnapshot(e)
	if snap.Player != nil || snap.Score != 0 {
		t.Error("empty world should produce a zero snapshot")
	}
}

func TestSnapshotSkipsDeadEntities(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)

	dart := &cfg.Enemy.Types[0]
	enemyEntry := factory.CreateEnemy(e, session, dart, 300, 200)
	factory.CreateEnemy(e, session, dart, 100, 100)
	KillEnemy(e, session, enemyEntry)

	snap := TakeSnapshot(e)
	if len(snap.Enemies) != 1 {
		t.Errorf("snapshot enemies = %d, want 1 (dead one filtered)", len(snap.Enemies))
	}

	killPlayer(e, session, playerEntry)
	snap = TakeSnapshot(e)
	if snap.Player != nil {
		t.Error("snapshot should drop the player once destruction starts")
	}
}
