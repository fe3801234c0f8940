package systems

import (
	"testing"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/automoto/skystrike/tags"
)

func TestEffectiveDamageJammed(t *testing.T) {
	_, session, playerEntry := newTestRun(cfg.Normal)
	weapon := components.Weapon.Get(playerEntry)

	tests := []struct {
		damage int
		jammed bool
		want   int
	}{
		{1, false, 1},
		{1, true, 1}, // halving floors at 1
		{6, true, 3},
		{8, false, 8},
	}
	for _, tt := range tests {
		weapon.Damage = tt.damage
		if got := EffectiveDamage(session, weapon, tt.jammed); got != tt.want {
			t.Errorf("EffectiveDamage(%d, jammed=%v) = %d, want %d", tt.damage, tt.jammed, got, tt.want)
		}
	}
}

func TestEffectiveDamageEndlessPenalty(t *testing.T) {
	_, session, playerEntry := newTestRun(cfg.Endless)
	weapon := components.Weapon.Get(playerEntry)

	weapon.Damage = 5
	// 5 * 0.8 = 4
	if got := EffectiveDamage(session, weapon, false); got != 4 {
		t.Errorf("endless EffectiveDamage(5) = %d, want 4", got)
	}
	weapon.Damage = 1
	if got := EffectiveDamage(session, weapon, false); got != 1 {
		t.Errorf("endless EffectiveDamage(1) = %d, want 1 (floor)", got)
	}
}

func TestUpgradeShrinksFireDelayToFloor(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	weapon := components.Weapon.Get(playerEntry)

	for i := 0; i < 100; i++ {
		// Keep the weapon under the cap so every pickup is a stat gain.
		weapon.SpreadLevel = 0
		weapon.Damage = 1
		ApplyUpgrade(e, session, playerEntry)
	}
	if weapon.FireDelay != cfg.Weapon.MinFireDelay {
		t.Errorf("fire delay after many upgrades = %v, want floor %v", weapon.FireDelay, cfg.Weapon.MinFireDelay)
	}
}

func TestUpgradeNeverExceedsCaps(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Hardcore)
	weapon := components.Weapon.Get(playerEntry)

	for i := 0; i < 50; i++ {
		ApplyUpgrade(e, session, playerEntry)
		if weapon.SpreadLevel > weapon.MaxSpread {
			t.Fatalf("spread exceeded cap: %d > %d", weapon.SpreadLevel, weapon.MaxSpread)
		}
		if weapon.Damage > weapon.MaxDamage {
			t.Fatalf("damage exceeded cap: %d > %d", weapon.Damage, weapon.MaxDamage)
		}
	}
}

func TestUpgradeAtCapFiresSmartBomb(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	weapon := components.Weapon.Get(playerEntry)
	weapon.SpreadLevel = weapon.MaxSpread
	weapon.Damage = weapon.MaxDamage

	if !weapon.AtCap() {
		t.Fatal("weapon should be at cap")
	}

	dart := &cfg.Enemy.Types[0]
	factory.CreateEnemy(e, session, dart, 100, 100)
	factory.CreateEnemy(e, session, dart, 300, 150)
	factory.CreateEnemyShot(e, 200, 200, 0, 2, false)
	factory.CreateMissile(e, 250, 120, 0)

	ApplyUpgrade(e, session, playerEntry)

	if got := countTag(e, tags.Enemy); got != 0 {
		t.Errorf("%d enemies survived the smart bomb", got)
	}
	if got := countTag(e, tags.EnemyBullet); got != 0 {
		t.Errorf("%d enemy shots survived the smart bomb", got)
	}
	if got := countTag(e, tags.EnemyMissile); got != 0 {
		t.Errorf("%d missiles survived the smart bomb", got)
	}
	if weapon.SpreadLevel != weapon.MaxSpread || weapon.Damage != weapon.MaxDamage {
		t.Error("smart bomb should not change weapon stats")
	}
	if session.Score == 0 {
		t.Error("smart bomb kills should score")
	}
}
