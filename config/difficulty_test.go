package config

import "testing"

func TestSpawnIntervalShrinksWithScore(t *testing.T) {
	c := Difficulties[Normal]

	base := c.SpawnInterval(0, Spawn.BaseInterval, Spawn.MinInterval)
	if base != Spawn.BaseInterval {
		t.Errorf("interval at score 0 = %v, want %v", base, Spawn.BaseInterval)
	}

	mid := c.SpawnInterval(15000, Spawn.BaseInterval, Spawn.MinInterval)
	if mid >= base {
		t.Errorf("interval should shrink with score: %v >= %v", mid, base)
	}

	floor := c.SpawnInterval(10_000_000, Spawn.BaseInterval, Spawn.MinInterval)
	if floor != Spawn.MinInterval {
		t.Errorf("interval floor = %v, want %v", floor, Spawn.MinInterval)
	}
}

func TestBossTierThresholds(t *testing.T) {
	tests := []struct {
		name  string
		d     Difficulty
		score int
		want  int
	}{
		{"first encounter", Normal, 5000, 1},
		{"below tier 2", Normal, 14999, 1},
		{"tier 2", Normal, 15000, 2},
		{"tier 3", Normal, 30000, 3},
		{"endless never final", Endless, 30000, 2},
		{"past ceiling", Normal, 60000, 2},
	}
	for _, tt := range tests {
		c := Difficulties[tt.d]
		if got := c.BossTier(tt.score); got != tt.want {
			t.Errorf("%s: BossTier(%d) = %d, want %d", tt.name, tt.score, got, tt.want)
		}
	}
}

func TestNextBossScore(t *testing.T) {
	tests := []struct {
		score, want int
	}{
		{0, 5000},
		{4999, 5000},
		{5000, 10000},
		{10050, 15000},
		{29999, 30000},
	}
	for _, tt := range tests {
		if got := NextBossScore(tt.score); got != tt.want {
			t.Errorf("NextBossScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestOverridesApply(t *testing.T) {
	c := Hardcore.Get(Overrides{PlayerMaxHP: 9, EnemyHPScaling: 3.5})
	if c.PlayerMaxHP != 9 {
		t.Errorf("PlayerMaxHP override = %d, want 9", c.PlayerMaxHP)
	}
	if c.EnemyHPScaling != 3.5 {
		t.Errorf("EnemyHPScaling override = %v, want 3.5", c.EnemyHPScaling)
	}
	// Untouched fields keep the table values.
	if c.MaxLevel != Difficulties[Hardcore].MaxLevel {
		t.Errorf("MaxLevel changed by unrelated override")
	}
}

func TestHPBonusStepsWithScore(t *testing.T) {
	c := Difficulties[Normal]
	if got := c.HPBonus(0); got != 0 {
		t.Errorf("HPBonus(0) = %d", got)
	}
	if got := c.HPBonus(600); got != 1 {
		t.Errorf("HPBonus(600) = %d, want 1", got)
	}
	if got := c.HPBonus(1199); got != 1 {
		t.Errorf("HPBonus(1199) = %d, want 1", got)
	}
}
