package systems

import (
	"math"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/gamemath"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss runs the boss state machine: entry descent, hover
// oscillation, phase cycling on the pattern clock, volley cadence, the
// tier-3 rotating laser sweep, and minion escorts for tier 2+.
func UpdateBoss(e *ecs.ECS) {
	session := GetSession(e)
	ts := session.TimeScale

	bossEntry, ok := components.Boss.First(e.World)
	if !ok || bossEntry.HasComponent(components.Death) {
		return
	}
	boss := components.Boss.Get(bossEntry)
	obj := components.Object.Get(bossEntry)

	if !boss.EntryDone {
		y, done := boss.Entry.Update(float32(ts))
		obj.Y = float64(y)
		if done {
			boss.EntryDone = true
		}
		return
	}

	// Phase advances once per period boundary, no matter the frame rate.
	prev := boss.PatternClock
	boss.PatternClock += ts
	if int(prev/cfg.Boss.PhasePeriod) != int(boss.PatternClock/cfg.Boss.PhasePeriod) {
		boss.Phase = (boss.Phase + 1) % boss.PhaseCount
	}

	// Horizontal hover sweep.
	sweep := math.Sin(boss.PatternClock*cfg.Boss.OscFrequency) * cfg.Boss.OscAmplitude * session.Tier.Aggressiveness
	obj.X = gamemath.Clamp(boss.CenterX+sweep-obj.W/2, 0, session.Width-obj.W)

	var playerObj *resolv.Object
	if playerEntry, ok := components.Player.First(e.World); ok && !playerEntry.HasComponent(components.Death) {
		playerObj = components.Object.Get(playerEntry).Object
	}

	if boss.LaserActive() {
		// The laser is continuous: no volley timer, just the sweep.
		// Its player collision runs with the other collision passes.
		boss.LaserAngle += cfg.Boss.LaserSpinRate * ts
	} else {
		boss.AttackClock += ts
		for boss.AttackClock >= boss.AttackRate {
			boss.AttackClock -= boss.AttackRate
			fireBossVolley(e, session, boss, obj.Object, playerObj)
		}
	}

	if boss.Tier >= 2 {
		boss.MinionClock += ts
		for boss.MinionClock >= cfg.Boss.MinionPeriod {
			boss.MinionClock -= cfg.Boss.MinionPeriod
			t := &cfg.Enemy.Types[0]
			factory.CreateEnemy(e, session, t, obj.X+session.Rand.Float64()*obj.W, obj.Y+obj.H)
		}
	}
}

// fireBossVolley emits one discrete attack for the current phase.
func fireBossVolley(e *ecs.ECS, session *components.SessionData, boss *components.BossData, obj, playerObj *resolv.Object) {
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H

	switch boss.Phase {
	case 0:
		// Downward fan.
		n := cfg.Boss.FanCount
		arc := math.Pi * 0.8
		for i := 0; i < n; i++ {
			angle := math.Pi/2 - arc/2 + arc*float64(i)/float64(n-1)
			factory.CreateEnemyShot(e, cx, cy,
				math.Cos(angle)*cfg.Boss.BulletSpeed,
				math.Sin(angle)*cfg.Boss.BulletSpeed, false)
		}
	case 1:
		// Aimed sniper shot; elite tiers fire a tight triple.
		if playerObj == nil {
			return
		}
		aim, ok := gamemath.AngleTo(cx, cy, playerObj.X+playerObj.W/2, playerObj.Y+playerObj.H/2)
		if !ok {
			return
		}
		offsets := []float64{0}
		if boss.Tier >= 2 {
			offsets = []float64{-0.12, 0, 0.12}
		}
		for _, off := range offsets {
			factory.CreateEnemyShot(e, cx, cy,
				math.Cos(aim+off)*cfg.Boss.SniperSpeed,
				math.Sin(aim+off)*cfg.Boss.SniperSpeed, false)
		}
	case 2:
		// Random downward spray.
		for i := 0; i < cfg.Boss.SprayCount; i++ {
			angle := math.Pi/2 + (session.Rand.Float64()-0.5)*math.Pi*0.9
			speed := cfg.Boss.BulletSpeed * (0.6 + session.Rand.Float64()*0.9)
			factory.CreateEnemyShot(e, cx, cy,
				math.Cos(angle)*speed,
				math.Sin(angle)*speed, false)
		}
	case 3:
		// Advancing spiral of wall-bouncing shots (final boss only).
		for i := 0; i < cfg.Boss.SpiralCount; i++ {
			angle := boss.SpiralStep + 2*math.Pi*float64(i)/float64(cfg.Boss.SpiralCount)
			factory.CreateEnemyShot(e, cx, obj.Y+obj.H/2,
				math.Cos(angle)*cfg.Boss.BulletSpeed,
				math.Abs(math.Sin(angle))*cfg.Boss.BulletSpeed+0.5, true)
		}
		boss.SpiralStep += 0.35
	}
}

// KillBoss handles the terminal transition: reward drop, score bonus,
// next encounter threshold, and the one-shot win callback on a tier-3
// defeat outside endless mode.
func KillBoss(e *ecs.ECS, session *components.SessionData, bossEntry *donburi.Entry) {
	boss := components.Boss.Get(bossEntry)
	obj := components.Object.Get(bossEntry)
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	donburi.Add(bossEntry, components.Death, &components.DeathData{})
	session.BossActive = false

	bonus := boss.Tier * cfg.Boss.RewardScore
	AddScore(session, bonus)
	session.NextBossScore = cfg.NextBossScore(session.Score)

	factory.SpawnExplosion(e, session, cx, cy, cfg.Orange)
	factory.SpawnScoreText(e, bonus, cx, cy, cfg.Yellow)
	factory.CreateItem(e, components.ItemBossReward, cx, cy)
	TriggerScreenShake(session, cfg.ScreenShake.BossDeathIntensity, cfg.ScreenShake.BossDeathDuration)

	if boss.Tier == 3 && session.Difficulty != cfg.Endless && !session.WinFired {
		session.WinFired = true
		session.GameOver = true
		if session.OnGameWin != nil {
			session.OnGameWin(session.Score)
		}
	}
}
