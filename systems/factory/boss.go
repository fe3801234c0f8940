package factory

import (
	"github.com/automoto/skystrike/archetypes"
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns the encounter boss above the viewport. The entry
// descent runs as a linear tween down to the hover line; phase cycling
// and attacks start only once it completes.
func CreateBoss(ecs *ecs.ECS, session *components.SessionData, tier int) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	w := cfg.Boss.Widths[tier-1]
	h := cfg.Boss.Heights[tier-1]
	x := session.Width/2 - w/2
	startY := -h - 20

	obj := resolv.NewObject(x, startY, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvBoss)
	obj.Data = boss
	components.Object.SetValue(boss, components.ObjectData{Object: obj})

	hp := int(float64(cfg.Boss.BaseHP[tier-1])*session.Tier.BossHPMultiplier) +
		session.Score/cfg.Boss.ScoreHPDiv
	components.Health.SetValue(boss, components.HealthData{Current: hp, Max: hp})

	phaseCount := 3
	if tier == 3 {
		phaseCount = 5
	}
	components.Boss.SetValue(boss, components.BossData{
		Tier:       tier,
		PhaseCount: phaseCount,
		Entry:      gween.New(float32(startY), float32(cfg.Boss.HoverY), float32(cfg.Boss.EntryFrames), ease.Linear),
		AttackRate: cfg.Boss.AttackRates[tier-1] * session.Tier.BossAttackScale,
		CenterX:    session.Width / 2,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return boss
}
