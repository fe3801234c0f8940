package factory

import (
	"math"

	"github.com/automoto/skystrike/archetypes"
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SelectEnemyType picks a spawn candidate by weighted random, restricted
// to types whose score milestone has been reached.
func SelectEnemyType(session *components.SessionData) *cfg.EnemyTypeConfig {
	total := 0
	for i := range cfg.Enemy.Types {
		t := &cfg.Enemy.Types[i]
		if session.Score >= t.UnlockScore {
			total += t.Weight
		}
	}
	if total == 0 {
		return &cfg.Enemy.Types[0]
	}
	roll := session.Rand.Intn(total)
	for i := range cfg.Enemy.Types {
		t := &cfg.Enemy.Types[i]
		if session.Score < t.UnlockScore {
			continue
		}
		roll -= t.Weight
		if roll < 0 {
			return t
		}
	}
	return &cfg.Enemy.Types[0]
}

// CreateEnemy spawns one enemy of the given type at (x, y), with HP and
// speed scaled by the current score and difficulty tier.
func CreateEnemy(ecs *ecs.ECS, session *components.SessionData, t *cfg.EnemyTypeConfig, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, t.Width, t.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, t.Width, t.Height))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	hp := int(float64(t.Health)*session.Tier.BaseEnemyHP) + session.Tier.HPBonus(session.Score)
	if hp < 1 {
		hp = 1
	}
	components.Health.SetValue(enemy, components.HealthData{Current: hp, Max: hp})

	speed := t.Speed * session.Tier.SpeedFactor(session.Score)
	data := components.EnemyData{
		TypeConfig: t,
		VelY:       speed,
		Score:      t.Score,
	}
	if t.Kind == cfg.EnemyKamikaze {
		// Entering straight down; steering takes over from there.
		data.Rotation = math.Pi / 2
	}
	components.Enemy.SetValue(enemy, data)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return enemy
}

// CreateRandomEnemy spawns a weighted-random enemy just above the viewport.
func CreateRandomEnemy(ecs *ecs.ECS, session *components.SessionData) *donburi.Entry {
	t := SelectEnemyType(session)
	x := session.Rand.Float64() * (session.Width - t.Width)
	return CreateEnemy(ecs, session, t, x, -t.Height-session.Rand.Float64()*cfg.Spawn.SpawnMargin)
}
