package systems

import (
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Margin past the viewport edges before an entity is culled. Generous
// enough that spawners above the screen and bouncing shots survive.
const cullMargin = 80.0

// UpdateLifecycle retires entities at frame end: death timers tick down
// and expired entries leave the space and the world; anything that
// drifted far out of the field is culled the same way. The player's
// removal is what fires the game-over callback, so it can only happen
// once.
func UpdateLifecycle(e *ecs.ECS) {
	session := GetSession(e)
	ts := session.TimeScale

	var toRemove []*donburi.Entry

	components.Death.Each(e.World, func(entry *donburi.Entry) {
		death := components.Death.Get(entry)
		death.Timer -= ts
		if death.Timer > 0 {
			return
		}
		if entry.HasComponent(tags.Player) {
			if session.OnGameOver != nil {
				session.OnGameOver(session.Score)
			}
		}
		toRemove = append(toRemove, entry)
	})

	cullOffscreen(e, session, &toRemove)

	spaceEntry, hasSpace := components.Space.First(e.World)
	for _, entry := range toRemove {
		if !entry.Valid() {
			continue
		}
		if hasSpace && entry.HasComponent(components.Object) {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
		e.World.Remove(entry.Entity())
	}
}

func cullOffscreen(e *ecs.ECS, session *components.SessionData, toRemove *[]*donburi.Entry) {
	w := session.Width
	h := session.Height

	cullable := []*donburi.ComponentType[donburi.Tag]{
		tags.PlayerBullet, tags.EnemyBullet, tags.EnemyMissile,
		tags.Enemy, tags.Item,
	}
	for _, tag := range cullable {
		tag.Each(e.World, func(entry *donburi.Entry) {
			if entry.HasComponent(components.Death) || !entry.HasComponent(components.Object) {
				return
			}
			obj := components.Object.Get(entry)
			// Enemies spawn above the top edge and fly in, so only the
			// other three sides cull them.
			top := obj.Y+obj.H < -cullMargin
			if entry.HasComponent(tags.Enemy) {
				top = obj.Y+obj.H < -(cfg.Spawn.SpawnMargin + cullMargin)
			}
			if top || obj.Y > h+cullMargin || obj.X+obj.W < -cullMargin || obj.X > w+cullMargin {
				*toRemove = append(*toRemove, entry)
			}
		})
	}
}
