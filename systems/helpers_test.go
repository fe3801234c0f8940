package systems

import (
	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestRun builds a minimal live run: space, session (fixed seed) and
// player. Systems are stepped by hand so each test drives exactly the
// code it checks.
func newTestRun(d cfg.Difficulty) (*ecs.ECS, *components.SessionData, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	sessionEntry := factory.CreateSession(e, d, cfg.Overrides{}, 1)
	session := components.Session.Get(sessionEntry)
	playerEntry := factory.CreatePlayer(e, session)
	return e, session, playerEntry
}

func newBareECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func countTag(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Death) {
			n++
		}
	})
	return n
}

// placePlayer teleports the player's collision box so its center lands
// on (cx, cy).
func placePlayer(playerEntry *donburi.Entry, cx, cy float64) {
	obj := components.Object.Get(playerEntry)
	obj.X = cx - obj.W/2
	obj.Y = cy - obj.H/2
	obj.Update()
}
