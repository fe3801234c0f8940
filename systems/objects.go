package systems

import (
	"github.com/automoto/skystrike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// UpdateObjects syncs every moved collision object back into the
// spatial hash. Runs after all movement systems, before collisions.
func UpdateObjects(e *ecs.ECS) {
	query := donburi.NewQuery(filter.Contains(components.Object))
	query.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.Update()
	})
}
