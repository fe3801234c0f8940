package systems

import (
	"math"
	"testing"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/automoto/skystrike/tags"
)

func TestBouncingShotReflectsOffWalls(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	shot := factory.CreateEnemyShot(e, 4, 100, -3, 1, true)
	data := components.Shot.Get(shot)

	for i := 0; i < 5; i++ {
		UpdateProjectiles(e)
	}
	if data.VelX <= 0 {
		t.Errorf("VelX = %v after hitting the left wall, want positive", data.VelX)
	}

	obj := components.Object.Get(shot)
	obj.X = session.Width - obj.W - 2
	data.VelX = 3
	for i := 0; i < 5; i++ {
		UpdateProjectiles(e)
	}
	if data.VelX >= 0 {
		t.Errorf("VelX = %v after hitting the right wall, want negative", data.VelX)
	}
}

func TestNonBouncingShotLeavesField(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	shot := factory.CreateEnemyShot(e, 4, 100, -3, 0, false)
	obj := components.Object.Get(shot)

	for i := 0; i < 20; i++ {
		UpdateProjectiles(e)
	}
	if obj.X > 0 {
		t.Errorf("straight shot stayed in bounds at X=%v", obj.X)
	}
}

func TestMissileFuseExpires(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	missile := factory.CreateMissile(e, 100, 100, math.Pi/2)
	components.Missile.Get(missile).Fuse = 3

	for i := 0; i < 2; i++ {
		UpdateProjectiles(e)
	}
	if missile.HasComponent(components.Death) {
		t.Fatal("missile detonated before the fuse ran out")
	}
	UpdateProjectiles(e)
	if !missile.HasComponent(components.Death) {
		t.Error("missile survived past its fuse")
	}
}

func TestMissileTurnsTowardPlayer(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 400, 400)

	// Launched pointing straight up, away from the player below.
	missile := factory.CreateMissile(e, 320, 100, -math.Pi/2)
	data := components.Missile.Get(missile)

	UpdateProjectiles(e)
	delta := math.Abs(data.Heading - (-math.Pi / 2))
	if delta < 1e-9 || delta > data.TurnRate+1e-9 {
		t.Errorf("heading moved by %v, want a single bounded turn step (max %v)", delta, data.TurnRate)
	}
}

func TestWaveExpiresAtMaxRadius(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	wave := factory.CreateWave(e, 320, 200)
	data := components.Wave.Get(wave)

	steps := int(math.Ceil((data.MaxRadius - data.Radius) / data.Growth))
	for i := 0; i < steps; i++ {
		UpdateProjectiles(e)
	}
	if !wave.HasComponent(components.Death) {
		t.Errorf("wave still alive at radius %v (max %v)", data.Radius, data.MaxRadius)
	}
}

func TestItemsDriftDown(t *testing.T) {
	e, session, _ := newTestRun(cfg.Normal)
	session.TimeScale = 1

	item := factory.CreateItem(e, components.ItemHeal, 200, 100)
	obj := components.Object.Get(item)
	startY := obj.Y

	for i := 0; i < 10; i++ {
		UpdateProjectiles(e)
	}
	if obj.Y <= startY {
		t.Errorf("item did not drift down: Y %v -> %v", startY, obj.Y)
	}
	if got := countTag(e, tags.Item); got != 1 {
		t.Errorf("item count = %d, want 1", got)
	}
}
