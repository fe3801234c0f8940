package systems

import (
	"math"
	"testing"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/automoto/skystrike/tags"
)

func enemyType(t *testing.T, kind cfg.EnemyKind) *cfg.EnemyTypeConfig {
	t.Helper()
	for i := range cfg.Enemy.Types {
		if cfg.Enemy.Types[i].Kind == kind {
			return &cfg.Enemy.Types[i]
		}
	}
	t.Fatalf("no enemy type with kind %d", kind)
	return nil
}

func TestShooterCadence(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 320, 400)

	gunner := factory.CreateEnemy(e, session, enemyType(t, cfg.EnemyShooter), 300, 50)
	enemy := components.Enemy.Get(gunner)
	enemy.VelY = 0 // hold position for the cadence check

	interval := int(enemy.TypeConfig.ShootInterval)
	for i := 0; i < interval-1; i++ {
		UpdateEnemies(e)
	}
	if got := countTag(e, tags.EnemyBullet); got != 0 {
		t.Fatalf("gunner fired %d shots before its interval", got)
	}
	UpdateEnemies(e)
	if got := countTag(e, tags.EnemyBullet); got != 1 {
		t.Errorf("shots after one interval = %d, want 1", got)
	}
}

func TestEnemiesHoldFireAboveField(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 320, 400)

	gunner := factory.CreateEnemy(e, session, enemyType(t, cfg.EnemyShooter), 300, -200)
	components.Enemy.Get(gunner).VelY = 0

	for i := 0; i < 400; i++ {
		UpdateEnemies(e)
	}
	if got := countTag(e, tags.EnemyBullet); got != 0 {
		t.Errorf("off-screen gunner fired %d shots", got)
	}
}

func TestEliteFiresTripleSpread(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 320, 400)

	elite := factory.CreateEnemy(e, session, enemyType(t, cfg.EnemyElite), 300, 50)
	enemy := components.Enemy.Get(elite)
	enemy.VelY = 0

	for i := 0; i < int(enemy.TypeConfig.ShootInterval); i++ {
		UpdateEnemies(e)
	}
	if got := countTag(e, tags.EnemyBullet); got != 3 {
		t.Errorf("elite volley = %d shots, want 3", got)
	}
}

func TestKamikazeTurnIsBounded(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 100, 400)

	lancer := factory.CreateEnemy(e, session, enemyType(t, cfg.EnemyKamikaze), 500, 50)
	enemy := components.Enemy.Get(lancer)
	enemy.Rotation = math.Pi / 2 // entering straight down
	enemy.VelX = 0
	enemy.VelY = enemy.TypeConfig.Speed

	UpdateEnemies(e)
	turned := math.Abs(enemy.Rotation - math.Pi/2)
	if turned < 1e-9 || turned > enemy.TypeConfig.TurnRate+1e-9 {
		t.Errorf("rotation moved by %v in one frame, want a step within %v", turned, enemy.TypeConfig.TurnRate)
	}
}

func TestKamikazeAccelerates(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 320, 400)

	lancer := factory.CreateEnemy(e, session, enemyType(t, cfg.EnemyKamikaze), 320, 50)
	enemy := components.Enemy.Get(lancer)
	start := math.Hypot(enemy.VelX, enemy.VelY)

	for i := 0; i < 30; i++ {
		UpdateEnemies(e)
	}
	if got := math.Hypot(enemy.VelX, enemy.VelY); got <= start {
		t.Errorf("kamikaze speed did not grow: %v -> %v", start, got)
	}
}

func TestDroneLevelsOffAndPatrols(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 320, 400)

	drone := factory.CreateEnemy(e, session, enemyType(t, cfg.EnemyMissileDrone), 300, 20)
	enemy := components.Enemy.Get(drone)
	obj := components.Object.Get(drone)

	for i := 0; i < 2000; i++ {
		UpdateEnemies(e)
	}
	if obj.Y < cfg.Enemy.DroneHoverY {
		t.Errorf("drone never reached its hover line: Y=%v", obj.Y)
	}
	if enemy.VelX == 0 {
		t.Error("leveled-off drone has no lateral drift")
	}
	if obj.X < -obj.W || obj.X > session.Width {
		t.Errorf("patrolling drone left the field: X=%v", obj.X)
	}
	if got := countTag(e, tags.EnemyMissile); got == 0 {
		t.Error("drone never launched a missile")
	}
}

func TestKamikazeSpawnsHeadingDown(t *testing.T) {
	e, session, playerEntry := newTestRun(cfg.Normal)
	session.TimeScale = 1
	placePlayer(playerEntry, 100, 400)

	lancer := factory.CreateEnemy(e, session, enemyType(t, cfg.EnemyKamikaze), 500, 50)
	enemy := components.Enemy.Get(lancer)

	if enemy.Rotation != math.Pi/2 {
		t.Fatalf("spawn rotation = %v, want straight down (pi/2)", enemy.Rotation)
	}

	UpdateEnemies(e)
	if enemy.VelY <= 0 {
		t.Errorf("first update reversed the descent: VelY = %v", enemy.VelY)
	}
	maxDrift := math.Sin(enemy.TypeConfig.TurnRate) * math.Hypot(enemy.VelX, enemy.VelY)
	if math.Abs(enemy.VelX) > maxDrift+1e-9 {
		t.Errorf("first update darted sideways: VelX = %v, max drift %v", enemy.VelX, maxDrift)
	}
}
