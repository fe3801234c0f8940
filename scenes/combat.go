package scenes

import (
	"sync"
	"time"

	"github.com/automoto/skystrike/components"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/fonts"
	"github.com/automoto/skystrike/systems"
	"github.com/automoto/skystrike/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type runResult struct {
	score int
	won   bool
}

// CombatScene owns the simulation: it wires the ECS, feeds it the
// measured wall-clock delta and the pointer target, and leaves on the
// session's terminal callbacks.
type CombatScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.Difficulty
	overrides    cfg.Overrides
	once         sync.Once

	lastFrame time.Time
	paused    bool
	result    *runResult
}

// NewCombatScene creates a combat scene for the chosen difficulty.
// Overrides tweak individual tuning values without a new difficulty.
func NewCombatScene(sc SceneChanger, difficulty cfg.Difficulty, overrides cfg.Overrides) *CombatScene {
	return &CombatScene{
		sceneChanger: sc,
		difficulty:   difficulty,
		overrides:    overrides,
	}
}

func (cs *CombatScene) Update() {
	cs.once.Do(cs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		cs.paused = !cs.paused
		// Swallow the pause gap so the next delta is sane.
		cs.lastFrame = time.Now()
	}
	if cs.paused {
		return
	}

	now := time.Now()
	deltaMs := float64(now.Sub(cs.lastFrame)) / float64(time.Millisecond)
	cs.lastFrame = now

	systems.AdvanceClock(cs.ecs, deltaMs)

	x, y := ebiten.CursorPosition()
	systems.SetPlayerTarget(cs.ecs, float64(x), float64(y))

	cs.ecs.Update()

	if cs.result != nil {
		systems.RecordHighScore(cs.result.score, cs.difficulty, cs.result.won)
		cs.sceneChanger.ChangeScene(NewGameOverScene(
			cs.sceneChanger, cs.difficulty, cs.result.score, cs.result.won))
	}
}

func (cs *CombatScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.BackgroundColor)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if cs.paused {
		titleFont := fonts.Title.Get()
		msg := "PAUSED"
		msgX := (cfg.C.Width - len(msg)*20) / 2
		text.Draw(screen, msg, titleFont, msgX, cfg.C.Height/2, cfg.White)
	}
}

func (cs *CombatScene) configure() {
	cs.lastFrame = time.Now()

	e := ecs.NewECS(donburi.NewWorld())

	// Gameplay systems stop at the terminal transition.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBoss))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))

	// VFX and cleanup keep running so the death sequence plays out.
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateLifecycle)

	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	sessionEntry := factory.CreateSession(e, cs.difficulty, cs.overrides, time.Now().UnixNano())
	session := components.Session.Get(sessionEntry)
	session.OnGameOver = func(finalScore int) {
		cs.result = &runResult{score: finalScore, won: false}
	}
	session.OnGameWin = func(finalScore int) {
		cs.result = &runResult{score: finalScore, won: true}
	}

	factory.CreatePlayer(e, session)

	cs.ecs = e
}
