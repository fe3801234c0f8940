package scenes

import (
	"context"
	"sync"

	"github.com/automoto/skystrike/briefing"
	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// BriefingScene shows the mission text between the menu and the sortie.
// The text arrives asynchronously; the scene is skippable immediately.
type BriefingScene struct {
	sceneChanger SceneChanger
	difficulty   cfg.Difficulty
	once         sync.Once

	mu   sync.Mutex
	line string
}

func NewBriefingScene(sc SceneChanger, difficulty cfg.Difficulty) *BriefingScene {
	return &BriefingScene{sceneChanger: sc, difficulty: difficulty}
}

func (bs *BriefingScene) Update() {
	bs.once.Do(bs.configure)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		bs.sceneChanger.ChangeScene(NewCombatScene(bs.sceneChanger, bs.difficulty, cfg.Overrides{}))
	}
}

func (bs *BriefingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.BackgroundColor)

	width := float64(cfg.C.Width)

	titleFont := fonts.Title.Get()
	title := "MISSION BRIEFING"
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, titleFont, titleX, 120, cfg.White)

	bodyFont := fonts.HUD.Get()
	bs.mu.Lock()
	line := bs.line
	bs.mu.Unlock()
	if line == "" {
		line = "Decrypting orders..."
	}
	bodyX := int((width - float64(len(line)*7)) / 2)
	text.Draw(screen, line, bodyFont, bodyX, 200, cfg.LightBlue)

	diffLabel := "SORTIE: " + bs.difficulty.String()
	diffX := int((width - float64(len(diffLabel)*7)) / 2)
	text.Draw(screen, diffLabel, bodyFont, diffX, 240, cfg.Yellow)

	hintFont := fonts.Small.Get()
	hint := "Click or press SPACE to launch"
	hintX := int((width - float64(len(hint)*6)) / 2)
	text.Draw(screen, hint, hintFont, hintX, cfg.C.Height-30, cfg.White)
}

func (bs *BriefingScene) configure() {
	provider := briefing.NewProvider()
	go func() {
		line := provider.Fetch(context.Background(), bs.difficulty.String())
		bs.mu.Lock()
		bs.line = line
		bs.mu.Unlock()
	}()
}
