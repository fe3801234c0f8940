package scenes

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/fonts"
	"github.com/automoto/skystrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// GameOverScene displays the run result and the score table.
type GameOverScene struct {
	sceneChanger SceneChanger
	difficulty   cfg.Difficulty
	score        int
	won          bool
	once         sync.Once

	scores []systems.HighScore
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, difficulty cfg.Difficulty, score int, won bool) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		difficulty:   difficulty,
		score:        score,
		won:          won,
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.sceneChanger.ChangeScene(NewCombatScene(gs.sceneChanger, gs.difficulty, cfg.Overrides{}))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.GameOver.BackgroundColor)

	width := float64(cfg.C.Width)
	titleFont := fonts.Title.Get()

	title := "MISSION FAILED"
	clr := cfg.GameOver.TitleColor
	if gs.won {
		title = "SECTOR CLEARED"
		clr = cfg.GameOver.WinColor
	}
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), clr)

	bodyFont := fonts.Bold.Get()
	scoreLine := fmt.Sprintf("FINAL SCORE %d  (%s)", gs.score, gs.difficulty)
	scoreX := int((width - float64(len(scoreLine)*11)) / 2)
	text.Draw(screen, scoreLine, bodyFont, scoreX, 170, cfg.GameOver.TextColor)

	smallFont := fonts.Small.Get()
	y := 210
	for i, s := range gs.scores {
		if i >= 5 {
			break
		}
		mark := ""
		if s.Won {
			mark = " *"
		}
		line := fmt.Sprintf("%d. %d  %s%s", i+1, s.Score, s.Difficulty, mark)
		lineX := int((width - float64(len(line)*6)) / 2)
		lineColor := cfg.GameOver.TextColor
		if s.Score == gs.score && s.Difficulty == gs.difficulty.String() {
			lineColor = cfg.Yellow
		}
		text.Draw(screen, line, smallFont, lineX, y, lineColor)
		y += 16
	}

	hint := "R: fly again    M: menu"
	hintFont := fonts.HUD.Get()
	hintX := int((width - float64(len(hint)*7)) / 2)
	text.Draw(screen, hint, hintFont, hintX, cfg.C.Height-30, cfg.White)
}

func (gs *GameOverScene) configure() {
	gs.scores = systems.LoadHighScores()
}
