package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/skystrike/config"
	"github.com/automoto/skystrike/systems"
	"github.com/automoto/skystrike/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen with the difficulty select.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once

	selected     cfg.Difficulty
	shouldLaunch bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.shouldLaunch {
		difficulty := ms.selected
		_ = systems.SaveSettings(&systems.SavedSettings{Difficulty: int(difficulty)})
		ms.sceneChanger.ChangeScene(NewBriefingScene(ms.sceneChanger, difficulty))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(func(d cfg.Difficulty) {
		ms.selected = d
		ms.shouldLaunch = true
	})
}
